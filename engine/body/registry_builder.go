package body

import "github.com/rs/zerolog"

// RegistryBuilderOption is a functional option for configuring a Registry.
type RegistryBuilderOption func(*registryImpl)

// WithBodies replaces the default catalog with the given planets.
//
// Parameters:
//   - bodies: planets (with their moons) to track
//
// Returns:
//   - RegistryBuilderOption: functional option to set the bodies
func WithBodies(bodies []*Body) RegistryBuilderOption {
	return func(r *registryImpl) {
		r.bodies = bodies
	}
}

// WithSunRadius sets the radius of the sun at the origin.
//
// Parameters:
//   - radius: sun radius
//
// Returns:
//   - RegistryBuilderOption: functional option to set the sun radius
func WithSunRadius(radius float32) RegistryBuilderOption {
	return func(r *registryImpl) {
		r.sunRadius = radius
	}
}

// WithBelt configures the decorative asteroid belt. A count of 0 disables it.
//
// Parameters:
//   - count: number of belt asteroids
//   - inner: inner belt radius
//   - outer: outer belt radius
//
// Returns:
//   - RegistryBuilderOption: functional option to configure the belt
func WithBelt(count int, inner, outer float32) RegistryBuilderOption {
	return func(r *registryImpl) {
		r.beltCount = max(count, 0)
		r.beltInner = inner
		r.beltOuter = outer
	}
}

// WithSeed sets the seed used to scatter the asteroid belt.
//
// Parameters:
//   - seed: generator seed
//
// Returns:
//   - RegistryBuilderOption: functional option to set the seed
func WithSeed(seed uint64) RegistryBuilderOption {
	return func(r *registryImpl) {
		r.seed = seed
	}
}

// WithLogger attaches a logger to the registry.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - RegistryBuilderOption: functional option to set the logger
func WithLogger(l zerolog.Logger) RegistryBuilderOption {
	return func(r *registryImpl) {
		r.log = l
	}
}
