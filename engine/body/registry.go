// Package body derives the live positions of the sun's planets, their moons and the decorative asteroid belt.
package body

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/rs/zerolog"
)

// selectedScale enlarges the selected body when drawn.
const selectedScale = 1.3

type registryImpl struct {
	mu *sync.Mutex

	clock     float32
	sunRadius float32
	bodies    []*Body
	belt      []*BeltAsteroid

	beltCount int
	beltInner float32
	beltOuter float32
	seed      uint64

	log zerolog.Logger
}

// Registry owns the world-space centers of every orbiting body.
// Centers are a pure function of the simulation clock: Update recomputes them from scratch
// and never accumulates, so calling Update twice with the same t yields identical centers.
type Registry interface {
	// Update recomputes every planet, moon and belt asteroid position for clock t.
	//
	// Parameters:
	//   - t: the simulation clock (monotonically increasing while animating)
	Update(t float32)

	// Clock returns the clock value passed to the last Update.
	//
	// Returns:
	//   - float32: the simulation clock
	Clock() float32

	// SunRadius returns the radius of the sun at the origin.
	//
	// Returns:
	//   - float32: sun radius
	SunRadius() float32

	// Bodies returns the planets in catalog order. Moons are reachable through Body.Moons.
	// The returned slice must not be modified.
	//
	// Returns:
	//   - []*Body: the planets
	Bodies() []*Body

	// Find looks up a planet or moon by name.
	//
	// Parameters:
	//   - name: the body name
	//
	// Returns:
	//   - *Body: the body, or nil if not found
	Find(name string) *Body

	// Belt returns the decorative asteroid belt.
	//
	// Returns:
	//   - []*BeltAsteroid: belt asteroids
	Belt() []*BeltAsteroid

	// DisplayScale returns the radius the render collaborator should draw b with.
	//
	// Parameters:
	//   - b: the body to draw
	//   - selected: the currently selected body, or nil
	//
	// Returns:
	//   - float32: draw radius
	DisplayScale(b, selected *Body) float32
}

var _ Registry = &registryImpl{}

// NewRegistry creates a Registry seeded with the default catalog and a 500-asteroid belt,
// and evaluates it at t = 0.
//
// Parameters:
//   - options: functional options to configure the registry
//
// Returns:
//   - Registry: the newly created registry
func NewRegistry(options ...RegistryBuilderOption) Registry {
	r := &registryImpl{
		mu:        &sync.Mutex{},
		sunRadius: DefaultSunRadius,
		beltCount: 500,
		beltInner: 12,
		beltOuter: 16,
		seed:      1,
		log:       zerolog.Nop(),
	}
	for _, option := range options {
		option(r)
	}
	if r.bodies == nil {
		r.bodies = DefaultBodies()
	}
	for _, b := range r.bodies {
		if b.Info.Name == "" {
			b.Info.Name = b.Name
		}
	}
	r.belt = newBelt(r.beltCount, r.beltInner, r.beltOuter, r.seed)
	r.update(0)

	r.log.Debug().Int("bodies", len(r.bodies)).Int("belt", len(r.belt)).Msg("body registry ready")
	return r
}

// newBelt scatters count asteroids between inner and outer with a deterministic generator.
func newBelt(count int, inner, outer float32, seed uint64) []*BeltAsteroid {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	belt := make([]*BeltAsteroid, count)
	for i := range belt {
		belt[i] = &BeltAsteroid{
			Angle:    rng.Float32() * 2 * math.Pi,
			Distance: inner + rng.Float32()*(outer-inner),
			Speed:    0.001 + rng.Float32()*0.002,
			Size:     rng.Float32()*0.1 + 0.05,
		}
	}
	return belt
}

func (r *registryImpl) Update(t float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.update(t)
}

// update evaluates every orbit at t. Caller must hold the mutex.
func (r *registryImpl) update(t float32) {
	r.clock = t
	origin := common.Vec3{}
	for _, b := range r.bodies {
		b.center = OrbitPosition(origin, b.OrbitDistance, b.OrbitSpeed, b.OrbitInclination, t)
		for _, m := range b.Moons {
			m.center = OrbitPosition(b.center, m.OrbitDistance, m.OrbitSpeed, m.OrbitInclination, t)
		}
	}
	for _, a := range r.belt {
		theta := a.Angle + t*a.Speed
		a.position = common.Vec3{common.Cos(theta) * a.Distance, 0, common.Sin(theta) * a.Distance}
	}
}

func (r *registryImpl) Clock() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clock
}

func (r *registryImpl) SunRadius() float32 {
	return r.sunRadius
}

func (r *registryImpl) Bodies() []*Body {
	return r.bodies
}

func (r *registryImpl) Find(name string) *Body {
	for _, b := range r.bodies {
		if b.Name == name {
			return b
		}
		for _, m := range b.Moons {
			if m.Name == name {
				return m
			}
		}
	}
	return nil
}

func (r *registryImpl) Belt() []*BeltAsteroid {
	return r.belt
}

func (r *registryImpl) DisplayScale(b, selected *Body) float32 {
	if b == nil {
		return 0
	}
	if b == selected {
		return b.Radius * selectedScale
	}
	return b.Radius
}
