package body

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
)

// Info holds the descriptive facts shown in the info panel when a body is selected.
type Info struct {
	Name            string
	Radius          string
	AxialTilt       string
	RotationPeriod  string
	OrbitPeriod     string
	DistanceFromSun string
	MoonCount       int
	Description     string
}

// Body is an orbiting celestial body (planet or moon).
// Orbit parameters are static; the center is derived by the Registry every tick
// and cannot be written from outside this package.
type Body struct {
	Name             string
	Radius           float32
	OrbitDistance    float32
	OrbitSpeed       float32
	OrbitInclination float32 // radians
	Color            [3]float32
	Info             Info

	// Moons orbit this body's current center. Moons never carry moons of their own.
	Moons []*Body

	center common.Vec3
}

// Center returns the body's world-space center as of the last Registry update.
func (b *Body) Center() common.Vec3 {
	return b.center
}

// BeltAsteroid is a decorative asteroid in the main belt. Belt asteroids are not collidable.
type BeltAsteroid struct {
	Angle    float32 // initial phase in radians
	Distance float32
	Speed    float32
	Size     float32

	position common.Vec3
}

// Position returns the asteroid's world-space position as of the last Registry update.
func (a *BeltAsteroid) Position() common.Vec3 {
	return a.position
}

// OrbitPosition evaluates the circular orbit formula around parent at time t.
// The orbit plane is tilted about the X axis by inclination.
//
// Parameters:
//   - parent: center being orbited
//   - distance: orbit radius
//   - speed: angular speed (radians per clock unit)
//   - inclination: orbit plane tilt in radians
//   - t: simulation clock
//
// Returns:
//   - common.Vec3: the orbiting point's world-space position
func OrbitPosition(parent common.Vec3, distance, speed, inclination, t float32) common.Vec3 {
	theta := t * speed
	x := common.Cos(theta) * distance
	zRaw := common.Sin(theta) * distance
	y := zRaw * common.Sin(inclination)
	z := zRaw * common.Cos(inclination)
	return common.Vec3{parent[0] + x, parent[1] + y, parent[2] + z}
}

// BoundingRadius returns the body radius; it satisfies the collision Collidable capability.
func (b *Body) BoundingRadius() float32 {
	return b.Radius
}
