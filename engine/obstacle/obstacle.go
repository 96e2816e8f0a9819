// Package obstacle holds the dynamic collidable entities of game mode: asteroids, ships and projectiles.
package obstacle

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
)

// Kind identifies what an obstacle represents.
type Kind uint8

const (
	KindAsteroid Kind = iota
	KindShip
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindShip:
		return "ship"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Motion selects the rule that moves an obstacle each tick.
type Motion uint8

const (
	// MotionSeek flies in a straight line toward the point captured at spawn time.
	MotionSeek Motion = iota
	// MotionDrift keeps a position relative to the cockpit and drifts that offset by Velocity.
	MotionDrift
	// MotionOrbit circles the sun, driven by the simulation clock.
	MotionOrbit
)

// Obstacle is a collidable dynamic entity. Position is mutated only by Step.
type Obstacle struct {
	ID              uint64
	Kind            Kind
	Motion          Motion
	Position        common.Vec3
	Velocity        common.Vec3 // world velocity (seek) or offset velocity (drift)
	CollisionRadius float32

	// Offset from the cockpit, used by MotionDrift.
	Offset common.Vec3

	// Orbit parameters, used by MotionOrbit.
	OrbitDistance float32
	OrbitSpeed    float32
	OrbitPhase    float32
	OrbitHeight   float32

	// Age is the time in seconds since spawn.
	Age float32
}

// Step advances the obstacle by its motion rule.
//
// Parameters:
//   - dt: elapsed time in seconds
//   - clock: the body registry clock (used by MotionOrbit)
//   - anchor: the cockpit position (used by MotionDrift)
func (o *Obstacle) Step(dt, clock float32, anchor common.Vec3) {
	o.Age += dt
	switch o.Motion {
	case MotionSeek:
		o.Position = o.Position.Add(o.Velocity.Scale(dt))
	case MotionDrift:
		o.Offset = o.Offset.Add(o.Velocity.Scale(dt))
		o.Position = anchor.Add(o.Offset)
	case MotionOrbit:
		theta := o.OrbitPhase + clock*o.OrbitSpeed
		o.Position = common.Vec3{
			common.Cos(theta) * o.OrbitDistance,
			o.OrbitHeight,
			common.Sin(theta) * o.OrbitDistance,
		}
	}
}

// Center returns the obstacle position; it satisfies the collision Collidable capability.
func (o *Obstacle) Center() common.Vec3 {
	return o.Position
}

// BoundingRadius returns the obstacle collision radius.
func (o *Obstacle) BoundingRadius() float32 {
	return o.CollisionRadius
}
