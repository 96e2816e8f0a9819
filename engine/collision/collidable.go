package collision

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/config"
	"github.com/Carmen-Shannon/oxy-orrery/engine/obstacle"
)

// Collidable is anything with a world-space center and a bounding radius.
type Collidable interface {
	Center() common.Vec3
	BoundingRadius() float32
}

// Class identifies which kind of collidable blocked a move.
type Class uint8

const (
	ClassNone Class = iota
	ClassSun
	ClassPlanet
	ClassMoon
	ClassAsteroid
	ClassShip
	ClassProjectile
)

func (c Class) String() string {
	switch c {
	case ClassSun:
		return "sun"
	case ClassPlanet:
		return "planet"
	case ClassMoon:
		return "moon"
	case ClassAsteroid:
		return "asteroid"
	case ClassShip:
		return "ship"
	case ClassProjectile:
		return "projectile"
	default:
		return "none"
	}
}

// classOf maps an obstacle kind to its collision class.
func classOf(k obstacle.Kind) Class {
	switch k {
	case obstacle.KindShip:
		return ClassShip
	case obstacle.KindProjectile:
		return ClassProjectile
	default:
		return ClassAsteroid
	}
}

// Margins are the clearances added to each collidable's radius.
type Margins struct {
	Sun        float32
	Planet     float32
	Moon       float32
	Asteroid   float32
	Ship       float32
	Projectile float32
}

// MarginsFrom extracts the collision margins from a tuning profile.
//
// Parameters:
//   - t: the tuning profile
//
// Returns:
//   - Margins: the collision margins
func MarginsFrom(t config.Tuning) Margins {
	return Margins{
		Sun:        t.SunMargin,
		Planet:     t.PlanetMargin,
		Moon:       t.MoonMargin,
		Asteroid:   t.AsteroidMargin,
		Ship:       t.ShipMargin,
		Projectile: t.ProjectileMargin,
	}
}

// For returns the margin for class c.
func (m Margins) For(c Class) float32 {
	switch c {
	case ClassSun:
		return m.Sun
	case ClassPlanet:
		return m.Planet
	case ClassMoon:
		return m.Moon
	case ClassAsteroid:
		return m.Asteroid
	case ClassShip:
		return m.Ship
	case ClassProjectile:
		return m.Projectile
	default:
		return 0
	}
}

// maxObstacle returns the largest obstacle margin.
func (m Margins) maxObstacle() float32 {
	return max(m.Asteroid, m.Ship, m.Projectile)
}

// sun is the fixed collidable at the origin.
type sun struct {
	radius float32
}

func (s sun) Center() common.Vec3 { return common.Vec3{} }

func (s sun) BoundingRadius() float32 { return s.radius }

// hits reports whether p lies inside c inflated by margin.
func hits(p common.Vec3, c Collidable, margin float32) bool {
	reach := c.BoundingRadius() + margin
	return p.DistanceSq(c.Center()) < reach*reach
}
