package obstacle

import (
	"math"
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-orrery/common"
)

// Spawner creates obstacle batches around the cockpit. It is deterministic for a given seed.
type Spawner struct {
	rng       *rand.Rand
	batchSize int
	speed     float32
}

// NewSpawner creates a Spawner.
//
// Parameters:
//   - seed: generator seed
//   - batchSize: asteroids per batch
//   - speed: base approach speed in units per second
//
// Returns:
//   - *Spawner: the newly created spawner
func NewSpawner(seed uint64, batchSize int, speed float32) *Spawner {
	return &Spawner{
		rng:       rand.New(rand.NewPCG(seed, seed^0xda942042e4dd58b5)),
		batchSize: max(batchSize, 1),
		speed:     speed,
	}
}

// between returns a uniform value in [lo, hi).
func (s *Spawner) between(lo, hi float32) float32 {
	return lo + s.rng.Float32()*(hi-lo)
}

// direction returns a uniformly distributed unit vector.
func (s *Spawner) direction() common.Vec3 {
	z := s.between(-1, 1)
	phi := s.between(0, 2*math.Pi)
	r := float32(math.Sqrt(float64(1 - z*z)))
	return common.Vec3{r * common.Cos(phi), z, r * common.Sin(phi)}
}

// SpawnBatch adds a batch of seeking asteroids ahead of the cockpit plus one drifting projectile.
// Asteroids aim at the cockpit position at spawn time; later cockpit movement is not tracked.
//
// Parameters:
//   - f: the field to populate
//   - cockpit: current cockpit position
//   - forward: current cockpit forward vector (unit length)
//   - multiplier: game speed multiplier applied to approach speed
//
// Returns:
//   - []*Obstacle: the spawned obstacles
func (s *Spawner) SpawnBatch(f *Field, cockpit, forward common.Vec3, multiplier float32) []*Obstacle {
	speed := s.speed * multiplier
	out := make([]*Obstacle, 0, s.batchSize+1)

	for range s.batchSize {
		jitter := s.direction().Scale(s.between(0, 10))
		pos := cockpit.Add(forward.Scale(s.between(30, 40))).Add(jitter)
		vel := cockpit.Sub(pos).Normalize().Scale(speed * s.between(0.8, 1.2))
		o := &Obstacle{
			Kind:            KindAsteroid,
			Motion:          MotionSeek,
			Position:        pos,
			Velocity:        vel,
			CollisionRadius: s.between(0.3, 0.8),
		}
		f.Add(o)
		out = append(out, o)
	}

	offset := s.direction().Scale(25)
	p := &Obstacle{
		Kind:            KindProjectile,
		Motion:          MotionDrift,
		Position:        cockpit.Add(offset),
		Offset:          offset,
		Velocity:        offset.Normalize().Scale(-speed * 0.5),
		CollisionRadius: 0.15,
	}
	f.Add(p)
	out = append(out, p)
	return out
}

// SpawnShips adds n ships orbiting the sun between 10 and 22 units.
//
// Parameters:
//   - f: the field to populate
//   - n: number of ships
//
// Returns:
//   - []*Obstacle: the spawned ships
func (s *Spawner) SpawnShips(f *Field, n int) []*Obstacle {
	out := make([]*Obstacle, 0, n)
	for range n {
		o := &Obstacle{
			Kind:            KindShip,
			Motion:          MotionOrbit,
			CollisionRadius: 0.35,
			OrbitDistance:   s.between(10, 22),
			OrbitSpeed:      s.between(0.2, 0.5),
			OrbitPhase:      s.between(0, 2*math.Pi),
			OrbitHeight:     s.between(-1.5, 1.5),
		}
		o.Step(0, 0, common.Vec3{})
		f.Add(o)
		out = append(out, o)
	}
	return out
}
