package obstacle

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_Seek(t *testing.T) {
	o := &Obstacle{Motion: MotionSeek, Position: common.Vec3{10, 0, 0}, Velocity: common.Vec3{-2, 0, 0}}
	o.Step(0.5, 0, common.Vec3{})

	assert.Equal(t, common.Vec3{9, 0, 0}, o.Position)
	assert.Equal(t, float32(0.5), o.Age)
}

func TestStep_DriftFollowsAnchor(t *testing.T) {
	o := &Obstacle{Motion: MotionDrift, Offset: common.Vec3{0, 0, 10}, Velocity: common.Vec3{0, 0, -4}}
	o.Step(1, 0, common.Vec3{100, 5, 0})

	assert.Equal(t, common.Vec3{0, 0, 6}, o.Offset)
	assert.Equal(t, common.Vec3{100, 5, 6}, o.Position)
}

func TestStep_OrbitUsesClock(t *testing.T) {
	o := &Obstacle{Motion: MotionOrbit, OrbitDistance: 10, OrbitSpeed: 1, OrbitHeight: 1}
	o.Step(0.016, 0, common.Vec3{})
	assert.InDelta(t, 10, o.Position[0], 1e-5)
	assert.Equal(t, float32(1), o.Position[1])

	// orbit position depends only on clock, not on dt
	o.Step(5, 0, common.Vec3{})
	assert.InDelta(t, 10, o.Position[0], 1e-5)
}

func TestField_AddRemove(t *testing.T) {
	f := NewField()
	a := f.Add(&Obstacle{Kind: KindAsteroid})
	b := f.Add(&Obstacle{Kind: KindShip})

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, f.Len())
	assert.True(t, f.Remove(a))
	assert.False(t, f.Remove(a))
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, b, f.All()[0].ID)
}

func TestField_RecycleKeepsOrbiters(t *testing.T) {
	f := NewField()
	f.Add(&Obstacle{Motion: MotionSeek, Position: common.Vec3{200, 0, 0}})
	f.Add(&Obstacle{Motion: MotionSeek, Position: common.Vec3{5, 0, 0}})
	f.Add(&Obstacle{Motion: MotionOrbit, Position: common.Vec3{300, 0, 0}})

	removed := f.Recycle(common.Vec3{}, 90)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, f.Len())
}

func TestField_ClearKind(t *testing.T) {
	f := NewField()
	f.Add(&Obstacle{Kind: KindShip})
	f.Add(&Obstacle{Kind: KindAsteroid})
	f.Add(&Obstacle{Kind: KindShip})

	assert.Equal(t, 2, f.ClearKind(KindShip))
	assert.Equal(t, 0, f.CountKind(KindShip))
	assert.Equal(t, 1, f.CountKind(KindAsteroid))

	f.Clear()
	assert.Equal(t, 0, f.Len())
}

func TestSpawner_BatchAimsAtCockpit(t *testing.T) {
	f := NewField()
	s := NewSpawner(3, 4, 6)
	cockpit := common.Vec3{1, 2, 3}
	batch := s.SpawnBatch(f, cockpit, common.Vec3{0, 0, 1}, 1.5)

	require.Len(t, batch, 5)
	assert.Equal(t, 5, f.Len())
	assert.Equal(t, 4, f.CountKind(KindAsteroid))
	assert.Equal(t, 1, f.CountKind(KindProjectile))

	for _, o := range batch {
		if o.Kind != KindAsteroid {
			continue
		}
		toCockpit := cockpit.Sub(o.Position).Normalize()
		dir := o.Velocity.Normalize()
		dot := toCockpit[0]*dir[0] + toCockpit[1]*dir[1] + toCockpit[2]*dir[2]
		assert.InDelta(t, 1, dot, 1e-4)
		assert.Greater(t, o.Position.Distance(cockpit), float32(19))
	}
}

func TestSpawner_Deterministic(t *testing.T) {
	fa, fb := NewField(), NewField()
	NewSpawner(11, 3, 5).SpawnBatch(fa, common.Vec3{}, common.Vec3{0, 0, 1}, 1)
	NewSpawner(11, 3, 5).SpawnBatch(fb, common.Vec3{}, common.Vec3{0, 0, 1}, 1)

	for i := range fa.All() {
		assert.Equal(t, fa.All()[i].Position, fb.All()[i].Position)
	}
}

func TestSpawner_Ships(t *testing.T) {
	f := NewField()
	ships := NewSpawner(1, 1, 1).SpawnShips(f, 6)

	require.Len(t, ships, 6)
	for _, s := range ships {
		assert.Equal(t, KindShip, s.Kind)
		r := common.Vec3{s.Position[0], 0, s.Position[2]}.Length()
		assert.InDelta(t, s.OrbitDistance, r, 1e-4)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "asteroid", KindAsteroid.String())
	assert.Equal(t, "ship", KindShip.String())
	assert.Equal(t, "projectile", KindProjectile.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
