package collision

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/config"
	"github.com/Carmen-Shannon/oxy-orrery/engine/body"
	"github.com/Carmen-Shannon/oxy-orrery/engine/obstacle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDetector(t *testing.T, field *obstacle.Field, options ...DetectorBuilderOption) (body.Registry, Detector) {
	t.Helper()
	reg := body.NewRegistry(body.WithBelt(0, 0, 0))
	reg.Update(0)
	opts := append([]DetectorBuilderOption{WithMargins(MarginsFrom(config.DefaultTuning()))}, options...)
	return reg, NewDetector(reg, field, opts...)
}

func TestCheck_SunCenterAlwaysBlocked(t *testing.T) {
	field := obstacle.NewField()
	field.Add(&obstacle.Obstacle{Kind: obstacle.KindAsteroid, CollisionRadius: 1})
	_, d := newTestDetector(t, field)

	for _, active := range []bool{false, true} {
		d.SetGameActive(active)
		d.Sync()
		res := d.Check(common.Vec3{})
		assert.True(t, res.Blocked)
		assert.Equal(t, ClassSun, res.Class)
		assert.Nil(t, res.Obstacle, "sun carries no obstacle payload")
	}
}

func TestCheck_SunBoundary(t *testing.T) {
	_, d := newTestDetector(t, nil)

	// classic sun radius 2.5 + 1.5 margin = 4
	assert.True(t, d.Check(common.Vec3{0, 3.99, 0}).Blocked)
	assert.False(t, d.Check(common.Vec3{0, 4.01, 0}).Blocked)
}

func TestCheck_Planet(t *testing.T) {
	reg, d := newTestDetector(t, nil)
	earth := reg.Find("Earth")
	require.NotNil(t, earth)

	// earth at (7,0,0), radius 1 + margin 1
	res := d.Check(common.Vec3{7, 1.9, 0})
	assert.True(t, res.Blocked)
	assert.Equal(t, ClassPlanet, res.Class)
	assert.Same(t, earth, res.Body)

	assert.False(t, d.Check(common.Vec3{7, 2.1, 0}).Blocked)
}

func TestCheck_Moon(t *testing.T) {
	reg, d := newTestDetector(t, nil)
	moon := reg.Find("Moon")
	require.NotNil(t, moon)

	// approach the moon from the side facing away from Earth
	p := moon.Center().Add(common.Vec3{0.7, 0, 0})
	res := d.Check(p)
	assert.True(t, res.Blocked)
	assert.Equal(t, ClassMoon, res.Class)
	assert.Same(t, moon, res.Body)
}

func TestCheck_ObstaclesOnlyInGameMode(t *testing.T) {
	field := obstacle.NewField()
	rock := &obstacle.Obstacle{Kind: obstacle.KindAsteroid, Position: common.Vec3{0, 20, 0}, CollisionRadius: 0.5}
	field.Add(rock)
	_, d := newTestDetector(t, field)

	p := common.Vec3{0, 21.5, 0} // 1.5 < 0.5 + 1.2
	assert.False(t, d.Check(p).Blocked)

	d.SetGameActive(true)
	res := d.Check(p)
	assert.True(t, res.Blocked)
	assert.True(t, res.Hit())
	assert.Equal(t, ClassAsteroid, res.Class)
	assert.Same(t, rock, res.Obstacle)

	assert.False(t, d.Check(common.Vec3{0, 22, 0}).Blocked)
}

func TestCheck_ObstacleMarginsPerKind(t *testing.T) {
	field := obstacle.NewField()
	field.Add(&obstacle.Obstacle{Kind: obstacle.KindProjectile, Position: common.Vec3{0, 30, 0}, CollisionRadius: 0.2})
	_, d := newTestDetector(t, field)
	d.SetGameActive(true)

	assert.True(t, d.Check(common.Vec3{0, 30.7, 0}).Blocked) // 0.7 < 0.2 + 0.6
	assert.False(t, d.Check(common.Vec3{0, 30.9, 0}).Blocked)
}

func TestCheck_RequiresSyncAfterFieldChanges(t *testing.T) {
	field := obstacle.NewField()
	_, d := newTestDetector(t, field)
	d.SetGameActive(true)

	field.Add(&obstacle.Obstacle{Kind: obstacle.KindAsteroid, Position: common.Vec3{0, 40, 0}, CollisionRadius: 1})
	d.Sync()
	assert.True(t, d.Check(common.Vec3{0, 40, 0}).Hit())
}

func TestCheck_FieldRemovalBeforeSync(t *testing.T) {
	for name, idx := range map[string]ObstacleIndex{
		"linear": NewLinearIndex(),
		"grid":   NewGridIndex(4),
	} {
		t.Run(name, func(t *testing.T) {
			field := obstacle.NewField()
			a := &obstacle.Obstacle{Kind: obstacle.KindAsteroid, Position: common.Vec3{0, 50, 0}, CollisionRadius: 1}
			b := &obstacle.Obstacle{Kind: obstacle.KindAsteroid, Position: common.Vec3{0, 60, 0}, CollisionRadius: 1}
			field.Add(a)
			field.Add(b)
			_, d := newTestDetector(t, field, WithIndex(idx))
			d.SetGameActive(true)

			require.True(t, field.Remove(a.ID))
			var res Result
			require.NotPanics(t, func() { res = d.Check(common.Vec3{0, 60, 0}) })
			assert.Same(t, b, res.Obstacle)

			d.Sync()
			assert.False(t, d.Check(common.Vec3{0, 50, 0}).Blocked)
			assert.Same(t, b, d.Check(common.Vec3{0, 60, 0}).Obstacle)
		})
	}
}

func TestGridIndex_AgreesWithLinear(t *testing.T) {
	field := obstacle.NewField()
	spawner := obstacle.NewSpawner(5, 40, 4)
	for range 10 {
		spawner.SpawnBatch(field, common.Vec3{0, 30, 0}, common.Vec3{0, 0, 1}, 1)
	}
	require.Greater(t, field.Len(), 300)

	_, linear := newTestDetector(t, field)
	_, grid := newTestDetector(t, field, WithIndex(NewGridIndex(4)))
	linear.SetGameActive(true)
	grid.SetGameActive(true)

	for x := float32(-20); x <= 20; x += 0.75 {
		for z := float32(0); z <= 60; z += 0.75 {
			p := common.Vec3{x, 30, z}
			a, b := linear.Check(p), grid.Check(p)
			require.Equal(t, a.Blocked, b.Blocked, "at %v", p)
			if b.Hit() {
				assert.Less(t, p.Distance(b.Obstacle.Position), b.Obstacle.CollisionRadius+1.2+1e-4)
			}
		}
	}
}

func TestSetIndex_RebuildsFromField(t *testing.T) {
	field := obstacle.NewField()
	field.Add(&obstacle.Obstacle{Position: common.Vec3{50, 50, 50}, CollisionRadius: 1})
	_, d := newTestDetector(t, field)

	g := NewGridIndex(0)
	d.SetIndex(g)
	assert.Same(t, g, d.Index())
	assert.Equal(t, 1, g.Len())

	d.SetIndex(nil)
	assert.Same(t, g, d.Index())
}

func TestClass_String(t *testing.T) {
	assert.Equal(t, "sun", ClassSun.String())
	assert.Equal(t, "moon", ClassMoon.String())
	assert.Equal(t, "none", ClassNone.String())
}
