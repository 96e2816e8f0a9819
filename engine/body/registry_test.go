package body

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got common.Vec3, delta float64) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], delta, "axis %d: want %v got %v", i, want, got)
	}
}

func TestUpdate_EarthAtZero(t *testing.T) {
	r := NewRegistry()
	r.Update(0)

	earth := r.Find("Earth")
	require.NotNil(t, earth)
	assertVec(t, common.Vec3{7, 0, 0}, earth.Center(), 1e-5)
}

func TestUpdate_EarthQuarterOrbit(t *testing.T) {
	r := NewRegistry()
	r.Update(math.Pi / 2)

	earth := r.Find("Earth")
	require.NotNil(t, earth)
	assertVec(t, common.Vec3{0, 0, 7}, earth.Center(), 1e-5)
}

func TestUpdate_IsIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Update(12.345)
	first := snapshot(r)

	r.Update(99)
	r.Update(12.345)
	second := snapshot(r)

	assert.Equal(t, first, second)
}

func TestUpdate_SameClockSameCentersAcrossRegistries(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()
	a.Update(3.3)
	b.Update(3.3)
	assert.Equal(t, snapshot(a), snapshot(b))
}

func TestUpdate_MoonsFollowParent(t *testing.T) {
	r := NewRegistry()
	for _, clock := range []float32{0, 1, 7.5, 42} {
		r.Update(clock)
		for _, p := range r.Bodies() {
			for _, m := range p.Moons {
				dist := m.Center().Distance(p.Center())
				assert.InDelta(t, m.OrbitDistance, dist, 1e-4, "%s around %s at t=%v", m.Name, p.Name, clock)
			}
		}
	}
}

func TestOrbitPosition_Inclination(t *testing.T) {
	incl := float32(math.Pi / 6)
	p := OrbitPosition(common.Vec3{}, 10, 1, incl, math.Pi/2)

	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 10*math.Sin(math.Pi/6), p[1], 1e-5)
	assert.InDelta(t, 10*math.Cos(math.Pi/6), p[2], 1e-5)
	assert.InDelta(t, 10, p.Length(), 1e-4)
}

func TestRegistry_Options(t *testing.T) {
	custom := []*Body{{Name: "Solo", Radius: 2, OrbitDistance: 3, OrbitSpeed: 1}}
	r := NewRegistry(WithBodies(custom), WithSunRadius(3), WithBelt(0, 0, 0))

	assert.Equal(t, float32(3), r.SunRadius())
	assert.Len(t, r.Bodies(), 1)
	assert.Empty(t, r.Belt())
	assert.Equal(t, "Solo", r.Find("Solo").Info.Name)
	assert.Nil(t, r.Find("Earth"))
}

func TestBelt_DeterministicAndWithinBounds(t *testing.T) {
	a := NewRegistry(WithSeed(7))
	b := NewRegistry(WithSeed(7))
	require.Len(t, a.Belt(), 500)

	a.Update(5)
	b.Update(5)
	for i, ast := range a.Belt() {
		assert.Equal(t, ast.Position(), b.Belt()[i].Position())
		r := ast.Position().Length()
		assert.GreaterOrEqual(t, r, float32(12)-1e-3)
		assert.LessOrEqual(t, r, float32(16)+1e-3)
	}
}

func TestDisplayScale(t *testing.T) {
	r := NewRegistry()
	earth := r.Find("Earth")
	mars := r.Find("Mars")

	assert.Equal(t, earth.Radius, r.DisplayScale(earth, nil))
	assert.Equal(t, earth.Radius, r.DisplayScale(earth, mars))
	assert.InDelta(t, earth.Radius*1.3, r.DisplayScale(earth, earth), 1e-6)
}

func snapshot(r Registry) []common.Vec3 {
	var out []common.Vec3
	for _, b := range r.Bodies() {
		out = append(out, b.Center())
		for _, m := range b.Moons {
			out = append(out, m.Center())
		}
	}
	return out
}
