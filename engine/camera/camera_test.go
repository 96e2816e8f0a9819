package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// levelController returns a controller whose home eye sits on the +Z axis at (0, 0, 35).
func levelController() Controller {
	tuning := config.DefaultTuning()
	tuning.HomeHeight = 0
	return NewController(WithTuning(tuning))
}

func TestNewCamera_Defaults(t *testing.T) {
	c := NewCamera()

	assert.InDelta(t, math.Pi/4, c.Fov(), 1e-6)
	assert.Equal(t, float32(1), c.Aspect())
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(200), c.Far())
}

func TestNewCamera_Options(t *testing.T) {
	ctrl := NewController()
	c := NewCamera(
		WithFov(1),
		WithAspect(2),
		WithClipPlanes(0.5, 50),
		WithController(ctrl),
	)

	assert.Equal(t, float32(1), c.Fov())
	assert.Equal(t, float32(2), c.Aspect())
	assert.Equal(t, float32(0.5), c.Near())
	assert.Equal(t, float32(50), c.Far())
}

func TestNewCamera_RejectsInvalidLens(t *testing.T) {
	c := NewCamera(
		WithFov(0),
		WithFov(4),
		WithClipPlanes(10, 5),
		WithClipPlanes(0, 50),
	)

	assert.InDelta(t, math.Pi/4, c.Fov(), 1e-6)
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(200), c.Far())
}

func TestProjectToNDC_TargetAtCenter(t *testing.T) {
	c := NewCamera(WithController(levelController()))

	ndc, ok := c.ProjectToNDC(common.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 0, ndc[0], 1e-6)
	assert.InDelta(t, 0, ndc[1], 1e-6)
}

func TestProjectToNDC_RightOfTargetIsPositiveX(t *testing.T) {
	c := NewCamera(WithController(levelController()))

	ndc, ok := c.ProjectToNDC(common.Vec3{1, 0, 0})
	require.True(t, ok)
	assert.Greater(t, ndc[0], float32(0))
	assert.InDelta(t, 0, ndc[1], 1e-6)

	up, ok := c.ProjectToNDC(common.Vec3{0, 1, 0})
	require.True(t, ok)
	assert.Greater(t, up[1], float32(0))
}

func TestProjectToNDC_RejectsPointAtEye(t *testing.T) {
	c := NewCamera(WithController(levelController()))

	_, ok := c.ProjectToNDC(common.Vec3{0, 0, 35})
	assert.False(t, ok)
}

func TestProjectToNDC_AspectScalesX(t *testing.T) {
	ctrl := levelController()
	square := NewCamera(WithController(ctrl))
	wide := NewCamera(WithController(ctrl), WithAspect(2))

	a, ok := square.ProjectToNDC(common.Vec3{1, 0, 0})
	require.True(t, ok)
	b, ok := wide.ProjectToNDC(common.Vec3{1, 0, 0})
	require.True(t, ok)
	assert.InDelta(t, a[0]/2, b[0], 1e-6)
}

func TestSetAspect_IgnoresInvalid(t *testing.T) {
	c := NewCamera()
	c.SetAspect(0)
	c.SetAspect(-1)
	c.SetAspect(float32(math.NaN()))
	assert.Equal(t, float32(1), c.Aspect())

	c.SetAspect(1.5)
	assert.Equal(t, float32(1.5), c.Aspect())
}

func TestUpdate_TracksController(t *testing.T) {
	ctrl := NewController()
	c := NewCamera(WithController(ctrl))
	before := c.ViewMatrix()

	ctrl.Drag(100)
	assert.Equal(t, before, c.ViewMatrix())

	c.Update()
	assert.NotEqual(t, before, c.ViewMatrix())
}

func TestUpdate_NoController(t *testing.T) {
	c := NewCamera()
	c.Update()

	var identity [16]float32
	common.Identity(identity[:])
	assert.Equal(t, identity, c.ViewProjectionMatrix())
}
