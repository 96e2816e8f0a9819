package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/config"
	"github.com/Carmen-Shannon/oxy-orrery/engine/body"
	"github.com/rs/zerolog"
)

// controllerImpl is the single implementation of Controller.
// It owns the one authoritative camera pose and the active navigation mode.
type controllerImpl struct {
	mu *sync.Mutex

	mode    Mode
	orbit   OrbitPose
	cockpit CockpitPose

	home OrbitPose

	minDistance     float32
	maxDistance     float32
	dragSensitivity float32
	zoomStep        float32

	smoothingRate     float32
	focusFactor       float32
	targetTolerance   float32
	distanceTolerance float32

	log zerolog.Logger
}

// Controller is the camera navigation state machine. It arbitrates between
// OrbitDrag, FocusingOnPlanet, ReturningHome and CockpitFlight; transitions are
// explicit method calls and switching modes abandons any in-flight interpolation.
type Controller interface {
	// Mode returns the active navigation mode.
	//
	// Returns:
	//   - Mode: the active mode
	Mode() Mode

	// Orbit returns the orbit pose. It is authoritative in every mode but CockpitFlight.
	//
	// Returns:
	//   - OrbitPose: the orbit pose
	Orbit() OrbitPose

	// Cockpit returns the cockpit pose. It is authoritative only in CockpitFlight.
	//
	// Returns:
	//   - CockpitPose: the cockpit pose
	Cockpit() CockpitPose

	// Position returns the eye position of the authoritative pose.
	//
	// Returns:
	//   - x, y, z: world-space eye position
	Position() (x, y, z float32)

	// Target returns the look-at point of the authoritative pose.
	//
	// Returns:
	//   - x, y, z: world-space look-at point
	Target() (x, y, z float32)

	// Drag rotates the orbit camera by a horizontal pointer delta. Only applies in OrbitDrag.
	//
	// Parameters:
	//   - dx: horizontal pointer movement in pixels
	Drag(dx float32)

	// Zoom scales the orbit distance by one wheel step and clamps it to the configured bounds.
	// Positive deltaY zooms out. Only applies in OrbitDrag.
	//
	// Parameters:
	//   - deltaY: wheel delta (sign only)
	Zoom(deltaY float32)

	// Focus starts a smooth transition toward b. Ignored in CockpitFlight.
	//
	// Parameters:
	//   - b: the body to focus on
	//
	// Returns:
	//   - bool: true if the transition started
	Focus(b *body.Body) bool

	// Dismiss abandons the current focus and returns home. Ignored in CockpitFlight.
	//
	// Returns:
	//   - bool: true if the camera started returning home
	Dismiss() bool

	// ReturnHome starts the return-home transition from any mode, including CockpitFlight.
	ReturnHome()

	// EnterCockpit switches to CockpitFlight, seeding the cockpit from the orbit eye
	// and facing back toward the orbit target. No-op if already flying.
	EnterCockpit()

	// ExitCockpit leaves CockpitFlight and resets the orbit camera to the home pose.
	// No-op if not flying.
	ExitCockpit()

	// ToggleCockpit enters or exits CockpitFlight.
	//
	// Returns:
	//   - bool: true if the cockpit is now enabled
	ToggleCockpit() bool

	// SetCockpit stores a new cockpit pose. Non-finite poses are rejected.
	//
	// Parameters:
	//   - pose: the new cockpit pose
	SetCockpit(pose CockpitPose)

	// Update advances the active mode's interpolation by dt seconds.
	// FocusingOnPlanet and ReturningHome exit to OrbitDrag once converged.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt float32)

	// Home returns the home orbit pose.
	//
	// Returns:
	//   - OrbitPose: the home pose
	Home() OrbitPose
}

var _ Controller = &controllerImpl{}

// NewController creates a navigation controller in OrbitDrag at the home pose.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerBuilderOption) Controller {
	c := &controllerImpl{
		mu:   &sync.Mutex{},
		mode: OrbitDrag{},
		log:  zerolog.Nop(),
	}
	applyTuning(c, config.DefaultTuning())
	for _, option := range options {
		option(c)
	}
	c.orbit = c.home
	return c
}

// applyTuning copies the navigation thresholds from a tuning profile.
func applyTuning(c *controllerImpl, t config.Tuning) {
	c.home = OrbitPose{Distance: t.HomeDistance, Height: t.HomeHeight}
	c.minDistance = t.MinDistance
	c.maxDistance = t.MaxDistance
	c.dragSensitivity = t.DragSensitivity
	c.zoomStep = t.ZoomStep
	c.smoothingRate = t.SmoothingRate
	c.focusFactor = t.FocusDistanceFactor
	c.targetTolerance = t.TargetTolerance
	c.distanceTolerance = t.DistanceTolerance
}

// setMode switches modes and logs the transition. Caller must hold the mutex.
func (c *controllerImpl) setMode(m Mode) {
	if c.mode.String() != m.String() {
		c.log.Debug().Str("from", c.mode.String()).Str("to", m.String()).Msg("camera mode")
	}
	c.mode = m
}

func (c *controllerImpl) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *controllerImpl) Orbit() OrbitPose {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orbit
}

func (c *controllerImpl) Cockpit() CockpitPose {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cockpit
}

func (c *controllerImpl) Home() OrbitPose {
	return c.home
}

func (c *controllerImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var eye common.Vec3
	if _, ok := c.mode.(CockpitFlight); ok {
		eye = c.cockpit.Position
	} else {
		eye = c.orbit.Eye()
	}
	return eye[0], eye[1], eye[2]
}

func (c *controllerImpl) Target() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var t common.Vec3
	if _, ok := c.mode.(CockpitFlight); ok {
		t = c.cockpit.Position.Add(c.cockpit.Forward())
	} else {
		t = c.orbit.Target
	}
	return t[0], t[1], t[2]
}

func (c *controllerImpl) Drag(dx float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.mode.(OrbitDrag); !ok || !common.IsFinite(dx) {
		return
	}
	c.orbit.Angle += dx * c.dragSensitivity
}

func (c *controllerImpl) Zoom(deltaY float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.mode.(OrbitDrag); !ok || deltaY == 0 || !common.IsFinite(deltaY) {
		return
	}
	factor := c.zoomStep
	if deltaY < 0 {
		factor = 2 - c.zoomStep
	}
	c.orbit.Distance = common.Clamp(c.orbit.Distance*factor, c.minDistance, c.maxDistance)
}

func (c *controllerImpl) Focus(b *body.Body) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if b == nil {
		return false
	}
	if _, ok := c.mode.(CockpitFlight); ok {
		return false
	}
	c.setMode(FocusingOnPlanet{Target: b})
	return true
}

func (c *controllerImpl) Dismiss() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.mode.(CockpitFlight); ok {
		return false
	}
	c.setMode(ReturningHome{})
	return true
}

func (c *controllerImpl) ReturnHome() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setMode(ReturningHome{})
}

func (c *controllerImpl) EnterCockpit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.mode.(CockpitFlight); ok {
		return
	}
	c.cockpit = CockpitPose{
		Position: c.orbit.Eye(),
		Yaw:      c.orbit.Angle + math.Pi,
	}
	c.setMode(CockpitFlight{})
}

func (c *controllerImpl) ExitCockpit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.mode.(CockpitFlight); !ok {
		return
	}
	c.orbit = c.home
	c.setMode(OrbitDrag{})
}

func (c *controllerImpl) ToggleCockpit() bool {
	if _, ok := c.Mode().(CockpitFlight); ok {
		c.ExitCockpit()
		return false
	}
	c.EnterCockpit()
	return true
}

func (c *controllerImpl) SetCockpit(pose CockpitPose) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !pose.Position.IsFinite() || !common.IsFinite(pose.Yaw) || !common.IsFinite(pose.Pitch) {
		return
	}
	c.cockpit = pose
}

func (c *controllerImpl) Update(dt float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch m := c.mode.(type) {
	case FocusingOnPlanet:
		goalDist := c.focusFactor * m.Target.Radius
		c.approach(goalDist, c.orbit.Height, m.Target.Center(), dt)
		if c.converged(goalDist, m.Target.Center()) {
			c.setMode(OrbitDrag{})
		}
	case ReturningHome:
		c.approach(c.home.Distance, c.home.Height, c.home.Target, dt)
		if c.converged(c.home.Distance, c.home.Target) &&
			absf(c.orbit.Height-c.home.Height) < c.targetTolerance {
			c.setMode(OrbitDrag{})
		}
	}
}

// approach moves distance, height and target a dt-scaled fraction of the way toward the goal.
// Non-finite results are discarded. Caller must hold the mutex.
func (c *controllerImpl) approach(distance, height float32, target common.Vec3, dt float32) {
	f := common.Smoothing(c.smoothingRate, dt)
	next := c.orbit
	next.Distance += (distance - next.Distance) * f
	next.Height += (height - next.Height) * f
	next.Target = next.Target.Lerp(target, f)
	if !next.isFinite() {
		c.log.Warn().Msg("discarding non-finite camera pose")
		return
	}
	c.orbit = next
}

// converged reports whether the orbit pose is within tolerance of the goal. Caller must hold the mutex.
func (c *controllerImpl) converged(distance float32, target common.Vec3) bool {
	return c.orbit.Target.ManhattanDistance(target) < c.targetTolerance &&
		absf(c.orbit.Distance-distance) < c.distanceTolerance
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
