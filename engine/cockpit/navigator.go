// Package cockpit integrates held keys into the first-person ship pose.
package cockpit

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/config"
	"github.com/Carmen-Shannon/oxy-orrery/engine/camera"
	"github.com/Carmen-Shannon/oxy-orrery/engine/collision"
	"github.com/Carmen-Shannon/oxy-orrery/engine/input"
	"github.com/rs/zerolog"
)

type navigatorImpl struct {
	mu *sync.Mutex

	controller camera.Controller
	detector   collision.Detector
	bindings   Bindings

	moveRate   float32
	moveCap    float32
	rotRate    float32
	pitchLimit float32

	onBlocked func(collision.Result)

	log zerolog.Logger
}

// Navigator drives the cockpit pose of a camera Controller from held keys.
// Every proposed position goes through the collision Detector; a blocked move
// keeps the previous position but still applies the rotation.
type Navigator interface {
	// Tick integrates one step of cockpit flight. It does nothing unless the
	// controller is in CockpitFlight.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	//   - keys: keys held at the tick boundary
	//
	// Returns:
	//   - camera.CockpitPose: the committed pose
	//   - collision.Result: the collision check for the proposed position
	Tick(dt float32, keys input.KeySet) (camera.CockpitPose, collision.Result)

	// Bindings returns the active key bindings.
	//
	// Returns:
	//   - Bindings: the key bindings
	Bindings() Bindings
}

var _ Navigator = &navigatorImpl{}

// NewNavigator creates a Navigator for the given controller and detector.
//
// Parameters:
//   - controller: the camera controller whose cockpit pose is driven
//   - detector: the collision detector consulted before committing a move
//   - options: functional options to configure the navigator
//
// Returns:
//   - Navigator: the newly created navigator
func NewNavigator(controller camera.Controller, detector collision.Detector, options ...NavigatorBuilderOption) Navigator {
	n := &navigatorImpl{
		mu:         &sync.Mutex{},
		controller: controller,
		detector:   detector,
		bindings:   DefaultBindings(),
		log:        zerolog.Nop(),
	}
	applyTuning(n, config.DefaultTuning())
	for _, option := range options {
		option(n)
	}
	return n
}

func applyTuning(n *navigatorImpl, t config.Tuning) {
	n.moveRate = t.MoveRate
	n.moveCap = t.MoveCap
	n.rotRate = t.RotRate
	n.pitchLimit = t.PitchLimit
}

func (n *navigatorImpl) Bindings() Bindings {
	return n.bindings
}

func (n *navigatorImpl) Tick(dt float32, keys input.KeySet) (camera.CockpitPose, collision.Result) {
	n.mu.Lock()
	defer n.mu.Unlock()

	pose := n.controller.Cockpit()
	if _, ok := n.controller.Mode().(camera.CockpitFlight); !ok {
		return pose, collision.Result{}
	}
	if dt < 0 || !common.IsFinite(dt) {
		dt = 0
	}

	move := min(n.moveRate*dt, n.moveCap)
	rot := n.rotRate * dt
	b := n.bindings

	if keys.Has(b.YawLeft) {
		pose.Yaw += rot
	}
	if keys.Has(b.YawRight) {
		pose.Yaw -= rot
	}
	if keys.Has(b.PitchUp) {
		pose.Pitch += rot
	}
	if keys.Has(b.PitchDown) {
		pose.Pitch -= rot
	}
	pose.Pitch = common.Clamp(pose.Pitch, -n.pitchLimit, n.pitchLimit)

	forward, right, up := pose.Forward(), pose.Right(), pose.Up()
	previous := pose.Position
	proposed := previous
	if keys.Has(b.Forward) {
		proposed = proposed.Add(forward.Scale(move))
	}
	if keys.Has(b.Back) {
		proposed = proposed.Sub(forward.Scale(move))
	}
	if keys.Has(b.StrafeLeft) {
		proposed = proposed.Add(right.Scale(move))
	}
	if keys.Has(b.StrafeRight) {
		proposed = proposed.Sub(right.Scale(move))
	}
	if keys.Has(b.Ascend) {
		proposed = proposed.Add(up.Scale(move))
	}
	if keys.Has(b.Descend) {
		proposed = proposed.Sub(up.Scale(move))
	}

	res := n.detector.Check(proposed)
	if res.Blocked {
		pose.Position = previous
		if res.Hit() {
			n.log.Debug().Str("kind", res.Obstacle.Kind.String()).Uint64("id", res.Obstacle.ID).Msg("cockpit hit obstacle")
		}
		if n.onBlocked != nil {
			n.onBlocked(res)
		}
	} else {
		pose.Position = proposed
	}

	n.controller.SetCockpit(pose)
	return n.controller.Cockpit(), res
}
