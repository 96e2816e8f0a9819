// Package orrery is the top-level simulation context. It owns every subsystem and runs
// them in order once per tick: bodies, obstacles, cockpit and collision, game mode, camera.
package orrery

import (
	"math"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/config"
	"github.com/Carmen-Shannon/oxy-orrery/engine/audio"
	"github.com/Carmen-Shannon/oxy-orrery/engine/body"
	"github.com/Carmen-Shannon/oxy-orrery/engine/camera"
	"github.com/Carmen-Shannon/oxy-orrery/engine/cockpit"
	"github.com/Carmen-Shannon/oxy-orrery/engine/collision"
	"github.com/Carmen-Shannon/oxy-orrery/engine/input"
	"github.com/Carmen-Shannon/oxy-orrery/engine/logger"
	"github.com/Carmen-Shannon/oxy-orrery/engine/metrics"
	"github.com/Carmen-Shannon/oxy-orrery/engine/obstacle"
	"github.com/Carmen-Shannon/oxy-orrery/engine/picking"
	"github.com/Carmen-Shannon/oxy-orrery/engine/score"
	"github.com/rs/zerolog"
)

const (
	// MaxAnimationSpeed is the upper bound accepted by SetAnimationSpeed.
	MaxAnimationSpeed = 5

	defaultShipCount     = 6
	defaultGridThreshold = 256
	defaultGridCellSize  = 8
)

type simulationImpl struct {
	mu *sync.Mutex

	tuning config.Tuning
	seed   uint64
	bodies []*body.Body

	registry   body.Registry
	field      *obstacle.Field
	spawner    *obstacle.Spawner
	detector   collision.Detector
	controller camera.Controller
	camera     camera.Camera
	navigator  cockpit.Navigator
	game       score.Controller
	input      *input.Buffer
	drag       *picking.DragTracker
	audio      audio.Player
	metrics    *metrics.Collector

	clock            float32
	animationSpeed   float32
	animationEnabled bool
	selected         *body.Body
	shipsVisible     bool
	shipCount        int
	gridThreshold    int
	width, height    int
	fov, near, far   float32

	onPlanetSelected func(body.Info)
	onScoreChanged   func(int)
	onGameOver       func(int)

	// pending holds hook calls deferred until the mutex is released.
	pending []func()

	log zerolog.Logger
}

// Simulation is the explicit context object that owns the camera, bodies, obstacles,
// selection and score. Window events go into Input(); Tick consumes them at the next
// tick boundary. UI hooks fire after the simulation lock is released, so hooks may call
// back into the Simulation.
type Simulation interface {
	// Tick runs one frame of the simulation.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Tick(dt float32)

	// Input returns the event sink for window callbacks.
	//
	// Returns:
	//   - *input.Buffer: the input buffer
	Input() *input.Buffer

	// ToggleCockpit enters or leaves cockpit flight. Leaving the cockpit also ends game mode.
	//
	// Returns:
	//   - bool: true if the cockpit is now enabled
	ToggleCockpit() bool

	// ToggleGameMode starts or stops game mode. Starting enters the cockpit.
	//
	// Returns:
	//   - bool: true if game mode is now enabled
	ToggleGameMode() bool

	// ToggleShips shows or hides the decorative ships orbiting the sun.
	//
	// Returns:
	//   - bool: true if ships are now visible
	ToggleShips() bool

	// Restart starts a fresh game run from the home spawn.
	Restart()

	// DismissSelection clears the selected body and flies the camera home.
	DismissSelection()

	// SetAnimationSpeed sets the orbit animation speed, clamped to [0, MaxAnimationSpeed].
	//
	// Parameters:
	//   - v: the speed multiplier
	SetAnimationSpeed(v float32)

	// SetAnimationEnabled pauses or resumes the orbit animation.
	//
	// Parameters:
	//   - enabled: false pauses the clock
	SetAnimationEnabled(enabled bool)

	// Camera returns the camera, for its view and projection matrices.
	Camera() camera.Camera

	// Mode returns the active navigation mode.
	Mode() camera.Mode

	// Registry returns the body registry.
	Registry() body.Registry

	// Bodies returns the planets. The pointers are owned by the simulation and mutated by
	// Tick; use View for access from another goroutine.
	Bodies() []*body.Body

	// Belt returns the decorative asteroid belt. Same ownership rules as Bodies.
	Belt() []*body.BeltAsteroid

	// Obstacles returns a copy of the live obstacles.
	Obstacles() []obstacle.Obstacle

	// Selected returns the selected body, or nil.
	Selected() *body.Body

	// ScoreState returns the game-mode state.
	ScoreState() score.Snapshot

	// Clock returns the animation clock.
	Clock() float32

	// View returns a self-contained copy of everything a renderer needs for one frame.
	View() View
}

var _ Simulation = &simulationImpl{}

// NewSimulation creates a Simulation with the classic tuning profile and the built-in catalog.
//
// Parameters:
//   - options: functional options to configure the simulation
//
// Returns:
//   - Simulation: the newly created simulation
func NewSimulation(options ...SimulationBuilderOption) Simulation {
	s := &simulationImpl{
		mu:               &sync.Mutex{},
		tuning:           config.DefaultTuning(),
		seed:             1,
		animationSpeed:   1,
		animationEnabled: true,
		shipCount:        defaultShipCount,
		gridThreshold:    defaultGridThreshold,
		width:            1280,
		height:           720,
		audio:            audio.NopPlayer{},
		log:              zerolog.Nop(),
	}
	for _, option := range options {
		option(s)
	}

	t := s.tuning
	s.registry = body.NewRegistry(
		body.WithBodies(s.bodies),
		body.WithSunRadius(t.SunRadius),
		body.WithSeed(s.seed),
		body.WithLogger(logger.Component(s.log, "bodies")),
	)
	s.field = obstacle.NewField()
	s.spawner = obstacle.NewSpawner(s.seed, t.SpawnBatch, t.ObstacleSpeed)
	s.detector = collision.NewDetector(s.registry, s.field,
		collision.WithMargins(collision.MarginsFrom(t)),
		collision.WithLogger(logger.Component(s.log, "collision")),
	)
	s.controller = camera.NewController(
		camera.WithTuning(t),
		camera.WithControllerLogger(logger.Component(s.log, "camera")),
	)
	s.camera = camera.NewCamera(
		camera.WithController(s.controller),
		camera.WithAspect(float32(s.width)/float32(max(s.height, 1))),
		camera.WithFov(s.fov),
		camera.WithClipPlanes(s.near, s.far),
	)
	s.navigator = cockpit.NewNavigator(s.controller, s.detector,
		cockpit.WithTuning(t),
		cockpit.WithLogger(logger.Component(s.log, "cockpit")),
	)
	s.game = score.NewController(s.field, s.spawner,
		score.WithTuning(t),
		score.WithScoreChangedHook(func(v int) {
			s.metrics.SetScore(v)
			if s.onScoreChanged != nil {
				s.queue(func() { s.onScoreChanged(v) })
			}
		}),
		score.WithGameOverHook(func(v int) {
			if s.onGameOver != nil {
				s.queue(func() { s.onGameOver(v) })
			}
		}),
		score.WithSpawnHook(func(int) { s.audio.Play(audio.CueSpawn) }),
		score.WithLogger(logger.Component(s.log, "score")),
	)
	s.input = input.NewBuffer()
	s.drag = picking.NewDragTracker(picking.DefaultDragThreshold)

	s.log.Info().
		Int("bodies", len(s.registry.Bodies())).
		Float32("homeDistance", t.HomeDistance).
		Float32("sunRadius", t.SunRadius).
		Msg("simulation ready")
	return s
}

// queue defers fn to run after the current public call releases the mutex. Caller must hold the mutex.
func (s *simulationImpl) queue(fn func()) {
	s.pending = append(s.pending, fn)
}

// unlock releases the mutex and then runs the queued hooks.
func (s *simulationImpl) unlock() {
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}

func (s *simulationImpl) Tick(dt float32) {
	if dt < 0 || !common.IsFinite(dt) {
		dt = 0
	}
	start := time.Now()
	frame := s.input.Snapshot()

	s.mu.Lock()
	defer s.unlock()

	for _, ev := range frame.Events {
		s.handleEvent(ev)
	}

	if s.selected == nil && s.animationEnabled {
		s.clock += dt * s.tuning.ClockRate * s.animationSpeed
	}
	s.registry.Update(s.clock)

	pose := s.controller.Cockpit()
	s.field.Step(dt, s.clock, pose.Position)
	if n := s.field.Recycle(pose.Position, s.tuning.DespawnRadius); n > 0 {
		s.log.Debug().Int("count", n).Msg("recycled obstacles")
	}
	s.selectIndex()
	s.detector.Sync()

	if _, ok := s.controller.Mode().(camera.CockpitFlight); ok {
		var res collision.Result
		pose, res = s.navigator.Tick(dt, frame.Held)
		if res.Hit() && s.game.State() == score.StateActive {
			s.handleHit(res.Obstacle)
		} else {
			s.game.Tick(dt, pose.Position, pose.Forward(), res.Blocked)
		}
	}

	s.controller.Update(dt)
	s.camera.Update()

	s.recordMetrics(time.Since(start))
}

// recordMetrics publishes the tick duration and live counts. Caller must hold the mutex.
func (s *simulationImpl) recordMetrics(d time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordTick(d)
	for _, k := range []obstacle.Kind{obstacle.KindAsteroid, obstacle.KindShip, obstacle.KindProjectile} {
		s.metrics.SetObstacles(k.String(), s.field.CountKind(k))
	}
	s.metrics.SetInputsDropped(s.input.Dropped())
}

// handleEvent applies one buffered window event. Caller must hold the mutex.
func (s *simulationImpl) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventKeyDown:
		s.handleKey(ev.Code)
	case input.EventPointerDown:
		s.drag.Down(ev.X, ev.Y)
	case input.EventPointerMove:
		if dx := s.drag.Move(ev.X, ev.Y); dx != 0 {
			s.controller.Drag(dx)
		}
	case input.EventPointerUp:
		if !s.drag.Up(ev.X, ev.Y) {
			return
		}
		ndc, ok := picking.ScreenToNDC(ev.X, ev.Y, float32(s.width), float32(s.height))
		if !ok {
			return
		}
		// Picking uses the pose the user clicked on, before this tick's camera update.
		if b := picking.PickAt(ndc, s.camera, s.registry.Bodies()); b != nil {
			s.selectBody(b)
		}
	case input.EventWheel:
		s.controller.Zoom(ev.DeltaY)
	case input.EventResize:
		if ev.Width <= 0 || ev.Height <= 0 {
			return
		}
		s.width, s.height = ev.Width, ev.Height
		s.camera.SetAspect(float32(ev.Width) / float32(ev.Height))
	}
}

// handleKey maps toggle keys to simulation controls. Movement keys are read from the held set.
// Caller must hold the mutex.
func (s *simulationImpl) handleKey(code uint32) {
	switch code {
	case common.KeyC:
		s.toggleCockpit()
	case common.KeyG:
		s.toggleGameMode()
	case common.KeyH:
		s.toggleShips()
	case common.KeyR:
		if s.game.State() != score.StateInactive {
			s.restart()
		}
	case common.KeyP:
		s.animationEnabled = !s.animationEnabled
	case common.KeyEsc:
		s.dismissSelection()
	}
}

// selectBody focuses the camera on b and records the selection. Caller must hold the mutex.
func (s *simulationImpl) selectBody(b *body.Body) {
	if !s.controller.Focus(b) {
		return
	}
	s.selected = b
	s.log.Info().Str("body", b.Name).Msg("body selected")
	s.metrics.RecordSelection(b.Name)
	s.audio.Play(audio.CueSelect)
	if s.onPlanetSelected != nil {
		info := b.Info
		s.queue(func() { s.onPlanetSelected(info) })
	}
}

// handleHit ends the run, teleports the cockpit to the home spawn and flies the camera home.
// Caller must hold the mutex.
func (s *simulationImpl) handleHit(o *obstacle.Obstacle) {
	s.field.Remove(o.ID)
	if _, ok := s.game.Hit(); !ok {
		return
	}
	s.metrics.RecordHit(true)
	s.detector.SetGameActive(false)
	s.audio.Play(audio.CueHit)
	s.audio.Play(audio.CueGameOver)
	s.controller.SetCockpit(s.homeSpawn())
	s.controller.ReturnHome()
}

// homeSpawn is the cockpit pose at the orbit camera's home eye, facing the sun.
func (s *simulationImpl) homeSpawn() camera.CockpitPose {
	home := s.controller.Home()
	return camera.CockpitPose{Position: home.Eye(), Yaw: home.Angle + math.Pi}
}

// selectIndex swaps the collision broad phase when the obstacle count crosses the threshold.
// Caller must hold the mutex.
func (s *simulationImpl) selectIndex() {
	n := s.field.Len()
	switch s.detector.Index().(type) {
	case *collision.LinearIndex:
		if n > s.gridThreshold {
			s.detector.SetIndex(collision.NewGridIndex(defaultGridCellSize))
		}
	case *collision.GridIndex:
		if n < s.gridThreshold/2 {
			s.detector.SetIndex(collision.NewLinearIndex())
		}
	}
}

func (s *simulationImpl) Input() *input.Buffer {
	return s.input
}
