package orrery

import (
	"math"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/config"
	"github.com/Carmen-Shannon/oxy-orrery/engine/body"
	"github.com/Carmen-Shannon/oxy-orrery/engine/camera"
	"github.com/Carmen-Shannon/oxy-orrery/engine/collision"
	"github.com/Carmen-Shannon/oxy-orrery/engine/metrics"
	"github.com/Carmen-Shannon/oxy-orrery/engine/obstacle"
	"github.com/Carmen-Shannon/oxy-orrery/engine/score"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = float32(1.0 / 60.0)

func newTestSimulation(t *testing.T, options ...SimulationBuilderOption) *simulationImpl {
	t.Helper()
	s, ok := NewSimulation(options...).(*simulationImpl)
	require.True(t, ok)
	return s
}

// click presses and releases the pointer over b's projected center.
func click(t *testing.T, s *simulationImpl, b *body.Body) {
	t.Helper()
	ndc, ok := s.Camera().ProjectToNDC(b.Center())
	require.True(t, ok)
	x := (ndc[0] + 1) / 2 * float32(s.width)
	y := (1 - ndc[1]) / 2 * float32(s.height)
	s.Input().PointerDown(x, y)
	s.Input().PointerUp(x, y)
}

func TestTick_AdvancesClock(t *testing.T) {
	s := newTestSimulation(t)
	s.Tick(1)
	assert.InDelta(t, 0.6, s.Clock(), 1e-6)

	earth := s.Registry().Find("Earth")
	require.NotNil(t, earth)
	want := body.OrbitPosition(common.Vec3{}, earth.OrbitDistance, earth.OrbitSpeed, earth.OrbitInclination, s.Clock())
	assert.Equal(t, want, earth.Center())
}

func TestTick_NegativeDtIsIgnored(t *testing.T) {
	s := newTestSimulation(t)
	s.Tick(-1)
	s.Tick(float32(math.NaN()))
	assert.Zero(t, s.Clock())
}

func TestSetAnimationSpeed_Clamped(t *testing.T) {
	s := newTestSimulation(t)

	s.SetAnimationSpeed(10)
	s.Tick(1)
	assert.InDelta(t, 3.0, s.Clock(), 1e-5)

	s.SetAnimationSpeed(-1)
	s.Tick(1)
	assert.InDelta(t, 3.0, s.Clock(), 1e-5)
}

func TestSetAnimationEnabled_PausesClock(t *testing.T) {
	s := newTestSimulation(t)
	s.SetAnimationEnabled(false)
	s.Tick(1)
	assert.Zero(t, s.Clock())

	s.Input().KeyDown(common.KeyP)
	s.Tick(1)
	assert.InDelta(t, 0.6, s.Clock(), 1e-6)
}

func TestClick_SelectsBodyAndPausesClock(t *testing.T) {
	var selected []body.Info
	var s *simulationImpl
	s = newTestSimulation(t, WithPlanetSelectedHook(func(info body.Info) {
		// Hooks run outside the lock and may call back in.
		require.NotNil(t, s.Selected())
		selected = append(selected, info)
	}))
	earth := s.Registry().Find("Earth")

	click(t, s, earth)
	s.Tick(frame)

	assert.Same(t, earth, s.Selected())
	require.Len(t, selected, 1)
	assert.Equal(t, "Earth", selected[0].Name)
	assert.Equal(t, "focusing:Earth", s.Mode().String())

	clock := s.Clock()
	for range 600 {
		s.Tick(frame)
	}
	assert.Equal(t, clock, s.Clock())
	assert.Equal(t, camera.OrbitDrag{}, s.Mode())
	assert.InDelta(t, 4, s.controller.Orbit().Distance, 0.5)
}

func TestClick_EmptySpaceSelectsNothing(t *testing.T) {
	s := newTestSimulation(t)
	s.Input().PointerDown(5, 5)
	s.Input().PointerUp(5, 5)
	s.Tick(frame)
	assert.Nil(t, s.Selected())
	assert.Equal(t, camera.OrbitDrag{}, s.Mode())
}

func TestDismissSelection_ReturnsHomeAndResumesClock(t *testing.T) {
	s := newTestSimulation(t)
	click(t, s, s.Registry().Find("Mars"))
	s.Tick(frame)
	require.NotNil(t, s.Selected())

	s.DismissSelection()
	assert.Nil(t, s.Selected())
	assert.Equal(t, camera.ReturningHome{}, s.Mode())

	before := s.Clock()
	s.Tick(frame)
	assert.Greater(t, s.Clock(), before)
}

func TestEscape_DismissesSelection(t *testing.T) {
	s := newTestSimulation(t)
	click(t, s, s.Registry().Find("Earth"))
	s.Tick(frame)

	s.Input().KeyDown(common.KeyEsc)
	s.Tick(frame)
	assert.Nil(t, s.Selected())
}

func TestDrag_RotatesWithoutSelecting(t *testing.T) {
	s := newTestSimulation(t)
	s.Input().PointerDown(100, 100)
	s.Input().PointerMove(200, 100)
	s.Input().PointerUp(200, 100)
	s.Tick(frame)

	assert.InDelta(t, 1.0, s.controller.Orbit().Angle, 1e-6)
	assert.Nil(t, s.Selected())
}

func TestWheel_Zooms(t *testing.T) {
	s := newTestSimulation(t)
	s.Input().Wheel(1)
	s.Tick(frame)
	assert.InDelta(t, 35*1.05, s.controller.Orbit().Distance, 1e-4)
}

func TestResize_UpdatesAspect(t *testing.T) {
	s := newTestSimulation(t)
	s.Input().Resize(1000, 500)
	s.Tick(frame)
	assert.Equal(t, float32(2), s.Camera().Aspect())
	assert.Equal(t, 1000, s.width)
}

func TestToggleCockpit_FliesWithHeldKeys(t *testing.T) {
	s := newTestSimulation(t)
	require.True(t, s.ToggleCockpit())
	assert.Equal(t, camera.CockpitFlight{}, s.Mode())

	s.Input().KeyDown(common.KeyW)
	s.Tick(1)

	pose := s.controller.Cockpit()
	assert.InDelta(t, 34.5, pose.Position[2], 1e-4)
	assert.InDelta(t, 5, pose.Position[1], 1e-4)

	assert.False(t, s.ToggleCockpit())
	assert.Equal(t, s.controller.Home(), s.controller.Orbit())
}

func TestCockpitKey_Toggles(t *testing.T) {
	s := newTestSimulation(t)
	s.Input().KeyDown(common.KeyC)
	s.Tick(frame)
	assert.Equal(t, camera.CockpitFlight{}, s.Mode())
}

func TestToggleGameMode_EntersCockpitAndScores(t *testing.T) {
	var scores []int
	s := newTestSimulation(t, WithScoreChangedHook(func(v int) { scores = append(scores, v) }))

	require.True(t, s.ToggleGameMode())
	assert.Equal(t, camera.CockpitFlight{}, s.Mode())
	assert.Equal(t, score.StateActive, s.ScoreState().State)
	assert.True(t, s.detector.GameActive())

	s.Tick(1)
	s.Tick(1)
	assert.InDelta(t, 1.0, s.ScoreState().Score, 1e-5)
	assert.Equal(t, []int{0, 1}, scores)

	assert.False(t, s.ToggleGameMode())
	assert.Equal(t, score.StateInactive, s.ScoreState().State)
	assert.False(t, s.detector.GameActive())
}

func TestGameMode_NoScoreWhileBlockedBySun(t *testing.T) {
	s := newTestSimulation(t)
	require.True(t, s.ToggleGameMode())
	s.controller.SetCockpit(camera.CockpitPose{})

	for range 60 {
		s.Tick(frame)
	}
	snap := s.ScoreState()
	assert.Equal(t, score.StateActive, snap.State)
	assert.Zero(t, snap.Score)
	assert.InDelta(t, 1.0, snap.Elapsed, 1e-3)
	assert.Equal(t, common.Vec3{}, s.controller.Cockpit().Position)
}

func TestGameMode_SpawnsObstacles(t *testing.T) {
	s := newTestSimulation(t)
	s.ToggleGameMode()
	for range 181 {
		s.Tick(frame)
	}
	assert.NotEmpty(t, s.Obstacles())
}

func TestObstacleHit_EndsRunAndReturnsHome(t *testing.T) {
	var finals []int
	s := newTestSimulation(t, WithGameOverHook(func(v int) { finals = append(finals, v) }))
	s.ToggleGameMode()
	s.Tick(1)
	s.Tick(1)

	pos := s.controller.Cockpit().Position
	s.field.Add(&obstacle.Obstacle{
		Kind:            obstacle.KindAsteroid,
		Motion:          obstacle.MotionSeek,
		Position:        pos.Add(common.Vec3{0, 0, -1}),
		CollisionRadius: 0.5,
	})
	s.Tick(frame)

	require.Equal(t, []int{1}, finals)
	snap := s.ScoreState()
	assert.True(t, snap.IsGameOver())
	assert.Zero(t, snap.Score)
	assert.Equal(t, camera.ReturningHome{}, s.Mode())
	assert.False(t, s.detector.GameActive())
	assert.Zero(t, s.field.CountKind(obstacle.KindAsteroid))

	home := s.controller.Home().Eye()
	assert.Equal(t, home, s.controller.Cockpit().Position)
}

func TestRestart_AfterGameOver(t *testing.T) {
	s := newTestSimulation(t)
	s.ToggleGameMode()
	for range 4 {
		s.Tick(1)
	}
	s.game.Hit()

	s.Input().KeyDown(common.KeyR)
	s.Tick(0)

	snap := s.ScoreState()
	assert.Equal(t, score.StateActive, snap.State)
	assert.Zero(t, snap.Elapsed)
	assert.Zero(t, snap.SpawnTimer)
	assert.Zero(t, s.field.CountKind(obstacle.KindAsteroid))
	assert.Equal(t, camera.CockpitFlight{}, s.Mode())
	assert.Equal(t, s.controller.Home().Eye(), s.controller.Cockpit().Position)
}

func TestToggleCockpitOff_StopsGame(t *testing.T) {
	s := newTestSimulation(t)
	s.ToggleGameMode()
	assert.False(t, s.ToggleCockpit())
	assert.Equal(t, score.StateInactive, s.ScoreState().State)
}

func TestToggleShips(t *testing.T) {
	s := newTestSimulation(t, WithShipCount(3))
	assert.True(t, s.ToggleShips())
	require.Len(t, s.Obstacles(), 3)
	for _, o := range s.Obstacles() {
		assert.Equal(t, obstacle.KindShip, o.Kind)
	}

	assert.False(t, s.ToggleShips())
	assert.Empty(t, s.Obstacles())
}

func TestShips_SurviveGameRestart(t *testing.T) {
	s := newTestSimulation(t, WithShipCount(2))
	s.ToggleShips()
	s.ToggleGameMode()
	s.Restart()
	assert.Equal(t, 2, s.field.CountKind(obstacle.KindShip))
}

func TestCollisionIndex_SwitchesWithObstacleCount(t *testing.T) {
	s := newTestSimulation(t, WithGridThreshold(4), WithShipCount(6))
	s.ToggleShips()
	s.Tick(frame)
	assert.IsType(t, &collision.GridIndex{}, s.detector.Index())

	s.ToggleShips()
	s.Tick(frame)
	assert.IsType(t, &collision.LinearIndex{}, s.detector.Index())
}

func TestWithConfig_ArcadeProfile(t *testing.T) {
	cfg := config.Config{Seed: 3, AnimationSpeed: 2}
	var err error
	cfg.Tuning, err = config.TuningFor(config.ProfileArcade)
	require.NoError(t, err)

	s := newTestSimulation(t, WithConfig(cfg))
	assert.Equal(t, float32(60), s.controller.Orbit().Distance)
	assert.Equal(t, float32(3), s.Registry().SunRadius())

	s.Tick(1)
	assert.InDelta(t, 1.2, s.Clock(), 1e-6)
}

func TestView_Snapshot(t *testing.T) {
	s := newTestSimulation(t)
	earth := s.Registry().Find("Earth")
	click(t, s, earth)
	s.Tick(frame)

	v := s.View()
	assert.Equal(t, "focusing:Earth", v.Mode)
	assert.Len(t, v.Bodies, len(s.Bodies()))
	assert.Len(t, v.Belt, len(s.Belt()))

	var found bool
	for _, b := range v.Bodies {
		if b.Name == "Earth" {
			found = true
			assert.True(t, b.Selected)
			assert.InDelta(t, earth.Radius*1.3, b.DisplayRadius, 1e-6)
			assert.Len(t, b.Moons, 1)
		}
	}
	assert.True(t, found)
}

func TestMetrics_RecordTicksObstaclesAndSelections(t *testing.T) {
	m := metrics.NewCollector()
	s := newTestSimulation(t, WithMetrics(m), WithShipCount(3))
	s.ToggleShips()
	s.Tick(frame)
	s.Tick(frame)
	click(t, s, s.Registry().Find("Earth"))
	s.Tick(frame)

	expected := `
# HELP orrery_obstacles Live obstacles by kind
# TYPE orrery_obstacles gauge
orrery_obstacles{kind="asteroid"} 0
orrery_obstacles{kind="projectile"} 0
orrery_obstacles{kind="ship"} 3
# HELP orrery_selections_total Bodies selected by picking
# TYPE orrery_selections_total counter
orrery_selections_total{body="Earth"} 1
# HELP orrery_ticks_total Total number of simulation ticks
# TYPE orrery_ticks_total counter
orrery_ticks_total 3
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"orrery_obstacles", "orrery_selections_total", "orrery_ticks_total"))
}

func TestLens_FromOptionsReachesView(t *testing.T) {
	v := newTestSimulation(t).View()
	assert.InDelta(t, math.Pi/4, v.Fov, 1e-6)
	assert.Equal(t, float32(0.1), v.Near)
	assert.Equal(t, float32(200), v.Far)

	s := newTestSimulation(t, WithLens(60, 0.5, 500), WithViewport(800, 400))
	v = s.View()
	assert.InDelta(t, math.Pi/3, v.Fov, 1e-6)
	assert.Equal(t, float32(0.5), v.Near)
	assert.Equal(t, float32(500), v.Far)
	assert.Equal(t, float32(2), v.Aspect)
}
