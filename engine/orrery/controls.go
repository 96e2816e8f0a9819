package orrery

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/body"
	"github.com/Carmen-Shannon/oxy-orrery/engine/camera"
	"github.com/Carmen-Shannon/oxy-orrery/engine/obstacle"
	"github.com/Carmen-Shannon/oxy-orrery/engine/score"
)

func (s *simulationImpl) ToggleCockpit() bool {
	s.mu.Lock()
	defer s.unlock()
	return s.toggleCockpit()
}

func (s *simulationImpl) toggleCockpit() bool {
	if _, ok := s.controller.Mode().(camera.CockpitFlight); ok {
		if s.game.State() != score.StateInactive {
			s.stopGame()
		}
		s.controller.ExitCockpit()
		return false
	}
	s.enterCockpit()
	return true
}

// enterCockpit clears the selection and hands the camera to the navigator. Caller must hold the mutex.
func (s *simulationImpl) enterCockpit() {
	s.selected = nil
	s.controller.EnterCockpit()
}

func (s *simulationImpl) ToggleGameMode() bool {
	s.mu.Lock()
	defer s.unlock()
	return s.toggleGameMode()
}

func (s *simulationImpl) toggleGameMode() bool {
	if s.game.State() != score.StateInactive {
		s.stopGame()
		return false
	}
	if _, ok := s.controller.Mode().(camera.CockpitFlight); !ok {
		s.enterCockpit()
	}
	s.game.Start()
	s.detector.SetGameActive(true)
	return true
}

// stopGame ends game mode and removes game obstacles. Caller must hold the mutex.
func (s *simulationImpl) stopGame() {
	s.game.Stop()
	s.detector.SetGameActive(false)
	s.detector.Sync()
}

func (s *simulationImpl) ToggleShips() bool {
	s.mu.Lock()
	defer s.unlock()
	return s.toggleShips()
}

func (s *simulationImpl) toggleShips() bool {
	if s.shipsVisible {
		s.field.ClearKind(obstacle.KindShip)
		s.shipsVisible = false
	} else {
		s.spawner.SpawnShips(s.field, s.shipCount)
		s.field.Step(0, s.clock, s.controller.Cockpit().Position)
		s.shipsVisible = true
	}
	s.detector.Sync()
	s.log.Debug().Bool("visible", s.shipsVisible).Msg("ships toggled")
	return s.shipsVisible
}

func (s *simulationImpl) Restart() {
	s.mu.Lock()
	defer s.unlock()
	s.restart()
}

func (s *simulationImpl) restart() {
	if _, ok := s.controller.Mode().(camera.CockpitFlight); !ok {
		s.enterCockpit()
	}
	s.controller.SetCockpit(s.homeSpawn())
	s.game.Restart()
	s.detector.SetGameActive(true)
	s.detector.Sync()
}

func (s *simulationImpl) DismissSelection() {
	s.mu.Lock()
	defer s.unlock()
	s.dismissSelection()
}

func (s *simulationImpl) dismissSelection() {
	if s.selected == nil {
		return
	}
	s.log.Info().Str("body", s.selected.Name).Msg("selection dismissed")
	s.selected = nil
	s.controller.Dismiss()
}

func (s *simulationImpl) SetAnimationSpeed(v float32) {
	s.mu.Lock()
	defer s.unlock()
	if !common.IsFinite(v) {
		return
	}
	s.animationSpeed = common.Clamp(v, 0, MaxAnimationSpeed)
}

func (s *simulationImpl) SetAnimationEnabled(enabled bool) {
	s.mu.Lock()
	defer s.unlock()
	s.animationEnabled = enabled
}

func (s *simulationImpl) Camera() camera.Camera {
	return s.camera
}

func (s *simulationImpl) Mode() camera.Mode {
	return s.controller.Mode()
}

func (s *simulationImpl) Registry() body.Registry {
	return s.registry
}

func (s *simulationImpl) Bodies() []*body.Body {
	return s.registry.Bodies()
}

func (s *simulationImpl) Belt() []*body.BeltAsteroid {
	return s.registry.Belt()
}

func (s *simulationImpl) Obstacles() []obstacle.Obstacle {
	s.mu.Lock()
	defer s.unlock()
	all := s.field.All()
	out := make([]obstacle.Obstacle, len(all))
	for i, o := range all {
		out[i] = *o
	}
	return out
}

func (s *simulationImpl) Selected() *body.Body {
	s.mu.Lock()
	defer s.unlock()
	return s.selected
}

func (s *simulationImpl) ScoreState() score.Snapshot {
	return s.game.Snapshot()
}

func (s *simulationImpl) Clock() float32 {
	s.mu.Lock()
	defer s.unlock()
	return s.clock
}
