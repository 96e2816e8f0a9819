package orrery

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orrery/config"
	"github.com/Carmen-Shannon/oxy-orrery/engine/audio"
	"github.com/Carmen-Shannon/oxy-orrery/engine/body"
	"github.com/Carmen-Shannon/oxy-orrery/engine/metrics"
	"github.com/rs/zerolog"
)

// SimulationBuilderOption is a functional option for configuring a Simulation.
type SimulationBuilderOption func(*simulationImpl)

// WithConfig applies the tuning profile, seed, animation speed, viewport and camera lens from a loaded configuration.
//
// Parameters:
//   - cfg: the loaded configuration
//
// Returns:
//   - SimulationBuilderOption: functional option to apply the configuration
func WithConfig(cfg config.Config) SimulationBuilderOption {
	return func(s *simulationImpl) {
		s.tuning = cfg.Tuning
		s.seed = cfg.Seed
		s.animationSpeed = cfg.AnimationSpeed
		if cfg.Window.Width > 0 && cfg.Window.Height > 0 {
			s.width, s.height = cfg.Window.Width, cfg.Window.Height
		}
		s.fov = cfg.Camera.FovDegrees * math.Pi / 180
		s.near, s.far = cfg.Camera.Near, cfg.Camera.Far
	}
}

// WithLens sets the camera's vertical field of view and clip planes.
// Invalid values leave the camera defaults in place.
//
// Parameters:
//   - fovDegrees: vertical field of view in degrees
//   - near: near clip distance
//   - far: far clip distance
//
// Returns:
//   - SimulationBuilderOption: functional option to set the lens
func WithLens(fovDegrees, near, far float32) SimulationBuilderOption {
	return func(s *simulationImpl) {
		s.fov = fovDegrees * math.Pi / 180
		s.near, s.far = near, far
	}
}

// WithTuning sets the tuning profile.
//
// Parameters:
//   - t: the tuning profile
//
// Returns:
//   - SimulationBuilderOption: functional option to set the tuning
func WithTuning(t config.Tuning) SimulationBuilderOption {
	return func(s *simulationImpl) {
		s.tuning = t
	}
}

// WithBodies replaces the built-in catalog.
//
// Parameters:
//   - bodies: the planets to simulate
//
// Returns:
//   - SimulationBuilderOption: functional option to set the bodies
func WithBodies(bodies []*body.Body) SimulationBuilderOption {
	return func(s *simulationImpl) {
		s.bodies = bodies
	}
}

// WithSeed seeds the belt and obstacle generators.
//
// Parameters:
//   - seed: the generator seed
//
// Returns:
//   - SimulationBuilderOption: functional option to set the seed
func WithSeed(seed uint64) SimulationBuilderOption {
	return func(s *simulationImpl) {
		s.seed = seed
	}
}

// WithViewport sets the initial viewport size used for picking and the camera aspect.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - SimulationBuilderOption: functional option to set the viewport
func WithViewport(width, height int) SimulationBuilderOption {
	return func(s *simulationImpl) {
		if width > 0 && height > 0 {
			s.width, s.height = width, height
		}
	}
}

// WithShipCount sets how many ships ToggleShips spawns.
func WithShipCount(n int) SimulationBuilderOption {
	return func(s *simulationImpl) {
		s.shipCount = max(n, 0)
	}
}

// WithGridThreshold sets the obstacle count above which collision switches to the spatial grid.
func WithGridThreshold(n int) SimulationBuilderOption {
	return func(s *simulationImpl) {
		s.gridThreshold = n
	}
}

// WithAudio sets the cue player.
//
// Parameters:
//   - p: the audio player
//
// Returns:
//   - SimulationBuilderOption: functional option to set the player
func WithAudio(p audio.Player) SimulationBuilderOption {
	return func(s *simulationImpl) {
		if p != nil {
			s.audio = p
		}
	}
}

// WithPlanetSelectedHook registers the callback fired when a body is picked.
//
// Parameters:
//   - fn: receives the picked body's info panel facts
//
// Returns:
//   - SimulationBuilderOption: functional option to set the hook
func WithPlanetSelectedHook(fn func(body.Info)) SimulationBuilderOption {
	return func(s *simulationImpl) {
		s.onPlanetSelected = fn
	}
}

// WithScoreChangedHook registers the callback fired when the whole-number score changes.
//
// Parameters:
//   - fn: receives the new score
//
// Returns:
//   - SimulationBuilderOption: functional option to set the hook
func WithScoreChangedHook(fn func(int)) SimulationBuilderOption {
	return func(s *simulationImpl) {
		s.onScoreChanged = fn
	}
}

// WithGameOverHook registers the callback fired when an obstacle hit ends the run.
//
// Parameters:
//   - fn: receives the final score
//
// Returns:
//   - SimulationBuilderOption: functional option to set the hook
func WithGameOverHook(fn func(int)) SimulationBuilderOption {
	return func(s *simulationImpl) {
		s.onGameOver = fn
	}
}

// WithLogger attaches a logger. Each subsystem gets a child logger with a component field.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - SimulationBuilderOption: functional option to set the logger
func WithLogger(l zerolog.Logger) SimulationBuilderOption {
	return func(s *simulationImpl) {
		s.log = l
	}
}

// WithMetrics sets the collector that receives tick, obstacle, hit and selection metrics.
//
// Parameters:
//   - m: the metrics collector (nil disables metrics)
//
// Returns:
//   - SimulationBuilderOption: option function to apply
func WithMetrics(m *metrics.Collector) SimulationBuilderOption {
	return func(s *simulationImpl) {
		s.metrics = m
	}
}
