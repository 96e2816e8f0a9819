package score

import (
	"github.com/Carmen-Shannon/oxy-orrery/config"
	"github.com/rs/zerolog"
)

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controllerImpl)

// WithTuning applies the game-mode cadence of a tuning profile.
//
// Parameters:
//   - t: the tuning profile
//
// Returns:
//   - ControllerBuilderOption: functional option to apply the profile
func WithTuning(t config.Tuning) ControllerBuilderOption {
	return func(c *controllerImpl) {
		applyTuning(c, t)
	}
}

// WithScoreChangedHook registers a callback fired whenever the whole-number score changes.
//
// Parameters:
//   - fn: receives the new score
//
// Returns:
//   - ControllerBuilderOption: functional option to set the hook
func WithScoreChangedHook(fn func(int)) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.onScoreChanged = fn
	}
}

// WithGameOverHook registers a callback fired once per hit with the final score.
//
// Parameters:
//   - fn: receives the final score
//
// Returns:
//   - ControllerBuilderOption: functional option to set the hook
func WithGameOverHook(fn func(int)) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.onGameOver = fn
	}
}

// WithSpawnHook registers a callback fired after each spawned batch.
//
// Parameters:
//   - fn: receives the number of obstacles spawned
//
// Returns:
//   - ControllerBuilderOption: functional option to set the hook
func WithSpawnHook(fn func(int)) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.onSpawn = fn
	}
}

// WithLogger attaches a logger to the controller.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - ControllerBuilderOption: functional option to set the logger
func WithLogger(l zerolog.Logger) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.log = l
	}
}
