package camera

import (
	"github.com/Carmen-Shannon/oxy-orrery/config"
	"github.com/rs/zerolog"
)

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controllerImpl)

// WithTuning applies the navigation thresholds of a tuning profile.
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

// WithDistanceBounds sets the minimum and maximum orbit distance.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - ControllerBuilderOption: functional option to set distance bounds
func WithDistanceBounds(min, max float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.minDistance = min
		c.maxDistance = max
	}
}

// WithSmoothingRate sets the exponential approach rate used by focus and return-home.
//
// Parameters:
//   - rate: decay rate in 1/seconds
//
// Returns:
//   - ControllerBuilderOption: functional option to set the smoothing rate
func WithSmoothingRate(rate float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.smoothingRate = rate
	}
}

// WithControllerLogger attaches a logger to the controller.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - ControllerBuilderOption: functional option to set the logger
func WithControllerLogger(l zerolog.Logger) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.log = l
	}
}
