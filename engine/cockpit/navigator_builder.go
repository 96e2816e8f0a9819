package cockpit

import (
	"github.com/Carmen-Shannon/oxy-orrery/config"
	"github.com/Carmen-Shannon/oxy-orrery/engine/collision"
	"github.com/rs/zerolog"
)

// NavigatorBuilderOption is a functional option for configuring a Navigator.
type NavigatorBuilderOption func(*navigatorImpl)

// WithTuning applies the movement rates of a tuning profile.
//
// Parameters:
//   - t: the tuning profile
//
// Returns:
//   - NavigatorBuilderOption: functional option to apply the profile
func WithTuning(t config.Tuning) NavigatorBuilderOption {
	return func(n *navigatorImpl) {
		applyTuning(n, t)
	}
}

// WithBindings replaces the default key bindings.
//
// Parameters:
//   - b: the key bindings
//
// Returns:
//   - NavigatorBuilderOption: functional option to set the bindings
func WithBindings(b Bindings) NavigatorBuilderOption {
	return func(n *navigatorImpl) {
		n.bindings = b
	}
}

// WithBlockedHandler registers a callback fired whenever a proposed move is blocked.
// Obstacle hits carry the obstacle in the result.
//
// Parameters:
//   - fn: the callback
//
// Returns:
//   - NavigatorBuilderOption: functional option to set the handler
func WithBlockedHandler(fn func(collision.Result)) NavigatorBuilderOption {
	return func(n *navigatorImpl) {
		n.onBlocked = fn
	}
}

// WithLogger attaches a logger to the navigator.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - NavigatorBuilderOption: functional option to set the logger
func WithLogger(l zerolog.Logger) NavigatorBuilderOption {
	return func(n *navigatorImpl) {
		n.log = l
	}
}
