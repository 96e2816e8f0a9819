package collision

import "github.com/rs/zerolog"

// DetectorBuilderOption is a functional option for configuring a Detector.
type DetectorBuilderOption func(*detectorImpl)

// WithMargins sets the clearances added to each collidable's radius.
//
// Parameters:
//   - m: the margins
//
// Returns:
//   - DetectorBuilderOption: functional option to set the margins
func WithMargins(m Margins) DetectorBuilderOption {
	return func(d *detectorImpl) {
		d.margins = m
	}
}

// WithIndex sets the obstacle broad phase.
//
// Parameters:
//   - idx: the obstacle index
//
// Returns:
//   - DetectorBuilderOption: functional option to set the index
func WithIndex(idx ObstacleIndex) DetectorBuilderOption {
	return func(d *detectorImpl) {
		if idx != nil {
			d.index = idx
		}
	}
}

// WithLogger attaches a logger to the detector.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - DetectorBuilderOption: functional option to set the logger
func WithLogger(l zerolog.Logger) DetectorBuilderOption {
	return func(d *detectorImpl) {
		d.log = l
	}
}
