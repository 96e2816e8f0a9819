package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue is a short sound effect tied to a simulation event.
type Cue int

const (
	CueHit Cue = iota
	CueGameOver
	CueSpawn
	CueSelect
)

func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueGameOver:
		return "game-over"
	case CueSpawn:
		return "spawn"
	case CueSelect:
		return "select"
	default:
		return "unknown"
	}
}

// note is one tone (or rest, when freq is 0) of a cue.
type note struct {
	freq     float64
	duration time.Duration
}

var cueNotes = map[Cue][]note{
	CueHit:      {{880, 50 * time.Millisecond}, {440, 80 * time.Millisecond}},
	CueGameOver: {{660, 150 * time.Millisecond}, {0, 40 * time.Millisecond}, {440, 150 * time.Millisecond}, {0, 40 * time.Millisecond}, {220, 300 * time.Millisecond}},
	CueSpawn:    {{1320, 30 * time.Millisecond}},
	CueSelect:   {{990, 40 * time.Millisecond}, {1320, 40 * time.Millisecond}},
}

var cueVolume = map[Cue]float64{
	CueHit:      0.5,
	CueGameOver: 0.6,
	CueSpawn:    0.2,
	CueSelect:   0.3,
}

// Duration returns the total length of a cue.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.duration
	}
	return d
}

// NewCueStreamer builds the finite streamer for a cue at the given sample rate.
//
// Parameters:
//   - c: the cue
//   - sr: output sample rate
//
// Returns:
//   - beep.Streamer: the cue audio
//   - error: if the cue is unknown or a tone cannot be generated
func NewCueStreamer(c Cue, sr beep.SampleRate) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("audio: unknown cue %d", c)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sr.N(n.duration)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: %s tone %.0fHz: %w", c, n.freq, err)
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	return withVolume(beep.Seq(parts...), cueVolume[c]), nil
}

// withVolume scales s linearly by vol in (0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
