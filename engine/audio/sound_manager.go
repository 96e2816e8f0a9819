// Package audio plays short synthesized cues for simulation events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

// DefaultSampleRate is used when no sample rate is configured.
const DefaultSampleRate = beep.SampleRate(44100)

// Player plays cues. Implementations must not block the caller.
type Player interface {
	Play(c Cue)
	Close()
}

// NopPlayer discards every cue. It is used when audio is disabled or the device is unavailable.
type NopPlayer struct{}

func (NopPlayer) Play(Cue) {}
func (NopPlayer) Close()   {}

// SoundManager mixes cues onto the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	log         zerolog.Logger
}

var _ Player = &SoundManager{}
var _ Player = NopPlayer{}

// NewSoundManager creates a manager for the given sample rate. Call Initialize before playing.
func NewSoundManager(sampleRate int, log zerolog.Logger) *SoundManager {
	sr := beep.SampleRate(sampleRate)
	if sr <= 0 {
		sr = DefaultSampleRate
	}
	return &SoundManager{
		sampleRate: sr,
		mixer:      &beep.Mixer{},
		log:        log,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.sampleRate, sm.sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Debug().Int("sampleRate", int(sm.sampleRate)).Msg("audio ready")
	return nil
}

// Play queues a cue on the mixer. It is a no-op before Initialize.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s, err := NewCueStreamer(c, sm.sampleRate)
	if err != nil {
		sm.log.Warn().Err(err).Msg("cue skipped")
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Close silences every queued cue.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.mixer.Clear()
	sm.initialized = false
}
