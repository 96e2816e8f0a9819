package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrUnknownProfile is returned when a profile name does not match any built-in tuning profile.
var ErrUnknownProfile = errors.New("unknown tuning profile")

// Profile names accepted by TuningFor.
const (
	ProfileClassic = "classic"
	ProfileArcade  = "arcade"
)

// Tuning holds every numeric threshold used by the navigation, collision and scoring subsystems.
// Rates are per second; everything that integrates over time is multiplied by dt.
type Tuning struct {
	// Orbit camera
	HomeDistance        float32
	HomeHeight          float32
	MinDistance         float32
	MaxDistance         float32
	DragSensitivity     float32 // radians per pixel of horizontal drag
	ZoomStep            float32 // distance multiplier per wheel notch
	SmoothingRate       float32 // exponential approach rate for focus / return-home
	FocusDistanceFactor float32 // focus distance = factor * body radius
	TargetTolerance     float32 // Σ|target - goal| exit threshold
	DistanceTolerance   float32 // |distance - goal| exit threshold

	// Collision margins added to each collidable's radius
	SunRadius        float32
	SunMargin        float32
	PlanetMargin     float32
	MoonMargin       float32
	AsteroidMargin   float32
	ShipMargin       float32
	ProjectileMargin float32

	// Cockpit
	MoveRate   float32
	MoveCap    float32
	RotRate    float32
	PitchLimit float32

	// Game mode
	SpawnInterval     time.Duration
	SpawnBatch        int
	SpeedStepInterval time.Duration
	SpeedStep         float32
	ScoreRate         float32
	ObstacleSpeed     float32
	DespawnRadius     float32

	// Simulation clock
	ClockRate float32
}

// baseTuning returns the values shared by every profile.
func baseTuning() Tuning {
	return Tuning{
		HomeHeight:          5,
		MinDistance:         5,
		DragSensitivity:     0.01,
		ZoomStep:            1.05,
		SmoothingRate:       float32(-60 * math.Log(0.95)), // 0.05 per tick at 60Hz
		FocusDistanceFactor: 4,
		TargetTolerance:     0.05,
		DistanceTolerance:   0.5,

		SunMargin:        1.5,
		PlanetMargin:     1.0,
		MoonMargin:       0.5,
		AsteroidMargin:   1.2,
		ShipMargin:       1.0,
		ProjectileMargin: 0.6,

		MoveRate:   10,
		MoveCap:    0.5,
		RotRate:    1.5,
		PitchLimit: float32(math.Pi/2 - 0.1),

		SpawnInterval:     3 * time.Second,
		SpawnBatch:        5,
		SpeedStepInterval: 10 * time.Second,
		SpeedStep:         0.1,
		ScoreRate:         0.5,
		ObstacleSpeed:     6,
		DespawnRadius:     90,

		ClockRate: 0.6,
	}
}

// TuningFor returns the tuning profile with the given name (case-insensitive).
//
// Parameters:
//   - name: profile name ("classic" or "arcade")
//
// Returns:
//   - Tuning: the resolved profile
//   - error: ErrUnknownProfile if the name is not recognized
func TuningFor(name string) (Tuning, error) {
	t := baseTuning()
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ProfileClassic, "":
		t.HomeDistance = 35
		t.MaxDistance = 120
		t.SunRadius = 2.5
	case ProfileArcade:
		t.HomeDistance = 60
		t.MaxDistance = 60
		t.SunRadius = 3
	default:
		return Tuning{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return t, nil
}

// DefaultTuning returns the classic profile.
func DefaultTuning() Tuning {
	t, _ := TuningFor(ProfileClassic)
	return t
}
