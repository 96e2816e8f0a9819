// Package config loads runtime settings from an optional JSON file and ORRERY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "orrery.json"

// WindowConfig holds the platform window settings.
type WindowConfig struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// AudioConfig holds the audio cue settings.
type AudioConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	SampleRate int  `mapstructure:"sampleRate"`
}

// CameraConfig holds the perspective lens settings.
type CameraConfig struct {
	// FovDegrees is the vertical field of view.
	FovDegrees float32 `mapstructure:"fovDegrees"`
	Near       float32 `mapstructure:"near"`
	Far        float32 `mapstructure:"far"`
}

// MetricsConfig holds the Prometheus endpoint settings.
type MetricsConfig struct {
	// Listen is the /metrics listen address; empty disables the endpoint.
	Listen string `mapstructure:"listen"`
}

// Config is the fully resolved application configuration.
type Config struct {
	Profile        string        `mapstructure:"profile"`
	LogLevel       string        `mapstructure:"logLevel"`
	TickRate       float64       `mapstructure:"tickRate"`
	Seed           uint64        `mapstructure:"seed"`
	AnimationSpeed float32       `mapstructure:"animationSpeed"`
	Profiling      bool          `mapstructure:"profiling"`
	Window         WindowConfig  `mapstructure:"window"`
	Audio          AudioConfig   `mapstructure:"audio"`
	Camera         CameraConfig  `mapstructure:"camera"`
	Metrics        MetricsConfig `mapstructure:"metrics"`

	// Tuning is resolved from Profile after unmarshalling.
	Tuning Tuning `mapstructure:"-"`
}

// setDefaults registers every key with its default value.
func setDefaults(v *viper.Viper) {
	v.SetDefault("profile", ProfileClassic)
	v.SetDefault("logLevel", "info")
	v.SetDefault("tickRate", 60)
	v.SetDefault("seed", 1)
	v.SetDefault("animationSpeed", 1.0)
	v.SetDefault("profiling", false)

	v.SetDefault("window.title", "Orrery")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sampleRate", 44100)

	v.SetDefault("camera.fovDegrees", 45.0)
	v.SetDefault("camera.near", 0.1)
	v.SetDefault("camera.far", 200.0)

	v.SetDefault("metrics.listen", "")
}

// Load reads configuration from FileName inside configDir (if present) and from the environment.
// A missing config file is not an error; a malformed one is.
//
// Parameters:
//   - configDir: directory searched for the config file
//
// Returns:
//   - Config: the resolved configuration
//   - error: error if the file cannot be parsed or the profile is unknown
func Load(configDir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(strings.TrimSuffix(FileName, ".json"))
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("ORRERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}

	tuning, err := TuningFor(cfg.Profile)
	if err != nil {
		return Config{}, err
	}
	cfg.Tuning = tuning
	cfg.Window.Title = common.Coalesce(cfg.Window.Title, "Orrery")
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return cfg, nil
}
