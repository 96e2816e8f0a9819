package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ProfileClassic, cfg.Profile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 60.0, cfg.TickRate)
	assert.Equal(t, "Orrery", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, float32(35), cfg.Tuning.HomeDistance)
	assert.Equal(t, float32(120), cfg.Tuning.MaxDistance)
	assert.Equal(t, float32(45), cfg.Camera.FovDegrees)
	assert.Equal(t, float32(0.1), cfg.Camera.Near)
	assert.Equal(t, float32(200), cfg.Camera.Far)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	body := `{
		"profile": "arcade",
		"logLevel": "debug",
		"window": { "width": 800, "height": 600 },
		"audio": { "enabled": false }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, float32(60), cfg.Tuning.HomeDistance)
	assert.Equal(t, float32(60), cfg.Tuning.MaxDistance)
	assert.Equal(t, float32(3), cfg.Tuning.SunRadius)
}

func TestLoad_EnvOverridesProfile(t *testing.T) {
	t.Setenv("ORRERY_PROFILE", "arcade")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, float32(60), cfg.Tuning.HomeDistance)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{not json`), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_UnknownProfile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"profile":"turbo"}`), 0644))

	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestTuningFor_SmoothingMatchesLegacyGain(t *testing.T) {
	tn, err := TuningFor("Classic")
	require.NoError(t, err)

	// one 60Hz tick should close 5% of the gap
	gain := 1 - expNeg(tn.SmoothingRate/60)
	assert.InDelta(t, 0.05, gain, 1e-4)
}

func expNeg(x float32) float64 {
	return math.Exp(-float64(x))
}

func TestLoad_MetricsListenFromEnv(t *testing.T) {
	t.Setenv("ORRERY_METRICS_LISTEN", "127.0.0.1:9464")
	t.Setenv("ORRERY_PROFILING", "true")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9464", cfg.Metrics.Listen)
	assert.True(t, cfg.Profiling)
}
