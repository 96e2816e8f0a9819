// Command orrery runs the interactive solar-system simulation.
//
// Controls: drag to orbit, wheel to zoom, click a planet to focus it, Esc to return home.
// C toggles cockpit flight (WASD strafe, arrows turn, Space/Shift climb), G toggles the
// asteroid game, H toggles spaceships, P pauses the orbits and R restarts a game.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/oxy-orrery/config"
	"github.com/Carmen-Shannon/oxy-orrery/engine"
	"github.com/Carmen-Shannon/oxy-orrery/engine/audio"
	"github.com/Carmen-Shannon/oxy-orrery/engine/body"
	"github.com/Carmen-Shannon/oxy-orrery/engine/logger"
	"github.com/Carmen-Shannon/oxy-orrery/engine/metrics"
	"github.com/Carmen-Shannon/oxy-orrery/engine/orrery"
	"github.com/Carmen-Shannon/oxy-orrery/engine/window"
)

var (
	configDir = flag.String("config", ".", "Directory searched for "+config.FileName)
	noColor   = flag.Bool("no-color", false, "Disable colored log output")
	headless  = flag.Bool("headless", false, "Run the simulation without a window")
	maxTicks  = flag.Int("max-ticks", 600, "Ticks to run in headless mode")
)

func init() {
	// GLFW calls must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.LogLevel, os.Stderr, *noColor)
	log.Info().
		Str("profile", cfg.Profile).
		Float64("tick_rate", cfg.TickRate).
		Uint64("seed", cfg.Seed).
		Msg("starting orrery")

	player := newPlayer(cfg, log)
	defer player.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	collector := newCollector(ctx, cfg, log)

	var win window.Window
	sim := orrery.NewSimulation(
		orrery.WithConfig(cfg),
		orrery.WithLogger(log),
		orrery.WithAudio(player),
		orrery.WithMetrics(collector),
		orrery.WithPlanetSelectedHook(func(info body.Info) {
			log.Info().
				Str("planet", info.Name).
				Str("radius", info.Radius).
				Str("orbit_period", info.OrbitPeriod).
				Int("moons", info.MoonCount).
				Msg(info.Description)
		}),
		orrery.WithScoreChangedHook(func(score int) {
			if win != nil {
				win.SetTitle(fmt.Sprintf("%s | score %d", cfg.Window.Title, score))
			}
		}),
		orrery.WithGameOverHook(func(final int) {
			log.Info().Int("final_score", final).Msg("game over, press R to restart")
			if win != nil {
				win.SetTitle(fmt.Sprintf("%s | game over, final score %d", cfg.Window.Title, final))
			}
		}),
	)

	if *headless {
		return runHeadless(sim, cfg, log)
	}

	win, err = window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithInput(sim.Input()),
		engine.WithTickRate(cfg.TickRate),
		engine.WithProfiling(cfg.Profiling),
		engine.WithLogger(logger.Component(log, "engine")),
	)
	eng.SetTickCallback(sim.Tick)

	if err := eng.Run(); err != nil {
		return fmt.Errorf("run engine: %w", err)
	}
	log.Info().Msg("window closed")
	return nil
}

// newPlayer opens the audio device when enabled, falling back to silence on failure.
func newPlayer(cfg config.Config, log zerolog.Logger) audio.Player {
	if !cfg.Audio.Enabled {
		return audio.NopPlayer{}
	}
	sm := audio.NewSoundManager(cfg.Audio.SampleRate, logger.Component(log, "audio"))
	if err := sm.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio disabled")
		return audio.NopPlayer{}
	}
	return sm
}

// newCollector starts the metrics endpoint when one is configured.
func newCollector(ctx context.Context, cfg config.Config, log zerolog.Logger) *metrics.Collector {
	if cfg.Metrics.Listen == "" {
		return nil
	}
	m := metrics.NewCollector()
	go func() {
		if err := m.Serve(ctx, cfg.Metrics.Listen); err != nil {
			log.Error().Err(err).Msg("metrics endpoint stopped")
		}
	}()
	log.Info().Str("addr", cfg.Metrics.Listen).Msg("serving metrics")
	return m
}

// runHeadless advances the simulation at a fixed step and logs the final state.
func runHeadless(sim orrery.Simulation, cfg config.Config, log zerolog.Logger) error {
	if *maxTicks <= 0 {
		return fmt.Errorf("headless mode needs a positive -max-ticks, got %d", *maxTicks)
	}
	rate := cfg.TickRate
	if rate <= 0 {
		rate = 60
	}
	dt := float32(1 / rate)
	for i := 0; i < *maxTicks; i++ {
		sim.Tick(dt)
	}
	v := sim.View()
	log.Info().
		Int("ticks", *maxTicks).
		Float32("clock", v.Clock).
		Str("mode", v.Mode).
		Int("bodies", len(v.Bodies)).
		Int("obstacles", len(v.Obstacles)).
		Msg("headless run finished")
	return nil
}
