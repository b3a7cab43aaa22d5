package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"

	"github.com/spacehole-rogue/spacelab/assets"
	"github.com/spacehole-rogue/spacelab/internal/config"
	"github.com/spacehole-rogue/spacelab/internal/galaxy"
	"github.com/spacehole-rogue/spacelab/internal/game"
	"github.com/spacehole-rogue/spacelab/internal/input"
	"github.com/spacehole-rogue/spacelab/internal/logging"
	"github.com/spacehole-rogue/spacelab/internal/render/screen"
	"github.com/spacehole-rogue/spacelab/internal/runner"
	"github.com/spacehole-rogue/spacelab/internal/telemetry"
	"github.com/spacehole-rogue/spacelab/internal/world"
)

func main() {
	var (
		configDir = flag.String("config", ".", "directory holding spacelab.{yaml,json} and .env")
		headless  = flag.Bool("headless", false, "run without a window")
		ticks     = flag.Int("ticks", 0, "ticks to run headless (0 = headless.ticks)")
		realtime  = flag.Bool("realtime", false, "pace headless ticks at sim.tps")
		system    = flag.String("system", "", "load this star system from the generated galaxy")
	)
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogPretty)
	log.Info().Str("loglevel", log.GetLevel().String()).Msg("logging set up")

	if cfg.Metrics.Stdout {
		mp, err := telemetry.NewStdout(os.Stdout, cfg.Metrics.Interval)
		if err != nil {
			log.Fatal().Err(err).Msg("set up metrics")
		}
		otel.SetMeterProvider(mp)
		defer func() {
			if err := mp.Shutdown(context.Background()); err != nil {
				log.Warn().Err(err).Msg("flush metrics")
			}
		}()
	}

	universe, err := loadUniverse(cfg, *system, log)
	if err != nil {
		log.Fatal().Err(err).Msg("load universe")
	}

	sim, err := game.NewSim(game.Options{
		Tuning:     cfg.Tuning(),
		Logger:     &log,
		Integrator: cfg.Integrator(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("create sim")
	}
	if _, err := sim.Load(universe); err != nil {
		log.Fatal().Err(err).Msg("spawn universe")
	}

	if *headless {
		n := *ticks
		if n <= 0 {
			n = cfg.Headless.Ticks
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var limiter *rate.Limiter
		if *realtime {
			limiter = rate.NewLimiter(rate.Limit(cfg.Sim.TPS), 1)
		}
		if _, err := runner.Run(ctx, sim, input.NewScript(), n, limiter, log); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("headless run")
		}
		return
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Sim.TPS)

	g := NewGame(sim, input.NewKeyboard(screen.Keys{}, input.DefaultBindings()), log)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}

// loadUniverse picks the scene: a generated star system when one is named,
// else the configured file, else the embedded Sol.
func loadUniverse(cfg *config.Config, system string, log zerolog.Logger) (*world.Universe, error) {
	if system != "" {
		g, err := galaxy.Generate(cfg.Galaxy.Seed, cfg.Galaxy.Systems)
		if err != nil {
			return nil, err
		}
		s, err := g.Vertex(system)
		if err != nil {
			return nil, fmt.Errorf("system %q: %w", system, err)
		}
		if next, err := galaxy.Neighbors(g, system); err == nil {
			log.Info().Str("system", system).Strs("lanes", next).Msg("galaxy generated")
		}
		return s.Universe(), nil
	}

	var (
		data []byte
		err  error
	)
	if cfg.Universe.File != "" {
		data, err = os.ReadFile(cfg.Universe.File)
	} else {
		data, err = assets.Universes.ReadFile(assets.DefaultUniverse)
	}
	if err != nil {
		return nil, err
	}
	return world.LoadUniverse(data)
}
