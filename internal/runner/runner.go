// Package runner drives a simulation without a window.
package runner

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/spacehole-rogue/spacelab/internal/game"
	"github.com/spacehole-rogue/spacelab/internal/input"
	"github.com/spacehole-rogue/spacelab/internal/logging"
)

// Result summarises a run.
type Result struct {
	Ticks  int // ticks advanced by this run
	Failed int // ticks that reported errors
}

// Run advances sim n ticks with input from src. A nil limiter runs as fast
// as possible. Tick errors are logged and do not stop the run; a cancelled
// ctx does.
func Run(ctx context.Context, sim *game.Sim, src input.Source, n int, limiter *rate.Limiter, log zerolog.Logger) (Result, error) {
	sampled := logging.Sampled(log)
	log.Info().Int("ticks", n).Bool("realtime", limiter != nil).Msg("headless run started")

	var res Result
	for i := 0; i < n; i++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return res, err
			}
		} else if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Ticks++
		if err := sim.Tick(src.Poll()); err != nil {
			res.Failed++
			sampled.Warn().Err(err).Uint64("tick", sim.Ticks).Msg("tick reported errors")
		}
	}

	for _, b := range sim.Bodies() {
		p := b.Absolute.Pos
		log.Info().
			Str("body", b.Name).
			Stringer("kind", b.Kind).
			Float64("x", p.X).
			Float64("y", p.Y).
			Msg("final position")
	}
	log.Info().Int("ticks", res.Ticks).Int("failedTicks", res.Failed).Msg("headless run finished")
	return res, nil
}

// ShiftCargo loads (qty > 0) or unloads (qty < 0) item on the primary
// vessel. Failures are logged and returned.
func ShiftCargo(sim *game.Sim, item game.Item, qty int, log zerolog.Logger) error {
	id, err := sim.Primary()
	if err == nil {
		if qty >= 0 {
			err = sim.Store(id, item, uint64(qty))
		} else {
			err = sim.Remove(id, item, uint64(-qty))
		}
	}
	if err != nil {
		log.Warn().Err(err).Stringer("item", item).Int("qty", qty).Msg("cargo change failed")
	}
	return err
}
