package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/spacehole-rogue/spacelab/internal/game"

// Cargo operations, used as the "op" metric attribute.
const (
	cargoStore   = "store"
	cargoRemove  = "remove"
	cargoCleared = "cleared"
)

// Dock request outcomes, used as the "outcome" metric attribute.
const (
	outcomeDocked     = "docked"
	outcomeOutOfRange = "out_of_range"
	outcomeFailed     = "failed"
)

// simMetrics holds the simulation counters.
type simMetrics struct {
	ticks        metric.Int64Counter
	dockRequests metric.Int64Counter
	undocks      metric.Int64Counter
	cargoOps     metric.Int64Counter
}

// newSimMetrics creates the counters on mp, or on the global provider when
// mp is nil.
func newSimMetrics(mp metric.MeterProvider) (*simMetrics, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	m := mp.Meter(instrumentationName)
	sm := &simMetrics{}

	var err error
	sm.ticks, err = m.Int64Counter("sim.ticks",
		metric.WithDescription("Simulation ticks advanced"))
	if err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}
	sm.dockRequests, err = m.Int64Counter("docking.requests",
		metric.WithDescription("Dock requests processed, by outcome"))
	if err != nil {
		return nil, fmt.Errorf("creating dock request counter: %w", err)
	}
	sm.undocks, err = m.Int64Counter("docking.undocks",
		metric.WithDescription("Completed undocks"))
	if err != nil {
		return nil, fmt.Errorf("creating undock counter: %w", err)
	}
	sm.cargoOps, err = m.Int64Counter("cargo.operations",
		metric.WithDescription("Cargo store/remove calls, by op"))
	if err != nil {
		return nil, fmt.Errorf("creating cargo counter: %w", err)
	}
	return sm, nil
}

func (m *simMetrics) tick() {
	m.ticks.Add(context.Background(), 1)
}

func (m *simMetrics) dockRequest(outcome string) {
	m.dockRequests.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *simMetrics) undock() {
	m.undocks.Add(context.Background(), 1)
}

func (m *simMetrics) cargo(op string) {
	m.cargoOps.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("op", op)))
}
