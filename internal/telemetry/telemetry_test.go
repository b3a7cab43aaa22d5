package telemetry

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacehole-rogue/spacelab/internal/game"
)

func TestNewStdout_ExportsSimCounters(t *testing.T) {
	var buf bytes.Buffer
	mp, err := NewStdout(&buf, time.Hour)
	require.NoError(t, err)

	sim, err := game.NewSim(game.Options{Meters: mp})
	require.NoError(t, err)
	require.NoError(t, sim.Tick(game.ActionSet{}))

	ctx := context.Background()
	require.NoError(t, mp.ForceFlush(ctx))
	require.NoError(t, mp.Shutdown(ctx))
	assert.Contains(t, buf.String(), "sim.ticks")
}

func TestNewStdout_RejectsZeroInterval(t *testing.T) {
	_, err := NewStdout(&bytes.Buffer{}, 0)
	assert.Error(t, err)
}
