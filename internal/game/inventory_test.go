package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHold_StoreTwiceRemoveOnce(t *testing.T) {
	h := NewHold()
	h.Store(IronOre, 1)
	h.Store(IronOre, 1)
	require.NoError(t, h.Remove(IronOre, 1))

	assert.Equal(t, uint64(1), h.Count(IronOre))
	assert.Equal(t, []Line{{Item: IronOre, Quantity: 1}}, h.Manifest())
}

func TestHold_RoundTrip(t *testing.T) {
	for _, k := range []uint64{0, 1, 2, 7, 1 << 40} {
		h := NewHold()
		h.Store(IronOre, k)
		require.NoError(t, h.Remove(IronOre, k))
		assert.False(t, h.Has(IronOre), "k=%d", k)
		assert.Zero(t, h.Len(), "k=%d", k)
	}
}

func TestHold_RemoveMoreThanHeld(t *testing.T) {
	for _, k := range []uint64{0, 1, 5, 1 << 40} {
		h := NewHold()
		h.Store(IronOre, k)
		err := h.Remove(IronOre, k+1)

		require.ErrorIs(t, err, ErrInsufficientQuantity, "k=%d", k)
		assert.Zero(t, h.Count(IronOre), "k=%d", k)
		assert.False(t, h.Has(IronOre), "k=%d", k)
	}
}

func TestHold_RemoveAbsentItem(t *testing.T) {
	h := NewHold()
	err := h.Remove(IronOre, 3)
	assert.ErrorIs(t, err, ErrInsufficientQuantity)
	assert.Zero(t, h.Len())
}

func TestHold_ItemsCompareByNameAndDescription(t *testing.T) {
	h := NewHold()
	h.Store(NewItem("Iron Ore", "Some iron ore"), 2)
	h.Store(NewItem("Iron Ore", "Refined"), 3)

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, uint64(2), h.Count(IronOre))
	assert.Equal(t, uint64(5), h.Total())
}

func TestHold_ManifestSorted(t *testing.T) {
	h := NewHold()
	h.Store(NewItem("Water Ice", ""), 1)
	h.Store(NewItem("Circuitry", ""), 4)
	h.Store(IronOre, 2)

	var names []string
	for _, l := range h.Manifest() {
		names = append(names, l.Item.Name)
	}
	assert.Equal(t, []string{"Circuitry", "Iron Ore", "Water Ice"}, names)
}

func TestHold_ZeroValueUsable(t *testing.T) {
	var h Hold
	h.Store(IronOre, 0)
	assert.Zero(t, h.Len())
	h.Store(IronOre, 4)
	assert.Equal(t, uint64(4), h.Count(IronOre))
}
