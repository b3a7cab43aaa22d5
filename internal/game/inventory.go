package game

import (
	"fmt"
	"sort"
)

// Item identifies a kind of cargo. Two items are the same only if both
// name and description match.
type Item struct {
	Name        string
	Description string
}

// NewItem creates an item.
func NewItem(name, description string) Item {
	return Item{Name: name, Description: description}
}

func (it Item) String() string { return it.Name }

// IronOre is the stock item the cargo panel loads and unloads.
var IronOre = NewItem("Iron Ore", "Some iron ore")

// Hold is a vessel's cargo ledger. No entry ever holds a zero quantity.
type Hold struct {
	items map[Item]uint64
}

// NewHold creates an empty cargo hold.
func NewHold() Hold {
	return Hold{items: make(map[Item]uint64)}
}

// Store adds qty of item, creating the entry if absent.
func (h *Hold) Store(item Item, qty uint64) {
	if qty == 0 {
		return
	}
	if h.items == nil {
		h.items = make(map[Item]uint64)
	}
	h.items[item] += qty
}

// Remove takes qty of item out of the hold. Removing more than is held
// empties the entry and returns ErrInsufficientQuantity.
func (h *Hold) Remove(item Item, qty uint64) error {
	if qty == 0 {
		return nil
	}
	have := h.items[item]
	if have <= qty {
		delete(h.items, item)
	} else {
		h.items[item] = have - qty
	}
	if have < qty {
		return fmt.Errorf("remove %d %s, holding %d: %w", qty, item.Name, have, ErrInsufficientQuantity)
	}
	return nil
}

// Count returns the quantity held of item.
func (h *Hold) Count(item Item) uint64 {
	return h.items[item]
}

// Has reports whether at least one of item is held.
func (h *Hold) Has(item Item) bool {
	return h.items[item] > 0
}

// Len returns the number of distinct items held.
func (h *Hold) Len() int {
	return len(h.items)
}

// Total returns the summed quantity of all items.
func (h *Hold) Total() uint64 {
	var n uint64
	for _, q := range h.items {
		n += q
	}
	return n
}

// Line is one row of the cargo manifest.
type Line struct {
	Item     Item
	Quantity uint64
}

// Manifest lists the hold contents sorted by item name, then description.
func (h *Hold) Manifest() []Line {
	lines := make([]Line, 0, len(h.items))
	for it, q := range h.items {
		lines = append(lines, Line{Item: it, Quantity: q})
	}
	sort.Slice(lines, func(i, j int) bool {
		a, b := lines[i].Item, lines[j].Item
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Description < b.Description
	})
	return lines
}
