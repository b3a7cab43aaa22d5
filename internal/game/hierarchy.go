package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dominikbraun/graph"
)

// Hierarchy is the parent/child forest of bodies. Edges run parent -> child.
// The graph refuses edges that would close a cycle, so the forest invariant
// holds after every successful mutation.
type Hierarchy struct {
	g      graph.Graph[BodyID, BodyID]
	parent map[BodyID]BodyID

	order []BodyID // cached parent-before-child order
	dirty bool
}

// NewHierarchy creates an empty forest.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{
		g:      graph.New(func(id BodyID) BodyID { return id }, graph.Directed(), graph.Acyclic(), graph.PreventCycles()),
		parent: make(map[BodyID]BodyID),
	}
}

// Add registers a new root node.
func (h *Hierarchy) Add(id BodyID) error {
	if err := h.g.AddVertex(id); err != nil {
		return fmt.Errorf("add body %d: %w", id, err)
	}
	h.dirty = true
	return nil
}

// Contains reports whether id is part of the forest.
func (h *Hierarchy) Contains(id BodyID) bool {
	_, err := h.g.Vertex(id)
	return err == nil
}

// Parent returns the parent of id, if any.
func (h *Hierarchy) Parent(id BodyID) (BodyID, bool) {
	p, ok := h.parent[id]
	return p, ok
}

// SetParent moves child under parent, replacing any previous parent edge.
// A move that would create a cycle is refused and the old edge is kept.
func (h *Hierarchy) SetParent(child, parent BodyID) error {
	if child == parent {
		return fmt.Errorf("reparent body %d under itself: %w", child, graph.ErrEdgeCreatesCycle)
	}
	old, hadParent := h.parent[child]
	if hadParent && old == parent {
		return nil
	}
	if hadParent {
		if err := h.g.RemoveEdge(old, child); err != nil {
			return fmt.Errorf("detach body %d from %d: %w", child, old, err)
		}
	}
	if err := h.g.AddEdge(parent, child); err != nil {
		err = fmt.Errorf("reparent body %d under %d: %w", child, parent, err)
		if hadParent {
			if rerr := h.g.AddEdge(old, child); rerr != nil {
				// child is now a root in the graph; keep the map in step
				delete(h.parent, child)
				h.dirty = true
				return errors.Join(err, fmt.Errorf("restore body %d under %d: %w", child, old, rerr))
			}
		}
		return err
	}
	h.parent[child] = parent
	h.dirty = true
	return nil
}

// Detach makes child a root. Detaching a root is a no-op.
func (h *Hierarchy) Detach(child BodyID) error {
	old, ok := h.parent[child]
	if !ok {
		return nil
	}
	if err := h.g.RemoveEdge(old, child); err != nil && !errors.Is(err, graph.ErrEdgeNotFound) {
		return fmt.Errorf("detach body %d from %d: %w", child, old, err)
	}
	delete(h.parent, child)
	h.dirty = true
	return nil
}

// Children returns the direct children of id sorted by id.
func (h *Hierarchy) Children(id BodyID) []BodyID {
	adj, err := h.g.AdjacencyMap()
	if err != nil {
		return nil
	}
	kids := make([]BodyID, 0, len(adj[id]))
	for k := range adj[id] {
		kids = append(kids, k)
	}
	slices.Sort(kids)
	return kids
}

// Depth returns the number of ancestors of id.
func (h *Hierarchy) Depth(id BodyID) int {
	d := 0
	for {
		p, ok := h.parent[id]
		if !ok {
			return d
		}
		d++
		id = p
	}
}

// Order returns every body with parents before their children. Siblings and
// unrelated roots are ordered by lowest id so the traversal is deterministic.
func (h *Hierarchy) Order() ([]BodyID, error) {
	if !h.dirty && h.order != nil {
		return h.order, nil
	}
	order, err := graph.StableTopologicalSort(h.g, func(a, b BodyID) bool { return a < b })
	if err != nil {
		return nil, fmt.Errorf("order hierarchy: %w", err)
	}
	h.order = order
	h.dirty = false
	return order, nil
}
