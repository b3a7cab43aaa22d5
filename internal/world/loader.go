package world

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"
)

// Universe is the JSON-serializable definition of a star system scene.
type Universe struct {
	Name    string       `json:"name"`
	Bodies  []BodySpec   `json:"bodies"`
	Vessels []VesselSpec `json:"vessels"`
}

// BodySpec defines one celestial body. Position is relative to Parent, or to
// the world origin when Parent is empty.
type BodySpec struct {
	Name     string     `json:"name"`
	Kind     string     `json:"kind"`
	Parent   string     `json:"parent,omitempty"`
	Speed    float64    `json:"speed,omitempty"` // radians per tick around the parent
	Position [2]float64 `json:"position"`
	Rotation float64    `json:"rotation,omitempty"`
}

// VesselSpec defines a free-flying vessel. Vessels always start undocked at
// the world root.
type VesselSpec struct {
	Name     string     `json:"name"`
	Position [2]float64 `json:"position"`
	Rotation float64    `json:"rotation,omitempty"`
	Primary  bool       `json:"primary,omitempty"`
}

// ErrInvalidUniverse wraps every validation failure.
var ErrInvalidUniverse = errors.New("invalid universe")

// Body kinds a universe file may declare. Vessels have their own list.
var bodyKinds = map[string]bool{
	"star":    true,
	"planet":  true,
	"station": true,
}

// LoadUniverse parses and validates a Universe from JSON bytes.
func LoadUniverse(data []byte) (*Universe, error) {
	var u Universe
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("parse universe: %w", err)
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return &u, nil
}

// Validate checks kinds, parent links, the primary vessel, and that every
// body and vessel name is unique.
func (u *Universe) Validate() error {
	_, err := u.tree()
	if err != nil {
		return err
	}
	names := make(map[string]bool, len(u.Bodies)+len(u.Vessels))
	for _, b := range u.Bodies {
		names[b.Name] = true
	}
	primaries := 0
	for _, v := range u.Vessels {
		if v.Name == "" {
			return fmt.Errorf("%w: vessel with empty name", ErrInvalidUniverse)
		}
		if names[v.Name] {
			return fmt.Errorf("%w: vessel name %s is already taken", ErrInvalidUniverse, v.Name)
		}
		names[v.Name] = true
		if v.Primary {
			primaries++
		}
	}
	if primaries > 1 {
		return fmt.Errorf("%w: %d primary vessels, want at most one", ErrInvalidUniverse, primaries)
	}
	return nil
}

// Ordered returns the bodies with every parent ahead of its children. Bodies
// with no ordering constraint between them keep their file order.
func (u *Universe) Ordered() ([]BodySpec, error) {
	g, err := u.tree()
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(u.Bodies))
	for i, b := range u.Bodies {
		index[b.Name] = i
	}
	names, err := graph.StableTopologicalSort(g, func(a, b string) bool {
		return index[a] < index[b]
	})
	if err != nil {
		return nil, fmt.Errorf("order bodies: %w", err)
	}
	out := make([]BodySpec, 0, len(names))
	for _, name := range names {
		out = append(out, u.Bodies[index[name]])
	}
	return out, nil
}

// tree builds the parent -> child graph of bodies, rejecting anything that
// would not load as a forest.
func (u *Universe) tree() (graph.Graph[string, string], error) {
	g := graph.New(graph.StringHash, graph.Directed(), graph.Acyclic(), graph.PreventCycles())
	for _, b := range u.Bodies {
		if b.Name == "" {
			return nil, fmt.Errorf("%w: body with empty name", ErrInvalidUniverse)
		}
		if !bodyKinds[b.Kind] {
			return nil, fmt.Errorf("%w: body %s has unknown kind %q", ErrInvalidUniverse, b.Name, b.Kind)
		}
		if err := g.AddVertex(b.Name); err != nil {
			if errors.Is(err, graph.ErrVertexAlreadyExists) {
				return nil, fmt.Errorf("%w: duplicate body name %s", ErrInvalidUniverse, b.Name)
			}
			return nil, err
		}
	}
	for _, b := range u.Bodies {
		if b.Parent == "" {
			continue
		}
		if b.Parent == b.Name {
			return nil, fmt.Errorf("%w: body %s is its own parent", ErrInvalidUniverse, b.Name)
		}
		if _, err := g.Vertex(b.Parent); err != nil {
			return nil, fmt.Errorf("%w: body %s has unknown parent %s", ErrInvalidUniverse, b.Name, b.Parent)
		}
		if err := g.AddEdge(b.Parent, b.Name); err != nil {
			if errors.Is(err, graph.ErrEdgeCreatesCycle) {
				return nil, fmt.Errorf("%w: parent %s of %s creates a cycle", ErrInvalidUniverse, b.Parent, b.Name)
			}
			return nil, fmt.Errorf("link %s -> %s: %w", b.Parent, b.Name, err)
		}
	}
	return g, nil
}
