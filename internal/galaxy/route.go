package galaxy

import (
	"fmt"
	"slices"

	"github.com/dominikbraun/graph"
)

// Systems returns every system in the galaxy, sorted by star name.
func Systems(g Galaxy) ([]SolarSystem, error) {
	adj, err := g.AdjacencyMap()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(adj))
	for name := range adj {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]SolarSystem, 0, len(names))
	for _, name := range names {
		s, err := g.Vertex(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Neighbors returns the star names one jump from name, sorted.
func Neighbors(g Galaxy, name string) ([]string, error) {
	adj, err := g.AdjacencyMap()
	if err != nil {
		return nil, err
	}
	edges, ok := adj[name]
	if !ok {
		return nil, fmt.Errorf("neighbors of %s: %w", name, graph.ErrVertexNotFound)
	}
	out := make([]string, 0, len(edges))
	for n := range edges {
		out = append(out, n)
	}
	slices.Sort(out)
	return out, nil
}

// Route returns the shortest jump path from one star to another, both ends
// included.
func Route(g Galaxy, from, to string) ([]string, error) {
	path, err := graph.ShortestPath(g, from, to)
	if err != nil {
		return nil, fmt.Errorf("route %s -> %s: %w", from, to, err)
	}
	return path, nil
}

// RouteLength sums the lane weights along path.
func RouteLength(g Galaxy, path []string) (int, error) {
	total := 0
	for i := 1; i < len(path); i++ {
		e, err := g.Edge(path[i-1], path[i])
		if err != nil {
			return 0, fmt.Errorf("lane %s - %s: %w", path[i-1], path[i], err)
		}
		total += e.Properties.Weight
	}
	return total, nil
}
