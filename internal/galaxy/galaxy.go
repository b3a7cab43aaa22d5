// Package galaxy generates a seeded network of star systems, each of which
// can be loaded into the simulation as its own universe.
package galaxy

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/dominikbraun/graph"
	"lukechampine.com/blake3"
)

// StarType determines the color of a star on the galaxy map.
type StarType uint8

const (
	StarYellow StarType = iota
	StarRed
	StarBlue
	StarWhite
	StarOrange
	starTypeCount
)

// String returns a human-readable name for a star type.
func (t StarType) String() string {
	switch t {
	case StarYellow:
		return "Yellow dwarf"
	case StarRed:
		return "Red giant"
	case StarBlue:
		return "Blue supergiant"
	case StarWhite:
		return "White dwarf"
	case StarOrange:
		return "Orange star"
	default:
		return "Unknown"
	}
}

// SolarSystem is one star with its planets.
type SolarSystem struct {
	Star    string
	Type    StarType
	X, Y    float64 // position on the galaxy map
	Planets []Planet
}

// Planet orbits the system's star.
type Planet struct {
	Name     string
	Distance float64 // from the star
	Angle    float64 // starting angle, radians
	Speed    float64 // radians per tick
	Stations []Station
}

// Station orbits a planet.
type Station struct {
	Name     string
	Distance float64
	Angle    float64
	Speed    float64
}

// Galaxy is an undirected graph of systems keyed by star name. Edge weights
// are map distances.
type Galaxy = graph.Graph[string, SolarSystem]

// Galaxy map bounds and spacing.
const (
	mapMinX     = 4
	mapMaxX     = 54
	mapMinY     = 4
	mapMaxY     = 34
	minStarDist = 4
)

// Orbit layout. Planet speed falls off with distance so that a planet at
// 100 units turns at 0.001 rad/tick.
const (
	planetMinDist    = 25.0
	planetDistSpread = 90.0
	planetSpeedK     = 0.1
	stationMinDist   = 10.0
	stationSpread    = 15.0
	stationSpeed     = 0.01
)

var starNames = []string{
	"Vega Prime", "Kepler's Rest", "Nyx", "Caelum", "Draconis",
	"Forge", "Hadal Deep", "Meridian", "Obsidian", "Solis",
	"Tempest", "Umbra", "Zenith", "Arcturus", "Cygnus",
	"Eridani", "Lyra", "Procyon", "Rigel", "Sirius",
}

var romanNumerals = []string{"I", "II", "III", "IV", "V"}

// ErrTooManySystems is returned when more systems are asked for than there
// are star names.
var ErrTooManySystems = errors.New("too many systems")

// MaxSystems is the largest galaxy Generate can build.
func MaxSystems() int { return len(starNames) }

// Generate builds a connected galaxy of n systems. The same seed always
// yields the same galaxy.
func Generate(seed string, n int) (Galaxy, error) {
	if n <= 0 {
		return nil, fmt.Errorf("generate galaxy: need at least one system, got %d", n)
	}
	if n > len(starNames) {
		return nil, fmt.Errorf("generate galaxy of %d: %w (max %d)", n, ErrTooManySystems, len(starNames))
	}
	rng := newRNG(seed)

	names := slices.Clone(starNames)
	rng.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	systems := make([]SolarSystem, 0, n)
	systems = append(systems, SolarSystem{
		Star: names[0],
		Type: StarYellow,
		X:    (mapMinX + mapMaxX) / 2,
		Y:    (mapMinY + mapMaxY) / 2,
	})
	for i := 1; i < n; i++ {
		var x, y float64
		for attempts := 0; attempts < 100; attempts++ {
			x = float64(mapMinX + rng.IntN(mapMaxX-mapMinX+1))
			y = float64(mapMinY + rng.IntN(mapMaxY-mapMinY+1))
			if !tooClose(systems, x, y) {
				break
			}
		}
		systems = append(systems, SolarSystem{
			Star: names[i],
			Type: StarType(rng.IntN(int(starTypeCount))),
			X:    x,
			Y:    y,
		})
	}
	for i := range systems {
		systems[i].Planets = generatePlanets(rng, systems[i].Star)
	}

	g := graph.New(func(s SolarSystem) string { return s.Star }, graph.Weighted())
	for _, s := range systems {
		if err := g.AddVertex(s); err != nil {
			return nil, fmt.Errorf("add system %s: %w", s.Star, err)
		}
	}

	// Link each system to its nearest earlier neighbour so the graph is
	// connected, then add a second lane to roughly a third of them.
	for i := 1; i < len(systems); i++ {
		near := nearest(systems[:i], systems[i])
		if err := link(g, systems[i], systems[near[0]]); err != nil {
			return nil, err
		}
		if len(near) > 1 && rng.IntN(3) == 0 {
			if err := link(g, systems[i], systems[near[1]]); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

func newRNG(seed string) *rand.Rand {
	sum := blake3.Sum256([]byte(seed))
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(sum[0:8]),
		binary.LittleEndian.Uint64(sum[8:16]),
	))
}

func generatePlanets(rng *rand.Rand, star string) []Planet {
	planets := make([]Planet, 2+rng.IntN(4))
	for i := range planets {
		dist := planetMinDist + rng.Float64()*planetDistSpread
		planets[i] = Planet{
			Name:     star + " " + romanNumerals[i%len(romanNumerals)],
			Distance: dist,
			Angle:    rng.Float64() * 2 * math.Pi,
			Speed:    planetSpeedK / dist,
		}
	}
	if rng.IntN(2) == 0 {
		p := &planets[rng.IntN(len(planets))]
		p.Stations = append(p.Stations, Station{
			Name:     star + " Station",
			Distance: stationMinDist + rng.Float64()*stationSpread,
			Angle:    rng.Float64() * 2 * math.Pi,
			Speed:    stationSpeed,
		})
	}
	return planets
}

func tooClose(systems []SolarSystem, x, y float64) bool {
	for _, s := range systems {
		if math.Hypot(s.X-x, s.Y-y) < minStarDist {
			return true
		}
	}
	return false
}

// nearest returns indexes into candidates ordered by distance from s.
func nearest(candidates []SolarSystem, s SolarSystem) []int {
	idx := make([]int, len(candidates))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		da := Distance(candidates[a], s)
		db := Distance(candidates[b], s)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	})
	return idx
}

func link(g Galaxy, a, b SolarSystem) error {
	w := int(math.Ceil(Distance(a, b)))
	if err := g.AddEdge(a.Star, b.Star, graph.EdgeWeight(w)); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return fmt.Errorf("link %s - %s: %w", a.Star, b.Star, err)
	}
	return nil
}

// Distance returns the map distance between two systems.
func Distance(a, b SolarSystem) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
