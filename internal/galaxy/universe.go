package galaxy

import (
	"math"

	"github.com/spacehole-rogue/spacelab/internal/world"
)

// Universe converts the system into a scene the simulation can load. The
// star sits at the origin and a primary vessel starts halfway out to the
// innermost planet.
func (s SolarSystem) Universe() *world.Universe {
	u := &world.Universe{Name: s.Star}
	u.Bodies = append(u.Bodies, world.BodySpec{Name: s.Star, Kind: "star"})

	inner := math.Inf(1)
	for _, p := range s.Planets {
		inner = math.Min(inner, p.Distance)
		u.Bodies = append(u.Bodies, world.BodySpec{
			Name:     p.Name,
			Kind:     "planet",
			Parent:   s.Star,
			Speed:    p.Speed,
			Position: polar(p.Distance, p.Angle),
		})
		for _, st := range p.Stations {
			u.Bodies = append(u.Bodies, world.BodySpec{
				Name:     st.Name,
				Kind:     "station",
				Parent:   p.Name,
				Speed:    st.Speed,
				Position: polar(st.Distance, st.Angle),
			})
		}
	}
	if math.IsInf(inner, 1) {
		inner = planetMinDist
	}
	u.Vessels = []world.VesselSpec{{
		Name:     "Vessel",
		Position: [2]float64{inner / 2, 0},
		Primary:  true,
	}}
	return u
}

func polar(r, angle float64) [2]float64 {
	return [2]float64{r * math.Cos(angle), r * math.Sin(angle)}
}
