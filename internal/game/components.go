package game

import "fmt"

// BodyID is a stable handle for a body. Zero means "no body".
type BodyID uint32

// Kind is the role a body plays in the system.
type Kind uint8

const (
	KindStar Kind = iota
	KindPlanet
	KindStation
	KindVessel
)

var kindNames = [...]string{
	KindStar:    "star",
	KindPlanet:  "planet",
	KindStation: "station",
	KindVessel:  "vessel",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a lowercase kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown body kind %q", s)
}

// Body identifies an entity in the celestial hierarchy.
type Body struct {
	ID   BodyID
	Name string
	Kind Kind
}

// GlobalTransform caches the absolute transform, refreshed once per tick
// after all local transforms have been written.
type GlobalTransform struct {
	Transform
}

// Orbit marks a body whose position swings around its parent's origin.
type Orbit struct {
	Speed float64 // radians per tick
}

// Velocity is linear velocity in world units per tick.
type Velocity struct {
	Linear Vec2
}

// RigidBody hands the entity to the physics integrator.
type RigidBody struct {
	HalfExtent float64 // square collision shape
}

// MovementMode is the update path that currently owns a vessel's transform.
type MovementMode uint8

const (
	PhysicsDriven MovementMode = iota
	OrbitDriven
)

func (m MovementMode) String() string {
	if m == OrbitDriven {
		return "orbit"
	}
	return "physics"
}

// DockState is Undocked (zero value) or Docked to Station.
type DockState struct {
	Docked  bool
	Station BodyID
}

func (d DockState) String() string {
	if d.Docked {
		return fmt.Sprintf("docked(%d)", d.Station)
	}
	return "undocked"
}

// Vessel is the player-controllable part of a body.
type Vessel struct {
	Primary bool
	Dock    DockState
	Mode    MovementMode
}

// vesselHalfExtent is the half width of a vessel's square collider.
const vesselHalfExtent = 3.0
