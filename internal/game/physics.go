package game

// Integrator resolves velocity into position for bodies under physics control.
// The real rigid-body engine lives outside the simulation core; this is the
// seam it plugs into.
type Integrator interface {
	Integrate(t *Transform, v *Velocity, rb *RigidBody)
}

// DriftIntegrator is a minimal Newtonian integrator: optional drag, optional
// speed cap, then position += velocity once per tick.
type DriftIntegrator struct {
	Drag     float64 // velocity multiplier per tick (1.0 = none)
	MaxSpeed float64 // velocity magnitude cap (0 = uncapped)
}

// Integrate advances one body by one tick.
func (d DriftIntegrator) Integrate(t *Transform, v *Velocity, _ *RigidBody) {
	if d.Drag > 0 && d.Drag != 1 {
		v.Linear = v.Linear.Scale(d.Drag)
	}
	if d.MaxSpeed > 0 {
		if speed := v.Linear.Len(); speed > d.MaxSpeed {
			v.Linear = v.Linear.Scale(d.MaxSpeed / speed)
		}
	}
	t.Pos = t.Pos.Add(v.Linear)
}

// integratePhysics hands every rigid body to the integrator. Only free-flying
// vessels carry a RigidBody, and they are roots, so local == absolute.
func (s *bodyStore) integratePhysics(in Integrator) {
	query := s.physicsFilter.Query()
	for query.Next() {
		t, v, rb := query.Get()
		in.Integrate(t, v, rb)
	}
}
