package game

import "math"

// Vec2 is a point or direction in the simulation plane.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns the vector magnitude.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the polar angle of v in (-pi, pi].
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Transform is a position plus a rotation about the body's own origin.
// For child bodies it is relative to the parent; for roots it is absolute.
type Transform struct {
	Pos Vec2
	Rot float64 // radians, counter-clockwise
}

// Compose returns parent ∘ local: local expressed in the frame that parent lives in.
func Compose(parent, local Transform) Transform {
	return Transform{
		Pos: parent.Pos.Add(local.Pos.Rotate(parent.Rot)),
		Rot: parent.Rot + local.Rot,
	}
}

// Inverse returns the transform that undoes t, so Compose(t, t.Inverse())
// is the identity.
func (t Transform) Inverse() Transform {
	return Transform{
		Pos: t.Pos.Scale(-1).Rotate(-t.Rot),
		Rot: -t.Rot,
	}
}

// Relative returns the local transform that, composed with parent, yields abs.
func Relative(parent, abs Transform) Transform {
	return Compose(parent.Inverse(), abs)
}

// RotateAround swings the transform around point by angle. Like a rigid
// rotation it turns the orientation by the same angle.
func (t *Transform) RotateAround(point Vec2, angle float64) {
	t.Pos = point.Add(t.Pos.Sub(point).Rotate(angle))
	t.Rot += angle
}

// RotateLocal spins the transform about its own origin.
func (t *Transform) RotateLocal(angle float64) {
	t.Rot += angle
}

// Up is the forward unit vector (+Y rotated by the orientation).
func (t Transform) Up() Vec2 { return Vec2{0, 1}.Rotate(t.Rot) }

// Left is the port-side unit vector.
func (t Transform) Left() Vec2 { return Vec2{-1, 0}.Rotate(t.Rot) }

// Right is the starboard unit vector.
func (t Transform) Right() Vec2 { return Vec2{1, 0}.Rotate(t.Rot) }

// NormalizeAngle wraps a into [0, 2pi).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
