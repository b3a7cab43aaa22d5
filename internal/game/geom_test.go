package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got Vec2, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, eps, msgAndArgs...)
}

func TestVec2_Rotate(t *testing.T) {
	assertVec(t, Vec2{0, 1}, Vec2{1, 0}.Rotate(math.Pi/2))
	assertVec(t, Vec2{-1, 0}, Vec2{1, 0}.Rotate(math.Pi))
	assert.InDelta(t, 5.0, Vec2{3, 4}.Rotate(1.234).Len(), eps)
}

func TestTransform_Directions(t *testing.T) {
	var tr Transform
	assertVec(t, Vec2{0, 1}, tr.Up())
	assertVec(t, Vec2{-1, 0}, tr.Left())
	assertVec(t, Vec2{1, 0}, tr.Right())

	tr.RotateLocal(math.Pi / 2)
	assertVec(t, Vec2{-1, 0}, tr.Up())
	assertVec(t, Vec2{0, -1}, tr.Left())
}

func TestCompose_RelativeInverse(t *testing.T) {
	parent := Transform{Pos: Vec2{100, -20}, Rot: 0.7}
	abs := Transform{Pos: Vec2{3, 44}, Rot: -1.1}

	local := Relative(parent, abs)
	back := Compose(parent, local)

	assertVec(t, abs.Pos, back.Pos)
	assert.InDelta(t, abs.Rot, back.Rot, eps)

	id := Compose(parent, parent.Inverse())
	assertVec(t, Vec2{}, id.Pos)
	assert.InDelta(t, 0, id.Rot, eps)
}

func TestTransform_RotateAroundThenCompensate(t *testing.T) {
	tr := Transform{Pos: Vec2{10, 0}, Rot: 0.3}
	tr.RotateAround(Vec2{}, math.Pi/2)
	tr.RotateLocal(-math.Pi / 2)

	assertVec(t, Vec2{0, 10}, tr.Pos)
	assert.InDelta(t, 0.3, tr.Rot, eps)
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(2*math.Pi), eps)
	assert.InDelta(t, 3*math.Pi/2, NormalizeAngle(-math.Pi/2), eps)
	assert.InDelta(t, 1, NormalizeAngle(1+4*math.Pi), eps)
}
