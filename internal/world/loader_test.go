package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const solJSON = `{
  "name": "Sol",
  "bodies": [
    {"name": "ISS", "kind": "station", "parent": "Earth", "speed": 0.01, "position": [25, 0]},
    {"name": "Earth", "kind": "planet", "parent": "Sol", "speed": 0.001, "position": [100, 0]},
    {"name": "Sol", "kind": "star", "position": [0, 0]}
  ],
  "vessels": [
    {"name": "Vessel", "position": [50, 0], "primary": true}
  ]
}`

func TestLoadUniverse(t *testing.T) {
	u, err := LoadUniverse([]byte(solJSON))
	require.NoError(t, err)

	assert.Equal(t, "Sol", u.Name)
	require.Len(t, u.Bodies, 3)
	assert.Equal(t, "Earth", u.Bodies[0].Parent)
	assert.InDelta(t, 0.01, u.Bodies[0].Speed, 1e-12)
	assert.Equal(t, [2]float64{25, 0}, u.Bodies[0].Position)
	require.Len(t, u.Vessels, 1)
	assert.True(t, u.Vessels[0].Primary)
}

func TestLoadUniverse_BadJSON(t *testing.T) {
	_, err := LoadUniverse([]byte(`{"bodies": [`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		u    Universe
	}{
		{"unknown kind", Universe{Bodies: []BodySpec{{Name: "X", Kind: "comet"}}}},
		{"vessel kind on a body", Universe{Bodies: []BodySpec{{Name: "X", Kind: "vessel"}}}},
		{"empty name", Universe{Bodies: []BodySpec{{Kind: "star"}}}},
		{"duplicate name", Universe{Bodies: []BodySpec{
			{Name: "X", Kind: "star"},
			{Name: "X", Kind: "planet"},
		}}},
		{"unknown parent", Universe{Bodies: []BodySpec{{Name: "X", Kind: "planet", Parent: "Nowhere"}}}},
		{"self parent", Universe{Bodies: []BodySpec{{Name: "X", Kind: "planet", Parent: "X"}}}},
		{"cycle", Universe{Bodies: []BodySpec{
			{Name: "A", Kind: "planet", Parent: "C"},
			{Name: "B", Kind: "planet", Parent: "A"},
			{Name: "C", Kind: "planet", Parent: "B"},
		}}},
		{"two primaries", Universe{Vessels: []VesselSpec{
			{Name: "One", Primary: true},
			{Name: "Two", Primary: true},
		}}},
		{"unnamed vessel", Universe{Vessels: []VesselSpec{{}}}},
		{"vessel named like a body", Universe{
			Bodies:  []BodySpec{{Name: "ISS", Kind: "station"}},
			Vessels: []VesselSpec{{Name: "ISS"}},
		}},
		{"duplicate vessel name", Universe{Vessels: []VesselSpec{
			{Name: "Drone"},
			{Name: "Drone"},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.u.Validate(), ErrInvalidUniverse)
		})
	}
}

func TestValidate_NoPrimaryIsFine(t *testing.T) {
	u := Universe{
		Bodies:  []BodySpec{{Name: "Sun", Kind: "star"}},
		Vessels: []VesselSpec{{Name: "Drone"}},
	}
	assert.NoError(t, u.Validate())
}

func TestOrdered_ParentsFirst(t *testing.T) {
	u, err := LoadUniverse([]byte(solJSON))
	require.NoError(t, err)

	bodies, err := u.Ordered()
	require.NoError(t, err)
	var names []string
	for _, b := range bodies {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"Sol", "Earth", "ISS"}, names)
}

func TestOrdered_KeepsFileOrderForRoots(t *testing.T) {
	u := Universe{Bodies: []BodySpec{
		{Name: "Beta", Kind: "star"},
		{Name: "Alpha", Kind: "star"},
	}}
	bodies, err := u.Ordered()
	require.NoError(t, err)
	require.Len(t, bodies, 2)
	assert.Equal(t, "Beta", bodies[0].Name)
	assert.Equal(t, "Alpha", bodies[1].Name)
}
