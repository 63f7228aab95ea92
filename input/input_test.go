package input

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitized(t *testing.T) {
	s := Snapshot{
		Move:          mgl32.Vec2{2, math32.NaN()},
		CameraHeading: 540,
		Flap:          -1,
		FlapBrake:     math32.Inf(1),
	}.Sanitized()

	assert.Equal(t, mgl32.Vec2{1, 0}, s.Move)
	assert.InDelta(t, 180, s.CameraHeading, 1e-4)
	assert.Zero(t, s.Flap)
	assert.Zero(t, s.FlapBrake)
}

func TestMoveDirection(t *testing.T) {
	s := Snapshot{Move: mgl32.Vec2{0, 1}, CameraHeading: 90}
	assert.True(t, s.MoveDirection().ApproxEqualThreshold(game.Right, 1e-5))

	diag := Snapshot{Move: mgl32.Vec2{1, 1}}
	assert.InDelta(t, 1, diag.MoveDirection().Len(), 1e-5)

	assert.Equal(t, mgl32.Vec3{}, Snapshot{CameraHeading: 45}.MoveDirection())
}

func TestButtonsEdges(t *testing.T) {
	var b Buttons
	b.Update([ActionCount]bool{true, false})
	require.True(t, b.State(ActionJump).JustPressed)

	b.Update([ActionCount]bool{true, false})
	require.False(t, b.State(ActionJump).JustPressed)
	require.True(t, b.State(ActionJump).Pressed)

	b.Update([ActionCount]bool{false, true})
	require.True(t, b.State(ActionJump).JustReleased)
	s := b.Apply(Snapshot{})
	require.False(t, s.Jump)
	require.True(t, s.Dive)
}

func TestScriptPlaysSteps(t *testing.T) {
	s := &Script{Steps: []Step{
		{Ticks: 2, Move: []float32{0, 1}},
		{Ticks: 3, HoldDive: true, Flap: 0.7},
		{Ticks: 1, HoldDive: true},
	}}
	require.Equal(t, 6, s.Len())

	var dives []bool
	for i := 0; i < 6; i++ {
		dives = append(dives, s.Next().Dive)
	}
	assert.Equal(t, []bool{false, false, true, false, false, true}, dives)
	assert.True(t, s.Done())
	assert.Equal(t, Snapshot{}, s.Next())

	s.Rewind()
	first := s.Next()
	assert.Equal(t, mgl32.Vec2{0, 1}, first.Move)
}
