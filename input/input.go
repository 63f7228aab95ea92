// Package input defines the per-tick input the simulator consumes.
package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/game"
)

// Snapshot is the input of one tick. It is only valid for the tick it was taken in.
type Snapshot struct {
	// Move is the movement axis, x to the right and y forward, each in [-1, 1].
	Move mgl32.Vec2
	// CameraHeading is the yaw of the camera in degrees.
	CameraHeading float32
	// Flap is the flap axis in [0, 1].
	Flap float32
	// FlapBrake is the flap brake axis in [-1, 1].
	FlapBrake float32
	// Jump and Dive are true only on the tick the button went down.
	Jump bool
	Dive bool
}

// Sanitized returns a copy with every axis clamped to its range and NaN replaced by zero.
func (s Snapshot) Sanitized() Snapshot {
	s.Move = mgl32.Vec2{
		mgl32.Clamp(game.SanitizeFloat(s.Move.X()), -1, 1),
		mgl32.Clamp(game.SanitizeFloat(s.Move.Y()), -1, 1),
	}
	s.CameraHeading = game.WrapAngle(game.SanitizeFloat(s.CameraHeading))
	s.Flap = mgl32.Clamp(game.SanitizeFloat(s.Flap), 0, 1)
	s.FlapBrake = mgl32.Clamp(game.SanitizeFloat(s.FlapBrake), -1, 1)
	return s
}

// MoveDirection returns the unit input direction rotated into world space by the camera heading, or zero
// without input.
func (s Snapshot) MoveDirection() mgl32.Vec3 {
	local := game.SafeNormalize(mgl32.Vec3{s.Move.X(), 0, s.Move.Y()})
	return game.RotateY(local, s.CameraHeading)
}
