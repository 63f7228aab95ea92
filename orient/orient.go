// Package orient turns the character's input and velocity into smoothly changing display rotations.
package orient

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/game"
)

// Params are the tunables of the orientation smoother.
type Params struct {
	// TurnSmoothTime is the settling time of the body heading.
	TurnSmoothTime float32
	// AngleSmoothTime is the settling time of the slide pitch and roll.
	AngleSmoothTime float32
	// SlideTiltMinSpeed is the speed above which a sliding body follows the slope or does acrobatics.
	SlideTiltMinSpeed float32
	// AirRotationSpeed is the acrobatic rotation rate in degrees per second.
	AirRotationSpeed float32
	// FlightRotationSlowFactor scales acrobatics while the flap is held.
	FlightRotationSlowFactor float32
	// FlapHeldThreshold is the flap amount above which the flap counts as held.
	FlapHeldThreshold float32
}

// Smoother is the persistent state of one critically damped angle.
type Smoother struct {
	Velocity float32
}

// Step moves current towards target and returns the new angle.
func (s *Smoother) Step(current, target, smoothTime, dt float32) float32 {
	return game.SmoothDampAngle(current, target, &s.Velocity, smoothTime, dt)
}

// Reset clears the accumulated angular velocity.
func (s *Smoother) Reset() {
	s.Velocity = 0
}

// Frame is everything the smoother reads in one tick.
type Frame struct {
	Velocity      mgl32.Vec3
	GroundNormal  mgl32.Vec3
	Grounded      bool
	Sliding       bool
	Move          mgl32.Vec2
	CameraHeading float32
	Flap          float32
	FlapBrake     float32
	DT            float32
}

// Body holds the display orientation of one character. Heading, slide pitch and slide roll are each
// smoothed independently.
type Body struct {
	params Params

	heading, pitch, roll       float32
	headingS, pitchS, rollS    Smoother
	slideRotation, slideYawRot mgl32.Quat
}

// New returns a body facing heading degrees.
func New(params Params, heading float32) *Body {
	b := &Body{params: params}
	b.Reset(heading)
	return b
}

// Reset puts the body upright facing heading and clears every smoother.
func (b *Body) Reset(heading float32) {
	b.heading = game.WrapAngle(heading)
	b.pitch, b.roll = 0, 0
	b.headingS.Reset()
	b.pitchS.Reset()
	b.rollS.Reset()
	b.slideRotation = game.Euler(0, b.heading, 0)
	b.slideYawRot = b.slideRotation
}

// Update advances every smoothed angle by one tick.
func (b *Body) Update(f Frame) {
	velHeading, moving := game.Heading(f.Velocity)
	if !moving {
		velHeading = b.heading
	}

	target, ok := b.headingTarget(f, velHeading, moving)
	if ok {
		b.heading = game.WrapAngle(b.headingS.Step(b.heading, target, b.params.TurnSmoothTime, f.DT))
	}

	switch {
	case f.Sliding && f.Velocity.Len() > b.params.SlideTiltMinSpeed && f.Grounded:
		b.followSlope(f, velHeading)
	case f.Sliding && f.Velocity.Len() > b.params.SlideTiltMinSpeed:
		b.acrobatics(f)
	default:
		b.pitch, b.roll = 0, 0
		b.slideRotation = game.Euler(0, velHeading, 0)
		b.slideYawRot = b.slideRotation
	}
}

// headingTarget returns the heading the body turns towards. Without input while walking, or without
// horizontal velocity while sliding, there is nothing to turn towards.
func (b *Body) headingTarget(f Frame, velHeading float32, moving bool) (float32, bool) {
	if f.Sliding {
		return velHeading, moving
	}
	dir, ok := game.Heading(mgl32.Vec3{f.Move.X(), 0, f.Move.Y()})
	if !ok {
		return 0, false
	}
	return dir + f.CameraHeading, true
}

// followSlope tilts the sliding body so its belly lies on the ground.
func (b *Body) followSlope(f Frame, velHeading float32) {
	flat := game.ProjectOnPlane(f.Velocity, game.Up)
	onSlope := game.ProjectOnPlane(f.Velocity, f.GroundNormal)

	pitchTarget := game.Angle(flat, onSlope)
	if onSlope.Y() > flat.Y() {
		pitchTarget = -pitchTarget
	}
	b.pitch = b.pitchS.Step(b.pitch, pitchTarget, b.params.AngleSmoothTime, f.DT)
	b.slideRotation = game.Euler(b.pitch, velHeading, 0)

	right := game.SafeNormalize(game.RotateY(flat, 90))
	rightOnSlope := game.ProjectOnPlane(right, f.GroundNormal)
	rollTarget := game.Angle(right, rightOnSlope)
	if right.Y() > rightOnSlope.Y() {
		rollTarget = -rollTarget
	}
	b.roll = b.rollS.Step(b.roll, rollTarget, b.params.AngleSmoothTime, f.DT)
	b.slideYawRot = game.Euler(b.pitch, velHeading, b.roll)
}

// acrobatics spins the airborne sliding body in its own frame from the movement and brake input.
func (b *Body) acrobatics(f Frame) {
	mod := b.params.AirRotationSpeed * f.DT
	if f.Flap > b.params.FlapHeldThreshold {
		mod *= b.params.FlightRotationSlowFactor
	}
	in := game.SafeNormalize(mgl32.Vec3{f.Move.X(), 0, f.Move.Y()})
	spin := game.Euler(in.Z()*mod, in.X()*mod, -f.FlapBrake*mod)
	b.slideRotation = b.slideRotation.Mul(spin).Normalize()
}

// Heading returns the smoothed body heading in degrees.
func (b *Body) Heading() float32 {
	return b.heading
}

// Pitch returns the smoothed slide pitch in degrees.
func (b *Body) Pitch() float32 {
	return b.pitch
}

// Roll returns the smoothed slide roll in degrees.
func (b *Body) Roll() float32 {
	return b.roll
}

// Rotation returns the body heading as a rotation around the up axis.
func (b *Body) Rotation() mgl32.Quat {
	return game.Euler(0, b.heading, 0)
}

// SlideRotation returns the rotation of the sliding body, which also drives lift while gliding.
func (b *Body) SlideRotation() mgl32.Quat {
	return b.slideRotation
}

// SlideYawRotation returns the slide rotation including roll.
func (b *Body) SlideYawRotation() mgl32.Quat {
	return b.slideYawRot
}

// BellyUp returns the up vector of the sliding body.
func (b *Body) BellyUp() mgl32.Vec3 {
	return b.slideRotation.Rotate(game.Up)
}
