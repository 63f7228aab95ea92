// Package movement integrates the velocity of a character for its current locomotion mode.
package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/game"
	"github.com/oomph-ac/waddle/locomotion"
)

// Frame is everything the integrator reads in one tick.
type Frame struct {
	Mode     locomotion.Mode
	Velocity mgl32.Vec3
	// GroundNormal is the normal of the last ground contact. It is only meaningful while grounded.
	GroundNormal mgl32.Vec3
	// MoveDir is the camera relative input direction in world space. It is either unit length or zero.
	MoveDir mgl32.Vec3
	Flap    float32
	Airtime float32
	// SlideRotation is the orientation of the sliding body, used to compute lift.
	SlideRotation mgl32.Quat
	DT            float32
}

// Outcome is the result of one integration step.
type Outcome struct {
	Velocity mgl32.Vec3
	// Difference is the signed yaw from the sliding velocity to the desired direction, in degrees.
	Difference float32
	// Turn is the yaw actually applied to the sliding velocity, in degrees.
	Turn    float32
	Braked  bool
	Pushed  bool
	Gliding bool
	// Added is the force added by lift and drag while gliding.
	Added   mgl32.Vec3
	Clamped bool
}

// Integrator updates the velocity of one character. It remembers whether the flap was held in the last
// sliding tick so that releasing it can push.
type Integrator struct {
	params   Params
	flapHeld bool
}

// NewIntegrator ...
func NewIntegrator(p Params) *Integrator {
	return &Integrator{params: p}
}

// Params returns the tunables of the integrator.
func (i *Integrator) Params() Params {
	return i.params
}

// Reset forgets the flap edge state.
func (i *Integrator) Reset() {
	i.flapHeld = false
}

// ApplyGravity accelerates v downwards for dt seconds.
func (i *Integrator) ApplyGravity(v mgl32.Vec3, dt float32) mgl32.Vec3 {
	return v.Add(game.Down.Mul(i.params.Gravity * dt))
}

// Step runs the mode specific velocity update, then clamps the result to the maximum speed.
func (i *Integrator) Step(f Frame) Outcome {
	ctx := newCtx(i, f)
	defer putCtx(ctx)

	if f.Mode.Sliding() {
		ctx.handleFlap()
	}
	switch f.Mode {
	case locomotion.Walking:
		ctx.walk()
	case locomotion.Sliding:
		ctx.slide()
	case locomotion.AirborneGliding:
		if f.Flap > i.params.GlideThreshold {
			ctx.glide()
		}
	}

	if ctx.vel.Len() > i.params.MaxSpeed {
		ctx.vel = game.ClampMagnitude(ctx.vel, i.params.MaxSpeed)
		ctx.out.Clamped = true
	}
	ctx.out.Velocity = sanitize(ctx.vel)
	return ctx.out
}

type stepContext struct {
	integrator *Integrator
	frame      Frame

	vel    mgl32.Vec3
	doPush bool
	out    Outcome
}

// handleFlap brakes while the flap is held just after leaving the ground, and arms a push when it is
// released within the same window.
func (ctx *stepContext) handleFlap() {
	p, f := ctx.integrator.params, ctx.frame
	held := f.Flap > p.FlapHeldThreshold
	recent := f.Airtime < p.AirtimeDelay
	if held && recent {
		ctx.vel = ctx.vel.Sub(ctx.vel.Mul(p.FlapSlowEffect * f.DT))
		ctx.out.Braked = true
	}
	if ctx.integrator.flapHeld && !held && recent {
		ctx.doPush = true
	}
	ctx.integrator.flapHeld = held
}

func (ctx *stepContext) walk() {
	p, f := ctx.integrator.params, ctx.frame
	target := f.MoveDir.Mul(p.WaddleSpeed).Add(ctx.vel.Mul(p.WalkCarryOver))
	ctx.vel = game.ProjectOnPlane(target, f.GroundNormal)
}

func (ctx *stepContext) slide() {
	p, f := ctx.integrator.params, ctx.frame

	ctx.out.Difference = SteerDifference(ctx.vel, f.MoveDir)
	desired := game.RotateY(ctx.vel, ctx.out.Difference)
	limit := p.SlideTurnRate * f.DT
	if limit < game.Angle(ctx.vel, desired) {
		if ctx.out.Difference < 0 {
			limit = -limit
		}
		ctx.vel = game.RotateY(ctx.vel, limit)
		ctx.out.Turn = limit
	} else {
		ctx.vel = desired
		ctx.out.Turn = ctx.out.Difference
	}

	if ctx.doPush {
		ctx.vel = ctx.vel.Add(game.SafeNormalize(ctx.vel).Mul(p.PushForce))
		ctx.out.Pushed = true
	}

	weight := game.Down.Mul(p.Weight * p.Gravity)
	pull := game.ProjectOnPlane(weight, f.GroundNormal).Mul(p.SnowFriction)
	ctx.vel = ctx.vel.Add(pull.Mul(f.DT))
}

// glide adds lift along the body and drag reflected off its belly. Lift never pushes an ascending body
// further up.
func (ctx *stepContext) glide() {
	p, f := ctx.integrator.params, ctx.frame
	normal := f.SlideRotation.Rotate(game.Down)
	reflected := game.Reflect(ctx.vel, normal).Mul(p.AirResistance)

	liftMagnitude := game.ProjectOnPlane(ctx.vel.Mul(-1), normal).Len() * p.LiftFactor
	lift := f.SlideRotation.Rotate(liftAxis).Mul(liftMagnitude)

	added := lift.Add(reflected.Mul(f.DT))
	if ctx.vel.Y() > 0 && added.Y() > 0 {
		added[1] = 0
	}
	ctx.vel = ctx.vel.Add(added.Mul(f.DT))
	ctx.out.Gliding = true
	ctx.out.Added = added
}

var liftAxis = game.SafeNormalize(mgl32.Vec3{1, 0, 1})

// SteerDifference returns the signed yaw in degrees that turns the horizontal part of vel onto dir. It is
// zero when either has no horizontal direction.
func SteerDifference(vel, dir mgl32.Vec3) float32 {
	from, ok := game.Heading(vel)
	if !ok {
		return 0
	}
	to, ok := game.Heading(dir)
	if !ok {
		return 0
	}
	return game.DeltaAngle(from, to)
}

func sanitize(v mgl32.Vec3) mgl32.Vec3 {
	if math32.IsNaN(v[0]) || math32.IsNaN(v[1]) || math32.IsNaN(v[2]) {
		return mgl32.Vec3{}
	}
	return v
}
