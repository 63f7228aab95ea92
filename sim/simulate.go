// Package sim runs the per-tick locomotion pipeline of a character against static terrain.
package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/assert"
	"github.com/oomph-ac/waddle/debug"
	"github.com/oomph-ac/waddle/game"
	"github.com/oomph-ac/waddle/input"
	"github.com/oomph-ac/waddle/locomotion"
	"github.com/oomph-ac/waddle/movement"
	"github.com/oomph-ac/waddle/orient"
	"github.com/oomph-ac/waddle/sensor"
	"github.com/oomph-ac/waddle/terrain"
)

// Simulator steps characters against one terrain. It holds no per-character state, so a single
// Simulator may step many characters from many goroutines.
type Simulator struct {
	terrain terrain.Source
}

// New returns a simulator for the given terrain.
func New(src terrain.Source) *Simulator {
	assert.NotNil(src, "terrain")
	return &Simulator{terrain: src}
}

// Simulate advances c by one tick of dt seconds using the input in.
func (s *Simulator) Simulate(c *Character, in input.Snapshot, dt float32) Result {
	if !(dt > 0) || math32.IsInf(dt, 1) {
		dt = 0
	}
	in = in.Sanitized()
	c.tick++
	var ev Events
	if dt == 0 {
		// No time passes, so neither the contact history nor any timer may move.
		return c.result(ev)
	}

	c.Dbg.Notify(debug.ModeLocomotion, true, "BEGIN tick %d (mode=%v, pos=%v, vel=%v)", c.tick, c.machine.Mode(), c.position, c.velocity)
	defer func() {
		c.Dbg.Notify(debug.ModeLocomotion, true, "END tick %d (mode=%v, pos=%v, vel=%v)", c.tick, c.machine.Mode(), c.position, c.velocity)
	}()

	// Deferred jobs run before anything else in the tick.
	for _, e := range c.machine.Advance(dt, c.sensor.Airtime()) {
		if e.Kind == locomotion.EffectSetVerticalVelocity {
			ev.Hopped = true
		}
		s.apply(c, e, &ev)
	}

	if in.Jump {
		effects := c.machine.Fire(locomotion.TriggerJump, c.sensor.Airtime())
		ev.Jumped = len(effects) > 0
		s.applyAll(c, effects, &ev)
		c.Dbg.Notify(debug.ModeLocomotion, ev.Jumped, "jump force applied: %v", c.velocity)
	}
	if in.Dive {
		before, pending := c.machine.Mode(), c.machine.DivePending()
		s.applyAll(c, c.machine.Fire(locomotion.TriggerDive, c.sensor.Airtime()), &ev)
		ev.Dived = !pending && c.machine.DivePending()
		ev.SlideCancelled = before == locomotion.Sliding && c.machine.Mode() == locomotion.Walking
		c.Dbg.Notify(debug.ModeLocomotion, ev.Dived, "dive started")
		c.Dbg.Notify(debug.ModeLocomotion, ev.SlideCancelled, "slide cancelled")
	}

	s.senseGround(c, dt, &ev)

	if !c.sensor.Grounded() {
		c.velocity = c.integrator.ApplyGravity(c.velocity, dt)
	}

	moveDir := in.MoveDirection()
	visualDiff := movement.SteerDifference(c.velocity, moveDir)

	c.body.Update(orient.Frame{
		Velocity:      c.velocity,
		GroundNormal:  c.sensor.Normal(),
		Grounded:      c.sensor.Grounded(),
		Sliding:       c.machine.Mode().Sliding(),
		Move:          in.Move,
		CameraHeading: in.CameraHeading,
		Flap:          in.Flap,
		FlapBrake:     in.FlapBrake,
		DT:            dt,
	})
	c.Dbg.Notify(debug.ModeOrientation, true, "heading=%.2f pitch=%.2f roll=%.2f", c.body.Heading(), c.body.Pitch(), c.body.Roll())

	out := c.integrator.Step(movement.Frame{
		Mode:          c.machine.Mode(),
		Velocity:      c.velocity,
		GroundNormal:  c.sensor.Normal(),
		MoveDir:       moveDir,
		Flap:          in.Flap,
		Airtime:       c.sensor.Airtime(),
		SlideRotation: c.body.SlideRotation(),
		DT:            dt,
	})
	c.velocity = out.Velocity
	ev.Pushed, ev.Braked, ev.Clamped = out.Pushed, out.Braked, out.Clamped
	c.Dbg.Notify(debug.ModeMovement, out.Braked, "flap brake applied (vel=%v)", c.velocity)
	c.Dbg.Notify(debug.ModeMovement, out.Pushed, "push applied (vel=%v)", c.velocity)
	c.Dbg.Notify(debug.ModeMovement, out.Gliding, "glide force added: %v", out.Added)
	c.Dbg.Notify(debug.ModeMovement, out.Turn != out.Difference, "turn clamped to %.3f (wanted %.3f)", out.Turn, out.Difference)
	c.Dbg.Notify(debug.ModeMovement, out.Clamped, "velocity clamped to max speed")

	s.updateTrails(c, in)

	c.position = c.position.Add(c.velocity.Mul(dt))
	ev.Corrected = s.correctUnderground(c)
	c.Dbg.Notify(debug.ModeSensor, ev.Corrected, "corrected underground foot (pos=%v)", c.position)

	c.animate(in, moveDir, visualDiff)
	return c.result(ev)
}

// senseGround runs the ground sensor, snaps the foot onto the contact and feeds debounced transitions to
// the state machine.
func (s *Simulator) senseGround(c *Character, dt float32, ev *Events) {
	r := c.sensor.Update(s.terrain, c.position, c.Foot(), dt)
	if !r.Sampled {
		c.Dbg.Notify(debug.ModeSensor, true, "probing suppressed (%d ticks left)", c.sensor.Suppressed())
		return
	}
	if c.launched && c.velocity.Dot(c.sensor.Normal()) <= 0 {
		c.launched = false
	}
	// A body launched off the ground is only pushed out of it, never pulled back down.
	if r.Hit && (r.SnapDelta > 0 || !c.launched) {
		c.position[1] += r.SnapDelta
	}
	c.Dbg.Notify(debug.ModeSensor, r.Hit, "hit at %v (normal=%v, snap=%.4f)", r.Contact.Point, r.Contact.Normal, r.SnapDelta)

	switch r.Transition {
	case sensor.TransitionLanded:
		ev.Landed = true
		c.launched = false
		s.applyAll(c, c.machine.Fire(locomotion.TriggerGroundRegained, c.sensor.Airtime()), ev)
	case sensor.TransitionLeft:
		ev.LeftGround = true
		s.applyAll(c, c.machine.Fire(locomotion.TriggerGroundLost, c.sensor.Airtime()), ev)
	}
	c.Dbg.Notify(debug.ModeSensor, r.Transition != sensor.TransitionNone, "ground transition: %v", r.Transition)
}

func (s *Simulator) applyAll(c *Character, effects []locomotion.Effect, ev *Events) {
	for _, e := range effects {
		s.apply(c, e, ev)
	}
}

// apply performs one physical effect of a state transition.
func (s *Simulator) apply(c *Character, e locomotion.Effect, ev *Events) {
	c.Dbg.Notify(debug.ModeLocomotion, true, "effect %v", e)
	switch e.Kind {
	case locomotion.EffectSetVerticalVelocity:
		c.velocity[1] = e.Value
		c.launched = true
	case locomotion.EffectForceAirborne:
		c.sensor.ForceAirborne()
	case locomotion.EffectSuppressProbes:
		c.sensor.Suppress(e.Ticks)
	case locomotion.EffectCorrectUnderground:
		ev.Corrected = s.correctUnderground(c) || ev.Corrected
	case locomotion.EffectProjectOnGround:
		c.velocity = game.ProjectOnPlane(c.velocity, c.sensor.Normal())
	case locomotion.EffectLandingCheck:
		ev.LandingAngle = game.Angle(c.sensor.Normal(), c.body.BellyUp())
		ev.NiceLanding = ev.LandingAngle < c.opts.NiceLandingAngle
		c.Dbg.Notify(debug.ModeLocomotion, ev.NiceLanding, "nice landing (%.1f degrees)", ev.LandingAngle)
	}
}

// correctUnderground casts a short probe up from the foot and lifts the character onto the first upward
// facing surface it crosses. It reports whether the character was moved.
func (s *Simulator) correctUnderground(c *Character) bool {
	foot := c.Foot()
	hit, ok := s.terrain.Raycast(foot, foot.Add(game.Up.Mul(c.opts.Sensor.Probe.Length)))
	if !ok || hit.Normal.Y() <= 0 {
		return false
	}
	d := hit.Point.Sub(foot)
	c.position = c.position.Add(d)
	return d.LenSqr() > game.Epsilon
}

// updateTrails samples the wing tips while gliding with the flap held, and collapses the trails otherwise.
func (s *Simulator) updateTrails(c *Character, in input.Snapshot) {
	if c.machine.Mode() == locomotion.AirborneGliding && in.Flap > c.opts.Orient.FlapHeldThreshold {
		sampled := c.trails.Sample(c.position, c.body.SlideRotation())
		c.Dbg.Notify(debug.ModeTrail, sampled, "trail sampled at %v", c.position)
		return
	}
	c.trails.Collapse(c.position, c.body.SlideRotation())
}

// animate updates the animation parameters. The axes are only driven while walking on the ground or
// sliding, and keep their values otherwise.
func (c *Character) animate(in input.Snapshot, moveDir mgl32.Vec3, visualDiff float32) {
	a := &c.anim
	a.JumpPressed = c.machine.Flag(locomotion.FlagJumpPressed)
	a.DivePressed = c.machine.Flag(locomotion.FlagDivePressed)
	a.IsSliding = c.machine.Flag(locomotion.FlagSliding)
	a.OnGround = c.sensor.Grounded()

	switch mode := c.machine.Mode(); {
	case mode == locomotion.Walking:
		a.ForwardAxis = moveDir.Len()
		a.HorizontalAxis = AnimAxis(in.Move.X())
	case mode.Sliding():
		a.ForwardAxis = AnimAxis(in.Move.Y())
		a.HorizontalAxis = AnimAxis(FoldVisualDifference(visualDiff) / 90)
		a.FlapAmount = in.Flap
	}
}

// AnimAxis maps a value in [-1, 1] to [0, 1].
func AnimAxis(v float32) float32 {
	return (v + 1) / 2
}

// FoldVisualDifference folds a steering difference past 90 degrees either way back towards zero, so a
// target behind the character reads as a gentle lean instead of a full one.
func FoldVisualDifference(d float32) float32 {
	switch {
	case d > 90:
		return 90 - (d-90)*2
	case d < -90:
		return -90 - (d+90)*2
	default:
		return d
	}
}
