package locomotion

import "github.com/chewxy/math32"

// Tuning holds the numbers the transition table depends on.
type Tuning struct {
	Gravity    float32
	JumpHeight float32
	// AirtimeDelay is how long after leaving the ground a sliding character may still jump.
	AirtimeDelay float32
	// JumpGraceTicks is the number of ticks ground probing is skipped after a jump.
	JumpGraceTicks int
	// FlagHoldSeconds is how long the pressed animation flags stay raised.
	FlagHoldSeconds float32
	// DiveDelaySeconds is the delay between a dive and the resulting hop.
	DiveDelaySeconds float32
}

// JumpSpeed is the initial vertical speed that reaches JumpHeight under Gravity.
func (t Tuning) JumpSpeed() float32 {
	return math32.Sqrt(2 * t.Gravity * t.JumpHeight)
}

// DiveHopSpeed is the vertical speed of the small hop that starts a slide.
func (t Tuning) DiveHopSpeed() float32 {
	return math32.Sqrt(t.JumpHeight * t.Gravity)
}

// Conditions are the parts of the character state that some transitions are gated on.
type Conditions struct {
	// Airtime is the time since the ground was last probed successfully.
	Airtime float32
	// DivePending is true while a dive waits for its delayed hop.
	DivePending bool
}

// Transition returns the mode that follows mode when trigger fires, and the side effects of the move.
// Triggers that do not apply in mode leave it unchanged and produce no effects.
func Transition(mode Mode, trigger Trigger, cond Conditions, t Tuning) (Mode, []Effect) {
	switch trigger {
	case TriggerJump:
		if !mode.Grounded() && !(mode.Sliding() && cond.Airtime < t.AirtimeDelay) {
			return mode, nil
		}
		return mode.Airborne(), []Effect{
			raise(FlagJumpPressed),
			schedule(JobClearJumpPressed, t.FlagHoldSeconds),
			{Kind: EffectCorrectUnderground},
			setVerticalVelocity(t.JumpSpeed()),
			{Kind: EffectForceAirborne},
			{Kind: EffectSuppressProbes, Ticks: t.JumpGraceTicks},
		}
	case TriggerDive:
		switch {
		case !mode.Sliding() && cond.DivePending:
			return mode, nil
		case !mode.Sliding():
			return mode, []Effect{
				raise(FlagDivePressed),
				raise(FlagSliding),
				schedule(JobResolveDive, t.DiveDelaySeconds),
				schedule(JobClearDivePressed, t.FlagHoldSeconds),
			}
		case mode == Sliding:
			return Walking, []Effect{clearFlag(FlagSliding)}
		default:
			// A gliding slide can only be cancelled after landing.
			return mode, nil
		}
	case TriggerDiveResolved:
		var effects []Effect
		if mode.Grounded() {
			effects = append(effects, setVerticalVelocity(t.DiveHopSpeed()))
		}
		return ModeOf(true, mode.Grounded()), append(effects, raise(FlagSliding))
	case TriggerGroundLost:
		return mode.Airborne(), nil
	case TriggerGroundRegained:
		if mode.Grounded() {
			return mode, nil
		}
		return mode.Landed(), []Effect{{Kind: EffectLandingCheck}, {Kind: EffectProjectOnGround}}
	}
	return mode, nil
}
