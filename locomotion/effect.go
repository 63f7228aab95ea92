package locomotion

import "fmt"

// Flag is a transient animation flag. Flags carry no physics meaning.
type Flag uint8

const (
	FlagJumpPressed Flag = iota
	FlagDivePressed
	FlagSliding
	flagCount
)

func (f Flag) String() string {
	switch f {
	case FlagJumpPressed:
		return "JumpPressed"
	case FlagDivePressed:
		return "DivePressed"
	case FlagSliding:
		return "IsSliding"
	default:
		return "unknown"
	}
}

// Job is a deferred follow-up of a transition.
type Job uint8

const (
	JobClearJumpPressed Job = iota
	JobClearDivePressed
	JobResolveDive
)

func (j Job) String() string {
	switch j {
	case JobClearJumpPressed:
		return "clear_jump_pressed"
	case JobClearDivePressed:
		return "clear_dive_pressed"
	case JobResolveDive:
		return "resolve_dive"
	default:
		return "unknown"
	}
}

// EffectKind enumerates the side effects a transition can ask for.
type EffectKind uint8

const (
	// EffectSetVerticalVelocity replaces the vertical velocity with Value.
	EffectSetVerticalVelocity EffectKind = iota
	// EffectForceAirborne clears the grounded flag immediately.
	EffectForceAirborne
	// EffectSuppressProbes skips ground probing for Ticks ticks.
	EffectSuppressProbes
	// EffectCorrectUnderground lifts the character out of any surface its foot is below.
	EffectCorrectUnderground
	// EffectProjectOnGround removes the velocity component along the ground normal.
	EffectProjectOnGround
	// EffectLandingCheck grades the orientation the character landed in.
	EffectLandingCheck
	// EffectRaiseFlag sets Flag.
	EffectRaiseFlag
	// EffectClearFlag clears Flag.
	EffectClearFlag
	// EffectSchedule runs Job after Delay seconds.
	EffectSchedule
)

// Effect is one side effect of a transition.
type Effect struct {
	Kind  EffectKind
	Value float32
	Ticks int
	Flag  Flag
	Job   Job
	Delay float32
}

func (e Effect) String() string {
	switch e.Kind {
	case EffectSetVerticalVelocity:
		return fmt.Sprintf("set_vy(%.4f)", e.Value)
	case EffectForceAirborne:
		return "force_airborne"
	case EffectSuppressProbes:
		return fmt.Sprintf("suppress_probes(%d)", e.Ticks)
	case EffectCorrectUnderground:
		return "correct_underground"
	case EffectProjectOnGround:
		return "project_on_ground"
	case EffectLandingCheck:
		return "landing_check"
	case EffectRaiseFlag:
		return "raise(" + e.Flag.String() + ")"
	case EffectClearFlag:
		return "clear(" + e.Flag.String() + ")"
	case EffectSchedule:
		return fmt.Sprintf("schedule(%s, %.2fs)", e.Job, e.Delay)
	default:
		return "unknown"
	}
}

func setVerticalVelocity(v float32) Effect { return Effect{Kind: EffectSetVerticalVelocity, Value: v} }
func raise(f Flag) Effect                  { return Effect{Kind: EffectRaiseFlag, Flag: f} }
func clearFlag(f Flag) Effect              { return Effect{Kind: EffectClearFlag, Flag: f} }
func schedule(j Job, delay float32) Effect { return Effect{Kind: EffectSchedule, Job: j, Delay: delay} }
