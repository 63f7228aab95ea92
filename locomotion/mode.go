// Package locomotion owns the discrete movement state of a character and the side effects of moving
// between states.
package locomotion

// Mode is the discrete locomotion state. It is the product of walking or sliding with grounded or airborne,
// so no illegal combination can be represented.
type Mode uint8

const (
	Walking Mode = iota
	Sliding
	AirborneBallistic
	AirborneGliding
)

// ModeOf returns the mode for the given posture and contact state.
func ModeOf(sliding, grounded bool) Mode {
	switch {
	case sliding && grounded:
		return Sliding
	case sliding:
		return AirborneGliding
	case grounded:
		return Walking
	default:
		return AirborneBallistic
	}
}

// Sliding reports whether the character is flat on its belly, on the ground or in the air.
func (m Mode) Sliding() bool {
	return m == Sliding || m == AirborneGliding
}

// Grounded reports whether the mode is one of the grounded ones.
func (m Mode) Grounded() bool {
	return m == Walking || m == Sliding
}

// Airborne returns the airborne variant of the mode.
func (m Mode) Airborne() Mode {
	return ModeOf(m.Sliding(), false)
}

// Landed returns the grounded variant of the mode.
func (m Mode) Landed() Mode {
	return ModeOf(m.Sliding(), true)
}

func (m Mode) String() string {
	switch m {
	case Walking:
		return "walking"
	case Sliding:
		return "sliding"
	case AirborneBallistic:
		return "airborne_ballistic"
	case AirborneGliding:
		return "airborne_gliding"
	default:
		return "unknown"
	}
}

// Trigger is an event that may move the machine to another mode.
type Trigger uint8

const (
	TriggerJump Trigger = iota
	TriggerDive
	TriggerGroundLost
	TriggerGroundRegained
	TriggerDiveResolved
)

func (t Trigger) String() string {
	switch t {
	case TriggerJump:
		return "jump"
	case TriggerDive:
		return "dive"
	case TriggerGroundLost:
		return "ground_lost"
	case TriggerGroundRegained:
		return "ground_regained"
	case TriggerDiveResolved:
		return "dive_resolved"
	default:
		return "unknown"
	}
}
