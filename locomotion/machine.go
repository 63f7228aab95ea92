package locomotion

// Machine is the locomotion state of one character. It applies the flag and scheduling effects of its own
// transitions and hands every physical effect back to the caller.
type Machine struct {
	tuning    Tuning
	mode      Mode
	flags     [flagCount]bool
	scheduler *Scheduler
}

// NewMachine returns a machine in its spawn state.
func NewMachine(t Tuning) *Machine {
	m := &Machine{tuning: t, scheduler: NewScheduler()}
	m.Reset()
	return m
}

// Reset returns the machine to its spawn state: falling, not sliding, no flags raised and nothing pending.
// The mode becomes Walking on the first debounced landing.
func (m *Machine) Reset() {
	m.mode = AirborneBallistic
	m.flags = [flagCount]bool{}
	m.scheduler.Clear()
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Flag returns the state of an animation flag.
func (m *Machine) Flag(f Flag) bool {
	return m.flags[f]
}

// DivePending reports whether a dive is waiting for its delayed hop.
func (m *Machine) DivePending() bool {
	return m.scheduler.Pending(JobResolveDive)
}

// Tuning returns the numbers the machine was built with.
func (m *Machine) Tuning() Tuning {
	return m.tuning
}

// Fire runs trigger against the current mode and returns the physical effects the caller must apply.
func (m *Machine) Fire(trigger Trigger, airtime float32) []Effect {
	next, effects := Transition(m.mode, trigger, Conditions{Airtime: airtime, DivePending: m.DivePending()}, m.tuning)
	m.mode = next
	return m.absorb(effects)
}

// Advance runs the deferred jobs that come due after dt seconds, before anything else happens in the tick.
// A delayed dive that finds the character airborne skips its hop but still applies its flags.
func (m *Machine) Advance(dt, airtime float32) []Effect {
	var out []Effect
	for _, job := range m.scheduler.Advance(dt) {
		switch job {
		case JobClearJumpPressed:
			m.flags[FlagJumpPressed] = false
		case JobClearDivePressed:
			m.flags[FlagDivePressed] = false
		case JobResolveDive:
			out = append(out, m.Fire(TriggerDiveResolved, airtime)...)
		}
	}
	return out
}

// absorb applies flag and scheduling effects and returns the rest.
func (m *Machine) absorb(effects []Effect) []Effect {
	physical := effects[:0:0]
	for _, e := range effects {
		switch e.Kind {
		case EffectRaiseFlag:
			m.flags[e.Flag] = true
		case EffectClearFlag:
			m.flags[e.Flag] = false
		case EffectSchedule:
			m.scheduler.Schedule(e.Job, e.Delay)
		default:
			physical = append(physical, e)
		}
	}
	return physical
}
