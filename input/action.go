package input

// Action is a button the simulator reacts to on its press edge.
type Action int

const (
	ActionJump Action = iota
	ActionDive
	ActionCount
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// Buttons turns held button states into press edges for collaborators that poll devices.
type Buttons struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

// Update stores the held state of every action for a new frame.
func (b *Buttons) Update(held [ActionCount]bool) {
	b.Previous = b.Current
	b.Current = held
}

// State returns the temporal state of an action.
func (b *Buttons) State(a Action) ActionState {
	return ActionState{
		Pressed:      b.Current[a],
		JustPressed:  b.Current[a] && !b.Previous[a],
		JustReleased: !b.Current[a] && b.Previous[a],
	}
}

// Apply sets the edge triggered events of s from the current frame.
func (b *Buttons) Apply(s Snapshot) Snapshot {
	s.Jump = b.State(ActionJump).JustPressed
	s.Dive = b.State(ActionDive).JustPressed
	return s
}
