package input

import "github.com/go-gl/mathgl/mgl32"

// Step is a stretch of constant input in a Script.
type Step struct {
	Ticks     int        `toml:"ticks" yaml:"ticks"`
	Move      []float32  `toml:"move" yaml:"move"`
	Camera    float32    `toml:"camera" yaml:"camera"`
	Flap      float32    `toml:"flap" yaml:"flap"`
	FlapBrake float32    `toml:"flap_brake" yaml:"flap_brake"`
	// HoldJump and HoldDive keep the button down for the whole step, which presses it on its first tick.
	HoldJump bool `toml:"jump" yaml:"jump"`
	HoldDive bool `toml:"dive" yaml:"dive"`
}

// Script replays a fixed sequence of steps, standing in for an input device in headless runs.
type Script struct {
	Steps []Step `toml:"steps" yaml:"steps"`

	buttons Buttons
	step    int
	elapsed int
}

// Len returns the total number of ticks in the script.
func (s *Script) Len() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Ticks
	}
	return n
}

// Done reports whether every step has been played.
func (s *Script) Done() bool {
	return s.step >= len(s.Steps)
}

// Next returns the snapshot of the next tick. Once done it returns an idle snapshot facing the last camera
// heading.
func (s *Script) Next() Snapshot {
	for !s.Done() && s.elapsed >= s.Steps[s.step].Ticks {
		s.step++
		s.elapsed = 0
		// Release everything between steps so consecutive presses still produce edges.
		s.buttons.Update([ActionCount]bool{})
	}
	if s.Done() {
		var camera float32
		if len(s.Steps) > 0 {
			camera = s.Steps[len(s.Steps)-1].Camera
		}
		s.buttons.Update([ActionCount]bool{})
		return Snapshot{CameraHeading: camera}
	}

	st := s.Steps[s.step]
	s.elapsed++

	var move mgl32.Vec2
	copy(move[:], st.Move)

	var held [ActionCount]bool
	held[ActionJump], held[ActionDive] = st.HoldJump, st.HoldDive
	s.buttons.Update(held)
	return s.buttons.Apply(Snapshot{
		Move:          move,
		CameraHeading: st.Camera,
		Flap:          st.Flap,
		FlapBrake:     st.FlapBrake,
	}).Sanitized()
}

// Rewind restarts the script from its first step.
func (s *Script) Rewind() {
	s.step, s.elapsed = 0, 0
	s.buttons = Buttons{}
}
