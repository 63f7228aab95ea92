package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/debug"
	"github.com/oomph-ac/waddle/game"
	"github.com/oomph-ac/waddle/locomotion"
	"github.com/oomph-ac/waddle/movement"
	"github.com/oomph-ac/waddle/orient"
	"github.com/oomph-ac/waddle/sensor"
	"github.com/oomph-ac/waddle/trail"
)

// Character is the complete per-instance state of one simulated penguin. A character must only be
// simulated by one goroutine at a time.
type Character struct {
	// Dbg receives the character's debug messages. It may be nil.
	Dbg *debug.Debugger

	opts Options

	position, velocity mgl32.Vec3

	sensor     *sensor.Sensor
	body       *orient.Body
	machine    *locomotion.Machine
	integrator *movement.Integrator
	trails     *trail.Trails

	anim        Animation
	left, right []mgl32.Vec3
	tick        uint64
	// launched is set while the body rises off the ground after a jump or dive hop.
	launched bool
}

// NewCharacter spawns a character at pos facing heading degrees.
func NewCharacter(opts Options, pos mgl32.Vec3, heading float32) *Character {
	c := &Character{
		opts:       opts,
		sensor:     sensor.New(opts.Sensor),
		body:       orient.New(opts.Orient, heading),
		machine:    locomotion.NewMachine(opts.Tuning),
		integrator: movement.NewIntegrator(opts.Movement),
		trails:     trail.New(opts.Trail),
	}
	c.Respawn(pos, heading)
	return c
}

// Respawn resets every piece of per-instance state and places the character at pos. It starts falling at
// gravity speed inside the spawn grace window.
func (c *Character) Respawn(pos mgl32.Vec3, heading float32) {
	c.position = pos
	c.velocity = game.Down.Mul(c.opts.Movement.Gravity)

	c.sensor.Reset()
	c.body.Reset(heading)
	c.machine.Reset()
	c.integrator.Reset()
	c.trails.Reset(pos, c.body.SlideRotation())

	c.anim = Animation{}
	c.tick = 0
	c.launched = false
}

// Position returns the reference point of the character.
func (c *Character) Position() mgl32.Vec3 {
	return c.position
}

// Foot returns the point of the character that rests on the ground.
func (c *Character) Foot() mgl32.Vec3 {
	return c.position.Sub(game.Up.Mul(c.opts.FootOffset))
}

// Velocity ...
func (c *Character) Velocity() mgl32.Vec3 {
	return c.velocity
}

// Mode ...
func (c *Character) Mode() locomotion.Mode {
	return c.machine.Mode()
}

// Grounded returns the debounced contact flag.
func (c *Character) Grounded() bool {
	return c.sensor.Grounded()
}

// Tick returns the number of ticks simulated since the last respawn.
func (c *Character) Tick() uint64 {
	return c.tick
}

// Options returns the options the character was built with.
func (c *Character) Options() Options {
	return c.opts
}
