package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/locomotion"
)

// Animation holds the named parameters consumed by skeletal animation. Axis values keep their last
// assigned value in modes that do not drive them.
type Animation struct {
	JumpPressed bool
	DivePressed bool
	OnGround    bool
	IsSliding   bool

	// ForwardAxis and HorizontalAxis are in [0, 1].
	ForwardAxis    float32
	HorizontalAxis float32
	FlapAmount     float32
}

// Events are the discrete things that happened during one tick.
type Events struct {
	Jumped         bool
	Dived          bool
	Hopped         bool
	SlideCancelled bool
	Landed         bool
	LeftGround     bool
	// NiceLanding and LandingAngle are only set on the tick the character lands.
	NiceLanding  bool
	LandingAngle float32
	Pushed       bool
	Braked       bool
	Clamped      bool
	Corrected    bool
}

// Result is everything a tick produces. LeftTrail and RightTrail are ordered newest first and are only
// valid until the character is simulated again.
type Result struct {
	Tick uint64

	Position     mgl32.Vec3
	Velocity     mgl32.Vec3
	Mode         locomotion.Mode
	Grounded     bool
	GroundNormal mgl32.Vec3
	Airtime      float32

	Heading          float32
	Rotation         mgl32.Quat
	SlideRotation    mgl32.Quat
	SlideYawRotation mgl32.Quat

	Animation Animation
	Events    Events

	LeftTrail  []mgl32.Vec3
	RightTrail []mgl32.Vec3
}

func (c *Character) result(ev Events) Result {
	c.left = c.trails.Left(c.left)
	c.right = c.trails.Right(c.right)
	return Result{
		Tick:             c.tick,
		Position:         c.position,
		Velocity:         c.velocity,
		Mode:             c.machine.Mode(),
		Grounded:         c.sensor.Grounded(),
		GroundNormal:     c.sensor.Normal(),
		Airtime:          c.sensor.Airtime(),
		Heading:          c.body.Heading(),
		Rotation:         c.body.Rotation(),
		SlideRotation:    c.body.SlideRotation(),
		SlideYawRotation: c.body.SlideYawRotation(),
		Animation:        c.anim,
		Events:           ev,
		LeftTrail:        c.left,
		RightTrail:       c.right,
	}
}
