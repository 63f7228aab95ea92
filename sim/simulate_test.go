package sim

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/game"
	"github.com/oomph-ac/waddle/input"
	"github.com/oomph-ac/waddle/locomotion"
	"github.com/oomph-ac/waddle/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = float32(1) / 60

func flatGround() *Simulator {
	return New(terrain.Plane{Normal: game.Up})
}

// standOn spawns a character with its foot at height y and runs it until it lands.
func standOn(t *testing.T, s *Simulator, y float32) (*Character, Result) {
	t.Helper()
	opts := DefaultOptions()
	c := NewCharacter(opts, mgl32.Vec3{0, y + opts.FootOffset, 0}, 0)
	for i := 0; i < 60; i++ {
		if r := s.Simulate(c, input.Snapshot{}, dt); r.Events.Landed {
			return c, r
		}
	}
	t.Fatal("character never landed")
	return nil, Result{}
}

func runUntil(t *testing.T, s *Simulator, c *Character, in input.Snapshot, ticks int, done func(Result) bool) Result {
	t.Helper()
	for i := 0; i < ticks; i++ {
		if r := s.Simulate(c, in, dt); done(r) {
			return r
		}
	}
	t.Fatalf("condition not reached within %d ticks", ticks)
	return Result{}
}

func TestSpawnLandsAfterGraceAndWindow(t *testing.T) {
	c, r := standOn(t, flatGround(), 0)
	opts := c.Options()

	assert.EqualValues(t, opts.Sensor.SpawnGraceTicks+opts.Sensor.Window, r.Tick)
	assert.Equal(t, locomotion.Walking, r.Mode)
	assert.True(t, r.Grounded)
	assert.True(t, r.Events.NiceLanding)
	assert.True(t, r.Animation.OnGround)
	assert.InDelta(t, 0, r.Velocity.Len(), 1e-4)
	assert.InDelta(t, opts.FootOffset, r.Position.Y(), 1e-3)
}

func TestJumpAndLandAgain(t *testing.T) {
	s := flatGround()
	c, _ := standOn(t, s, 0)
	tuning := c.Options().Tuning

	r := s.Simulate(c, input.Snapshot{Jump: true}, dt)
	require.True(t, r.Events.Jumped)
	assert.Equal(t, locomotion.AirborneBallistic, r.Mode)
	assert.False(t, r.Grounded)
	assert.True(t, r.Animation.JumpPressed)
	assert.InDelta(t, tuning.JumpSpeed()-tuning.Gravity*dt, r.Velocity.Y(), 1e-3)

	r = s.Simulate(c, input.Snapshot{Jump: true}, dt)
	assert.False(t, r.Events.Jumped, "no jump while airborne")

	r = runUntil(t, s, c, input.Snapshot{}, 180, func(r Result) bool { return r.Events.Landed })
	assert.Equal(t, locomotion.Walking, r.Mode)
	assert.False(t, r.Animation.JumpPressed)
	assert.InDelta(t, c.Options().FootOffset, r.Position.Y(), 1e-3)
}

func TestDiveTogglesSlidingThroughPipeline(t *testing.T) {
	s := flatGround()
	c, _ := standOn(t, s, 0)

	r := s.Simulate(c, input.Snapshot{Dive: true}, dt)
	require.True(t, r.Events.Dived)
	assert.True(t, r.Animation.IsSliding)
	assert.True(t, r.Animation.DivePressed)

	r = runUntil(t, s, c, input.Snapshot{}, 10, func(r Result) bool { return r.Events.Hopped })
	assert.Equal(t, locomotion.Sliding, r.Mode)
	assert.Greater(t, r.Velocity.Y(), float32(0))

	r = runUntil(t, s, c, input.Snapshot{}, 180, func(r Result) bool { return r.Mode == locomotion.Sliding && r.Events.Landed })
	assert.True(t, r.Grounded)

	r = s.Simulate(c, input.Snapshot{Dive: true}, dt)
	assert.True(t, r.Events.SlideCancelled)
	assert.False(t, r.Animation.IsSliding)
	assert.Equal(t, locomotion.Walking, r.Mode)

	r = s.Simulate(c, input.Snapshot{Dive: true}, dt)
	assert.True(t, r.Events.Dived)
	assert.True(t, r.Animation.IsSliding)
}

func TestSlideAcceleratesDownhill(t *testing.T) {
	s := New(terrain.NewSlope(mgl32.Vec3{}, 20))
	c, _ := standOn(t, s, 0)

	s.Simulate(c, input.Snapshot{Dive: true}, dt)
	runUntil(t, s, c, input.Snapshot{}, 240, func(r Result) bool { return r.Mode == locomotion.Sliding && r.Events.Landed })

	var speeds []float32
	for i := 0; i < 120; i++ {
		r := s.Simulate(c, input.Snapshot{}, dt)
		require.Equal(t, locomotion.Sliding, r.Mode)
		speeds = append(speeds, r.Velocity.Len())
	}
	assert.Greater(t, speeds[len(speeds)-1], speeds[0])
	assert.Less(t, c.Velocity().Z(), float32(0), "downhill is towards -Z")
}

func TestWalkingDrivesAnimationAxes(t *testing.T) {
	s := flatGround()
	c, _ := standOn(t, s, 0)

	r := s.Simulate(c, input.Snapshot{Move: mgl32.Vec2{0, 1}}, dt)
	assert.InDelta(t, 1, r.Animation.ForwardAxis, 1e-5)
	assert.InDelta(t, 0.5, r.Animation.HorizontalAxis, 1e-5)
	assert.InDelta(t, c.Options().Movement.WaddleSpeed, r.Velocity.Z(), 1e-4)
	assert.InDelta(t, 0, r.Velocity.Y(), 1e-4)
}

func TestGlideSamplesTrails(t *testing.T) {
	s := New(terrain.Empty{})
	c := NewCharacter(DefaultOptions(), mgl32.Vec3{0, 100, 0}, 0)

	s.Simulate(c, input.Snapshot{Dive: true}, dt)
	r := runUntil(t, s, c, input.Snapshot{}, 10, func(r Result) bool { return r.Mode == locomotion.AirborneGliding })
	assert.False(t, r.Events.Hopped, "no hop without ground")

	for i := 0; i < 30; i++ {
		r = s.Simulate(c, input.Snapshot{Flap: 0.6}, dt)
	}
	assert.InDelta(t, 0.6, r.Animation.FlapAmount, 1e-6)
	require.Len(t, r.LeftTrail, c.Options().Trail.Length)
	assert.NotEqual(t, r.LeftTrail[0], r.LeftTrail[len(r.LeftTrail)-1])

	r = s.Simulate(c, input.Snapshot{}, dt)
	for _, p := range r.LeftTrail {
		assert.Equal(t, r.LeftTrail[0], p)
	}
	for _, p := range r.RightTrail {
		assert.Equal(t, r.RightTrail[0], p)
	}
}

func TestUndergroundCorrection(t *testing.T) {
	s := flatGround()
	opts := DefaultOptions()
	c := NewCharacter(opts, mgl32.Vec3{0, opts.FootOffset - 0.01, 0}, 0)

	r := s.Simulate(c, input.Snapshot{}, dt)
	assert.True(t, r.Events.Corrected)
	assert.InDelta(t, opts.FootOffset, r.Position.Y(), 1e-3)
}

func TestCorrectionIgnoresCeilings(t *testing.T) {
	opts := DefaultOptions()
	ceiling := terrain.Boxes{cube.Box(-1, 0.05, -1, 1, 1, 1)}
	s := New(ceiling)
	c := NewCharacter(opts, mgl32.Vec3{0, opts.FootOffset, 0}, 0)

	assert.False(t, s.correctUnderground(c))
	assert.Equal(t, opts.FootOffset, c.Position().Y())
}

func TestRespawnResetsState(t *testing.T) {
	s := flatGround()
	c, _ := standOn(t, s, 0)
	s.Simulate(c, input.Snapshot{Jump: true, Move: mgl32.Vec2{1, 0}}, dt)

	c.Respawn(mgl32.Vec3{5, 10, 5}, 90)
	assert.Zero(t, c.Tick())
	assert.Equal(t, locomotion.AirborneBallistic, c.Mode())
	assert.False(t, c.Grounded())
	assert.Equal(t, mgl32.Vec3{0, -c.Options().Movement.Gravity, 0}, c.Velocity())
	assert.Equal(t, mgl32.Vec3{5, 10, 5}, c.Position())
	assert.False(t, c.launched)
}

func TestRandomInputStaysBounded(t *testing.T) {
	course := terrain.Union{
		terrain.Plane{Normal: game.Up},
		terrain.Boxes{cube.Box(2, 0, -2, 4, 0.5, 2)},
		terrain.Heightmap{Height: func(x, z float32) float32 { return 0.3 * math32.Sin(x*0.5) * math32.Cos(z*0.5) }},
	}
	s := New(course)
	c := NewCharacter(DefaultOptions(), mgl32.Vec3{0, 2, 0}, 0)
	maxSpeed := c.Options().Movement.MaxSpeed
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 3000; i++ {
		in := input.Snapshot{
			Move:          mgl32.Vec2{rng.Float32()*2 - 1, rng.Float32()*2 - 1},
			CameraHeading: rng.Float32()*720 - 360,
			Flap:          rng.Float32(),
			FlapBrake:     rng.Float32()*2 - 1,
			Jump:          rng.Intn(40) == 0,
			Dive:          rng.Intn(60) == 0,
		}
		r := s.Simulate(c, in, dt)
		require.LessOrEqual(t, r.Velocity.Len(), maxSpeed*(1+1e-5), "tick %d", i)
		for _, f := range r.Position {
			require.False(t, math32.IsNaN(f) || math32.IsInf(f, 0), "tick %d", i)
		}
		require.GreaterOrEqual(t, r.Animation.HorizontalAxis, float32(0))
		require.LessOrEqual(t, r.Animation.HorizontalAxis, float32(1))
	}
}

func TestDegenerateDeltaTime(t *testing.T) {
	s := flatGround()
	c := NewCharacter(DefaultOptions(), mgl32.Vec3{0, 1, 0}, 0)
	before := c.Position()

	r := s.Simulate(c, input.Snapshot{}, math32.NaN())
	assert.Equal(t, before, r.Position)
	r = s.Simulate(c, input.Snapshot{}, -1)
	assert.Equal(t, before, r.Position)
}

func TestZeroDeltaTimeLeavesTimersAlone(t *testing.T) {
	s := flatGround()
	opts := DefaultOptions()
	c := NewCharacter(opts, mgl32.Vec3{0, opts.FootOffset, 0}, 0)

	for i := 0; i < 20; i++ {
		r := s.Simulate(c, input.Snapshot{}, 0)
		require.False(t, r.Events.Landed, "landed without time passing")
	}
	r := runUntil(t, s, c, input.Snapshot{}, 60, func(r Result) bool { return r.Events.Landed })
	assert.EqualValues(t, 20+opts.Sensor.SpawnGraceTicks+opts.Sensor.Window, r.Tick)
}

func TestWalkerStaysOnConvexGround(t *testing.T) {
	dome := func(x, z float32) float32 { return 2 - 0.15*x*x }
	s := New(terrain.Heightmap{Height: dome})
	opts := DefaultOptions()
	c := NewCharacter(opts, mgl32.Vec3{-3, dome(-3, 0) + opts.FootOffset, 0}, 90)
	runUntil(t, s, c, input.Snapshot{}, 60, func(r Result) bool { return r.Events.Landed })

	rising := false
	for i := 0; i < 60; i++ {
		r := s.Simulate(c, input.Snapshot{Move: mgl32.Vec2{1, 0}}, dt)
		require.Equal(t, locomotion.Walking, r.Mode)
		require.True(t, r.Grounded)
		rising = rising || r.Velocity.Y() > 0

		foot := c.Foot()
		assert.InDelta(t, dome(foot.X(), foot.Z()), foot.Y(), 5e-3, "tick %d at x=%.2f", r.Tick, foot.X())
	}
	assert.True(t, rising, "the walk should climb the dome")
	assert.Greater(t, c.Position().X(), float32(-2))
}

func TestFoldVisualDifference(t *testing.T) {
	for in, want := range map[float32]float32{
		0: 0, 45: 45, 90: 90, 135: 0, 180: -90,
		-45: -45, -135: 0, -180: 90,
	} {
		assert.InDelta(t, want, FoldVisualDifference(in), 1e-5, "fold(%v)", in)
	}
	assert.Equal(t, float32(0), AnimAxis(-1))
	assert.Equal(t, float32(1), AnimAxis(1))
}
