package game

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{720, 0},
		{355, -5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, WrapAngle(tt.in), 1e-4, "WrapAngle(%v)", tt.in)
	}
	assert.InDelta(t, 20, DeltaAngle(350, 10), 1e-4)
	assert.InDelta(t, -20, DeltaAngle(10, 350), 1e-4)
}

func TestSafeNormalizeZero(t *testing.T) {
	require.Equal(t, mgl32.Vec3{}, SafeNormalize(mgl32.Vec3{}))
	require.Equal(t, mgl32.Vec3{}, SafeNormalize(mgl32.Vec3{math32.NaN(), 0, 0}))
	require.InDelta(t, 1, SafeNormalize(mgl32.Vec3{3, 4, 0}).Len(), 1e-5)
}

func TestProjectOnPlane(t *testing.T) {
	v := mgl32.Vec3{1, -2, 3}
	p := ProjectOnPlane(v, Up)
	require.True(t, p.ApproxEqual(mgl32.Vec3{1, 0, 3}))

	// Unnormalized normals are accepted.
	p = ProjectOnPlane(v, mgl32.Vec3{0, 10, 0})
	require.True(t, p.ApproxEqual(mgl32.Vec3{1, 0, 3}))

	// A zero normal is an identity projection.
	require.Equal(t, v, ProjectOnPlane(v, mgl32.Vec3{}))
}

func TestAngle(t *testing.T) {
	assert.InDelta(t, 90, Angle(Right, Forward), 1e-4)
	assert.InDelta(t, 180, Angle(Right, Right.Mul(-1)), 1e-3)
	assert.Zero(t, Angle(Right, mgl32.Vec3{}))
}

func TestHeadingAndRotateY(t *testing.T) {
	h, ok := Heading(Right)
	require.True(t, ok)
	assert.InDelta(t, 90, h, 1e-4)

	_, ok = Heading(Up)
	require.False(t, ok)

	rotated := RotateY(Forward, 90)
	assert.True(t, rotated.ApproxEqualThreshold(Right, 1e-5), "got %v", rotated)

	// Euler with only yaw matches RotateY.
	assert.True(t, Euler(0, 45, 0).Rotate(Forward).ApproxEqualThreshold(RotateY(Forward, 45), 1e-5))
	// Positive pitch tips the nose down.
	assert.Less(t, Euler(30, 0, 0).Rotate(Forward).Y(), float32(0))
}

func TestClampMagnitude(t *testing.T) {
	v := mgl32.Vec3{30, 40, 0}
	c := ClampMagnitude(v, 10)
	assert.InDelta(t, 10, c.Len(), 1e-4)
	assert.InDelta(t, 0, Angle(v, c), 1e-2)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, ClampMagnitude(mgl32.Vec3{1, 0, 0}, 10))
}

func TestSmoothDampAngleNoOvershoot(t *testing.T) {
	var vel float32
	cur := float32(0)
	for i := 0; i < 240; i++ {
		next := SmoothDampAngle(cur, 90, &vel, 0.1, 1.0/60.0)
		require.LessOrEqual(t, next, float32(90.0001))
		require.GreaterOrEqual(t, next, cur)
		cur = next
	}
	assert.InDelta(t, 90, cur, 1e-2)
}

func TestSmoothDampAngleWrapsAround(t *testing.T) {
	var vel float32
	// From 170 towards -170 the short way is +20 degrees.
	next := SmoothDampAngle(170, -170, &vel, 0.1, 1.0/60.0)
	assert.Greater(t, next, float32(170))
	assert.Greater(t, vel, float32(0))
}

func TestSmoothDampContinuity(t *testing.T) {
	var vel float32
	cur := float32(0)
	target := float32(10)
	for i := 0; i < 120; i++ {
		if i == 30 {
			target = -170
		}
		next := SmoothDampAngle(cur, target, &vel, 0.1, 1.0/60.0)
		// A single 60Hz step never jumps more than a small fraction of the remaining distance.
		require.Less(t, math32.Abs(DeltaAngle(cur, next)), float32(45))
		cur = next
	}
}

func TestSmoothDampZeroDelta(t *testing.T) {
	var vel float32 = 3
	assert.Equal(t, float32(12), SmoothDampAngle(12, 40, &vel, 0.1, 0))
	assert.Equal(t, float32(3), vel)
}

func TestCellsBetween(t *testing.T) {
	var cells [][3]int
	for pos := range CellsBetween(mgl32.Vec3{0.5, 2.5, 0.5}, mgl32.Vec3{0.5, -0.5, 0.5}) {
		cells = append(cells, [3]int(pos))
	}
	require.Equal(t, [][3]int{{0, 2, 0}, {0, 1, 0}, {0, 0, 0}, {0, -1, 0}}, cells)
}
