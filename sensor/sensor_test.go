package sensor

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/game"
	"github.com/oomph-ac/waddle/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = float32(1.0 / 60.0)

var testProbe = Probe{Count: 10, Radius: 0.4, Length: 0.1, VerticalOffset: 0.4}

// toggle is a terrain source whose hits are switched by the test.
type toggle struct {
	hit    bool
	normal mgl32.Vec3
	rays   [][2]mgl32.Vec3
}

func (t *toggle) Raycast(start, end mgl32.Vec3) (terrain.ContactSample, bool) {
	t.rays = append(t.rays, [2]mgl32.Vec3{start, end})
	if !t.hit {
		return terrain.ContactSample{}, false
	}
	return terrain.ContactSample{Point: end, Normal: t.normal, Distance: end.Sub(start).Len()}, true
}

func newSensor(window int) *Sensor {
	return New(Config{Probe: testProbe, Window: window})
}

func feed(s *Sensor, src terrain.Source, n int) []Transition {
	var out []Transition
	for i := 0; i < n; i++ {
		out = append(out, s.Update(src, mgl32.Vec3{}, mgl32.Vec3{0, -0.45, 0}, dt).Transition)
	}
	return out
}

func TestDebounceRequiresUnanimousWindow(t *testing.T) {
	const window = 5
	s := newSensor(window)
	src := &toggle{hit: true, normal: game.Up}

	transitions := feed(s, src, window)
	require.Equal(t, TransitionLanded, transitions[window-1])
	require.True(t, s.Grounded())

	// N-1 grounded samples followed by a single airborne one keeps the flag.
	feed(s, src, window-1)
	src.hit = false
	feed(s, src, 1)
	require.True(t, s.Grounded())

	// N consecutive airborne samples flip it exactly once.
	transitions = feed(s, src, window)
	left := 0
	for _, tr := range transitions {
		if tr == TransitionLeft {
			left++
		}
	}
	require.Equal(t, 1, left)
	require.False(t, s.Grounded())
}

func TestFlickerNeverToggles(t *testing.T) {
	s := newSensor(4)
	src := &toggle{normal: game.Up}
	for i := 0; i < 40; i++ {
		src.hit = i%2 == 0
		r := s.Update(src, mgl32.Vec3{}, mgl32.Vec3{}, dt)
		require.Equal(t, TransitionNone, r.Transition)
	}
	require.False(t, s.Grounded())
}

func TestSampleOrder(t *testing.T) {
	s := newSensor(3)
	src := &toggle{}
	origin := mgl32.Vec3{1, 2, 3}

	_, ok := s.Sample(src, origin)
	require.False(t, ok)
	require.Len(t, src.rays, testProbe.Count+1)

	center := src.rays[0]
	assert.True(t, center[0].ApproxEqual(mgl32.Vec3{1, 1.6, 3}))
	assert.True(t, center[1].ApproxEqual(mgl32.Vec3{1, 1.5, 3}))

	// The ring starts at +Z and walks towards +X.
	first := src.rays[1][0]
	assert.True(t, first.ApproxEqualThreshold(mgl32.Vec3{1, 1.6, 3.4}, 1e-5), "got %v", first)
	third := src.rays[1+testProbe.Count/4][0]
	assert.Greater(t, third.X(), float32(1.3))
}

func TestSampleStopsAtFirstHit(t *testing.T) {
	s := newSensor(3)
	src := terrain.Boxes{cube.Box(0.3, -1, -0.2, 1, -0.45, 0.2)}

	// The center probe and the first two ring probes miss, the probe at 72 degrees lands.
	c, ok := s.Sample(src, mgl32.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 0.3804, c.Point.X(), 1e-3)
	assert.InDelta(t, 0.1236, c.Point.Z(), 1e-3)
	assert.InDelta(t, -0.45, c.Point.Y(), 1e-5)
}

func TestNormalRetainedOnMiss(t *testing.T) {
	s := newSensor(2)
	slope := game.SafeNormalize(mgl32.Vec3{0, 1, 1})
	src := &toggle{hit: true, normal: slope}
	feed(s, src, 1)
	require.Equal(t, slope, s.Normal())

	src.hit = false
	feed(s, src, 10)
	require.Equal(t, slope, s.Normal())
	require.InDelta(t, 10*dt, s.Airtime(), 1e-5)
}

func TestSnapDelta(t *testing.T) {
	s := newSensor(2)
	src := terrain.Boxes{cube.Box(-1, -1, -1, 1, -0.47, 1)}
	r := s.Update(src, mgl32.Vec3{}, mgl32.Vec3{0, -0.45, 0}, dt)
	require.True(t, r.Hit)
	assert.InDelta(t, -0.02, r.SnapDelta, 1e-5)
	assert.Zero(t, s.Airtime())
}

func TestGraceWindowSkipsProbing(t *testing.T) {
	s := New(Config{Probe: testProbe, Window: 2, SpawnGraceTicks: 3})
	src := &toggle{hit: true, normal: game.Up}

	for i := 0; i < 3; i++ {
		r := s.Update(src, mgl32.Vec3{}, mgl32.Vec3{}, dt)
		require.False(t, r.Sampled)
	}
	require.Empty(t, src.rays)

	feed(s, src, 2)
	require.True(t, s.Grounded())

	s.ForceAirborne()
	s.Suppress(7)
	require.False(t, s.Grounded())
	require.Equal(t, 7, s.Suppressed())

	feed(s, src, 7)
	require.False(t, s.Grounded())

	// The forced airborne history needs a whole window of hits to land again.
	feed(s, src, 1)
	require.False(t, s.Grounded())
	feed(s, src, 1)
	require.True(t, s.Grounded())
}

func TestNewRejectsEmptyWindow(t *testing.T) {
	require.Panics(t, func() { newSensor(0) })
}
