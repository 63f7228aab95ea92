// Package sensor detects the ground beneath a character from a fan of downward probes, and turns the
// flickering per-tick result into a stable grounded flag.
package sensor

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/assert"
	"github.com/oomph-ac/waddle/game"
	"github.com/oomph-ac/waddle/terrain"
)

// Probe describes the geometry of the probe fan.
type Probe struct {
	// Count is the number of probes on the ring around the center probe.
	Count int
	// Radius is the distance of the ring probes from the center probe.
	Radius float32
	// Length is how far each probe reaches downward.
	Length float32
	// VerticalOffset is how far below the reference point the probes start.
	VerticalOffset float32
}

// Config holds everything needed to build a Sensor.
type Config struct {
	Probe Probe
	// Window is the number of unanimous samples required to change the grounded flag.
	Window int
	// SpawnGraceTicks is the number of ticks probing is skipped after spawning.
	SpawnGraceTicks int
}

// Transition is a change of the debounced grounded flag.
type Transition uint8

const (
	TransitionNone Transition = iota
	TransitionLanded
	TransitionLeft
)

func (t Transition) String() string {
	switch t {
	case TransitionLanded:
		return "landed"
	case TransitionLeft:
		return "left"
	default:
		return "none"
	}
}

// Reading is the result of one tick of the sensor.
type Reading struct {
	// Sampled is false while the grace window skips probing.
	Sampled bool
	// Hit is the raw, undebounced probe result.
	Hit     bool
	Contact terrain.ContactSample
	// SnapDelta is the vertical translation that puts the foot on the contact point. Zero without a hit.
	SnapDelta  float32
	Transition Transition
}

// Sensor owns the contact state of one character.
type Sensor struct {
	cfg     Config
	history *ContactHistory

	grounded   bool
	normal     mgl32.Vec3
	airtime    float32
	suppressed int
}

// New creates a sensor that starts airborne, inside its spawn grace window, with a world up ground normal.
func New(cfg Config) *Sensor {
	assert.IsTrue(cfg.Probe.Count >= 0, "probe count must not be negative, got %d", cfg.Probe.Count)
	s := &Sensor{cfg: cfg, history: NewContactHistory(cfg.Window)}
	s.Reset()
	return s
}

// Reset returns the sensor to its spawn state.
func (s *Sensor) Reset() {
	s.history.Reset()
	s.grounded = false
	s.normal = game.Up
	s.airtime = 0
	s.suppressed = s.cfg.SpawnGraceTicks
}

// Sample casts the center probe and then the ring probes in angular order, returning the first hit.
func (s *Sensor) Sample(src terrain.Source, origin mgl32.Vec3) (terrain.ContactSample, bool) {
	p := s.cfg.Probe
	base := origin.Sub(game.Up.Mul(p.VerticalOffset))
	reach := game.Down.Mul(p.Length)

	if c, ok := src.Raycast(base, base.Add(reach)); ok {
		return c, true
	}
	for i := 0; i < p.Count; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(p.Count)
		start := base.Add(mgl32.Vec3{p.Radius * math32.Sin(angle), 0, p.Radius * math32.Cos(angle)})
		if c, ok := src.Raycast(start, start.Add(reach)); ok {
			return c, true
		}
	}
	return terrain.ContactSample{}, false
}

// Update runs one tick of ground detection. origin is the character's reference point and foot the point
// that should rest on the ground.
func (s *Sensor) Update(src terrain.Source, origin, foot mgl32.Vec3, dt float32) Reading {
	if s.suppressed > 0 {
		s.suppressed--
		return Reading{}
	}

	r := Reading{Sampled: true}
	r.Contact, r.Hit = s.Sample(src, origin)
	if r.Hit {
		s.airtime = 0
		if n := game.SafeNormalize(r.Contact.Normal); n.LenSqr() > 0 {
			s.normal = n
		}
		r.SnapDelta = r.Contact.Point.Y() - foot.Y()
	} else {
		s.airtime += dt
	}

	s.history.Push(r.Hit)
	if !s.grounded && s.history.Unanimous(true) {
		s.grounded = true
		r.Transition = TransitionLanded
	} else if s.grounded && s.history.Unanimous(false) {
		s.grounded = false
		r.Transition = TransitionLeft
	}
	return r
}

// Suppress skips probing for the next ticks ticks. A longer pending window is kept.
func (s *Sensor) Suppress(ticks int) {
	s.suppressed = max(s.suppressed, ticks)
}

// ForceAirborne clears the grounded flag without waiting for the window. The history is overwritten to
// match, so a fresh landing needs a full window of hits.
func (s *Sensor) ForceAirborne() {
	s.grounded = false
	s.history.Overwrite(false)
}

// Grounded returns the debounced contact flag.
func (s *Sensor) Grounded() bool {
	return s.grounded
}

// Normal returns the normal of the last successful probe.
func (s *Sensor) Normal() mgl32.Vec3 {
	return s.normal
}

// Airtime returns the seconds since the last successful probe.
func (s *Sensor) Airtime() float32 {
	return s.airtime
}

// Suppressed returns the remaining ticks of the grace window.
func (s *Sensor) Suppressed() int {
	return s.suppressed
}

// Window returns the debounce window length.
func (s *Sensor) Window() int {
	return s.history.Window()
}
