package settings

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/debug"
	"github.com/oomph-ac/waddle/locomotion"
	"github.com/oomph-ac/waddle/movement"
	"github.com/oomph-ac/waddle/oerror"
	"github.com/oomph-ac/waddle/orient"
	"github.com/oomph-ac/waddle/sensor"
	"github.com/oomph-ac/waddle/trail"
	"github.com/sirupsen/logrus"
)

// Validate reports every setting the simulator cannot run with.
func (s Settings) Validate() error {
	v := &oerror.ValidationError{}
	positive := func(name string, f float32) {
		if !(f > 0) {
			v.Addf("%s must be positive, got %v", name, f)
		}
	}
	nonNegative := func(name string, f float32) {
		if !(f >= 0) {
			v.Addf("%s must not be negative, got %v", name, f)
		}
	}

	positive("Body.Weight", s.Body.Weight)
	nonNegative("Body.WaddleSpeed", s.Body.WaddleSpeed)
	if s.Body.WalkCarryOver < 0 || s.Body.WalkCarryOver >= 1 {
		v.Addf("Body.WalkCarryOver must be in [0, 1), got %v", s.Body.WalkCarryOver)
	}
	nonNegative("Body.SlideTurnRate", s.Body.SlideTurnRate)
	nonNegative("Body.PushForce", s.Body.PushForce)
	nonNegative("Body.FlapSlowEffect", s.Body.FlapSlowEffect)
	positive("Body.Gravity", s.Body.Gravity)
	nonNegative("Body.JumpHeight", s.Body.JumpHeight)
	positive("Body.MaxSpeed", s.Body.MaxSpeed)

	if s.Ground.ProbeCount < 0 {
		v.Addf("Ground.ProbeCount must not be negative, got %d", s.Ground.ProbeCount)
	}
	nonNegative("Ground.ProbeRadius", s.Ground.ProbeRadius)
	positive("Ground.ProbeLength", s.Ground.ProbeLength)
	nonNegative("Ground.VerticalOffset", s.Ground.VerticalOffset)
	nonNegative("Ground.FootOffset", s.Ground.FootOffset)
	if s.Ground.DebounceWindow < 1 {
		v.Addf("Ground.DebounceWindow must be at least 1, got %d", s.Ground.DebounceWindow)
	}
	nonNegative("Ground.AirtimeDelay", s.Ground.AirtimeDelay)
	if s.Ground.JumpGraceTicks < 0 || s.Ground.SpawnGraceTicks < 0 {
		v.Addf("Ground grace windows must not be negative")
	}

	nonNegative("Slide.SnowFriction", s.Slide.SnowFriction)
	nonNegative("Flight.LiftFactor", s.Flight.LiftFactor)
	nonNegative("Flight.AirResistance", s.Flight.AirResistance)
	nonNegative("Flight.AirRotationSpeed", s.Flight.AirRotationSpeed)
	nonNegative("Flight.FlightRotationSlowFactor", s.Flight.FlightRotationSlowFactor)
	nonNegative("Flight.FlapHeldThreshold", s.Flight.FlapHeldThreshold)
	nonNegative("Flight.GlideThreshold", s.Flight.GlideThreshold)

	nonNegative("Smoothing.TurnSmoothTime", s.Smoothing.TurnSmoothTime)
	nonNegative("Smoothing.AngleSmoothTime", s.Smoothing.AngleSmoothTime)
	nonNegative("Smoothing.SlideTiltMinSpeed", s.Smoothing.SlideTiltMinSpeed)

	if s.Timing.TickRate < 1 {
		v.Addf("Timing.TickRate must be at least 1, got %d", s.Timing.TickRate)
	}
	nonNegative("Timing.FlagHoldSeconds", s.Timing.FlagHoldSeconds)
	nonNegative("Timing.DiveDelaySeconds", s.Timing.DiveDelaySeconds)

	if s.Trail.Length < 1 {
		v.Addf("Trail.Length must be at least 1, got %d", s.Trail.Length)
	}
	if s.Trail.SkipFrames < 0 {
		v.Addf("Trail.SkipFrames must not be negative, got %d", s.Trail.SkipFrames)
	}
	if len(s.Trail.LeftTip) != 3 || len(s.Trail.RightTip) != 3 {
		v.Addf("Trail tips must have three components")
	}

	if s.Runner.Characters < 0 || s.Runner.Ticks < 0 {
		v.Addf("Runner.Characters and Runner.Ticks must not be negative")
	}
	for _, m := range s.DebugModes() {
		if _, err := debug.ParseMode(m); err != nil {
			v.Addf("Runner.Debug: %v", err)
		}
	}
	if _, err := logrus.ParseLevel(s.Runner.LogLevel); err != nil {
		v.Addf("Runner.LogLevel: %v", err)
	}
	return v.OrNil()
}

// DT returns the duration of one tick in seconds.
func (s Settings) DT() float32 {
	return 1 / float32(s.Timing.TickRate)
}

// SensorConfig ...
func (s Settings) SensorConfig() sensor.Config {
	return sensor.Config{
		Probe: sensor.Probe{
			Count:          s.Ground.ProbeCount,
			Radius:         s.Ground.ProbeRadius,
			Length:         s.Ground.ProbeLength,
			VerticalOffset: s.Ground.VerticalOffset,
		},
		Window:          s.Ground.DebounceWindow,
		SpawnGraceTicks: s.Ground.SpawnGraceTicks,
	}
}

// OrientParams ...
func (s Settings) OrientParams() orient.Params {
	return orient.Params{
		TurnSmoothTime:           s.Smoothing.TurnSmoothTime,
		AngleSmoothTime:          s.Smoothing.AngleSmoothTime,
		SlideTiltMinSpeed:        s.Smoothing.SlideTiltMinSpeed,
		AirRotationSpeed:         s.Flight.AirRotationSpeed,
		FlightRotationSlowFactor: s.Flight.FlightRotationSlowFactor,
		FlapHeldThreshold:        s.Flight.FlapHeldThreshold,
	}
}

// MovementParams ...
func (s Settings) MovementParams() movement.Params {
	return movement.Params{
		Weight:            s.Body.Weight,
		WaddleSpeed:       s.Body.WaddleSpeed,
		WalkCarryOver:     s.Body.WalkCarryOver,
		SlideTurnRate:     s.Body.SlideTurnRate,
		PushForce:         s.Body.PushForce,
		FlapSlowEffect:    s.Body.FlapSlowEffect,
		Gravity:           s.Body.Gravity,
		MaxSpeed:          s.Body.MaxSpeed,
		SnowFriction:      s.Slide.SnowFriction,
		LiftFactor:        s.Flight.LiftFactor,
		AirResistance:     s.Flight.AirResistance,
		AirtimeDelay:      s.Ground.AirtimeDelay,
		FlapHeldThreshold: s.Flight.FlapHeldThreshold,
		GlideThreshold:    s.Flight.GlideThreshold,
	}
}

// Tuning ...
func (s Settings) Tuning() locomotion.Tuning {
	return locomotion.Tuning{
		Gravity:          s.Body.Gravity,
		JumpHeight:       s.Body.JumpHeight,
		AirtimeDelay:     s.Ground.AirtimeDelay,
		JumpGraceTicks:   s.Ground.JumpGraceTicks,
		FlagHoldSeconds:  s.Timing.FlagHoldSeconds,
		DiveDelaySeconds: s.Timing.DiveDelaySeconds,
	}
}

// TrailConfig ...
func (s Settings) TrailConfig() trail.Config {
	return trail.Config{
		Length:     s.Trail.Length,
		SkipFrames: s.Trail.SkipFrames,
		LeftTip:    vec3(s.Trail.LeftTip),
		RightTip:   vec3(s.Trail.RightTip),
	}
}

func vec3(f []float32) mgl32.Vec3 {
	var v mgl32.Vec3
	copy(v[:], f)
	return v
}
