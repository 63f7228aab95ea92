package sim

import (
	"github.com/oomph-ac/waddle/locomotion"
	"github.com/oomph-ac/waddle/movement"
	"github.com/oomph-ac/waddle/orient"
	"github.com/oomph-ac/waddle/sensor"
	"github.com/oomph-ac/waddle/settings"
	"github.com/oomph-ac/waddle/trail"
)

// Options bundles the parameters of every component of a character.
type Options struct {
	Sensor   sensor.Config
	Orient   orient.Params
	Tuning   locomotion.Tuning
	Movement movement.Params
	Trail    trail.Config

	// FootOffset is the distance from the reference point down to the foot.
	FootOffset float32
	// NiceLandingAngle is the largest angle in degrees between belly and ground of a clean landing.
	NiceLandingAngle float32
}

// OptionsFrom builds the options from loaded settings.
func OptionsFrom(s settings.Settings) Options {
	return Options{
		Sensor:           s.SensorConfig(),
		Orient:           s.OrientParams(),
		Tuning:           s.Tuning(),
		Movement:         s.MovementParams(),
		Trail:            s.TrailConfig(),
		FootOffset:       s.Ground.FootOffset,
		NiceLandingAngle: s.Landing.NiceAngle,
	}
}

// DefaultOptions returns the options of the default settings.
func DefaultOptions() Options {
	return OptionsFrom(settings.DefaultSettings())
}
