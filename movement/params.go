package movement

// Params are the tunables of the velocity integrator.
type Params struct {
	Weight      float32
	WaddleSpeed float32
	// WalkCarryOver is the share of the previous velocity kept while walking.
	WalkCarryOver float32
	// SlideTurnRate is the steering limit while sliding, in degrees per second.
	SlideTurnRate  float32
	PushForce      float32
	FlapSlowEffect float32
	Gravity        float32
	MaxSpeed       float32
	// SnowFriction scales the downhill pull while sliding. Lower values mean more friction.
	SnowFriction  float32
	LiftFactor    float32
	AirResistance float32
	// AirtimeDelay is the time after leaving the ground during which flap braking and pushing still work.
	AirtimeDelay float32
	// FlapHeldThreshold is the flap amount above which the flap counts as held.
	FlapHeldThreshold float32
	// GlideThreshold is the flap amount above which an airborne slide produces lift.
	GlideThreshold float32
}
