package game

import "github.com/chewxy/math32"

// minSmoothTime keeps the damping frequency finite.
const minSmoothTime = 1e-4

// SmoothDamp moves current towards target as a critically damped spring that settles in roughly
// smoothTime seconds. velocity is the spring's state and must persist between calls. The result never
// overshoots target.
func SmoothDamp(current, target float32, velocity *float32, smoothTime, dt float32) float32 {
	if dt <= 0 {
		return current
	}
	smoothTime = math32.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	if (target-current > 0) == (output > target) {
		output = target
		*velocity = 0
	}
	if math32.IsNaN(output) || math32.IsNaN(*velocity) {
		*velocity = 0
		return current
	}
	return output
}

// SmoothDampAngle is SmoothDamp for angles in degrees. It takes the short way around the circle.
func SmoothDampAngle(current, target float32, velocity *float32, smoothTime, dt float32) float32 {
	return SmoothDamp(current, current+DeltaAngle(current, target), velocity, smoothTime, dt)
}
