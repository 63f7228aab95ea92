package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the length under which a vector is treated as zero.
const Epsilon = 1e-6

var (
	Up      = mgl32.Vec3{0, 1, 0}
	Down    = mgl32.Vec3{0, -1, 0}
	Right   = mgl32.Vec3{1, 0, 0}
	Forward = mgl32.Vec3{0, 0, 1}
)

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// RoundVec32 will round a 32-bit vector to a given precision.
func RoundVec32(v mgl32.Vec3, p int) mgl32.Vec3 {
	return mgl32.Vec3{Round32(v.X(), p), Round32(v.Y(), p), Round32(v.Z(), p)}
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// Flatten drops the vertical component of the vector.
func Flatten(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], 0, v[2]}
}

// WrapAngle wraps an angle in degrees into (-180, 180].
func WrapAngle(deg float32) float32 {
	deg = math32.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// DeltaAngle returns the shortest signed difference from current to target, in degrees.
func DeltaAngle(current, target float32) float32 {
	return WrapAngle(target - current)
}

// SafeNormalize normalizes v, returning the zero vector if v has no usable length.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < Epsilon || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// ProjectOnPlane removes the component of v along the plane normal n. A zero normal leaves v untouched.
func ProjectOnPlane(v, n mgl32.Vec3) mgl32.Vec3 {
	n = SafeNormalize(n)
	if n.LenSqr() == 0 {
		return v
	}
	return v.Sub(n.Mul(v.Dot(n)))
}

// Reflect reflects v off a surface with normal n.
func Reflect(v, n mgl32.Vec3) mgl32.Vec3 {
	n = SafeNormalize(n)
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Angle returns the unsigned angle between a and b in degrees. Zero vectors yield 0.
func Angle(a, b mgl32.Vec3) float32 {
	denom := math32.Sqrt(a.LenSqr() * b.LenSqr())
	if denom < Epsilon {
		return 0
	}
	cos := mgl32.Clamp(a.Dot(b)/denom, -1, 1)
	return mgl32.RadToDeg(math32.Acos(cos))
}

// Heading returns the yaw of v around the up axis, in degrees, with 0 facing +Z and 90 facing +X.
// The second return value is false if v has no horizontal component.
func Heading(v mgl32.Vec3) (float32, bool) {
	if Vec3HzDistSqr(v) < Epsilon*Epsilon {
		return 0, false
	}
	return mgl32.RadToDeg(math32.Atan2(v.X(), v.Z())), true
}

// RotateY rotates v around the up axis by deg degrees.
func RotateY(v mgl32.Vec3, deg float32) mgl32.Vec3 {
	return mgl32.QuatRotate(mgl32.DegToRad(deg), Up).Rotate(v)
}

// Euler builds a rotation from angles in degrees, applied roll first, then pitch, then yaw.
func Euler(pitch, yaw, roll float32) mgl32.Quat {
	qy := mgl32.QuatRotate(mgl32.DegToRad(yaw), Up)
	qx := mgl32.QuatRotate(mgl32.DegToRad(pitch), Right)
	qz := mgl32.QuatRotate(mgl32.DegToRad(roll), Forward)
	return qy.Mul(qx).Mul(qz)
}

// ClampMagnitude rescales v so its length does not exceed max. Direction is preserved.
func ClampMagnitude(v mgl32.Vec3, max float32) mgl32.Vec3 {
	l := v.Len()
	if l <= max || l < Epsilon {
		return v
	}
	return v.Mul(max / l)
}

// SanitizeFloat replaces NaN and infinities with zero.
func SanitizeFloat(f float32) float32 {
	if math32.IsNaN(f) || math32.IsInf(f, 0) {
		return 0
	}
	return f
}

// Returns -1 if x < y, 0 if x == y, or 1 if x > y
func PHPSpaceshipOp(x, y float32) float32 {
	if x < y {
		return -1
	} else if x == y {
		return 0
	}

	return 1
}
