package game

import (
	"iter"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// CellsBetween yields the unit cells crossed by the segment from start to end, in the order the
// segment enters them. The cell containing start is always yielded first.
// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L67
func CellsBetween(start, end mgl32.Vec3) iter.Seq[cube.Pos] {
	return func(yield func(cube.Pos) bool) {
		current := cube.PosFromVec3(start)
		radius := end.Sub(start).Len()
		if radius < Epsilon {
			yield(current)
			return
		}
		dir := end.Sub(start).Mul(1 / radius)

		stepX := int(PHPSpaceshipOp(dir.X(), 0))
		stepY := int(PHPSpaceshipOp(dir.Y(), 0))
		stepZ := int(PHPSpaceshipOp(dir.Z(), 0))

		tMaxX := distanceToBoundary(start.X(), dir.X())
		tMaxY := distanceToBoundary(start.Y(), dir.Y())
		tMaxZ := distanceToBoundary(start.Z(), dir.Z())

		tDeltaX := stepDelta(stepX, dir.X())
		tDeltaY := stepDelta(stepY, dir.Y())
		tDeltaZ := stepDelta(stepZ, dir.Z())

		for {
			if !yield(current) {
				return
			}

			if tMaxX < tMaxY && tMaxX < tMaxZ {
				if tMaxX > radius {
					return
				}
				current[0] += stepX
				tMaxX += tDeltaX
			} else if tMaxY < tMaxZ {
				if tMaxY > radius {
					return
				}
				current[1] += stepY
				tMaxY += tDeltaY
			} else {
				if tMaxZ > radius {
					return
				}
				current[2] += stepZ
				tMaxZ += tDeltaZ
			}
		}
	}
}

func stepDelta(step int, d float32) float32 {
	if d == 0 {
		return 0
	}
	return float32(step) / d
}

// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L134
func distanceToBoundary(s, ds float32) float32 {
	if ds == 0 {
		return math32.MaxFloat32
	}

	if ds < 0 {
		s = -s
		ds = -ds

		if math32.Floor(s) == s {
			return 0
		}
	}

	return (1 - (s - math32.Floor(s))) / ds
}
