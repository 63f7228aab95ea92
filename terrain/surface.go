package terrain

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/game"
)

// Plane is an infinite plane. Everything on the side opposite its normal is solid.
type Plane struct {
	Point  mgl32.Vec3
	Normal mgl32.Vec3
}

// NewSlope returns a plane through point that rises by angle degrees towards +Z.
func NewSlope(point mgl32.Vec3, angle float32) Plane {
	rad := mgl32.DegToRad(angle)
	return Plane{Point: point, Normal: mgl32.Vec3{0, math32.Cos(rad), -math32.Sin(rad)}}
}

// Raycast ...
func (p Plane) Raycast(start, end mgl32.Vec3) (ContactSample, bool) {
	n := game.SafeNormalize(p.Normal)
	d0 := start.Sub(p.Point).Dot(n)
	d1 := end.Sub(p.Point).Dot(n)
	if (d0 > 0) == (d1 > 0) || d0 == d1 {
		return ContactSample{}, false
	}
	t := d0 / (d0 - d1)
	seg := end.Sub(start)
	return ContactSample{
		Point:    start.Add(seg.Mul(t)),
		Normal:   n,
		Distance: seg.Len() * t,
	}, true
}

const (
	defaultHeightmapStep = 0.05
	heightmapBisections  = 12
	heightmapNormalEps   = 0.01
)

// Heightmap is terrain whose surface height is a function of the horizontal position. Everything below
// the surface is solid.
type Heightmap struct {
	// Height returns the surface height at the given horizontal position.
	Height func(x, z float32) float32
	// Step is the marching distance used to find the surface. Zero uses a default of 5cm.
	Step float32
}

// Raycast marches along the segment until it changes side of the surface, then bisects the crossing.
func (h Heightmap) Raycast(start, end mgl32.Vec3) (ContactSample, bool) {
	seg := end.Sub(start)
	length := seg.Len()
	if length < game.Epsilon {
		return ContactSample{}, false
	}

	step := h.Step
	if step <= 0 {
		step = defaultHeightmapStep
	}
	steps := int(math32.Ceil(length / step))

	prevT, prevAbove := float32(0), h.above(start)
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps)
		above := h.above(start.Add(seg.Mul(t)))
		if above == prevAbove {
			prevT = t
			continue
		}

		lo, hi := prevT, t
		for j := 0; j < heightmapBisections; j++ {
			mid := (lo + hi) / 2
			if h.above(start.Add(seg.Mul(mid))) == prevAbove {
				lo = mid
			} else {
				hi = mid
			}
		}
		point := start.Add(seg.Mul(hi))
		point[1] = h.Height(point[0], point[2])
		return ContactSample{
			Point:    point,
			Normal:   h.NormalAt(point[0], point[2]),
			Distance: length * hi,
		}, true
	}
	return ContactSample{}, false
}

// NormalAt estimates the surface normal at a horizontal position with central differences.
func (h Heightmap) NormalAt(x, z float32) mgl32.Vec3 {
	const e = heightmapNormalEps
	dx := (h.Height(x+e, z) - h.Height(x-e, z)) / (2 * e)
	dz := (h.Height(x, z+e) - h.Height(x, z-e)) / (2 * e)
	n := game.SafeNormalize(mgl32.Vec3{-dx, 1, -dz})
	if n.LenSqr() == 0 {
		return game.Up
	}
	return n
}

func (h Heightmap) above(p mgl32.Vec3) bool {
	return p[1] > h.Height(p[0], p[2])
}
