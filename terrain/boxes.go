package terrain

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/game"
)

// Boxes is terrain made of axis aligned boxes, such as platforms, steps and walls.
type Boxes []cube.BBox

// Raycast ...
func (b Boxes) Raycast(start, end mgl32.Vec3) (ContactSample, bool) {
	var (
		best  ContactSample
		found bool
	)
	for _, bb := range b {
		s, ok := interceptBox(bb, start, end)
		if ok && (!found || s.Distance < best.Distance) {
			best, found = s, true
		}
	}
	return best, found
}

func interceptBox(bb cube.BBox, start, end mgl32.Vec3) (ContactSample, bool) {
	res, ok := trace.BBoxIntercept(bb, start, end)
	if !ok {
		return ContactSample{}, false
	}
	return ContactSample{
		Point:    res.Position(),
		Normal:   faceNormal(res.Face()),
		Distance: res.Position().Sub(start).Len(),
	}, true
}

// faceNormal returns the outward unit normal of a box face.
func faceNormal(f cube.Face) mgl32.Vec3 {
	switch f {
	case cube.FaceDown:
		return game.Down
	case cube.FaceNorth:
		return mgl32.Vec3{0, 0, -1}
	case cube.FaceSouth:
		return mgl32.Vec3{0, 0, 1}
	case cube.FaceWest:
		return mgl32.Vec3{-1, 0, 0}
	case cube.FaceEast:
		return mgl32.Vec3{1, 0, 0}
	default:
		return game.Up
	}
}
