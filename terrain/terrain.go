// Package terrain provides the static geometry that ground probes are cast against.
package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ContactSample is a single successful probe against the terrain.
type ContactSample struct {
	// Point is the world position where the probe crossed the surface.
	Point mgl32.Vec3
	// Normal is the outward facing unit normal of the surface at Point.
	Normal mgl32.Vec3
	// Distance is the distance travelled along the probe before the crossing.
	Distance float32
}

// Source answers segment queries against terrain. A segment that starts inside solid terrain reports the
// point where it leaves it. Sources are read-only once built, so one Source may back many characters.
type Source interface {
	Raycast(start, end mgl32.Vec3) (ContactSample, bool)
}

// Union is a Source made of several sources. The nearest crossing of any of them wins.
type Union []Source

// Raycast ...
func (u Union) Raycast(start, end mgl32.Vec3) (ContactSample, bool) {
	var (
		best  ContactSample
		found bool
	)
	for _, src := range u {
		if s, ok := src.Raycast(start, end); ok && (!found || s.Distance < best.Distance) {
			best, found = s, true
		}
	}
	return best, found
}

// Empty is terrain with nothing in it.
type Empty struct{}

// Raycast ...
func (Empty) Raycast(mgl32.Vec3, mgl32.Vec3) (ContactSample, bool) {
	return ContactSample{}, false
}
