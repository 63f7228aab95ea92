package terrain

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/game"
)

// Voxels is terrain made of solid unit cells.
type Voxels struct {
	solid map[cube.Pos]struct{}
}

// NewVoxels returns voxel terrain with the given cells set solid.
func NewVoxels(cells ...cube.Pos) *Voxels {
	v := &Voxels{solid: make(map[cube.Pos]struct{}, len(cells))}
	for _, c := range cells {
		v.solid[c] = struct{}{}
	}
	return v
}

// FillBox marks every cell from min to max inclusive as solid. It must not be called once the terrain is
// shared between characters.
func (v *Voxels) FillBox(min, max cube.Pos) {
	for x := min[0]; x <= max[0]; x++ {
		for y := min[1]; y <= max[1]; y++ {
			for z := min[2]; z <= max[2]; z++ {
				v.solid[cube.Pos{x, y, z}] = struct{}{}
			}
		}
	}
}

// Solid reports whether the cell is solid.
func (v *Voxels) Solid(pos cube.Pos) bool {
	_, ok := v.solid[pos]
	return ok
}

// Len returns the number of solid cells.
func (v *Voxels) Len() int {
	return len(v.solid)
}

// Raycast walks the cells along the segment and stops at the first solid one it crosses.
func (v *Voxels) Raycast(start, end mgl32.Vec3) (ContactSample, bool) {
	for pos := range game.CellsBetween(start, end) {
		if !v.Solid(pos) {
			continue
		}
		min := pos.Vec3()
		bb := cube.Box(min[0], min[1], min[2], min[0]+1, min[1]+1, min[2]+1)
		if s, ok := interceptBox(bb, start, end); ok {
			return s, true
		}
	}
	return ContactSample{}, false
}
