package main

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/game"
	"github.com/oomph-ac/waddle/input"
	"github.com/oomph-ac/waddle/terrain"
)

const (
	hillHeight = 6
	hillRadius = 12
	hillZ      = 24
)

// hill is a smooth mound the flock spawns on and slides down from.
func hill(x, z float32) float32 {
	dz := z - hillZ
	return hillHeight * math32.Exp(-(x*x+dz*dz)/(2*hillRadius*hillRadius))
}

// course builds the terrain used by headless runs: a hill on a flat snowfield, a few platforms at its foot
// and a wall of ice blocks further out.
func course() terrain.Source {
	ice := terrain.NewVoxels()
	ice.FillBox(cube.Pos{-12, 0, -20}, cube.Pos{12, 1, -19})

	return terrain.Union{
		terrain.Heightmap{Height: hill},
		terrain.Plane{Point: mgl32.Vec3{0, -0.05, 0}, Normal: game.Up},
		terrain.Boxes{
			cube.Box(-3, 0, 4, 3, 0.3, 8),
			cube.Box(-2, 0.3, 5, 2, 0.6, 7),
		},
		ice,
	}
}

// spawnPoint returns where the i-th member of the flock drops in, just above the hill.
func spawnPoint(i int, footOffset float32) mgl32.Vec3 {
	x := float32(i%4)*2 - 3
	z := hillZ + float32(i/4)*2
	return mgl32.Vec3{x, hill(x, z) + footOffset + 0.5, z}
}

// courseScript is played when no script file is configured: settle, waddle to the edge of the hilltop,
// hop, belly slide down the slope, then glide off the platforms.
func courseScript(camera float32) *input.Script {
	return &input.Script{Steps: []input.Step{
		{Ticks: 30, Camera: camera},
		{Ticks: 45, Move: []float32{0, 1}, Camera: camera},
		{Ticks: 1, HoldJump: true, Move: []float32{0, 1}, Camera: camera},
		{Ticks: 40, Move: []float32{0, 1}, Camera: camera},
		{Ticks: 1, HoldDive: true, Camera: camera},
		{Ticks: 180, Move: []float32{0, 1}, Camera: camera},
		{Ticks: 90, Move: []float32{0.6, 0.4}, Flap: 0.8, Camera: camera},
		{Ticks: 60, Move: []float32{0, 0.5}, FlapBrake: -0.5, Camera: camera},
		{Ticks: 1, HoldDive: true, Camera: camera},
		{Ticks: 120, Move: []float32{-0.5, 1}, Camera: camera},
	}}
}
