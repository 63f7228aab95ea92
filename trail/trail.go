// Package trail records the recent world positions of the two wing tips for trail rendering.
package trail

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/ring"
)

// Config describes the trail geometry.
type Config struct {
	// Length is the number of points kept per trail.
	Length int
	// SkipFrames is the number of ticks skipped between two samples.
	SkipFrames int
	// LeftTip and RightTip are the wing tip offsets in the sliding body's frame.
	LeftTip, RightTip mgl32.Vec3
}

// Trails holds one trail per wing tip.
type Trails struct {
	cfg         Config
	left, right *ring.Buffer[mgl32.Vec3]
	skips       int
}

// New returns trails collapsed onto the origin.
func New(cfg Config) *Trails {
	t := &Trails{
		cfg:   cfg,
		left:  ring.NewBuffer[mgl32.Vec3](cfg.Length),
		right: ring.NewBuffer[mgl32.Vec3](cfg.Length),
	}
	t.Collapse(mgl32.Vec3{}, mgl32.QuatIdent())
	return t
}

// Tips returns the world positions of the wing tips for a body at pos rotated by rot.
func (t *Trails) Tips(pos mgl32.Vec3, rot mgl32.Quat) (left, right mgl32.Vec3) {
	return pos.Add(rot.Rotate(t.cfg.LeftTip)), pos.Add(rot.Rotate(t.cfg.RightTip))
}

// Sample records the current tips once every SkipFrames+1 calls. Both trails share the stride so their
// points always line up.
func (t *Trails) Sample(pos mgl32.Vec3, rot mgl32.Quat) bool {
	if t.skips != t.cfg.SkipFrames {
		t.skips++
		return false
	}
	t.skips = 0
	l, r := t.Tips(pos, rot)
	t.left.Add(l)
	t.right.Add(r)
	return true
}

// Collapse fills both trails with the current tips so nothing is drawn.
func (t *Trails) Collapse(pos mgl32.Vec3, rot mgl32.Quat) {
	l, r := t.Tips(pos, rot)
	t.left.Fill(l)
	t.right.Fill(r)
}

// Reset collapses both trails and restarts the sampling stride.
func (t *Trails) Reset(pos mgl32.Vec3, rot mgl32.Quat) {
	t.skips = 0
	t.Collapse(pos, rot)
}

// Left returns the left trail from newest to oldest, reusing dst.
func (t *Trails) Left(dst []mgl32.Vec3) []mgl32.Vec3 {
	return t.left.Newest(dst)
}

// Right returns the right trail from newest to oldest, reusing dst.
func (t *Trails) Right(dst []mgl32.Vec3) []mgl32.Vec3 {
	return t.right.Newest(dst)
}
