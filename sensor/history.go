package sensor

import (
	"github.com/oomph-ac/waddle/assert"
	"github.com/oomph-ac/waddle/ring"
)

// ContactHistory keeps the most recent raw probe results. A contact state change is only accepted once the
// whole window agrees on it.
type ContactHistory struct {
	samples *ring.Buffer[bool]
}

// NewContactHistory returns an empty history with room for window samples.
func NewContactHistory(window int) *ContactHistory {
	assert.IsTrue(window >= 1, "contact history window must be at least 1, got %d", window)
	return &ContactHistory{samples: ring.NewBuffer[bool](window)}
}

// Push records the raw result of one tick of probing.
func (h *ContactHistory) Push(hit bool) {
	h.samples.Add(hit)
}

// Unanimous reports whether the window is full and every sample in it equals v.
func (h *ContactHistory) Unanimous(v bool) bool {
	return h.samples.All(func(s bool) bool { return s == v })
}

// Overwrite fills the entire window with v.
func (h *ContactHistory) Overwrite(v bool) {
	h.samples.Fill(v)
}

// Window returns the number of samples that must agree for a transition.
func (h *ContactHistory) Window() int {
	return h.samples.Capacity()
}

// Reset forgets every sample.
func (h *ContactHistory) Reset() {
	h.samples.Clear()
}
