package omath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 8, s.Count)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	assert.InDelta(t, 5, s.Mean, 1e-9)
	assert.InDelta(t, 2, s.StdDev, 1e-9)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestCorrelationCoefficient(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1, CorrelationCoefficient(x, []float64{2, 4, 6, 8}), 1e-9)
	assert.InDelta(t, -1, CorrelationCoefficient(x, []float64{8, 6, 4, 2}), 1e-9)
	assert.Zero(t, CorrelationCoefficient(x, []float64{1, 1, 1, 1}))
}
