package worker

import (
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWaitsForAllJobs(t *testing.T) {
	p := NewPool(4, nil)
	defer p.Close()

	var done atomic.Int32
	jobs := make([]func(), 100)
	for i := range jobs {
		jobs[i] = func() { done.Add(1) }
	}
	require.Zero(t, p.Run(jobs...))
	assert.EqualValues(t, 100, done.Load())
}

func TestRunSurvivesPanics(t *testing.T) {
	lg, hook := test.NewNullLogger()
	p := NewPool(2, logrus.NewEntry(lg))
	defer p.Close()

	var done atomic.Int32
	failed := p.Run(
		func() { done.Add(1) },
		func() { panic("boom") },
		func() { done.Add(1) },
	)
	assert.Equal(t, 1, failed)
	assert.EqualValues(t, 2, done.Load())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "boom", hook.LastEntry().Data["panic"])

	// The workers are still alive after a panic.
	assert.Zero(t, p.Run(func() { done.Add(1) }))
	assert.EqualValues(t, 3, done.Load())
}

func TestDefaultWorkerCount(t *testing.T) {
	p := NewPool(0, nil)
	defer p.Close()
	assert.Positive(t, cap(p.queue))
	assert.Zero(t, p.Run())
}
