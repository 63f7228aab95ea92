package worker

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// Pool runs CPU intensive jobs on a fixed set of goroutines.
type Pool struct {
	queue chan func()
	log   *logrus.Entry

	closeOnce sync.Once
}

// NewPool starts a pool of n workers. A non-positive n starts one worker per CPU.
func NewPool(n int, log *logrus.Entry) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), n), log: log}
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer sentry.Recover()

	for {
		f, ok := <-p.queue
		if !ok {
			return
		}

		f()
	}
}

// Submit queues f to run on a worker. It blocks while every worker is busy and the queue is full.
func (p *Pool) Submit(f func()) {
	p.queue <- f
}

// Run executes every job on the pool and waits for all of them. A job that panics is reported to Sentry
// and does not stop the others. Run returns the number of jobs that panicked.
func (p *Pool) Run(jobs ...func()) int {
	var (
		wg     sync.WaitGroup
		failed atomic.Int32
	)
	wg.Add(len(jobs))
	for _, job := range jobs {
		p.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					failed.Add(1)
					sentry.CurrentHub().Recover(r)
					if p.log != nil {
						p.log.WithField("panic", fmt.Sprint(r)).Error("job panicked")
					}
				}
			}()
			job()
		})
	}
	wg.Wait()
	return int(failed.Load())
}

// Close stops the workers once the queued jobs are done. The pool must not be used afterwards.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.queue)
	})
}
