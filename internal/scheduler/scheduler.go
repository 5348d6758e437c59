// Package scheduler provides the cancellable recurring-task abstraction the
// consolidation state machine runs its deadline checks on. Keeping it behind
// an interface lets tests drive timer callbacks by hand instead of sleeping.
package scheduler

import (
	"sync"
	"time"
)

// CancelFunc stops a scheduled task. Calling it more than once, or after the
// task has already been stopped, is safe and does nothing.
type CancelFunc func()

// Scheduler runs a callback on a fixed interval until cancelled.
type Scheduler interface {
	Repeat(interval time.Duration, fn func()) CancelFunc
}

// Ticker is the production Scheduler backed by time.Ticker, one goroutine
// per scheduled task.
type Ticker struct{}

// NewTicker creates the wall-clock scheduler.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Repeat invokes fn every interval until the returned CancelFunc is called.
func (t *Ticker) Repeat(interval time.Duration, fn func()) CancelFunc {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
		})
	}
}
