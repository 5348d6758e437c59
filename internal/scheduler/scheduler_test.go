package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerRepeatsUntilCancelled(t *testing.T) {
	s := NewTicker()

	var fired atomic.Int32
	cancel := s.Repeat(5*time.Millisecond, func() {
		fired.Add(1)
	})

	deadline := time.Now().Add(time.Second)
	for fired.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if fired.Load() < 2 {
		t.Fatal("callback did not fire repeatedly")
	}

	cancel()
	settled := fired.Load()
	time.Sleep(30 * time.Millisecond)
	if fired.Load() > settled+1 {
		t.Errorf("callback kept firing after cancel: %d -> %d", settled, fired.Load())
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	s := NewTicker()
	cancel := s.Repeat(time.Hour, func() {})

	cancel()
	cancel() // second call must not panic or block
}
