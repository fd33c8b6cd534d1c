// Package sched defines the timing capability the game consumes: one-shot
// frame callbacks and fixed-interval timers, both cancellable.
//
// Callbacks never run concurrently with each other. Each implementation
// invokes them from a single goroutine and lets every callback run to
// completion before the next one starts.
package sched

import "time"

// Handle is returned when a callback is scheduled. Cancel releases it;
// calling Cancel more than once is harmless.
type Handle interface {
	Cancel()
}

// HandleFunc adapts a plain function to the Handle interface.
type HandleFunc func()

// Cancel calls f.
func (f HandleFunc) Cancel() {
	if f != nil {
		f()
	}
}

// Scheduler is the timing source for the game loop.
type Scheduler interface {
	// RequestFrame runs fn once on the next display refresh.
	RequestFrame(fn func()) Handle

	// Every runs fn repeatedly, once per interval, until cancelled.
	Every(interval time.Duration, fn func()) Handle
}
