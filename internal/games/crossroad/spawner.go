package crossroad

import (
	"time"

	"github.com/vovakirdan/tui-crossroad/internal/sched"
)

// Spawner fires a callback at a fixed period while active.
// It holds at most one timer handle.
type Spawner struct {
	scheduler sched.Scheduler
	interval  time.Duration
	fire      func()
	handle    sched.Handle
}

// NewSpawner creates an idle spawner.
func NewSpawner(s sched.Scheduler, interval time.Duration, fire func()) *Spawner {
	return &Spawner{
		scheduler: s,
		interval:  interval,
		fire:      fire,
	}
}

// Start acquires the interval timer. Starting an active spawner does nothing.
func (s *Spawner) Start() {
	if s.handle != nil {
		return
	}
	s.handle = s.scheduler.Every(s.interval, s.fire)
}

// Stop cancels the interval timer and returns the spawner to idle.
func (s *Spawner) Stop() {
	if s.handle == nil {
		return
	}
	s.handle.Cancel()
	s.handle = nil
}

// Active reports whether the timer is running.
func (s *Spawner) Active() bool {
	return s.handle != nil
}
