package sched

import (
	"time"
)

// Manual is a deterministic Scheduler driven by explicit calls. Frames run
// only when Frame is called and intervals fire only while Advance moves the
// simulated clock forward.
type Manual struct {
	now    time.Duration
	nextID int
	frames []*pendingFrame
	timers map[int]*interval
}

type pendingFrame struct {
	fn   func()
	done bool
}

type interval struct {
	id     int
	period time.Duration
	next   time.Duration
	fn     func()
}

// NewManual creates a manual scheduler with its clock at zero.
func NewManual() *Manual {
	return &Manual{timers: make(map[int]*interval)}
}

// RequestFrame queues fn for the next call to Frame.
func (m *Manual) RequestFrame(fn func()) Handle {
	f := &pendingFrame{fn: fn}
	m.frames = append(m.frames, f)
	return HandleFunc(func() { f.done = true })
}

// Every registers fn to fire each period of simulated time.
// It panics if period is not positive.
func (m *Manual) Every(period time.Duration, fn func()) Handle {
	if period <= 0 {
		panic("sched: non-positive interval")
	}
	m.nextID++
	id := m.nextID
	m.timers[id] = &interval{id: id, period: period, next: m.now + period, fn: fn}
	return HandleFunc(func() { delete(m.timers, id) })
}

// Frame runs every frame callback that was pending when it was called and
// returns how many ran. Frames requested by those callbacks wait for the
// next call.
func (m *Manual) Frame() int {
	batch := m.frames
	m.frames = nil

	ran := 0
	for _, f := range batch {
		if f.done {
			continue
		}
		f.done = true
		f.fn()
		ran++
	}
	return ran
}

// Advance moves the clock forward by d, firing due intervals in time order.
// Timers due at the same instant fire in registration order.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		due := m.nextDue(target)
		if due == nil {
			break
		}
		m.now = due.next
		due.next += due.period
		due.fn()
	}
	m.now = target
}

// nextDue returns the earliest timer due at or before target, or nil.
func (m *Manual) nextDue(target time.Duration) *interval {
	var best *interval
	for _, t := range m.timers {
		if t.next > target {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.id < best.id) {
			best = t
		}
	}
	return best
}

// Now returns the simulated time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

// PendingFrames returns the number of frame callbacks waiting to run.
func (m *Manual) PendingFrames() int {
	n := 0
	for _, f := range m.frames {
		if !f.done {
			n++
		}
	}
	return n
}

// ActiveTimers returns the number of live interval timers.
func (m *Manual) ActiveTimers() int {
	return len(m.timers)
}

var _ Scheduler = (*Manual)(nil)
