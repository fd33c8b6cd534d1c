// Package tui provides the Bubble Tea integration for the crossroad game.
// It handles the terminal UI loop, input mapping, and timer plumbing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crossroad/internal/sched"
)

// frameMsg fires a pending frame callback.
type frameMsg struct{ id int }

// intervalMsg fires one period of an interval timer.
type intervalMsg struct{ id int }

// tickCmd returns a Bubble Tea command that delivers msg after d.
func tickCmd(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// Scheduler implements sched.Scheduler on top of Bubble Tea ticks.
//
// Every scheduled callback is identified by an id carried in its tick
// message. Cancelling forgets the id, so a tick that is already in flight
// arrives as a stale message and is dropped. Callbacks run inside
// Model.Update and therefore never overlap.
type Scheduler struct {
	frameInterval time.Duration
	nextID        int
	frames        map[int]func()
	timers        map[int]*teaInterval
	pending       []tea.Cmd
}

type teaInterval struct {
	period time.Duration
	fn     func()
}

// NewScheduler creates a scheduler delivering frames at tickRate per second.
func NewScheduler(tickRate int) *Scheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Scheduler{
		frameInterval: time.Second / time.Duration(tickRate),
		frames:        make(map[int]func()),
		timers:        make(map[int]*teaInterval),
	}
}

// RequestFrame runs fn on the next frame tick.
func (s *Scheduler) RequestFrame(fn func()) sched.Handle {
	s.nextID++
	id := s.nextID
	s.frames[id] = fn
	s.pending = append(s.pending, tickCmd(s.frameInterval, frameMsg{id: id}))
	return sched.HandleFunc(func() { delete(s.frames, id) })
}

// Every runs fn once per period until cancelled.
func (s *Scheduler) Every(period time.Duration, fn func()) sched.Handle {
	s.nextID++
	id := s.nextID
	s.timers[id] = &teaInterval{period: period, fn: fn}
	s.pending = append(s.pending, tickCmd(period, intervalMsg{id: id}))
	return sched.HandleFunc(func() { delete(s.timers, id) })
}

// Dispatch runs the callback addressed by a scheduler message.
// It returns false if msg is not a scheduler message.
func (s *Scheduler) Dispatch(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case frameMsg:
		fn, ok := s.frames[msg.id]
		if !ok {
			return true
		}
		delete(s.frames, msg.id)
		fn()

	case intervalMsg:
		t, ok := s.timers[msg.id]
		if !ok {
			return true
		}
		// Re-arm first; a callback that cancels its own timer leaves only a stale tick behind.
		s.pending = append(s.pending, tickCmd(t.period, intervalMsg{id: msg.id}))
		t.fn()

	default:
		return false
	}
	return true
}

// Drain returns the ticks requested since the last call as one command.
func (s *Scheduler) Drain() tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Frames returns the number of live frame requests.
func (s *Scheduler) Frames() int {
	return len(s.frames)
}

// Timers returns the number of live interval timers.
func (s *Scheduler) Timers() int {
	return len(s.timers)
}

var _ sched.Scheduler = (*Scheduler)(nil)
