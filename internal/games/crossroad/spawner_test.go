package crossroad

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-crossroad/internal/sched"
)

func TestSpawnerLifecycle(t *testing.T) {
	clock := sched.NewManual()
	fired := 0
	s := NewSpawner(clock, 250*time.Millisecond, func() { fired++ })

	if s.Active() {
		t.Error("new spawner should be idle")
	}
	clock.Advance(time.Second)
	if fired != 0 {
		t.Errorf("idle spawner fired %d times", fired)
	}

	s.Start()
	s.Start()
	if !s.Active() || clock.ActiveTimers() != 1 {
		t.Fatalf("after Start: active=%v timers=%d, expected one timer", s.Active(), clock.ActiveTimers())
	}

	clock.Advance(time.Second)
	if fired != 4 {
		t.Errorf("fired %d times in 1s, expected 4", fired)
	}

	s.Stop()
	s.Stop()
	clock.Advance(time.Second)
	if fired != 4 {
		t.Errorf("stopped spawner kept firing: %d", fired)
	}
	if s.Active() || clock.ActiveTimers() != 0 {
		t.Errorf("after Stop: active=%v timers=%d", s.Active(), clock.ActiveTimers())
	}
}

func TestSpawnerRestartResetsCadence(t *testing.T) {
	clock := sched.NewManual()
	fired := 0
	s := NewSpawner(clock, 250*time.Millisecond, func() { fired++ })

	s.Start()
	clock.Advance(200 * time.Millisecond)
	s.Stop()
	s.Start()
	clock.Advance(200 * time.Millisecond)

	if fired != 0 {
		t.Errorf("restart should restart the period, fired %d", fired)
	}

	clock.Advance(50 * time.Millisecond)
	if fired != 1 {
		t.Errorf("fired %d, expected 1", fired)
	}
}
