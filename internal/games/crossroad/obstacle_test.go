package crossroad

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-crossroad/internal/config"
)

func TestObstacleLinearMotion(t *testing.T) {
	cfg := config.DefaultConfig()
	rng := rand.New(rand.NewSource(99))

	for _, n := range []int{0, 1, 10, 57} {
		o := NewObstacle(rng, cfg)
		x0 := o.X

		for i := 0; i < n; i++ {
			o.Update()
		}

		expected := x0 + float64(n)*o.VX
		if o.X != expected {
			t.Errorf("after %d updates x = %v, expected %v", n, o.X, expected)
		}
	}
}

func TestObstacleLanesAndDirection(t *testing.T) {
	cfg := config.DefaultConfig()
	rng := rand.New(rand.NewSource(1))
	laneH := cfg.Road.LaneHeight()

	for i := 0; i < 200; i++ {
		o := NewObstacle(rng, cfg)

		if o.Lane < 0 || o.Lane >= cfg.Road.Lanes {
			t.Fatalf("lane %d out of range", o.Lane)
		}
		top := cfg.Road.Top + float64(o.Lane)*laneH
		if o.Y < top || o.Y+o.H > top+laneH {
			t.Errorf("car y %v not inside lane %d [%v, %v)", o.Y, o.Lane, top, top+laneH)
		}

		if o.Lane%2 == 0 {
			if o.VX != cfg.Obstacles.Speed || o.X != -o.W {
				t.Errorf("even lane car: x=%v vx=%v, expected entering from left", o.X, o.VX)
			}
		} else {
			if o.VX != -cfg.Obstacles.Speed || o.X != cfg.Playfield.Width {
				t.Errorf("odd lane car: x=%v vx=%v, expected entering from right", o.X, o.VX)
			}
		}
	}
}

func TestObstacleDeterministicForSeed(t *testing.T) {
	cfg := config.DefaultConfig()
	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		a, b := NewObstacle(r1, cfg), NewObstacle(r2, cfg)
		if *a != *b {
			t.Fatalf("car %d differs: %+v vs %+v", i, *a, *b)
		}
	}
}

func TestObstacleIsVisible(t *testing.T) {
	tests := []struct {
		name    string
		x       float64
		visible bool
	}{
		{"fully inside", 300, true},
		{"straddling left edge", -30, true},
		{"straddling right edge", 790, true},
		{"touching left edge from outside", -60, false},
		{"touching right edge from outside", 800, false},
		{"far left", -500, false},
		{"far right", 2000, false},
		{"one pixel in from left", -59, true},
		{"one pixel in from right", 799, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := &Obstacle{X: tc.x, Y: 200, W: 60, H: 30, fieldW: 800}
			if o.IsVisible() != tc.visible {
				t.Errorf("IsVisible() at x=%v = %v, expected %v", tc.x, o.IsVisible(), tc.visible)
			}
		})
	}
}

func TestObstacleDraw(t *testing.T) {
	r := newRecordingRenderer()
	o := &Obstacle{X: 10, Y: 110, VX: 4, W: 60, H: 30, fieldW: 800}
	o.Draw(r)

	if len(r.rects) != 1 || r.rects[0] != o.Rect() {
		t.Errorf("Draw() rects = %+v, expected %+v", r.rects, o.Rect())
	}
}
