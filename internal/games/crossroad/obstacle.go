package crossroad

import (
	"math/rand"

	"github.com/vovakirdan/tui-crossroad/internal/config"
	"github.com/vovakirdan/tui-crossroad/internal/core"
)

// Obstacle is a car driving along one lane at constant velocity.
type Obstacle struct {
	X, Y   float64 // Top-left corner
	VX     float64 // Pixels per frame; sign gives direction
	W, H   float64
	Lane   int
	fieldW float64
}

// NewObstacle creates a car in a random lane just outside the playfield.
// Even lanes drive right from the left edge, odd lanes drive left from the
// right edge, so the result depends only on rng's state.
func NewObstacle(rng *rand.Rand, cfg config.Config) *Obstacle {
	road := cfg.Road
	lane := rng.Intn(road.Lanes)
	laneH := road.LaneHeight()

	o := &Obstacle{
		Y:      road.Top + float64(lane)*laneH + (laneH-cfg.Obstacles.Height)/2,
		W:      cfg.Obstacles.Width,
		H:      cfg.Obstacles.Height,
		Lane:   lane,
		fieldW: cfg.Playfield.Width,
	}

	if lane%2 == 0 {
		o.X = -o.W
		o.VX = cfg.Obstacles.Speed
	} else {
		o.X = cfg.Playfield.Width
		o.VX = -cfg.Obstacles.Speed
	}
	return o
}

// Update advances the car by one frame.
func (o *Obstacle) Update() {
	o.X += o.VX
}

// IsVisible reports whether any part of the car is inside the playfield
// horizontally.
func (o *Obstacle) IsVisible() bool {
	return o.X+o.W > 0 && o.X < o.fieldW
}

// Rect returns the car's bounding box.
func (o *Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Draw paints the car, colored by travel direction.
func (o *Obstacle) Draw(r core.Renderer) {
	color := core.ColorCarEast
	if o.VX < 0 {
		color = core.ColorCarWest
	}
	r.FillRect(o.X, o.Y, o.W, o.H, color)
}
