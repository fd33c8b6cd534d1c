package crossroad

import (
	"github.com/vovakirdan/tui-crossroad/internal/config"
	"github.com/vovakirdan/tui-crossroad/internal/core"
)

// Player is the chicken: a box that moves in discrete steps.
type Player struct {
	X, Y  float64
	cfg   config.Player
	field config.Playfield
}

// NewPlayer creates a player at its starting position.
func NewPlayer(cfg config.Player, field config.Playfield) *Player {
	p := &Player{cfg: cfg, field: field}
	p.Reset()
	return p
}

// MoveUp moves one step toward the win line.
func (p *Player) MoveUp() {
	p.moveBy(0, -p.cfg.Step)
}

// MoveDown moves one step back toward the curb.
func (p *Player) MoveDown() {
	p.moveBy(0, p.cfg.Step)
}

// MoveLeft moves one step left.
func (p *Player) MoveLeft() {
	p.moveBy(-p.cfg.Step, 0)
}

// MoveRight moves one step right.
func (p *Player) MoveRight() {
	p.moveBy(p.cfg.Step, 0)
}

// Move applies a direction action. Other actions are ignored.
func (p *Player) Move(a core.Action) {
	switch a {
	case core.ActionUp:
		p.MoveUp()
	case core.ActionDown:
		p.MoveDown()
	case core.ActionLeft:
		p.MoveLeft()
	case core.ActionRight:
		p.MoveRight()
	}
}

// moveBy shifts the player and keeps it inside the playfield.
// Horizontal clamping is optional; vertical clamping always applies.
func (p *Player) moveBy(dx, dy float64) {
	p.X += dx
	p.Y += dy

	if p.cfg.ClampHorizontal {
		p.X = core.ClampF(p.X, 0, p.field.Width-p.cfg.Width)
	}
	p.Y = core.ClampF(p.Y, 0, p.field.Height-p.cfg.Height)
}

// Reset returns the player to the starting position.
func (p *Player) Reset() {
	p.X = p.cfg.StartX
	p.Y = p.cfg.StartY
}

// AtOrigin reports whether the player is at the starting position.
func (p *Player) AtOrigin() bool {
	return p.X == p.cfg.StartX && p.Y == p.cfg.StartY
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.cfg.Width, p.cfg.Height)
}

// Draw paints the player.
func (p *Player) Draw(r core.Renderer) {
	r.FillRect(p.X, p.Y, p.cfg.Width, p.cfg.Height, core.ColorChicken)
}
