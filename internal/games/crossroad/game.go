// Package crossroad implements a lane-crossing arcade game.
// The player steps a chicken across a road of moving cars; reaching the far
// side scores a point, touching a car ends the game until it is reset.
//
// The game owns two scheduled tasks, a per-frame callback and the car
// spawn timer. Both are acquired through an injected sched.Scheduler and
// released on every reset and on Destroy, so at most one of each is live.
package crossroad

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossroad/internal/config"
	"github.com/vovakirdan/tui-crossroad/internal/core"
	"github.com/vovakirdan/tui-crossroad/internal/sched"
)

// Text layout, in playfield pixels.
const (
	hudFontSize      = 24
	titleFontSize    = 48
	hudBaseline      = 30
	titleOffsetY     = -80
	finalScoreOffset = -20
)

var (
	// ErrNoRenderer is returned by New when no drawing surface is available.
	ErrNoRenderer = errors.New("crossroad: renderer unavailable")

	// ErrNoScheduler is returned by New when no timing source is provided.
	ErrNoScheduler = errors.New("crossroad: scheduler unavailable")
)

// State is the game's top-level mode.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Button is the reset control shown on the game over screen.
type Button interface {
	Show()
	Hide()
	OnClick(fn func())
}

// Deps carries everything the game consumes from its environment.
type Deps struct {
	Config    config.Config
	Renderer  core.Renderer
	Scheduler sched.Scheduler
	Button    Button      // Optional; a hidden no-op control is used when nil
	Logger    *log.Logger // Optional; logs are discarded when nil
	Seed      int64
}

// Game is the orchestrator. It exclusively owns the player, the cars and
// the score.
type Game struct {
	cfg      config.Config
	renderer core.Renderer
	sched    sched.Scheduler
	button   Button
	logger   *log.Logger
	rng      *rand.Rand

	player    *Player
	obstacles []*Obstacle
	queue     []core.Action
	score     int
	state     State
	ticks     int

	frame   sched.Handle
	spawner *Spawner
}

// New creates a game in the Playing state. No timers run until Start.
func New(d Deps) (*Game, error) {
	if d.Renderer == nil {
		return nil, ErrNoRenderer
	}
	if d.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	if err := d.Config.Validate(); err != nil {
		return nil, fmt.Errorf("crossroad: %w", err)
	}

	g := &Game{
		cfg:      d.Config,
		renderer: d.Renderer,
		sched:    d.Scheduler,
		button:   d.Button,
		logger:   d.Logger,
		rng:      rand.New(rand.NewSource(d.Seed)),
	}
	if g.button == nil {
		g.button = noopButton{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.player = NewPlayer(g.cfg.Player, g.cfg.Playfield)
	g.spawner = NewSpawner(g.sched, g.cfg.Obstacles.SpawnInterval(), g.spawn)
	g.button.OnClick(g.Reset)

	return g, nil
}

// Start begins the frame loop and the spawn timer. A game that was
// destroyed during game over comes back to the game over screen with the
// reset control shown.
func (g *Game) Start() {
	g.spawner.Start()
	if g.state == StateGameOver {
		g.drawGameOver()
		g.button.Show()
		g.logger.Info("game started at game over", "score", g.score)
		return
	}

	g.button.Hide()
	if g.frame == nil {
		g.scheduleFrame()
	}
	g.logger.Info("game started", "lanes", g.cfg.Road.Lanes, "spawn_interval", g.cfg.Obstacles.SpawnInterval())
}

// Destroy releases both scheduled tasks. The game can be started again.
func (g *Game) Destroy() {
	g.cancelFrame()
	g.spawner.Stop()
	g.logger.Debug("game destroyed", "score", g.score)
}

// HandleInput queues a direction for the next frame. Input is ignored
// during game over and non-direction actions are ignored always.
func (g *Game) HandleInput(a core.Action) {
	if g.state != StatePlaying || !a.IsDirection() {
		return
	}
	g.queue = append(g.queue, a)
}

// HandleKey queues the direction named by a key identifier.
// Unrecognized identifiers are ignored.
func (g *Game) HandleKey(id string) {
	g.HandleInput(core.ParseKey(id))
}

// Tick advances the simulation by one frame and renders it. It does
// nothing once the game is over.
func (g *Game) Tick() {
	if g.state != StatePlaying {
		return
	}
	g.ticks++

	for _, a := range g.queue {
		g.player.Move(a)
	}
	g.queue = g.queue[:0]

	// Advance cars and drop the ones that left the playfield
	live := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.Update()
		if o.IsVisible() {
			live = append(live, o)
		}
	}
	for i := len(live); i < len(g.obstacles); i++ {
		g.obstacles[i] = nil
	}
	g.obstacles = live

	for _, o := range g.obstacles {
		if Collides(o, g.player, g.cfg.Collision.Tolerance) {
			g.enterGameOver(o)
			return
		}
	}

	if g.player.Y <= g.cfg.Scoring.WinLine {
		g.score++
		g.player.Reset()
		g.logger.Info("crossing scored", "score", g.score)
	}

	g.draw()
	g.scheduleFrame()
}

// Reset starts a fresh round: score zero, no cars, player at the origin.
// Both timers are released before they are acquired again.
func (g *Game) Reset() {
	g.cancelFrame()
	g.spawner.Stop()

	prev := g.score
	g.score = 0
	g.state = StatePlaying
	g.ticks = 0
	g.obstacles = nil
	g.queue = nil
	g.player = NewPlayer(g.cfg.Player, g.cfg.Playfield)
	g.button.Hide()

	g.spawner.Start()
	g.scheduleFrame()
	g.logger.Info("game reset", "previous_score", prev)
}

// Render redraws the current screen without advancing the simulation.
func (g *Game) Render() {
	if g.state == StateGameOver {
		g.drawGameOver()
		return
	}
	g.draw()
}

// State returns the externally visible game status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
	}
}

// Mode returns the current top-level state.
func (g *Game) Mode() State {
	return g.state
}

// Score returns the number of crossings since the last reset.
func (g *Game) Score() int {
	return g.score
}

// GameOver reports whether a collision has latched the game.
func (g *Game) GameOver() bool {
	return g.state == StateGameOver
}

// Player returns the player.
func (g *Game) Player() *Player {
	return g.player
}

// Obstacles returns a snapshot of the live cars. Later ticks move the
// cars it points to but never rewrite the returned slice.
func (g *Game) Obstacles() []*Obstacle {
	return slices.Clone(g.obstacles)
}

// Ticks returns the number of simulated frames since the last reset.
func (g *Game) Ticks() int {
	return g.ticks
}

// spawn is the spawn timer callback.
func (g *Game) spawn() {
	if g.state != StatePlaying {
		return
	}
	o := NewObstacle(g.rng, g.cfg)
	g.obstacles = append(g.obstacles, o)
	g.logger.Debug("car spawned", "lane", o.Lane, "cars", len(g.obstacles))
}

// onFrame is the frame callback; the handle is spent once it runs.
func (g *Game) onFrame() {
	g.frame = nil
	g.Tick()
}

// scheduleFrame requests the next frame, replacing any pending request.
func (g *Game) scheduleFrame() {
	g.cancelFrame()
	g.frame = g.sched.RequestFrame(g.onFrame)
}

func (g *Game) cancelFrame() {
	if g.frame != nil {
		g.frame.Cancel()
		g.frame = nil
	}
}

// enterGameOver latches the game, draws the final screen and stops the
// frame loop. The spawn timer keeps running but spawns nothing.
func (g *Game) enterGameOver(hit *Obstacle) {
	g.state = StateGameOver
	g.queue = g.queue[:0]
	g.cancelFrame()

	g.drawGameOver()
	g.button.Show()
	cx, cy := hit.Rect().Center()
	g.logger.Info("game over", "score", g.score, "lane", hit.Lane, "ticks", g.ticks, "car_x", cx, "car_y", cy)
}

// draw renders the playing field.
func (g *Game) draw() {
	r := g.renderer
	r.Clear()

	road := g.cfg.Road
	r.FillRect(0, road.Top, r.Width(), road.Height, core.ColorRoad)

	scoreText := fmt.Sprintf("Score: %d", g.score)
	textWidth := r.MeasureText(scoreText, hudFontSize)
	r.FillText(scoreText, (r.Width()-textWidth)/2, hudBaseline, hudFontSize, core.AlignLeft, core.ColorText)

	g.player.Draw(r)
	for _, o := range g.obstacles {
		o.Draw(r)
	}
}

// drawGameOver draws the final frame under a shade and prints the score.
func (g *Game) drawGameOver() {
	g.draw()

	r := g.renderer
	w, h := r.Width(), r.Height()
	r.FillRect(0, 0, w, h, core.ColorShade)
	r.FillText("Game Over", w/2, h/2+titleOffsetY, titleFontSize, core.AlignCenter, core.ColorText)
	r.FillText(fmt.Sprintf("Final Score: %d", g.score), w/2, h/2+finalScoreOffset, hudFontSize, core.AlignCenter, core.ColorText)
}

type noopButton struct{}

func (noopButton) Show()          {}
func (noopButton) Hide()          {}
func (noopButton) OnClick(func()) {}
