package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossroad/internal/config"
	"github.com/vovakirdan/tui-crossroad/internal/core"
	"github.com/vovakirdan/tui-crossroad/internal/games/crossroad"
)

// Rows reserved below the playfield
const (
	buttonRows   = 3
	helpRows     = 1
	minFieldRows = 8
)

// fieldRows returns how many terminal rows the playfield gets.
func fieldRows(screenH int) int {
	return core.Max(screenH-buttonRows-helpRows, minFieldRows)
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     *crossroad.Game
	sched    *Scheduler
	screen   *core.Screen
	button   *ResetButton
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a model and the game it drives. The game's timers are
// not started until Init.
func NewModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	screen := core.NewScreen(rt.ScreenW, fieldRows(rt.ScreenH))
	canvas := core.NewCanvas(screen, cfg.Playfield.Width, cfg.Playfield.Height)
	scheduler := NewScheduler(rt.TickRate)
	button := NewResetButton()
	button.Layout(rt.ScreenW, screen.Height())

	game, err := crossroad.New(crossroad.Deps{
		Config:    cfg,
		Renderer:  canvas,
		Scheduler: scheduler,
		Button:    button,
		Logger:    logger,
		Seed:      rt.Seed,
	})
	if err != nil {
		return Model{}, err
	}

	return Model{
		game:   game,
		sched:  scheduler,
		screen: screen,
		button: button,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		width:  rt.ScreenW,
		height: rt.ScreenH,
	}, nil
}

// Init starts the frame loop and the spawn timer.
func (m Model) Init() tea.Cmd {
	m.game.Start()
	return m.sched.Drain()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	if m.sched.Dispatch(msg) {
		return m, m.sched.Drain()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.game.Destroy()
		return m, tea.Quit
	case core.ActionReset:
		m.button.Click()
	default:
		m.game.HandleInput(action)
	}

	return m, m.sched.Drain()
}

// handleMouse presses the reset button on left click and tracks hover.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	inside := m.button.Contains(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.button.SetHover(inside)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inside {
			m.button.Click()
		}
	}

	return m, m.sched.Drain()
}

// handleResize processes window resize events. The playfield is sized in
// pixels, so the game keeps running and only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, fieldRows(msg.Height))
	m.button.Layout(msg.Width, m.screen.Height())
	m.help.Width = msg.Width
	m.game.Render()

	return m, nil
}

// saveScreenshot saves the current playfield to a file.
func (m Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".crossroad", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("crossroad_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	field := RenderScreen(m.screen)
	controls := lipgloss.Place(m.width, buttonRows, lipgloss.Center, lipgloss.Top, m.button.View())

	return lipgloss.JoinVertical(lipgloss.Left, field, controls, m.help.View(m.keys))
}

// Game returns the game driven by this model.
func (m Model) Game() *crossroad.Game {
	return m.game
}

// Run starts the Bubble Tea program for one local game session.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}
	defer model.game.Destroy()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover tracking for the reset button
	)

	_, err = p.Run()
	return err
}
