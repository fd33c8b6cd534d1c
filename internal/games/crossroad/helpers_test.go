package crossroad

import (
	"testing"
	"unicode/utf8"

	"github.com/vovakirdan/tui-crossroad/internal/config"
	"github.com/vovakirdan/tui-crossroad/internal/core"
	"github.com/vovakirdan/tui-crossroad/internal/sched"
)

// recordingRenderer is a core.Renderer that remembers what was drawn.
type recordingRenderer struct {
	width, height float64
	clears        int
	rects         []core.Rect
	texts         []drawnText
}

type drawnText struct {
	text  string
	x, y  float64
	align core.Align
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{width: 800, height: 600}
}

func (r *recordingRenderer) Width() float64  { return r.width }
func (r *recordingRenderer) Height() float64 { return r.height }

func (r *recordingRenderer) Clear() {
	r.clears++
	r.rects = nil
	r.texts = nil
}

func (r *recordingRenderer) FillRect(x, y, w, h float64, c core.Color) {
	r.rects = append(r.rects, core.NewRect(x, y, w, h))
}

func (r *recordingRenderer) FillText(text string, x, y, size float64, align core.Align, c core.Color) {
	r.texts = append(r.texts, drawnText{text: text, x: x, y: y, align: align})
}

func (r *recordingRenderer) MeasureText(text string, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * 10
}

func (r *recordingRenderer) hasText(text string) bool {
	for _, t := range r.texts {
		if t.text == text {
			return true
		}
	}
	return false
}

// fakeButton is a Button whose click can be triggered from tests.
type fakeButton struct {
	visible bool
	onClick func()
}

func (b *fakeButton) Show()             { b.visible = true }
func (b *fakeButton) Hide()             { b.visible = false }
func (b *fakeButton) OnClick(fn func()) { b.onClick = fn }

func (b *fakeButton) Click() {
	if b.visible && b.onClick != nil {
		b.onClick()
	}
}

type testEnv struct {
	game     *Game
	clock    *sched.Manual
	renderer *recordingRenderer
	button   *fakeButton
}

// newTestGame builds a started game on a manual clock.
func newTestGame(t *testing.T, seed int64) *testEnv {
	t.Helper()

	env := &testEnv{
		clock:    sched.NewManual(),
		renderer: newRecordingRenderer(),
		button:   &fakeButton{},
	}

	g, err := New(Deps{
		Config:    config.DefaultConfig(),
		Renderer:  env.renderer,
		Scheduler: env.clock,
		Button:    env.button,
		Seed:      seed,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Start()
	env.game = g
	return env
}

// blockPlayer parks a stationary car directly on top of the player.
func (env *testEnv) blockPlayer() {
	p := env.game.player
	env.game.obstacles = append(env.game.obstacles, &Obstacle{
		X: p.X, Y: p.Y, W: 60, H: 30, fieldW: 800,
	})
}
