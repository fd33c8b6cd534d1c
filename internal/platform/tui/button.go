package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const resetLabel = "Reset Game"

var (
	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4CAF50")).
			Padding(0, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4CAF50"))

	buttonHoverStyle = buttonStyle.
				Background(lipgloss.Color("#45A049")).
				BorderForeground(lipgloss.Color("#FFFFFF"))
)

// ResetButton is the terminal reset control. It is drawn below the
// playfield and is pressed with the reset key or a left click.
type ResetButton struct {
	visible bool
	hover   bool
	onClick func()

	// Bounds in terminal cells, set by Layout
	x, y, w, h int
}

// NewResetButton creates a hidden button.
func NewResetButton() *ResetButton {
	b := &ResetButton{}
	b.w = lipgloss.Width(buttonStyle.Render(resetLabel))
	b.h = lipgloss.Height(buttonStyle.Render(resetLabel))
	return b
}

// Show makes the button visible.
func (b *ResetButton) Show() {
	b.visible = true
}

// Hide hides the button and clears its hover state.
func (b *ResetButton) Hide() {
	b.visible = false
	b.hover = false
}

// OnClick registers the click callback.
func (b *ResetButton) OnClick(fn func()) {
	b.onClick = fn
}

// Visible reports whether the button is shown.
func (b *ResetButton) Visible() bool {
	return b.visible
}

// Click invokes the callback if the button is visible.
// It returns whether the click was handled.
func (b *ResetButton) Click() bool {
	if !b.visible || b.onClick == nil {
		return false
	}
	b.onClick()
	return true
}

// Layout centers the button horizontally in a row band starting at top.
func (b *ResetButton) Layout(width, top int) {
	b.x = (width - b.w) / 2
	b.y = top
}

// Contains reports whether the cell (x, y) is on the visible button.
func (b *ResetButton) Contains(x, y int) bool {
	return b.visible && x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// SetHover updates the highlight; it has no effect on behavior.
func (b *ResetButton) SetHover(hover bool) {
	b.hover = hover && b.visible
}

// Size returns the rendered button size in cells.
func (b *ResetButton) Size() (int, int) {
	return b.w, b.h
}

// View renders the button, or an empty string while hidden.
func (b *ResetButton) View() string {
	if !b.visible {
		return ""
	}
	if b.hover {
		return buttonHoverStyle.Render(resetLabel)
	}
	return buttonStyle.Render(resetLabel)
}
