package core

import (
	"math"
	"unicode/utf8"
)

// Align selects how FillText positions text relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Renderer is the drawing surface the game consumes. Coordinates and sizes
// are in playfield pixels; implementations decide how pixels map to output.
type Renderer interface {
	// Width and Height return the playfield dimensions in pixels.
	Width() float64
	Height() float64

	// Clear wipes the whole surface.
	Clear()

	// FillRect fills an axis-aligned rectangle with a solid color.
	FillRect(x, y, w, h float64, c Color)

	// FillText draws text with its baseline row at y.
	FillText(text string, x, y, size float64, align Align, c Color)

	// MeasureText returns the rendered width of text in pixels.
	MeasureText(text string, size float64) float64
}

// Canvas projects a pixel playfield onto a Screen of terminal cells.
// Font sizes are accepted for interface parity and otherwise ignored:
// every rune occupies exactly one cell.
type Canvas struct {
	screen *Screen
	width  float64
	height float64
}

// NewCanvas creates a canvas mapping a width×height pixel playfield onto screen.
func NewCanvas(screen *Screen, width, height float64) *Canvas {
	return &Canvas{screen: screen, width: width, height: height}
}

// Screen returns the backing cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Width returns the playfield width in pixels.
func (c *Canvas) Width() float64 {
	return c.width
}

// Height returns the playfield height in pixels.
func (c *Canvas) Height() float64 {
	return c.height
}

// cellSize returns how many pixels one cell covers on each axis.
func (c *Canvas) cellSize() (float64, float64) {
	cw := c.width / float64(Max(c.screen.Width(), 1))
	ch := c.height / float64(Max(c.screen.Height(), 1))
	return cw, ch
}

// Clear wipes the backing screen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// FillRect fills the cells nearest to the rectangle's edges. A non-empty
// rectangle always covers at least one cell on each axis. ColorShade dims
// the covered cells instead of painting over them.
func (c *Canvas) FillRect(x, y, w, h float64, color Color) {
	if w <= 0 || h <= 0 {
		return
	}
	cw, ch := c.cellSize()

	x0 := int(math.Round(x / cw))
	x1 := int(math.Round((x + w) / cw))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	y0 := int(math.Round(y / ch))
	y1 := int(math.Round((y + h) / ch))
	if y1 <= y0 {
		y1 = y0 + 1
	}

	if color == ColorShade {
		c.screen.Recolor(x0, y0, x1, y1, ColorShade)
		return
	}
	c.screen.FillRect(x0, y0, x1, y1, Cell{Rune: fillRune(color), Color: color})
}

// FillText writes text on the row containing y.
func (c *Canvas) FillText(text string, x, y, size float64, align Align, color Color) {
	cw, ch := c.cellSize()
	n := utf8.RuneCountInString(text)

	col := int(math.Floor(x / cw))
	switch align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}
	row := int(math.Floor(y / ch))

	c.screen.DrawText(col, row, text, color)
}

// MeasureText returns the pixel width of text, one cell per rune.
func (c *Canvas) MeasureText(text string, size float64) float64 {
	cw, _ := c.cellSize()
	return float64(utf8.RuneCountInString(text)) * cw
}

// fillRune picks the glyph used to paint a solid area of the given color.
func fillRune(color Color) rune {
	switch color {
	case ColorDefault:
		return ' '
	case ColorRoad:
		return '░'
	default:
		return '█'
	}
}
