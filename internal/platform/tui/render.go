package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossroad/internal/core"
)

// Road and shade carry a background so they read as surfaces.
var (
	roadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("236"))
	shadeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("239")).Background(lipgloss.Color("233")).Faint(true)
)

// cellStyles gives each kind of cell its terminal look.
var cellStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRoad:    roadStyle,
	core.ColorChicken: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorCarEast: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorCarWest: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorShade:   shadeStyle,
}

// styleFor returns the style for c, unstyled if c is unknown.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := cellStyles[c]; ok {
		return style
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

// renderRow styles one row, one escape sequence per run of same-kind cells.
func renderRow(s *core.Screen, y int) string {
	var (
		sb   strings.Builder
		run  []rune
		kind = core.ColorDefault
	)
	flush := func() {
		if len(run) > 0 {
			sb.WriteString(styleFor(kind).Render(string(run)))
			run = run[:0]
		}
	}

	for x := 0; x < s.Width(); x++ {
		cell := s.GetCell(x, y)
		if cell.Color != kind {
			flush()
			kind = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()

	return sb.String()
}
