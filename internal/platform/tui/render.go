package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tuxascii/internal/core"
)

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// palette holds the terminal style of each core.Color.
var palette = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         fg("1"),
	core.ColorGreen:       fg("2"),
	core.ColorYellow:      fg("3"),
	core.ColorMagenta:     fg("5"),
	core.ColorCyan:        fg("6"),
	core.ColorWhite:       fg("7"),
	core.ColorGray:        fg("240"),
	core.ColorBrightRed:   fg("9").Bold(true),
	core.ColorBrightWhite: fg("15").Bold(true),
}

// helpStyle renders the key help footer.
var helpStyle = fg("241").PaddingLeft(1)

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := palette[c]; ok {
		return st
	}
	return palette[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each run of same-colored cells in a row is styled once.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var sb strings.Builder
	sb.Grow(w*h*2 + h)

	var run strings.Builder
	flush := func(c core.Color) {
		if run.Len() > 0 {
			sb.WriteString(styleFor(c).Render(run.String()))
			run.Reset()
		}
	}

	for y := range h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		current := s.GetCell(0, y).Color
		for x := range w {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				flush(current)
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush(current)
	}
	return sb.String()
}
