package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-dodger/internal/core"
)

// colorStyles maps core.Color to lipgloss styles in the neon palette.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorViolet:  lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	core.ColorPink:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("84")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("227")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawTextBox draws lines of text inside a bordered box centered on the screen.
func drawTextBox(dst *core.Screen, lines []string, border, text core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillArea(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, border)
	for i, l := range lines {
		dst.DrawTextColored(boxX+2, boxY+1+i, l, text)
	}
}
