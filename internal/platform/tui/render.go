package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/soul-slash/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorHero:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorDemon:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	core.ColorSlash:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorSoul:    lipgloss.NewStyle().Foreground(lipgloss.Color("121")),
	core.ColorBanner:  lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Bold(true),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// CapabilitiesFor decides the presentation features for a terminal profile.
// Colour needs at least ANSI; effects and shake work everywhere.
func CapabilitiesFor(profile termenv.Profile) core.Capabilities {
	return core.Capabilities{
		Color:   profile != termenv.Ascii,
		Effects: true,
		Shake:   true,
	}
}

// DetectCapabilities inspects the local terminal once at startup.
func DetectCapabilities() core.Capabilities {
	return CapabilitiesFor(lipgloss.ColorProfile())
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
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
			if !ok || startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
