package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

const shieldBarWidth = 20

// ansiColor is the 256-color palette index of each core.Color.
// ColorDefault keeps the terminal foreground.
var ansiColor = [...]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiColor))
	for c, idx := range ansiColor {
		styles[c] = lipgloss.NewStyle()
		if idx != "" {
			styles[c] = styles[c].Foreground(lipgloss.Color(idx))
		}
	}
	return styles
}()

var (
	statusLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderScreen turns the cell grid into terminal text, one styled span
// per run of same-colored cells.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	var row, span strings.Builder
	for y := range rows {
		row.Reset()
		span.Reset()
		spanColor := s.GetCell(0, y).Color
		for x := range s.Width() {
			c := s.GetCell(x, y)
			if c.Color != spanColor {
				row.WriteString(styleFor(spanColor).Render(span.String()))
				span.Reset()
				spanColor = c.Color
			}
			span.WriteRune(c.Rune)
		}
		row.WriteString(styleFor(spanColor).Render(span.String()))
		rows[y] = row.String()
	}
	return strings.Join(rows, "\n")
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// shieldFraction converts the HUD shield value to the [0, 1] range.
func shieldFraction(hud core.HUD) float64 {
	if hud.MaxShield <= 0 {
		return 0
	}
	f := float64(hud.Shield) / float64(hud.MaxShield)
	return min(max(f, 0), 1)
}

// renderStatus draws the shield gauge and best score below the playfield.
func renderStatus(bar progress.Model, hud core.HUD, best, width int) string {
	line := statusLabelStyle.Render("SHIELD ") +
		bar.ViewAs(shieldFraction(hud)) +
		statusTextStyle.Render(fmt.Sprintf(" %3d%%", hud.Shield)) +
		statusLabelStyle.Render("  BEST ") +
		statusTextStyle.Render(fmt.Sprintf("%d", best))
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

// renderHelp draws the key help line.
func renderHelp(h help.Model, keys KeyMap) string {
	return helpStyle.Render(h.View(keys))
}
