package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/avasseur/atelier/internal/leveling"
)

// Bar renders a horizontal progress bar with an optional label and a
// trailing percentage. percent is 0..1 and gets clamped.
func Bar(label string, percent float64, width int) string {
	var out string
	if label != "" {
		out = Body.Render(label) + "  "
	}

	barWidth := width - lipgloss.Width(out) - 6
	if barWidth < 4 {
		barWidth = 4
	}

	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}
	filled := int(float64(barWidth) * percent)
	if filled > barWidth {
		filled = barWidth
	}

	out += lipgloss.NewStyle().Background(Secondary).Render(strings.Repeat(" ", filled))
	out += lipgloss.NewStyle().Background(Border).Render(strings.Repeat(" ", barWidth-filled))
	out += Subtitle.Render(fmt.Sprintf("  %d%%", int(percent*100)))
	return out
}

// XPLine renders the level summary shown under the profile header.
func XPLine(b leveling.Breakdown, totalXP int) string {
	return fmt.Sprintf("%s  %s",
		Highlight.Render(fmt.Sprintf("Level %d", b.Level)),
		Subtitle.Render(fmt.Sprintf("%d / %d XP in level (total %d XP)",
			b.CurrentLevelXP, leveling.XPPerLevel, totalXP)))
}
