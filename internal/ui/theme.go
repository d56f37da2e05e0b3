// Package ui holds the terminal styles and small render helpers used by the
// commands. Output is static styled text, no interactive screens.
package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/avasseur/atelier/internal/badges"
)

// Color palette, matched to the brand colors of the course material.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#8B5CF6") // Purple
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#10B981") // Emerald
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Rarity colors, one per badge tier.
var (
	RarityCommon    = lipgloss.Color("#9CA3AF") // Gray
	RarityRare      = lipgloss.Color("#3B82F6") // Blue
	RarityEpic      = lipgloss.Color("#A855F7") // Purple
	RarityLegendary = lipgloss.Color("#F59E0B") // Amber
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Good = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Bad = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Highlight = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// RarityStyle returns the foreground style for a badge rarity tier.
func RarityStyle(r badges.Rarity) lipgloss.Style {
	switch r {
	case badges.RarityRare:
		return lipgloss.NewStyle().Foreground(RarityRare)
	case badges.RarityEpic:
		return lipgloss.NewStyle().Foreground(RarityEpic)
	case badges.RarityLegendary:
		return lipgloss.NewStyle().Foreground(RarityLegendary).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(RarityCommon)
	}
}
