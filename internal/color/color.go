package color

import (
	"github.com/charmbracelet/lipgloss"
)

// Initialize sets the background assumption for adaptive colors. Called
// once at startup; safe to call again (tests do).
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// Semantic styles used for human-facing status output. lipgloss degrades
// them to plain text automatically when the terminal reports no color
// support or NO_COLOR is set.
var (
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"}).
		Bold(true)

	Error = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"}).
		Bold(true)

	Info = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"})

	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "245"})
)
