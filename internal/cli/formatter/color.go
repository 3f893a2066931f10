package formatter

import (
	"fmt"
	"strings"

	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TrackColor returns the style for an on-track classification.
func TrackColor(s domain.TrackStatus) lipgloss.Style {
	switch s {
	case domain.TrackOffTrack:
		return StyleRed
	case domain.TrackAtRisk:
		return StyleYellow
	case domain.TrackOnTrack:
		return StyleGreen
	default:
		return StyleDim
	}
}

// TrackIndicator returns a colored indicator such as "● AT RISK".
func TrackIndicator(s domain.TrackStatus) string {
	switch s {
	case domain.TrackOffTrack:
		return StyleRed.Render("● OFF TRACK")
	case domain.TrackAtRisk:
		return StyleYellow.Render("● AT RISK")
	case domain.TrackOnTrack:
		return StyleGreen.Render("● ON TRACK")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// PhaseBadge colors a relevance tier.
func PhaseBadge(p domain.Phase) string {
	switch p {
	case domain.PhaseCore:
		return StyleGreen.Render("core")
	case domain.PhaseRecommended:
		return StyleBlue.Render("recommended")
	case domain.PhaseSupplementary:
		return StyleDim.Render("supplementary")
	default:
		return StyleDim.Render(string(p))
	}
}

// PriorityBadge colors a notification priority.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ high")
	case domain.PriorityMedium:
		return StyleYellow.Render("● medium")
	case domain.PriorityLow:
		return StyleDim.Render("○ low")
	default:
		return StyleDim.Render(string(p))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
