package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mesoforge/internal/domain"
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

// BandStyle returns the style for a readiness band.
func BandStyle(band string) lipgloss.Style {
	switch domain.ReadinessBand(band) {
	case domain.ReadinessOptimal:
		return StyleGreen
	case domain.ReadinessModerate:
		return StyleBlue
	case domain.ReadinessLow:
		return StyleYellow
	case domain.ReadinessCritical:
		return StyleRed
	default:
		return StyleDim
	}
}

// BandIndicator renders a band as "● OPTIMAL".
func BandIndicator(band string) string {
	if band == "" {
		return StyleDim.Render("● UNKNOWN")
	}
	return BandStyle(band).Render("● " + strings.ToUpper(band))
}

// PeriodTypeBadge renders a period type with its color.
func PeriodTypeBadge(t string) string {
	switch domain.PeriodType(t) {
	case domain.PeriodRamp:
		return StyleBlue.Render("↗ ramp")
	case domain.PeriodOverload:
		return StyleRed.Render("▲ overload")
	case domain.PeriodDeload:
		return StyleDim.Render("▽ deload")
	case domain.PeriodNormal:
		return StyleGreen.Render("● normal")
	default:
		return StyleDim.Render(t)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
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
