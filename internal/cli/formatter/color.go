package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/focusday/internal/domain"
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

// EnergyBadge returns a colored energy indicator such as "▲ HIGH".
func EnergyBadge(level domain.EnergyLevel) string {
	switch level {
	case domain.EnergyHigh:
		return StyleRed.Render("▲ HIGH")
	case domain.EnergyMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.EnergyLow:
		return StyleBlue.Render("▽ LOW")
	default:
		return StyleDim.Render("─")
	}
}

// FocusBadge returns a purple-styled focus type label.
func FocusBadge(focus domain.FocusType) string {
	if focus == "" {
		return StyleDim.Render("--")
	}
	label := string(focus)
	label = strings.ToUpper(label[:1]) + strings.ToLower(label[1:])
	return StylePurple.Render(label)
}

// StatusPill returns a colored status indicator for a task status.
func StatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.TaskPending:
		return StyleBlue.Render("○ Pending")
	case domain.TaskInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.TaskDone:
		return StyleDim.Render("✔ Done")
	case domain.TaskBlocked:
		return StyleRed.Render("✖ Blocked")
	default:
		return StyleDim.Render(string(status))
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
