package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nell/careintake/internal/notify"
)

// Catppuccin Mocha palette, true-color hex values.
// https://catppuccin.com/palette

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
)

// Semantic aliases
const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorInfo    = colorTeal
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	stepTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)

	labelStyle      = lipgloss.NewStyle().Foreground(colorSubtext1)
	labelFocusStyle = lipgloss.NewStyle().Bold(true).Foreground(colorFocus)
	fieldErrorStyle = lipgloss.NewStyle().Foreground(colorError)
	helpStyle       = lipgloss.NewStyle().Foreground(colorOverlay1)

	markerDoneStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	markerActiveStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	markerPendingStyle = lipgloss.NewStyle().Foreground(colorSurface2)
	markerJoinStyle    = lipgloss.NewStyle().Foreground(colorSurface2)

	optionCursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorFocus)
	optionChosenStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	optionPlainStyle   = lipgloss.NewStyle().Foreground(colorText)
	primaryButtonStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	thanksStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
)

func toastStyle(level notify.Level) lipgloss.Style {
	color := colorInfo
	switch level {
	case notify.LevelSuccess:
		color = colorSuccess
	case notify.LevelError:
		color = colorError
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Padding(0, 1)
}
