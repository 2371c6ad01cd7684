package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/telton/console/console"
)

// Base style configurations
var (
	// Text
	Bold      = lipgloss.NewStyle().Bold(true)
	Underline = lipgloss.NewStyle().Underline(true)

	theme = DefaultTheme()

	Success = Bold.Foreground(Color(theme.Success))
	Error   = Bold.Foreground(Color(theme.Error))
	Warning = Bold.Foreground(Color(theme.Warning))
	Info    = Bold.Foreground(Color(theme.Info))
	Muted   = lipgloss.NewStyle().Foreground(Color(theme.Muted))

	// Content
	Header = Bold.Foreground(Color(theme.Emphasis))
	Label  = lipgloss.NewStyle().Foreground(Color(theme.Muted))
	Value  = lipgloss.NewStyle().Foreground(Color(theme.Data))
)

// LevelStyle returns the chrome style matching a console level.
func LevelStyle(level console.Level) lipgloss.Style {
	switch {
	case level >= console.LevelError:
		return Error
	case level == console.LevelWarning:
		return Warning
	case level == console.LevelNotice:
		return Info
	case level == console.LevelDebug:
		return Muted
	default:
		return lipgloss.NewStyle()
	}
}
