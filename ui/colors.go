package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/telton/console/style"
)

// ansiIndex is the position of each style color in the 16-color palette.
var ansiIndex = map[style.Color]int{
	style.Black:        0,
	style.Red:          1,
	style.Green:        2,
	style.Yellow:       3,
	style.Blue:         4,
	style.Magenta:      5,
	style.Cyan:         6,
	style.LightGray:    7,
	style.Gray:         8,
	style.LightRed:     9,
	style.LightGreen:   10,
	style.LightYellow:  11,
	style.LightBlue:    12,
	style.LightMagenta: 13,
	style.LightCyan:    14,
	style.White:        15,
}

// Color converts a style color to its lipgloss palette entry. NoColor and
// Default map to the terminal's own color.
func Color(c style.Color) lipgloss.TerminalColor {
	idx, ok := ansiIndex[c]
	if !ok {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(idx))
}

// Theme provides semantic color access
type Theme struct {
	Success  style.Color
	Error    style.Color
	Warning  style.Color
	Info     style.Color
	Muted    style.Color
	Emphasis style.Color
	Data     style.Color
}

// DefaultTheme returns the standard console color theme
func DefaultTheme() Theme {
	return Theme{
		Success:  style.LightGreen,
		Error:    style.LightRed,
		Warning:  style.LightYellow,
		Info:     style.LightBlue,
		Muted:    style.Gray,
		Emphasis: style.LightMagenta,
		Data:     style.LightCyan,
	}
}
