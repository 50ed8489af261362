package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the color scheme for the converter screen.
type Theme struct {
	Title   lipgloss.Color
	Focus   lipgloss.Color
	Result  lipgloss.Color
	Invalid lipgloss.Color
	Hint    lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Title:   lipgloss.Color("#5FAFD7"), // light blue
	Focus:   lipgloss.Color("#FFAF00"), // amber
	Result:  lipgloss.Color("#00D787"), // green
	Invalid: lipgloss.Color("#FF005F"), // red
	Hint:    lipgloss.Color("#6C6C6C"), // dim gray
}

func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Title).Bold(true)
}

func (t Theme) buttonStyle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	if focused {
		return s.BorderForeground(t.Focus).Foreground(t.Focus)
	}
	return s.BorderForeground(t.Hint)
}

func (t Theme) menuItemStyle(highlighted bool) lipgloss.Style {
	if highlighted {
		return lipgloss.NewStyle().Foreground(t.Focus).Bold(true)
	}
	return lipgloss.NewStyle()
}

func (t Theme) resultStyle(valid bool) lipgloss.Style {
	if valid {
		return lipgloss.NewStyle().Foreground(t.Result).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(t.Invalid)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}
