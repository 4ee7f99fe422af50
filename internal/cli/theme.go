package cli

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	OK      lipgloss.Style
	Summary lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		OK:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Summary: lipgloss.NewStyle().Faint(true),
	}
}
