package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles shared by every screen.
type Theme struct {
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Text     lipgloss.Style
	Faint    lipgloss.Style
	Price    lipgloss.Style
	Selected lipgloss.Style
	Focused  lipgloss.Style
	Danger   lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
	Alert    lipgloss.Style
}

// DefaultTheme uses ANSI 256 colors for broad terminal support.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).MarginBottom(1),
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Price:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("33")).Foreground(lipgloss.Color("231")),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		Danger:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Italic(true),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		Alert: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 3),
	}
}
