package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	likedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	bannerStyle     = lipgloss.NewStyle().Bold(true).Border(lipgloss.DoubleBorder()).Padding(0, 2)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
