package tui

import "github.com/charmbracelet/lipgloss"

var (
	brandColor = lipgloss.Color("#E50914")

	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(brandColor)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(brandColor)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#46D369"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	matchStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#46D369"))
	heroStyle       = lipgloss.NewStyle().Border(lipgloss.ThickBorder(), false, false, false, true).BorderForeground(brandColor).PaddingLeft(1)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
