package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Bold(true)
	draftStyle     = lipgloss.NewStyle().Faint(true)
	publishedStyle = lipgloss.NewStyle().Bold(true)
)
