package tui

import "github.com/charmbracelet/lipgloss"

// Frame chrome.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	operationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Italic(true)

	completeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))
)

// Grid cell states.
var (
	startStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	goalStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201"))
	obstacleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	visitedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("61"))
	frontierStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	pathStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
)

// Array element states.
var (
	sortedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	comparingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	swappingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	pivotStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201"))
	plainStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Tree node states.
var (
	visitingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	outputStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)
