package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))

	// List rows
	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Feedback
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	// Labels and metrics
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(16)
	metricStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
