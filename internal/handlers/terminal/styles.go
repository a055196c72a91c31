package terminal

import "github.com/charmbracelet/lipgloss"

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Align(lipgloss.Center)

	NameStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true)

	TotalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Padding(0, 1).
			Align(lipgloss.Right).
			Bold(true)

	StrikeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)
