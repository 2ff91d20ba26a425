package cli

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#7D56F4")
	accent  = lipgloss.Color("#F25D94")
	success = lipgloss.Color("#04B575")
	warning = lipgloss.Color("#FFAD00")
	muted   = lipgloss.Color("#888888")

	titleStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1)

	successStyle = lipgloss.NewStyle().
			Foreground(success)

	warnStyle = lipgloss.NewStyle().
			Foreground(warning)

	mutedStyle = lipgloss.NewStyle().
			Foreground(muted)

	authorStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(muted).
			Width(72)

	commentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(primary).
			Width(68)
)
