package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorDone      = lipgloss.Color("248") // #9CA3AF-ish
	ColorError     = lipgloss.Color("160") // Red
	ColorText      = lipgloss.Color("252")

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	StyleSubtle = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleError  = lipgloss.NewStyle().Foreground(ColorError)

	StyleTask       = lipgloss.NewStyle().Foreground(ColorText)
	StyleTaskDone   = lipgloss.NewStyle().Foreground(ColorDone).Strikethrough(true)
	StyleCursor     = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleFilterOn   = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Underline(true)
	StyleFilterOff  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleInputBox   = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(ColorSecondary).Padding(0, 1)
	StyleInputFocus = StyleInputBox.BorderForeground(ColorPrimary)
)
