package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/channel-cross/internal/crossing"
)

var (
	// Color palette
	colorPrimary   = lipgloss.Color("#00BFFF") // Deep sky blue
	colorDanger    = lipgloss.Color("#FF6B6B") // Red for errors
	colorSuccess   = lipgloss.Color("#6BCF7F") // Green
	colorMuted     = lipgloss.Color("#6C757D") // Gray
	colorBorder    = lipgloss.Color("#4A90E2") // Border blue
	colorGoodDay   = lipgloss.Color("#D0F0C0") // Tea green row background
	colorGoodDayFg = lipgloss.Color("#1B3A1B")

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	activeLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	// Section header styles
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 1).
				MarginTop(1)

	sectionBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2)

	// Table styles
	tableBorderStyle = lipgloss.NewStyle().
				Foreground(colorBorder)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	tableHighlightStyle = tableCellStyle.
				Background(colorGoodDay).
				Foreground(colorGoodDayFg)
)

// rowStyle resolves a row style token to a lipgloss style
func rowStyle(s crossing.Style) lipgloss.Style {
	switch s {
	case crossing.StyleHighlight:
		return tableHighlightStyle
	default:
		return tableCellStyle
	}
}
