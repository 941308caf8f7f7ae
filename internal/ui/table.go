package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ngmaloney/channel-cross/internal/crossing"
)

// RenderTable draws the formatted forecast, highlighting good crossing days
func RenderTable(rows []crossing.Row) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(crossing.Columns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if row < 0 || row >= len(rows) {
				return tableCellStyle
			}
			return rowStyle(rows[row].Style)
		})

	for _, r := range rows {
		t.Row(r.Cells()...)
	}

	return t.String()
}

// RenderSummary describes how many days are good for crossing
func RenderSummary(rows []crossing.Row) string {
	good := crossing.CountSuitable(rows)

	switch {
	case len(rows) == 0:
		return mutedStyle.Render("No forecast days returned")
	case good == 0:
		return mutedStyle.Render(fmt.Sprintf("No good crossing days in the next %d", len(rows)))
	default:
		return successStyle.Render(fmt.Sprintf("%d of %d days look good for a crossing", good, len(rows)))
	}
}
