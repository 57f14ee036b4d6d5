package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KillianMeersman/telemeter/internal/theme"
)

var (
	rowEvenStyle    = lipgloss.NewStyle()
	rowOddStyle     = lipgloss.NewStyle().Background(theme.ColorElevatedBg)
	tableHeadStyle  = lipgloss.NewStyle().Foreground(theme.ColorMutedText).Bold(true)
	tableTotalStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true)
)

// RowBackground returns a subtle background style for alternating rows.
// Even rows (0, 2, 4...) get no background, odd rows get ElevatedBg.
func RowBackground(index int) lipgloss.Style {
	if index%2 == 1 {
		return rowOddStyle
	}
	return rowEvenStyle
}

// TableHeader renders column headings padded to the given widths.
// Negative widths right-align the column, matching FormatColumns.
func TableHeader(headings []string, widths []int) string {
	return tableHeadStyle.Render(FormatColumns(headings, widths))
}

// TableTotal renders a summary row in bright text.
func TableTotal(cells []string, widths []int) string {
	return tableTotalStyle.Render(FormatColumns(cells, widths))
}

// FormatColumns pads each cell to its column width, two spaces between
// columns. A negative width right-aligns that column.
func FormatColumns(cells []string, widths []int) string {
	var parts []string
	for i, cell := range cells {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		switch {
		case w > 0:
			parts = append(parts, fmt.Sprintf("%-*s", w, cell))
		case w < 0:
			parts = append(parts, fmt.Sprintf("%*s", -w, cell))
		default:
			parts = append(parts, cell)
		}
	}
	return strings.Join(parts, "  ")
}
