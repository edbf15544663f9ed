package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table pads every cell of rows to the display width of the widest cell in
// its column and joins each row with single spaces. Trailing padding on the
// last column is dropped.
func Table(rows [][]string) []string {
	var maxWidths []int
	for _, row := range rows {
		for col, cell := range row {
			if col >= len(maxWidths) {
				maxWidths = append(maxWidths, 0)
			}
			maxWidths[col] = Max(maxWidths[col], runewidth.StringWidth(cell))
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		padded := make([]string, len(row))
		for col, cell := range row {
			if col == len(row)-1 {
				padded[col] = cell
				continue
			}
			paddingWidth := maxWidths[col] - runewidth.StringWidth(cell)
			padded[col] = cell + strings.Repeat(" ", paddingWidth)
		}
		lines[i] = strings.Join(padded, " ")
	}

	return lines
}
