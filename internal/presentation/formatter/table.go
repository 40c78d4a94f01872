package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-battle-overlay/internal/util"
)

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{"Character", "Damage", "Share", "DPAV"},
	}
}

func (f *TableFormatter) Format(w io.Writer, report *Report) error {
	rows := make([][]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, []string{
			row.Name,
			util.FormatFixed2(row.Damage),
			util.FormatPercentage(row.Percentage),
			util.FormatFixed2(row.DPAV),
		})
	}
	total := []string{
		"Total",
		util.FormatFixed2(report.TotalDamage),
		"",
		util.FormatFixed2(report.DPAV),
	}

	widths := f.calculateColumnWidths(append(rows, total))

	var b strings.Builder
	f.writeBorder(&b, widths, "top")
	f.writeRow(&b, f.headers, widths)
	f.writeBorder(&b, widths, "middle")
	for _, row := range rows {
		f.writeRow(&b, row, widths)
	}
	f.writeBorder(&b, widths, "middle")
	f.writeRow(&b, total, widths)
	f.writeBorder(&b, widths, "bottom")

	_, err := io.WriteString(w, b.String())
	return err
}

// calculateColumnWidths sizes each column to its widest cell. Names may hold
// wide glyphs, so widths are display columns rather than bytes.
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}
	for _, row := range rows {
		for i, value := range row {
			if n := util.GetDisplayWidth(value); n > widths[i] {
				widths[i] = n
			}
		}
	}

	// Apply minimum widths for readability
	for i := range widths {
		if widths[i] < 8 {
			widths[i] = 8
		}
	}
	return widths
}

// writeBorder writes a top, middle or bottom border
func (f *TableFormatter) writeBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right + "\n")
}

// writeRow left-aligns the name column and right-aligns the numbers
func (f *TableFormatter) writeRow(b *strings.Builder, values []string, widths []int) {
	b.WriteString("│")
	for i, value := range values {
		if i == 0 {
			fmt.Fprintf(b, " %s │", util.PadRight(value, widths[i]))
		} else {
			fmt.Fprintf(b, " %s │", util.PadLeft(value, widths[i]))
		}
	}
	b.WriteString("\n")
}
