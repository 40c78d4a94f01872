package layout

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/penwyp/go-battle-overlay/internal/core/model"
	"github.com/penwyp/go-battle-overlay/internal/core/palette"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// BaseStrategy provides drawing helpers shared by all layouts
type BaseStrategy struct{}

// GetSizer returns the shared sizer instance
func (b *BaseStrategy) GetSizer() *Sizer {
	return sharedSizer
}

// SeparatorLine creates a separator of the given width
func (b *BaseStrategy) SeparatorLine(width int) string {
	if width < 1 {
		width = 1
	}
	return strings.Repeat("─", width)
}

// Colorize renders text in a palette color
func (b *BaseStrategy) Colorize(text string, color palette.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color.Hex())).Render(text)
}

// Swatch is the colored dot shown in front of a combatant
func (b *BaseStrategy) Swatch(color palette.Color) string {
	return b.Colorize("●", color)
}

// Heading renders a section title
func (b *BaseStrategy) Heading(title string) string {
	return lipgloss.NewStyle().Bold(true).Render(title)
}

// CenterText centers text within width display columns
func (b *BaseStrategy) CenterText(text string, width int) string {
	padding := width - b.GetSizer().displayWidth(text)
	if padding <= 0 {
		return text
	}
	left := padding / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", padding-left)
}

// HorizontalBar draws value as a bar of at most width cells relative to peak
func (b *BaseStrategy) HorizontalBar(value, peak float64, width int, color palette.Color) string {
	if width < 1 || peak <= 0 || value <= 0 || math.IsNaN(value) {
		return ""
	}
	cells := int(math.Round(value / peak * float64(width)))
	if cells < 1 {
		cells = 1
	}
	if cells > width {
		cells = width
	}
	return b.Colorize(strings.Repeat("█", cells), color)
}

// Sparkline maps ys onto block characters scaled between 0 and the maximum
func (b *BaseStrategy) Sparkline(ys []float64) string {
	if len(ys) == 0 {
		return ""
	}
	peak := 0.0
	for _, y := range ys {
		if y > peak {
			peak = y
		}
	}

	var sb strings.Builder
	for _, y := range ys {
		idx := 0
		if peak > 0 && y > 0 {
			idx = int(y / peak * float64(len(sparkRunes)-1))
		}
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		sb.WriteRune(sparkRunes[idx])
	}
	return sb.String()
}

// Tail keeps the last n values so a sparkline fits its column
func (b *BaseStrategy) Tail(points []float64, n int) []float64 {
	if n <= 0 || len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

// writeLegend prints one swatch and line per combatant
func (b *BaseStrategy) writeLegend(w io.Writer, frame *model.Frame) {
	for _, line := range frame.Legend {
		fmt.Fprintf(w, "%s %s\n", b.Swatch(line.Color), line.Text)
	}
}

// writePanels prints the summary panels as title plus indented rows
func (b *BaseStrategy) writePanels(w io.Writer, frame *model.Frame, width int) {
	sizer := b.GetSizer()
	for _, panel := range frame.Panels {
		fmt.Fprintln(w, b.Heading(panel.Title))
		for _, row := range panel.Rows {
			name := sizer.PadString(row.Name, width/2, true)
			fmt.Fprintf(w, "  %s %s\n", name, row.Value)
		}
	}
}

// writeFooter prints the status line and key help
func (b *BaseStrategy) writeFooter(w io.Writer, param model.LayoutParam) {
	if param.Status != "" {
		fmt.Fprintln(w, param.Status)
	}
	if param.HelpText != "" {
		fmt.Fprintln(w, param.HelpText)
	}
}
