package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-battle-overlay/internal/core/model"
)

// FullLayoutStrategy draws every overlay widget
type FullLayoutStrategy struct {
	BaseStrategy
}

func (s *FullLayoutStrategy) GetName() string {
	return "Full Overlay"
}

func (s *FullLayoutStrategy) Render(w io.Writer, frame *model.Frame, param model.LayoutParam) {
	width := param.Width
	if width <= 0 {
		width = s.GetSizer().GetMaxWidth()
	}
	sep := s.SeparatorLine(width)

	if param.Title != "" {
		fmt.Fprintln(w, s.Heading(s.CenterText(param.Title, width)))
	}
	if frame == nil || !frame.HasData() {
		fmt.Fprintln(w, sep)
		fmt.Fprintln(w, param.WaitingText)
		fmt.Fprintln(w, sep)
		s.writeFooter(w, param)
		return
	}
	if !frame.Visible {
		s.writeFooter(w, param)
		return
	}

	if frame.StreamerBanner != "" {
		fmt.Fprintln(w, s.CenterText(frame.StreamerBanner, width))
	}
	fmt.Fprintln(w, sep)
	s.writeLegend(w, frame)

	fmt.Fprintln(w, sep)
	s.bars(w, frame, width)

	fmt.Fprintln(w, sep)
	s.graph(w, frame, width)

	fmt.Fprintln(w, sep)
	s.writePanels(w, frame, width)

	if len(frame.Enemies) > 0 {
		fmt.Fprintln(w, sep)
		for _, enemy := range frame.Enemies {
			fmt.Fprintln(w, enemy.Text)
		}
	}
	fmt.Fprintln(w, sep)
	s.writeFooter(w, param)
}

// bars draws a horizontal bar per combatant; wrapped label lines after the
// first continue under the label column.
func (s *FullLayoutStrategy) bars(w io.Writer, frame *model.Frame, width int) {
	sizer := s.GetSizer()
	labelWidth := frame.LabelWidth
	valueWidth := 7
	barWidth := width - labelWidth - valueWidth - 2
	if barWidth < 1 {
		barWidth = 1
	}

	peak := 0.0
	for _, bar := range frame.Bars {
		if bar.Value > peak {
			peak = bar.Value
		}
	}

	for _, bar := range frame.Bars {
		lines := strings.Split(bar.Label, "\n")
		value := frame.FormatValue(bar.Value)
		fmt.Fprintf(w, "%s %s %s\n",
			sizer.PadString(lines[0], labelWidth, true),
			sizer.PadString(value, valueWidth-1, false),
			s.HorizontalBar(bar.Value, peak, barWidth, bar.Color))
		for _, extra := range lines[1:] {
			fmt.Fprintln(w, extra)
		}
	}
}

func (s *FullLayoutStrategy) graph(w io.Writer, frame *model.Frame, width int) {
	sizer := s.GetSizer()
	graph := frame.Graph
	fmt.Fprintln(w, s.Heading(fmt.Sprintf("%s / %s", graph.YLabel, graph.XLabel)))

	nameWidth := 12
	sparkWidth := width - nameWidth - 10
	for _, line := range graph.Lines {
		ys := make([]float64, 0, len(line.Points))
		for _, p := range line.Points {
			ys = append(ys, p.Y)
		}
		last := line.Points[len(line.Points)-1]
		fmt.Fprintf(w, "%s %s %s %s\n",
			s.Swatch(line.Color),
			sizer.PadString(line.Name, nameWidth, true),
			s.Colorize(s.Sparkline(s.Tail(ys, sparkWidth)), line.Color),
			frame.FormatValue(last.Y))
	}
}
