// Package export renders composed frames to PNG files.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"

	core "github.com/penwyp/go-battle-overlay/internal/core/chart"
	"github.com/penwyp/go-battle-overlay/internal/core/config"
	"github.com/penwyp/go-battle-overlay/internal/core/model"
	"github.com/penwyp/go-battle-overlay/internal/core/palette"
	"github.com/penwyp/go-battle-overlay/internal/util"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 480

	DefaultLegendFontSize = 11.0

	PieFile   = "pie.png"
	BarsFile  = "bars.png"
	GraphFile = "damage.png"
)

// ErrNothingToRender is returned for a chart with no data
var ErrNothingToRender = errors.New("nothing to render")

// Exporter writes chart images sized Width x Height
type Exporter struct {
	Width  int
	Height int
	Theme  config.ThemeMode
	// LegendFontSize is the pie legend text size in points
	LegendFontSize float64
}

// NewExporter returns an exporter, falling back to default dimensions
func NewExporter(width, height int, theme config.ThemeMode) *Exporter {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Exporter{Width: width, Height: height, Theme: theme, LegendFontSize: DefaultLegendFontSize}
}

// Export writes every chart the frame has data for into dir and returns
// the written paths.
func (e *Exporter) Export(frame *model.Frame, dir string) ([]string, error) {
	if err := util.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	renders := []struct {
		name   string
		render func(io.Writer, *model.Frame) error
	}{
		{PieFile, e.RenderPie},
		{BarsFile, e.RenderBars},
		{GraphFile, e.RenderGraph},
	}

	written := make([]string, 0, len(renders))
	for _, r := range renders {
		var buf bytes.Buffer
		err := r.render(&buf, frame)
		if errors.Is(err, ErrNothingToRender) {
			util.LogDebug("chart skipped, no data", util.F("file", r.name))
			continue
		}
		if err != nil {
			return written, fmt.Errorf("failed to render %s: %w", r.name, err)
		}

		path := filepath.Join(dir, r.name)
		if err := util.WriteFileAtomic(path, buf.Bytes()); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// RenderPie fills and strokes every pie polygon and prints the legend
// beside the circle.
func (e *Exporter) RenderPie(w io.Writer, frame *model.Frame) error {
	if frame == nil || len(frame.Pie) == 0 {
		return ErrNothingToRender
	}

	r, err := chart.PNG(e.Width, e.Height)
	if err != nil {
		return err
	}
	e.fillBackground(r)

	// the plot square sits on the left, the legend on the right
	side := math.Min(float64(e.Width)/2, float64(e.Height))
	cx, cy := side/2, float64(e.Height)/2
	scale := side / 2

	for _, shape := range frame.Pie {
		if len(shape.Points) == 0 {
			continue
		}
		r.SetFillColor(toDrawingRGBA(shape.Fill))
		r.SetStrokeColor(toDrawingColor(shape.Stroke))
		r.SetStrokeWidth(shape.StrokeWidth)

		for i, p := range shape.Points {
			x, y := int(math.Round(cx+p[0]*scale)), int(math.Round(cy+p[1]*scale))
			if i == 0 {
				r.MoveTo(x, y)
				continue
			}
			r.LineTo(x, y)
		}
		r.Close()
		r.FillStroke()
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	r.SetFont(font)
	fontSize := e.LegendFontSize
	if fontSize <= 0 {
		fontSize = DefaultLegendFontSize
	}
	r.SetFontSize(fontSize)
	r.SetFontColor(e.foreground())

	x := int(side) + 16
	step := int(math.Ceil(fontSize * 1.6))
	y := int(cy) - len(frame.Legend)*step/2
	for _, line := range frame.Legend {
		r.SetFillColor(toDrawingColor(line.Color))
		r.SetStrokeColor(toDrawingColor(line.Color))
		r.Circle(5, x, y-4)
		r.FillStroke()
		r.Text(line.Text, x+12, y)
		y += step
	}

	return r.Save(w)
}

// RenderBars draws the per-combatant damage bars with wrapped labels
func (e *Exporter) RenderBars(w io.Writer, frame *model.Frame) error {
	if frame == nil || len(frame.Bars) == 0 {
		return ErrNothingToRender
	}

	peak := 0.0
	values := make([]chart.Value, 0, len(frame.Bars))
	for _, bar := range frame.Bars {
		peak = math.Max(peak, bar.Value)
		values = append(values, chart.Value{
			Value: bar.Value,
			Label: bar.Label,
			Style: chart.Style{
				FillColor:   toDrawingColor(bar.Color),
				StrokeColor: toDrawingColor(bar.Color),
				StrokeWidth: 1,
			},
		})
	}

	// bars occupy BarWidth of each slot, the rest is spacing
	slot := float64(e.Width-96) / float64(len(frame.Bars))
	barWidth := int(slot * frame.Bars[0].Width)

	bc := chart.BarChart{
		Width:      e.Width,
		Height:     e.Height,
		BarWidth:   barWidth,
		BarSpacing: int(slot) - barWidth,
		Background: chart.Style{FillColor: e.background(), Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		Canvas:     chart.Style{FillColor: e.background()},
		XAxis:      chart.Style{FontColor: e.foreground(), StrokeColor: e.foreground()},
		YAxis: chart.YAxis{
			Style:          chart.Style{FontColor: e.foreground(), StrokeColor: e.foreground()},
			Range:          &chart.ContinuousRange{Min: 0, Max: nonZero(peak)},
			ValueFormatter: valueFormatter(frame),
		},
		Bars: values,
	}
	return bc.Render(chart.PNG, w)
}

// RenderGraph draws one line per combatant against turn or action value
func (e *Exporter) RenderGraph(w io.Writer, frame *model.Frame) error {
	if frame == nil || len(frame.Graph.Lines) == 0 {
		return ErrNothingToRender
	}

	lines := make([]core.Polyline, 0, len(frame.Graph.Lines))
	series := make([]chart.Series, 0, len(frame.Graph.Lines))
	for _, line := range frame.Graph.Lines {
		points := widen(line.Points)
		if len(points) == 0 {
			continue
		}
		lines = append(lines, core.Polyline{Points: points})

		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i], ys[i] = p.X, p.Y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    line.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: toDrawingColor(line.Color),
				StrokeWidth: line.Width,
			},
		})
	}

	minX, maxX, minY, maxY, ok := core.Bounds(lines)
	if !ok {
		return ErrNothingToRender
	}
	// samples stacked on one action value still need an x span to draw
	if maxX <= minX {
		maxX = minX + 1
	}
	minY = math.Min(minY, 0)
	if maxY <= minY {
		maxY = minY + 1
	}

	ch := chart.Chart{
		Width:      e.Width,
		Height:     e.Height,
		Background: chart.Style{FillColor: e.background(), Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		Canvas:     chart.Style{FillColor: e.background()},
		XAxis: chart.XAxis{
			Name:      frame.Graph.XLabel,
			NameStyle: chart.Style{FontColor: e.foreground()},
			Style:     chart.Style{FontColor: e.foreground(), StrokeColor: e.foreground()},
			Range:     &chart.ContinuousRange{Min: minX, Max: maxX},
		},
		YAxis: chart.YAxis{
			Name:           frame.Graph.YLabel,
			NameStyle:      chart.Style{FontColor: e.foreground()},
			Style:          chart.Style{FontColor: e.foreground(), StrokeColor: e.foreground()},
			Range:          &chart.ContinuousRange{Min: minY, Max: maxY},
			ValueFormatter: valueFormatter(frame),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

// widen turns a single sample into a flat segment; one point gives the
// series nothing to stroke.
func widen(points []core.SeriesPoint) []core.SeriesPoint {
	if len(points) != 1 {
		return points
	}
	return []core.SeriesPoint{points[0], {X: points[0].X + 1, Y: points[0].Y}}
}

func valueFormatter(frame *model.Frame) chart.ValueFormatter {
	format := frame.FormatValue
	if format == nil {
		format = util.FormatDamage
	}
	return func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return format(f)
		}
		return fmt.Sprintf("%v", v)
	}
}

func (e *Exporter) fillBackground(r chart.Renderer) {
	r.SetFillColor(e.background())
	r.SetStrokeColor(e.background())
	r.SetStrokeWidth(0)
	r.MoveTo(0, 0)
	r.LineTo(e.Width, 0)
	r.LineTo(e.Width, e.Height)
	r.LineTo(0, e.Height)
	r.Close()
	r.Fill()
}

func (e *Exporter) background() drawing.Color {
	if e.Theme == config.ThemeLight {
		return drawing.ColorWhite
	}
	return drawing.Color{R: 27, G: 27, B: 27, A: 255}
}

func (e *Exporter) foreground() drawing.Color {
	if e.Theme == config.ThemeLight {
		return drawing.Color{R: 40, G: 40, B: 40, A: 255}
	}
	return drawing.Color{R: 220, G: 220, B: 220, A: 255}
}

func toDrawingColor(c palette.Color) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func toDrawingRGBA(c palette.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func nonZero(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return 1
	}
	return v
}
