package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-battle-overlay/internal/core/model"
	"github.com/penwyp/go-battle-overlay/internal/util"
	"golang.org/x/term"
)

const (
	defaultColumns = 80
	defaultRows    = 24
	minColumns     = 40
	maxColumns     = 120
	// cellPixels approximates the pixel width of one terminal cell
	cellPixels = 8
)

var sharedSizer = &Sizer{}

// Sizer measures the terminal and pads text by display width
type Sizer struct {
	// Columns and Rows override the terminal size when non-zero
	Columns int
	Rows    int
}

// NewSizer returns a sizer fixed at the given size
func NewSizer(columns, rows int) *Sizer {
	return &Sizer{Columns: columns, Rows: rows}
}

func (s Sizer) displayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadString pads a string to a display width
func (s Sizer) PadString(text string, width int, leftAlign bool) string {
	actual := s.displayWidth(text)
	if actual >= width {
		return text
	}

	padding := strings.Repeat(" ", width-actual)
	if leftAlign {
		return text + padding
	}
	return padding + text
}

// Size returns the terminal columns and rows, with a fallback when stdout
// is not a terminal.
func (s Sizer) Size() (int, int) {
	if s.Columns > 0 && s.Rows > 0 {
		return s.Columns, s.Rows
	}
	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || columns <= 0 {
		columns, rows = defaultColumns, defaultRows
	}
	return columns, rows
}

// GetMaxWidth is the usable content width
func (s Sizer) GetMaxWidth() int {
	columns, _ := s.Size()
	width := columns - 2
	if width < minColumns {
		width = minColumns
	}
	if width > maxColumns {
		width = maxColumns
	}
	util.LogDebugf("GetMaxWidth %d", width)
	return width
}

// Viewport converts the usable width into the pixel space the bar chart
// label budget is computed from.
func (s Sizer) Viewport() model.Viewport {
	_, rows := s.Size()
	return model.Viewport{
		Width:  float64(s.GetMaxWidth() * cellPixels),
		Height: float64(rows * cellPixels * 2),
	}
}
