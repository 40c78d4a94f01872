// Package display drives the terminal the overlay is drawn on.
package display

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/penwyp/go-battle-overlay/internal/core/model"
	"github.com/penwyp/go-battle-overlay/internal/presentation/layout"
	"github.com/penwyp/go-battle-overlay/internal/util"
)

// TerminalDisplay renders frames on an alternate screen, rewriting only
// the lines that changed since the previous frame.
type TerminalDisplay struct {
	out               io.Writer
	sizer             *layout.Sizer
	inAlternateScreen bool
	isFirstRender     bool
	lastLayoutStyle   int
	previousScreen    []string
}

// NewTerminalDisplay writes to stdout
func NewTerminalDisplay() *TerminalDisplay {
	return NewTerminalDisplayWithWriter(os.Stdout, &layout.Sizer{})
}

// NewTerminalDisplayWithWriter writes to out and sizes frames with sizer
func NewTerminalDisplayWithWriter(out io.Writer, sizer *layout.Sizer) *TerminalDisplay {
	if sizer == nil {
		sizer = &layout.Sizer{}
	}
	return &TerminalDisplay{
		out:           out,
		sizer:         sizer,
		isFirstRender: true,
	}
}

// Sizer exposes the terminal measurements used for layout
func (td *TerminalDisplay) Sizer() *layout.Sizer {
	return td.sizer
}

// EnterAlternateScreen switches to the alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	if td.inAlternateScreen {
		return
	}
	fmt.Fprint(td.out, util.EnterAltScreen, util.ClearScreen, util.ClearScrollback,
		util.ResetScrollRegion, util.HideCursor, util.MoveCursorHome)
	td.inAlternateScreen = true
	td.isFirstRender = true
}

// ExitAlternateScreen restores the normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	if !td.inAlternateScreen {
		return
	}
	fmt.Fprint(td.out, util.ClearScreen, util.MoveCursorHome, util.ShowCursor, util.ExitAltScreen)
	td.inAlternateScreen = false
}

// ClearScreen wipes the screen and forgets the previous frame
func (td *TerminalDisplay) ClearScreen() {
	fmt.Fprint(td.out, util.ClearScreen, util.MoveCursorHome)
	td.previousScreen = nil
}

// RenderWithState draws one frame with the layout selected in state
func (td *TerminalDisplay) RenderWithState(frame *model.Frame, state model.InteractionState, param model.LayoutParam) {
	if param.Width <= 0 {
		param.Width = td.sizer.GetMaxWidth()
	}
	if state.StatusMessage != "" {
		param.Status = state.StatusMessage
	}
	if !state.ShowHelp {
		param.HelpText = ""
	}

	if td.isFirstRender || td.lastLayoutStyle != state.LayoutStyle {
		td.ClearScreen()
		td.lastLayoutStyle = state.LayoutStyle
		td.isFirstRender = false
	}

	var buf bytes.Buffer
	if state.Waiting {
		frame = nil
	}
	layout.GetLayoutStrategy(state.LayoutStyle).Render(&buf, frame, param)
	td.smartRender(strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"))
}

// smartRender rewrites changed lines only, which keeps the overlay from
// flickering and preserves text selection on unchanged lines.
func (td *TerminalDisplay) smartRender(lines []string) {
	var out strings.Builder
	for i, line := range lines {
		if i < len(td.previousScreen) && td.previousScreen[i] == line {
			continue
		}
		out.WriteString(util.MoveCursor(i+1, 1))
		out.WriteString(util.ClearLine)
		out.WriteString(line)
	}
	for i := len(lines); i < len(td.previousScreen); i++ {
		out.WriteString(util.MoveCursor(i+1, 1))
		out.WriteString(util.ClearLine)
	}
	fmt.Fprint(td.out, out.String())
	td.previousScreen = lines
}

// Viewport is the pixel space the composer sizes bar labels against
func (td *TerminalDisplay) Viewport() model.Viewport {
	return td.sizer.Viewport()
}
