package layout

import (
	"fmt"
	"io"

	"github.com/penwyp/go-battle-overlay/internal/core/model"
)

// MinimalLayoutStrategy draws only the legend and panel headers
type MinimalLayoutStrategy struct {
	BaseStrategy
}

func (s *MinimalLayoutStrategy) GetName() string {
	return "Minimal Overlay"
}

func (s *MinimalLayoutStrategy) Render(w io.Writer, frame *model.Frame, param model.LayoutParam) {
	if frame == nil || !frame.HasData() {
		fmt.Fprintln(w, param.WaitingText)
		s.writeFooter(w, param)
		return
	}
	if !frame.Visible {
		return
	}

	if frame.StreamerBanner != "" {
		fmt.Fprintln(w, frame.StreamerBanner)
	}
	s.writeLegend(w, frame)
	for _, panel := range frame.Panels {
		fmt.Fprintln(w, panel.Title)
	}
	if param.Status != "" {
		fmt.Fprintln(w, param.Status)
	}
}
