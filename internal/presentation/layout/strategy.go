package layout

import (
	"io"

	"github.com/penwyp/go-battle-overlay/internal/core/model"
)

const (
	StyleFull = iota
	StyleMinimal
)

// LayoutStrategy draws a composed frame as terminal text
type LayoutStrategy interface {
	Render(w io.Writer, frame *model.Frame, param model.LayoutParam)
	GetName() string
}

// GetLayoutStrategy returns the strategy for a layout style, full by default
func GetLayoutStrategy(layoutStyle int) LayoutStrategy {
	strategies := map[int]LayoutStrategy{
		StyleFull:    &FullLayoutStrategy{},
		StyleMinimal: &MinimalLayoutStrategy{},
	}

	if strategy, exists := strategies[layoutStyle]; exists {
		return strategy
	}
	return &FullLayoutStrategy{}
}

// ParseLayoutStyle maps a --layout flag value to a style
func ParseLayoutStyle(name string) (int, bool) {
	switch name {
	case "", "full":
		return StyleFull, true
	case "minimal":
		return StyleMinimal, true
	}
	return StyleFull, false
}
