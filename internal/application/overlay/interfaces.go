package overlay

import (
	"github.com/penwyp/go-battle-overlay/internal/core/config"
	"github.com/penwyp/go-battle-overlay/internal/core/model"
	"github.com/penwyp/go-battle-overlay/internal/data/snapshot"
	"github.com/penwyp/go-battle-overlay/internal/presentation/interaction"
)

// DisplayController handles terminal display operations
type DisplayController interface {
	// EnterAlternateScreen switches to alternate terminal screen
	EnterAlternateScreen()
	// ExitAlternateScreen returns to normal terminal screen
	ExitAlternateScreen()
	// ClearScreen clears the terminal screen
	ClearScreen()
	// RenderWithState draws a composed frame
	RenderWithState(frame *model.Frame, state model.InteractionState, param model.LayoutParam)
	// Viewport reports the space frames are composed for
	Viewport() model.Viewport
}

// InputHandler processes keyboard events
type InputHandler interface {
	Events() <-chan interaction.KeyEvent
	Close() error
}

// ConfigSaver persists preferences on explicit save
type ConfigSaver interface {
	Save(cfg *config.Config) error
}

// SnapshotNotifier is implemented by sources that announce reloads
type SnapshotNotifier interface {
	Events() <-chan snapshot.Event
}
