package overlay

import (
	"sync"

	"github.com/penwyp/go-battle-overlay/internal/core/config"
	"github.com/penwyp/go-battle-overlay/internal/core/model"
)

// StateManager guards the preferences and UI state shared between the
// render loop and input handling.
type StateManager struct {
	mu sync.RWMutex

	prefs            *config.Config
	interactionState model.InteractionState
	frames           uint64
}

// NewStateManager takes ownership of prefs
func NewStateManager(prefs *config.Config, layoutStyle int) *StateManager {
	if prefs == nil {
		prefs = config.Default("")
	}
	return &StateManager{
		prefs:            prefs,
		interactionState: model.InteractionState{LayoutStyle: layoutStyle, Waiting: true},
	}
}

// Config returns a copy of the current preferences
func (sm *StateManager) Config() *config.Config {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.prefs.Clone()
}

// UpdateConfig mutates the preferences in place
func (sm *StateManager) UpdateConfig(updateFunc func(*config.Config)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	updateFunc(sm.prefs)
}

// GetInteractionState returns current interaction state
func (sm *StateManager) GetInteractionState() model.InteractionState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.interactionState
}

// UpdateInteractionState updates specific fields of interaction state
func (sm *StateManager) UpdateInteractionState(updateFunc func(*model.InteractionState)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	updateFunc(&sm.interactionState)
}

// SetStatus replaces the status line
func (sm *StateManager) SetStatus(message string) {
	sm.UpdateInteractionState(func(s *model.InteractionState) {
		s.StatusMessage = message
	})
}

// MarkFrame counts a rendered frame
func (sm *StateManager) MarkFrame() uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.frames++
	return sm.frames
}

// Frames is the number of frames rendered so far
func (sm *StateManager) Frames() uint64 {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.frames
}
