// Package overlay composes battle snapshots into frames and drives the
// live terminal overlay.
package overlay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/penwyp/go-battle-overlay/internal/core/battle"
	"github.com/penwyp/go-battle-overlay/internal/core/config"
	"github.com/penwyp/go-battle-overlay/internal/core/i18n"
	"github.com/penwyp/go-battle-overlay/internal/core/model"
	"github.com/penwyp/go-battle-overlay/internal/data/snapshot"
	"github.com/penwyp/go-battle-overlay/internal/presentation/display"
	"github.com/penwyp/go-battle-overlay/internal/presentation/interaction"
	"github.com/penwyp/go-battle-overlay/internal/util"
)

// Orchestrator runs the per-frame loop: take one snapshot copy, compose,
// render. Preferences change only through key presses handled here.
type Orchestrator struct {
	config *OverlayConfig

	source       battle.Source
	saver        ConfigSaver
	translator   *i18n.Translator
	stateManager *StateManager

	display  DisplayController
	keyboard InputHandler
}

// Option customizes an Orchestrator
type Option func(*Orchestrator)

// WithDisplay replaces the terminal display
func WithDisplay(d DisplayController) Option {
	return func(o *Orchestrator) { o.display = d }
}

// WithKeyboard replaces the raw-mode stdin reader
func WithKeyboard(k InputHandler) Option {
	return func(o *Orchestrator) { o.keyboard = k }
}

// NewOrchestrator creates a new Orchestrator instance
func NewOrchestrator(cfg *OverlayConfig, source battle.Source, saver ConfigSaver, prefs *config.Config, opts ...Option) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if source == nil {
		return nil, errors.New("no snapshot source")
	}
	if prefs == nil {
		prefs = config.Default(i18n.DetectLocale())
	}

	translator, err := i18n.New(prefs.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	o := &Orchestrator{
		config:       cfg,
		source:       source,
		saver:        saver,
		translator:   translator,
		stateManager: NewStateManager(prefs, cfg.LayoutStyle),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.display == nil {
		o.display = display.NewTerminalDisplay()
	}
	return o, nil
}

// State exposes the shared state, mainly for inspection in tests
func (o *Orchestrator) State() *StateManager {
	return o.stateManager
}

// Run starts the main loop and blocks until ctx ends or the user quits
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("overlay starting",
		util.F("snapshot", o.config.SnapshotPath), util.F("refresh_hz", o.config.UIRefreshRate))

	if o.keyboard == nil {
		keyboard, err := interaction.NewKeyboardReader()
		if err != nil {
			return fmt.Errorf("failed to initialize keyboard: %w", err)
		}
		o.keyboard = keyboard
	}
	defer o.keyboard.Close()

	o.display.EnterAlternateScreen()
	defer o.display.ExitAlternateScreen()

	var snapshotEvents <-chan snapshot.Event
	if notifier, ok := o.source.(SnapshotNotifier); ok {
		snapshotEvents = notifier.Events()
	}

	uiTicker := time.NewTicker(refreshInterval(o.config.UIRefreshRate))
	defer uiTicker.Stop()

	o.RenderFrame()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("overlay shutting down")
			return nil

		case <-uiTicker.C:
			o.RenderFrame()

		case event := <-snapshotEvents:
			if event.Err == nil {
				util.LogDebug("snapshot reloaded", util.F("op", event.Operation))
				o.RenderFrame()
			}

		case keyEvent := <-o.keyboard.Events():
			if o.HandleKey(keyEvent) {
				return nil
			}
			o.RenderFrame()
		}
	}
}

// RenderFrame reads the snapshot once and draws it
func (o *Orchestrator) RenderFrame() *model.Frame {
	snap, err := o.source.Snapshot()
	if err != nil {
		if !errors.Is(err, snapshot.ErrNoSnapshot) {
			util.LogWarn("snapshot unavailable", util.F("error", err.Error()))
		}
		snap = nil
	}
	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		s.Waiting = snap == nil
	})

	frame := Compose(snap, o.stateManager.Config(), o.translator.T, o.display.Viewport())
	o.display.RenderWithState(frame, o.stateManager.GetInteractionState(), o.layoutParam())
	o.stateManager.MarkFrame()
	return frame
}

// HandleKey applies a key press and reports whether the user asked to quit
func (o *Orchestrator) HandleKey(event interaction.KeyEvent) bool {
	if event.Type == interaction.KeyEscape {
		state := o.stateManager.GetInteractionState()
		if state.ShowHelp {
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) { s.ShowHelp = false })
			return false
		}
		return true
	}

	// any key dismisses the previous status message
	o.stateManager.SetStatus("")

	switch event.Key {
	case 'q', 'Q', interaction.CtrlC:
		return true
	case 'g', 'G':
		o.stateManager.UpdateConfig(func(c *config.Config) { c.ToggleGraphUnit() })
	case 's', 'S':
		o.stateManager.UpdateConfig(func(c *config.Config) { c.StreamerMode = !c.StreamerMode })
	case 'd', 'D':
		o.stateManager.UpdateConfig(func(c *config.Config) { c.DefenderExclusion = !c.DefenderExclusion })
	case 'a', 'A':
		o.stateManager.UpdateConfig(func(c *config.Config) { c.AutoShowHideUI = !c.AutoShowHideUI })
	case 't', 'T':
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			s.LayoutStyle = (s.LayoutStyle + 1) % 2
		})
	case 'h', 'H', '?':
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) { s.ShowHelp = !s.ShowHelp })
	case 'w', 'W':
		o.saveConfig()
	}
	return false
}

func (o *Orchestrator) saveConfig() {
	if o.saver == nil {
		return
	}
	if err := o.saver.Save(o.stateManager.Config()); err != nil {
		util.LogError("config save failed", util.F("error", err.Error()))
		o.stateManager.SetStatus(fmt.Sprintf("%s: %v", o.translator.T("Config save failed"), err))
		return
	}
	util.LogInfo("config saved")
	o.stateManager.SetStatus(o.translator.T("Config saved"))
}

func (o *Orchestrator) layoutParam() model.LayoutParam {
	return model.LayoutParam{
		Title:       o.translator.T("Real-Time Damage"),
		WaitingText: o.translator.T("Waiting for battle data"),
		HelpText:    o.translator.T("Keys"),
	}
}

func refreshInterval(rate float64) time.Duration {
	if rate <= 0 {
		rate = DefaultRefreshRate
	}
	return time.Duration(float64(time.Second) / rate)
}
