package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/penwyp/go-battle-overlay/internal/application/overlay"
	"github.com/penwyp/go-battle-overlay/internal/core/config"
	"github.com/penwyp/go-battle-overlay/internal/data/snapshot"
	"github.com/penwyp/go-battle-overlay/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug bool

	// Data paths
	configDir    string
	snapshotPath string

	// Display related
	refreshPerSecond float64
	layoutName       string

	rootCmd = &cobra.Command{
		Use:   "go-battle-overlay [flags]",
		Short: "Live combat damage overlay",
		Long: `go-battle-overlay renders the damage telemetry of the current battle in the terminal.

It watches a battle snapshot file written by the capture side and redraws the
damage distribution, per-character bars, the damage graph and the summary panels
whenever the snapshot changes.

Keys:
  g  toggle graph axis (turn / action value)
  s  toggle streamer mode
  d  toggle defender exclusion
  a  toggle auto hide
  t  switch layout
  w  save preferences
  q  quit

Examples:
  go-battle-overlay                                   # Watch the default snapshot
  go-battle-overlay --snapshot /tmp/battle.json       # Watch a specific snapshot file
  go-battle-overlay --layout minimal                  # Compact layout
  go-battle-overlay config show                       # Print the persisted preferences
  go-battle-overlay export --out ./charts             # Render the charts to PNG`,
		SilenceUsage: true,
		RunE:         runOverlay,
	}
)

const logFileName = "overlay.log"

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"Config directory (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "",
		"Battle snapshot file (default: <config-dir>/snapshot.json)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")

	rootCmd.Flags().Float64Var(&refreshPerSecond, "refresh-per-second", overlay.DefaultRefreshRate,
		"Display refresh rate (0.1-60 Hz)")
	rootCmd.Flags().StringVar(&layoutName, "layout", "full",
		"Layout (full, minimal)")
}

func runOverlay(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	// the overlay owns the terminal, so log to file only
	if err := initLogging(store.Dir(), false); err != nil {
		return err
	}
	defer util.CloseLogger()

	prefs, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg := &overlay.OverlayConfig{
		SnapshotPath:  resolveSnapshotPath(store.Dir()),
		ConfigDir:     store.Dir(),
		UIRefreshRate: refreshPerSecond,
		Layout:        layoutName,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	source, err := snapshot.NewFileSource(cfg.SnapshotPath)
	if err != nil {
		return fmt.Errorf("failed to watch snapshot: %w", err)
	}
	defer source.Close()

	orchestrator, err := overlay.NewOrchestrator(cfg, source, store, prefs)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return orchestrator.Run(ctx)
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func openStore() (*config.Store, error) {
	store, err := config.NewStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return store, nil
}

func initLogging(dir string, console bool) error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := filepath.Join(dir, "logs", logFileName)
	if err := util.EnsureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return util.InitLogger(logLevel, logFile, console && debug)
}

func resolveSnapshotPath(dir string) string {
	if snapshotPath != "" {
		return util.ExpandPath(snapshotPath)
	}
	return filepath.Join(dir, overlay.DefaultSnapshotFile)
}
