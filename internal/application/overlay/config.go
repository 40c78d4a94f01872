package overlay

import (
	"fmt"
	"path/filepath"

	"github.com/penwyp/go-battle-overlay/internal/core/config"
	"github.com/penwyp/go-battle-overlay/internal/presentation/layout"
)

const (
	DefaultRefreshRate = 4.0
	MinRefreshRate     = 0.1
	MaxRefreshRate     = 60.0
	// DefaultSnapshotFile is looked up in the config directory when no
	// snapshot path is given
	DefaultSnapshotFile = "snapshot.json"
)

// OverlayConfig contains the process settings of the live overlay
type OverlayConfig struct {
	// Snapshot file written by the battle simulation
	SnapshotPath string
	// Directory holding config.json
	ConfigDir string

	// Frames per second
	UIRefreshRate float64

	// "full" or "minimal"
	Layout      string
	LayoutStyle int
}

// Validate fills defaults and rejects out-of-range settings
func (c *OverlayConfig) Validate() error {
	if c.ConfigDir == "" {
		dir, err := config.DefaultDir()
		if err != nil {
			return err
		}
		c.ConfigDir = dir
	}
	if c.SnapshotPath == "" {
		c.SnapshotPath = filepath.Join(c.ConfigDir, DefaultSnapshotFile)
	}
	if c.UIRefreshRate == 0 {
		c.UIRefreshRate = DefaultRefreshRate
	}
	if c.UIRefreshRate < MinRefreshRate || c.UIRefreshRate > MaxRefreshRate {
		return fmt.Errorf("refresh rate %.2f out of range [%.1f, %.0f]", c.UIRefreshRate, MinRefreshRate, MaxRefreshRate)
	}
	style, ok := layout.ParseLayoutStyle(c.Layout)
	if !ok {
		return fmt.Errorf("unknown layout %q (want full or minimal)", c.Layout)
	}
	c.LayoutStyle = style
	return nil
}
