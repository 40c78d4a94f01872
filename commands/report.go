package commands

import (
	"fmt"

	"github.com/penwyp/go-battle-overlay/internal/application/overlay"
	"github.com/penwyp/go-battle-overlay/internal/core/i18n"
	"github.com/penwyp/go-battle-overlay/internal/core/model"
	"github.com/penwyp/go-battle-overlay/internal/data/snapshot"
	"github.com/penwyp/go-battle-overlay/internal/presentation/formatter"
	"github.com/penwyp/go-battle-overlay/internal/util"
	"github.com/spf13/cobra"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the damage summary of the current snapshot",
	Long: `Reads the battle snapshot once and prints each character's damage, share
and damage per action value.

Examples:
  go-battle-overlay report                    # Table output
  go-battle-overlay report --output json      # JSON output
  go-battle-overlay report -o csv > run.csv   # CSV output`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportFormat, "output", "o", "table",
		"Output format (table, json, csv)")
}

func runReport(cmd *cobra.Command, args []string) error {
	f, err := formatter.New(reportFormat)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	if err := initLogging(store.Dir(), false); err != nil {
		return err
	}
	defer util.CloseLogger()

	prefs, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	snap, err := snapshot.Load(resolveSnapshotPath(store.Dir()))
	if err != nil {
		return err
	}

	translator, err := i18n.New(prefs.Locale)
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}

	frame := overlay.Compose(snap, prefs, translator.Func(), model.Viewport{})
	return f.Format(cmd.OutOrStdout(), formatter.FromFrame(frame))
}
