package commands

import (
	"fmt"

	"github.com/penwyp/go-battle-overlay/internal/application/overlay"
	"github.com/penwyp/go-battle-overlay/internal/core/i18n"
	"github.com/penwyp/go-battle-overlay/internal/core/model"
	"github.com/penwyp/go-battle-overlay/internal/data/snapshot"
	"github.com/penwyp/go-battle-overlay/internal/presentation/export"
	"github.com/penwyp/go-battle-overlay/internal/util"
	"github.com/spf13/cobra"
)

var (
	exportOut    string
	exportWidth  int
	exportHeight int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the current snapshot's charts to PNG files",
	Long: `Reads the battle snapshot once and writes pie.png, bars.png and damage.png
into the output directory. Charts without data are skipped.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".",
		"Output directory")
	exportCmd.Flags().IntVar(&exportWidth, "width", export.DefaultWidth,
		"Image width in pixels")
	exportCmd.Flags().IntVar(&exportHeight, "height", export.DefaultHeight,
		"Image height in pixels")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	if err := initLogging(store.Dir(), true); err != nil {
		return err
	}
	defer util.CloseLogger()

	prefs, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path := resolveSnapshotPath(store.Dir())
	snap, err := snapshot.Load(path)
	if err != nil {
		return err
	}

	translator, err := i18n.New(prefs.Locale)
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}

	exporter := export.NewExporter(exportWidth, exportHeight, prefs.ThemeMode)
	exporter.LegendFontSize = prefs.LegendFont().Size
	viewport := model.Viewport{Width: float64(exporter.Width), Height: float64(exporter.Height)}
	frame := overlay.Compose(snap, prefs, translator.Func(), viewport)

	written, err := exporter.Export(frame, util.ExpandPath(exportOut))
	if err != nil {
		return err
	}
	if len(written) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), translator.T("Waiting for battle data"))
		return nil
	}
	for _, p := range written {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	util.LogInfo("charts exported", util.F("count", len(written)), util.F("dir", exportOut))
	return nil
}
