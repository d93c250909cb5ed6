package cli

import (
	"github.com/spf13/cobra"

	"github.com/msoltanov/pdf-shrinker/internal/cli/ui"
	"github.com/msoltanov/pdf-shrinker/internal/compression"
	"github.com/msoltanov/pdf-shrinker/internal/config"
	"github.com/msoltanov/pdf-shrinker/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent compression runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ui.Init(noColor)
	cfg := config.New()

	store, err := history.NewStore(cfg.HistoryDBPath)
	if err != nil {
		return err
	}

	records, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		ui.Message("No compression runs recorded yet.")
		return nil
	}

	for _, rec := range records {
		ui.Message("%s  level %d  %s → %s (%.1f%% saved)",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.Level,
			compression.FormatSize(rec.InputSize),
			compression.FormatSize(rec.OutputSize),
			rec.PercentSaved,
		)
		ui.Message("  %s", rec.OutputPath)
	}
	return nil
}
