package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/msoltanov/pdf-shrinker/internal/cli/ui"
	"github.com/msoltanov/pdf-shrinker/internal/compression"
	"github.com/msoltanov/pdf-shrinker/internal/config"
	"github.com/msoltanov/pdf-shrinker/internal/history"
)

var (
	inputPath  string
	outputPath string
	level      int
	verbose    bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "pdf-shrinker",
	Short: "Compress PDF files with Ghostscript",
	Long: `pdf-shrinker compresses a PDF by delegating to Ghostscript, mapping a
compression level (1-5) onto a fixed set of engine directives. Higher levels
produce smaller files at lower image quality.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCompress,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "source PDF path (required)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "destination path (default: <input>-compressed.pdf)")
	rootCmd.Flags().IntVarP(&level, "level", "l", compression.DefaultLevel, "compression level 1-5, higher is smaller")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "echo engine output and enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.MarkFlagRequired("input")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() zerolog.Logger {
	lvl := zerolog.InfoLevel
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(lvl).With().Timestamp().Logger()
}

func runCompress(cmd *cobra.Command, args []string) error {
	ui.Init(noColor)
	logger := newLogger()
	cfg := config.New()

	req, err := compression.ResolveRequest(inputPath, outputPath, level, verbose)
	if err != nil {
		return err
	}
	if req.OutputDerived {
		ui.Info("no output path given, writing to %s", req.OutputPath)
	}

	inputInfo, err := os.Stat(req.InputPath)
	if err != nil {
		return err
	}

	ui.Message("Compressing %s (level %d, %s)", req.InputPath, req.Level, compression.FormatSize(inputInfo.Size()))

	compressor := compression.NewCompressor(cfg.EnginePath, logger)
	if !compressor.IsAvailable() {
		return compression.ErrEngineNotFound
	}

	// In verbose mode the engine output owns the terminal, so the cosmetic
	// bar is skipped.
	var echo io.Writer
	var bar *ui.FakeBar
	if req.Verbose {
		echo = os.Stderr
	} else {
		bar = ui.StartFakeBar("compressing")
	}

	result, err := compressor.Compress(cmd.Context(), req, echo)
	if err != nil {
		if bar != nil {
			bar.Abort()
		}
		return err
	}
	if bar != nil {
		bar.Succeed()
	}

	ui.Success("wrote %s", result.OutputPath)
	ui.Message("  input:  %s", compression.FormatSize(result.InputSize))
	ui.Message("  output: %s", compression.FormatSize(result.OutputSize))
	ui.Message("  ratio:  %.2fx (%.1f%% saved)", result.Ratio, result.PercentSaved)

	recordRun(logger, cfg, result)
	return nil
}

// recordRun persists the run to the history store. History is best effort
// and never fails the compression itself.
func recordRun(logger zerolog.Logger, cfg *config.Config, result compression.Result) {
	store, err := history.NewStore(cfg.HistoryDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("could not open history store")
		return
	}
	if _, err := store.Save(result); err != nil {
		logger.Warn().Err(err).Msg("could not record run in history")
	}
}
