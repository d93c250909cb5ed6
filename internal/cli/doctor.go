package cli

import (
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msoltanov/pdf-shrinker/internal/cli/ui"
	"github.com/msoltanov/pdf-shrinker/internal/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the Ghostscript engine is installed and usable",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ui.Init(noColor)
	cfg := config.New()

	if cfg.EnginePath == "" {
		ui.Error("ghostscript not found on PATH (set %s to override discovery)", config.EnvEnginePath)
		return nil
	}

	ui.Success("ghostscript found: %s", cfg.EnginePath)

	spin := ui.NewSpinner("probing engine version...")
	spin.Start()
	out, err := exec.CommandContext(cmd.Context(), cfg.EnginePath, "--version").Output()
	spin.Stop()

	if err != nil {
		ui.Error("engine did not report a version: %v", err)
		return nil
	}
	ui.Message("  version: %s", strings.TrimSpace(string(out)))
	return nil
}
