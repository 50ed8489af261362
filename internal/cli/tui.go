package cli

import (
	"log/slog"

	"github.com/raphaelgruber/unitconv/internal/config"
	"github.com/raphaelgruber/unitconv/internal/converter"
	"github.com/raphaelgruber/unitconv/internal/tui"
	"github.com/raphaelgruber/unitconv/internal/units"
	"github.com/spf13/cobra"
)

var tuiFrom, tuiTo unitFlag

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive converter",
	Long: `Open the interactive converter: type a value, pick the source and
target units, and the result updates as you go.

Keys:
  tab / shift+tab   move between value, From and To
  enter             open a unit menu / select the highlighted unit
  up / down         move within an open menu
  esc               close the menu
  ctrl+s            swap units
  ctrl+c            quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to := resolveUnits(tuiFrom, tuiTo)
		return runInteractive(from, to)
	},
}

func init() {
	addUnitFlags(tuiCmd, &tuiFrom, &tuiTo)
}

// runInteractive runs the TUI. Its logs go to the log file only, since the
// terminal belongs to the UI.
func runInteractive(from, to units.Unit) error {
	level := cfg.LogLevel
	if verbose {
		level = slog.LevelDebug
	}
	fileLog, closeFile := config.FileLogger(cfg.LogFile, level)
	defer closeFile()

	final, err := tui.Run(converter.New(from, to), fileLog)
	if err != nil {
		return err
	}
	fileLog.Debug("converter closed", "input", final.Input, "from", final.From.Symbol(), "to", final.To.Symbol(), "output", final.Output)
	return nil
}
