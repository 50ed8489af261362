// Package cli provides the command-line interface for unitconv.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/raphaelgruber/unitconv/internal/config"
	"github.com/raphaelgruber/unitconv/internal/units"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg          config.Config
	logger       = slog.New(slog.DiscardHandler)
	closeLogFile = func() error { return nil }

	setupLogger = config.SetupLogger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "unitconv",
	Short: "Convert lengths between millimeters, centimeters, meters and feet",
	Long: `Unitconv converts a value between four length units using a fixed
table of conversion factors.

Run without a subcommand in a terminal to open the interactive converter;
with piped input it converts one value per line.

Examples:
  unitconv convert 10 --from cm --to m
  unitconv table --output yaml
  echo 12 | unitconv --from ft --to mm`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		logger, closeLogFile = setupLogger(cfg.LogFile, level)
		logger.Debug("config loaded", "from", cfg.From, "to", cfg.To, "strict", cfg.Strict)
		return nil
	},
	RunE: runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// The log file is closed on return whether or not the command failed.
func Execute() error {
	defer func() {
		if err := closeLogFile(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
		closeLogFile = func() error { return nil }
	}()
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file (YAML)")

	addUnitFlags(rootCmd, &rootFrom, &rootTo)

	// Add subcommands
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(tuiCmd)
}

var rootFrom, rootTo unitFlag

// runRoot opens the TUI on a terminal and falls back to batch mode on piped input.
func runRoot(cmd *cobra.Command, args []string) error {
	from, to := resolveUnits(rootFrom, rootTo)
	in := cmd.InOrStdin()
	if isTerminal(in) {
		return runInteractive(from, to)
	}
	return runBatchStream(in, cmd.OutOrStdout(), from, to, cfg.Strict)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// unitFlag is a pflag.Value holding a unit chosen on the command line.
type unitFlag struct {
	unit units.Unit
	set  bool
}

func (f *unitFlag) String() string {
	if !f.set {
		return ""
	}
	return f.unit.Symbol()
}

func (f *unitFlag) Set(s string) error {
	u, err := units.ParseUnit(s)
	if err != nil {
		return err
	}
	f.unit, f.set = u, true
	return nil
}

func (f *unitFlag) Type() string {
	return "unit"
}

func addUnitFlags(cmd *cobra.Command, from, to *unitFlag) {
	cmd.Flags().VarP(from, "from", "f", "source unit (mm, cm, m, ft); default from config")
	cmd.Flags().VarP(to, "to", "t", "target unit (mm, cm, m, ft); default from config")
}

// resolveUnits prefers explicit flags over configured defaults.
func resolveUnits(from, to unitFlag) (units.Unit, units.Unit) {
	f, t := cfg.From, cfg.To
	if from.set {
		f = from.unit
	}
	if to.set {
		t = to.unit
	}
	return f, t
}
