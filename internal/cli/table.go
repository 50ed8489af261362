package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/raphaelgruber/unitconv/internal/units"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var tableOutput string

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the conversion factor table",
	Long: `Print every tabulated (from, to) pair and its factor.

Pairs not listed, including a unit converted to itself, use factor 1.0.

Examples:
  unitconv table
  unitconv table --output yaml
  unitconv table -o json`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List supported units",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, u := range units.Units() {
			fmt.Fprintf(w, "%-4s %s\n", u.Symbol(), u)
		}
		return nil
	},
}

func init() {
	tableCmd.Flags().StringVarP(&tableOutput, "output", "o", "text", "output format: text, yaml or json")
}

func runTable(cmd *cobra.Command, args []string) error {
	return writeTable(cmd.OutOrStdout(), tableOutput, units.Entries())
}

// writeTable renders entries in the requested format.
func writeTable(w io.Writer, format string, entries []units.ConversionEntry) error {
	switch format {
	case "text", "":
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("From", "To", "Factor")
		for _, e := range entries {
			t.Row(e.From.String(), e.To.String(), units.FormatFloat(e.Factor))
		}
		fmt.Fprintln(w, t.String())
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, yaml or json)", format)
	}
}
