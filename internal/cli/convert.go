package cli

import (
	"fmt"

	"github.com/raphaelgruber/unitconv/internal/units"
	"github.com/spf13/cobra"
)

var (
	convertFrom   unitFlag
	convertTo     unitFlag
	convertStrict bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <value>",
	Short: "Convert a single value",
	Long: `Convert a single value between length units.

Unparseable values print 0.0 unless --strict is set, in which case they
are reported as errors. Use -- before negative values.

Examples:
  unitconv convert 10 --from cm --to m
  unitconv convert 1 -f m -t ft
  unitconv convert --strict -f mm -t ft -- -12.5`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	addUnitFlags(convertCmd, &convertFrom, &convertTo)
	convertCmd.Flags().BoolVar(&convertStrict, "strict", false, "fail on unparseable input instead of printing 0.0")
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, to := resolveUnits(convertFrom, convertTo)
	strict := cfg.Strict
	if cmd.Flags().Changed("strict") {
		strict = convertStrict
	}

	req := units.ConversionRequest{From: from, To: to, Input: args[0]}
	out, err := convertOne(req, strict)
	if err != nil {
		return err
	}

	logger.Debug("converted", "input", req.Input, "from", from.Symbol(), "to", to.Symbol(), "output", out)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// convertOne converts req with or without the fallbacks.
func convertOne(req units.ConversionRequest, strict bool) (string, error) {
	if !strict {
		return units.Convert(req), nil
	}
	out, err := units.ConvertStrict(req)
	if err != nil {
		return "", fmt.Errorf("convert %q from %s to %s: %w", req.Input, req.From, req.To, err)
	}
	return out, nil
}
