package cli

import (
	"fmt"

	"github.com/raphaelgruber/unitconv/internal/units"
	"github.com/spf13/cobra"
)

var (
	checkTolerance float64
	checkValue     float64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit the table for inconsistent round trips",
	Long: `Check that converting A to B and back recovers the original value for
every pair tabulated in both directions, i.e. that the two factors
multiply to 1 within the given relative tolerance.

Each line also shows --value converted there and back.

Exits non-zero when any pair fails.

Examples:
  unitconv check
  unitconv check --tolerance 1e-12
  unitconv check --value 250`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Float64Var(&checkTolerance, "tolerance", units.DefaultTolerance, "accepted deviation of factor products from 1")
	checkCmd.Flags().Float64Var(&checkValue, "value", 1, "value to convert there and back for each pair")
}

func runCheck(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	results := units.CheckRoundTrips(checkTolerance)

	failed := 0
	for _, r := range results {
		status := "ok"
		if !r.OK {
			status = "FAIL"
			failed++
		}
		back := units.RoundTripValue(checkValue, r.From, r.To)
		fmt.Fprintf(w, "%-4s %-2s <-> %-2s  %s x %s = %s  (%s -> %s)\n",
			status, r.From.Symbol(), r.To.Symbol(),
			units.FormatFloat(r.Forward), units.FormatFloat(r.Reverse), units.FormatFloat(r.Product),
			units.FormatFloat(checkValue), units.FormatFloat(back))
		if !r.OK {
			logger.Warn("round trip outside tolerance", "from", r.From, "to", r.To, "product", r.Product, "tolerance", checkTolerance)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pairs fail the round-trip check", failed, len(results))
	}
	fmt.Fprintf(w, "\nAll %d pairs round-trip within %g\n", len(results), checkTolerance)
	return nil
}
