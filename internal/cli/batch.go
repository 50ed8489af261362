package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/raphaelgruber/unitconv/internal/metrics"
	"github.com/raphaelgruber/unitconv/internal/units"
	"github.com/spf13/cobra"
)

var (
	batchFrom   unitFlag
	batchTo     unitFlag
	batchStrict bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert one value per line from stdin",
	Long: `Read values from stdin, one per line, and write one result per line.

Lines that do not parse produce 0.0, or stop the run with --strict.
With -v a summary of the run is logged when input ends.

Examples:
  printf '1\n2.5\n' | unitconv batch --from m --to ft
  unitconv batch -f mm -t cm < values.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to := resolveUnits(batchFrom, batchTo)
		strict := cfg.Strict
		if cmd.Flags().Changed("strict") {
			strict = batchStrict
		}
		return runBatchStream(cmd.InOrStdin(), cmd.OutOrStdout(), from, to, strict)
	},
}

func init() {
	addUnitFlags(batchCmd, &batchFrom, &batchTo)
	batchCmd.Flags().BoolVar(&batchStrict, "strict", false, "stop at the first unparseable line")
}

// runBatchStream converts each line of r and writes the results to w.
func runBatchStream(r io.Reader, w io.Writer, from, to units.Unit, strict bool) error {
	log := logger.With("run", uuid.New().String()[:8], "from", from.Symbol(), "to", to.Symbol())
	collector := metrics.NewCollector()

	reader := bufio.NewReader(r)
	line := 0
	for {
		text, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("read input: %w", readErr)
		}
		if readErr == io.EOF && text == "" {
			break
		}
		line++

		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
		req := units.ConversionRequest{From: from, To: to, Input: text}

		start := time.Now()
		out, err := convertOne(req, strict)
		collector.Record(req, time.Since(start))
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		fmt.Fprintln(w, out)

		if readErr == io.EOF {
			break
		}
	}

	snap := collector.Snapshot()
	log.Debug("batch complete",
		"lines", snap.Total,
		"converted", snap.Converted,
		"identity", snap.Identity,
		"invalid", snap.InvalidInput,
		"seconds", snap.UptimeSeconds)
	for _, p := range snap.Pairs {
		log.Debug("pair timing", "pair", p.From.Symbol()+"->"+p.To.Symbol(), "count", p.Count, "avg_us", p.AvgTimeUs, "max_us", p.MaxTimeUs)
	}
	if snap.InvalidInput > 0 {
		log.Warn("unparseable lines converted as 0.0", "count", snap.InvalidInput)
	}
	return nil
}
