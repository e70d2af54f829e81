package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/findosh/finchat/internal/app"
	"github.com/findosh/finchat/internal/models"
	"github.com/findosh/finchat/internal/services/marketdata"
	"github.com/findosh/finchat/internal/storage"
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Query and import share price history",
}

var priceStatsCmd = &cobra.Command{
	Use:   "stats <from> <to>",
	Short: "Show price statistics between two dates (YYYY-MM-DD or Mon-YY)",
	Example: `  finchat prices stats 2022-01-01 2022-03-31
  finchat prices stats Jan-22 Mar-22`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(cmd)
		if err != nil {
			return err
		}

		start, _, err := parseBound(args[0])
		if err != nil {
			return err
		}
		_, end, err := parseBound(args[1])
		if err != nil {
			return err
		}

		stats, err := snap.Stats(start, end)
		if err != nil {
			return err
		}
		return printPriceResult(cmd, stats, func(w io.Writer) { writeStats(w, stats) })
	},
}

var priceCompareCmd = &cobra.Command{
	Use:     "compare <from1> <to1> <from2> <to2>",
	Short:   "Compare price statistics for two periods",
	Example: `  finchat prices compare Mar-22 Mar-22 Jun-22 Jun-22`,
	Args:    cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(cmd)
		if err != nil {
			return err
		}

		var bounds [4]time.Time
		for i, arg := range args {
			start, end, err := parseBound(arg)
			if err != nil {
				return err
			}
			if i%2 == 0 {
				bounds[i] = start
			} else {
				bounds[i] = end
			}
		}

		cmp, err := snap.Compare(bounds[0], bounds[1], bounds[2], bounds[3])
		if err != nil {
			return err
		}
		return printPriceResult(cmd, cmp, func(w io.Writer) {
			fmt.Fprintln(w, labelStyle.Render("Period 1"))
			writeStats(w, cmp.Period1)
			fmt.Fprintln(w, labelStyle.Render("Period 2"))
			writeStats(w, cmp.Period2)
			fmt.Fprintln(w, labelStyle.Render("Change"))
			fmt.Fprintf(w, "  average %s  highest %s  lowest %s\n",
				cmp.Comparison.AverageChange.StringFixed(2),
				cmp.Comparison.HighestChange.StringFixed(2),
				cmp.Comparison.LowestChange.StringFixed(2))
		})
	},
}

var priceImportCmd = &cobra.Command{
	Use:   "import <csv>",
	Short: "Replace the stored price history with a CSV export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("no database configured: pass --database or set FINCHAT_DATABASE_URL")
		}

		snap, err := marketdata.LoadFile(args[0])
		if err != nil {
			return err
		}
		if snap.Len() == 0 {
			return fmt.Errorf("%s contains no usable price rows", args[0])
		}

		db, err := app.OpenDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		imp, err := storage.NewPriceRepository(db).ReplaceAll(cmd.Context(), args[0], snap.Points())
		if err != nil {
			return err
		}

		first, last, _ := snap.Bounds()
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d prices (%s to %s) as %s\n",
			imp.RowCount, first.Format(marketdata.DateLayout), last.Format(marketdata.DateLayout), imp.ID)
		return nil
	},
}

func init() {
	pricesCmd.PersistentFlags().Bool("json", false, "print results as JSON")
	pricesCmd.AddCommand(priceStatsCmd)
	pricesCmd.AddCommand(priceCompareCmd)
	pricesCmd.AddCommand(priceImportCmd)
}

func loadSnapshot(cmd *cobra.Command) (*marketdata.Snapshot, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	data, err := app.Load(cmd.Context(), cfg, cliLogger(cfg))
	if err != nil {
		return nil, err
	}
	defer data.Close()

	if data.Prices.Len() == 0 {
		return nil, fmt.Errorf("no price history loaded: pass --prices or import into --database")
	}
	return data.Prices, nil
}

// parseBound accepts YYYY-MM-DD or a Mon-YY month token, returning the
// range it covers
func parseBound(s string) (time.Time, time.Time, error) {
	if d, err := marketdata.ParseDate(s); err == nil {
		return d, d, nil
	}
	start, end, err := marketdata.MonthRange(s)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%q is neither YYYY-MM-DD nor Mon-YY", s)
	}
	return start, end, nil
}

func printPriceResult(cmd *cobra.Command, v interface{}, text func(io.Writer)) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(out)
	return nil
}

func writeStats(w io.Writer, s *models.PeriodStats) {
	fmt.Fprintf(w, "  %s (%d trading days)\n", s.Period, s.DataPoints)
	fmt.Fprintf(w, "  highest ₹%s  lowest ₹%s  average ₹%s\n",
		s.Highest.StringFixed(2), s.Lowest.StringFixed(2), s.Average.StringFixed(2))
	fmt.Fprintf(w, "  start ₹%s  end ₹%s  change %s%%\n",
		s.StartPrice.StringFixed(2), s.EndPrice.StringFixed(2), s.Change.StringFixed(2))
}
