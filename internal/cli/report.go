package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ticktock-project/ticktock/internal/report"
	"github.com/ticktock-project/ticktock/pkg/aliasutil"
)

var (
	reportYear   int
	reportMonth  int
	reportExport string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Reporting queries over recorded time",
}

var reportMonthCmd = &cobra.Command{
	Use:   "month",
	Short: "Per-day totals for one calendar month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}

		now := time.Now()
		year, month := reportYear, time.Month(reportMonth)
		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = now.Month()
		}
		if month < time.January || month > time.December {
			return fmt.Errorf("month out of range: %d", reportMonth)
		}

		m := report.BuildMonth(app.Ledger, year, month)
		if reportExport != "" {
			if err := os.WriteFile(reportExport, []byte(report.ExportText(m)), 0o644); err != nil {
				return err
			}
			fmt.Printf("exported to %s\n", reportExport)
			return nil
		}
		if jsonOutput {
			return outputJSON(m)
		}
		fmt.Print(report.ExportText(m))
		return nil
	},
}

var reportRangeCmd = &cobra.Command{
	Use:   "range <target> <from> <to>",
	Short: "Total recorded time for a target over a date range",
	Long: `Total recorded seconds for a target between two inclusive dates
(YYYY-MM-DD). A bare project alias includes its sub-activities; a
"project/sub" target counts only the sub-activity.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		target, from, to := args[0], args[1], args[2]
		for _, d := range []string{from, to} {
			if _, err := time.Parse("2006-01-02", d); err != nil {
				return fmt.Errorf("invalid date %q: want YYYY-MM-DD", d)
			}
		}

		var total int64
		if strings.Contains(target, aliasutil.TargetSeparator) {
			total, err = report.RangeTotal(app.Ledger, target, from, to)
		} else {
			total, err = report.ProjectRangeTotal(app.Ledger, target, from, to)
		}
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(map[string]any{
				"target": target, "from": from, "to": to, "seconds": total,
			})
		}
		fmt.Printf("%s  %s..%s  %s\n", target, from, to, report.FormatDuration(total))
		return nil
	},
}

func init() {
	reportMonthCmd.Flags().IntVar(&reportYear, "year", 0, "year (default: current)")
	reportMonthCmd.Flags().IntVar(&reportMonth, "month", 0, "month 1-12 (default: current)")
	reportMonthCmd.Flags().StringVar(&reportExport, "export", "", "write the report to a file")
	reportCmd.AddCommand(reportMonthCmd, reportRangeCmd)
	rootCmd.AddCommand(reportCmd)
}
