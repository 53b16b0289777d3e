package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ticktock-project/ticktock/internal/report"
)

var startCmd = &cobra.Command{
	Use:   "start <target>",
	Short: "Start tracking a project or sub-activity",
	Long: `Start tracking the given target. A target is a project alias, or
"project/sub" for a sub-activity. If another target is being tracked, it is
stopped first at the same instant, leaving no gap and no overlap.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		if err := app.Engine.Start(args[0]); err != nil {
			return err
		}
		st := app.Engine.Status()
		if jsonOutput {
			return outputJSON(st)
		}
		fmt.Printf("tracking %s\n", st.Target)
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop tracking",
	Long:  "Stop the active session and commit its time into daily totals. A no-op when idle.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		st := app.Engine.Status()
		if err := app.Engine.Stop(); err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(st)
		}
		if !st.Running {
			fmt.Println("nothing to stop")
			return nil
		}
		fmt.Printf("stopped %s after %s\n", st.Target, report.FormatDuration(int64(st.Elapsed.Seconds())))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the live timer state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		st := app.Engine.Status()
		if jsonOutput {
			return outputJSON(st)
		}
		if !st.Running {
			fmt.Println("idle")
			return nil
		}
		fmt.Printf("running: %s for %s\n", st.Target, report.FormatDuration(int64(st.Elapsed.Seconds())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
}
