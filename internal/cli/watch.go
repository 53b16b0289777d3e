package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ticktock-project/ticktock/internal/ledger"
	"github.com/ticktock-project/ticktock/internal/report"
)

var trackCmd = &cobra.Command{
	Use:   "track <target>",
	Short: "Track a target in the foreground until interrupted",
	Long: `Track the given target in the foreground. The session is
checkpointed and saved on the configured auto-save interval, so an abrupt
kill loses at most one interval; Ctrl-C stops the session cleanly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		if err := app.Engine.Start(args[0]); err != nil {
			return err
		}
		fmt.Printf("tracking %s, Ctrl-C to stop\n", app.Engine.Status().Target)

		saver := ledger.NewAutosaver(app.Guard.Settings().AutoSaveInterval, func() error {
			return app.Engine.Checkpoint()
		})
		saver.Start()
		defer saver.Stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		signal.Stop(sig)

		st := app.Engine.Status()
		if err := app.Engine.Stop(); err != nil {
			return err
		}
		fmt.Printf("\nstopped %s after %s\n", st.Target, report.FormatDuration(int64(st.Elapsed.Seconds())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
}
