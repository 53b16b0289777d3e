package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "Inspect ledger backups",
}

var backupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List retained backups, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		backups, err := app.Store.Backups()
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(backups)
		}
		if len(backups) == 0 {
			fmt.Println("no backups")
			return nil
		}
		for _, b := range backups {
			fmt.Printf("%s  %s\n", b.CapturedAt.Format("2006-01-02 15:04:05"), b.Path)
		}
		return nil
	},
}

func init() {
	backupsCmd.AddCommand(backupsListCmd)
	rootCmd.AddCommand(backupsCmd)
}
