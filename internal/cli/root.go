package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ticktock-project/ticktock/pkg/config"
	"github.com/ticktock-project/ticktock/pkg/logging"
)

var (
	jsonOutput bool
	rootDir    string
	envHint    string

	rootCmd = &cobra.Command{
		Use:   "ticktock",
		Short: "TickTock - project time tracking",
		Long: `TickTock tracks elapsed working time against projects and
sub-activities, persists it durably with atomic writes and bounded backup
rotation, and keeps daily totals exact across restarts and midnight
boundaries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "data directory (default: per-user data dir)")
	rootCmd.PersistentFlags().StringVar(&envHint, "env", "", "environment override (development|test|production|distributed)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")

	cobra.OnInitialize(func() {
		if v, _ := rootCmd.PersistentFlags().GetBool("verbose"); v {
			logging.SetGlobal(logging.NewLogger(logging.LevelDebug))
		}
	})
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// dataRoot returns the effective data directory.
func dataRoot() string {
	if rootDir != "" {
		return rootDir
	}
	return config.DefaultRoot()
}

// outputJSON prints v as JSON if --json flag is set, otherwise does nothing.
func outputJSON(v any) error {
	if !jsonOutput {
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
