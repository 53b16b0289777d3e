package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ticktock-project/ticktock/internal/secure"
	"github.com/ticktock-project/ticktock/pkg/config"
	"github.com/ticktock-project/ticktock/pkg/errclass"
)

var migrateFrom string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		s := app.Guard.Settings()
		if jsonOutput {
			return outputJSON(s)
		}
		fmt.Printf("environment:        %s\n", s.Environment)
		fmt.Printf("data file:          %s\n", s.DataFilePath)
		fmt.Printf("backups:            %v (max %d, dir %s)\n", s.BackupEnabled, s.MaxBackups, s.BackupDir)
		fmt.Printf("auto-save interval: %ds\n", s.AutoSaveInterval)
		fmt.Printf("debug mode:         %v\n", s.DebugMode)
		if s.Distributed {
			fmt.Println("distributed build:  operational settings are locked")
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Read one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		v, err := app.Guard.Get(secure.Key(args[0]))
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(map[string]any{"key": args[0], "value": v})
		}
		fmt.Printf("%s = %v\n", args[0], v)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write one setting",
	Long: `Write one operational setting. In distributed builds every
operational setting is locked and the write is refused.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		key := secure.Key(args[0])
		value, err := parseSettingValue(key, args[1])
		if err != nil {
			return err
		}
		if err := app.Guard.Set(key, value); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

var configEnvCmd = &cobra.Command{
	Use:   "env <environment>",
	Short: "Switch the active environment",
	Long: `Switch the default environment (development|test|production|distributed).
With --migrate-from, the named environment's data file is copied over the
new environment's; the replaced file is moved into the backup directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		env, err := config.ParseEnvironment(args[0])
		if err != nil {
			return err
		}
		if migrateFrom != "" {
			source, err := config.ParseEnvironment(migrateFrom)
			if err != nil {
				return err
			}
			if err := app.Guard.Migrate(source, env); err != nil {
				return err
			}
		}
		if err := app.Guard.SetEnvironment(env); err != nil {
			return err
		}
		fmt.Printf("environment set to %s\n", env)
		return nil
	},
}

// parseSettingValue converts the CLI's string form into the typed value
// the guard expects for the key.
func parseSettingValue(key secure.Key, raw string) (any, error) {
	switch key {
	case secure.KeyMaxBackups, secure.KeyAutoSaveInterval:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errclass.ErrSettingUnknown.WithMessagef("%s expects an integer, got %q", key, raw)
		}
		return n, nil
	case secure.KeyBackupEnabled, secure.KeyDebugMode:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errclass.ErrSettingUnknown.WithMessagef("%s expects true or false, got %q", key, raw)
		}
		return b, nil
	default:
		return raw, nil
	}
}

func init() {
	configEnvCmd.Flags().StringVar(&migrateFrom, "migrate-from", "", "copy this environment's data file to the new environment")
	configCmd.AddCommand(configShowCmd, configGetCmd, configSetCmd, configEnvCmd)
	rootCmd.AddCommand(configCmd)
}
