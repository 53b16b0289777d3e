package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ticktock-project/ticktock/internal/report"
	"github.com/ticktock-project/ticktock/pkg/aliasutil"
)

var (
	addName string
	addDZ   string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add <alias>",
	Short: "Add a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		name := addName
		if name == "" {
			name = args[0]
		}
		p, err := app.Ledger.AddProject(args[0], name, addDZ)
		if err != nil {
			return err
		}
		if err := app.Store.Save(app.Ledger); err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(p)
		}
		fmt.Printf("added project %s\n", p.Alias)
		return nil
	},
}

var projectRenameCmd = &cobra.Command{
	Use:   "rename <alias> <new-name>",
	Short: "Change a project's display name",
	Long: `Change a project's display name and, with --dz, its DZ number.
The alias is untouched, so recorded time stays attached.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		if err := app.Ledger.RenameProject(args[0], args[1], addDZ); err != nil {
			return err
		}
		if err := app.Store.Save(app.Ledger); err != nil {
			return err
		}
		fmt.Printf("renamed project %s\n", args[0])
		return nil
	},
}

var projectReAliasCmd = &cobra.Command{
	Use:   "realias <alias> <new-alias>",
	Short: "Change a project's alias",
	Long: `Change a project's alias. Refused once the project (or any of its
sub-activities) has recorded time, because historical records reference the
alias.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		if err := app.Ledger.ReAliasProject(args[0], args[1]); err != nil {
			return err
		}
		if err := app.Store.Save(app.Ledger); err != nil {
			return err
		}
		fmt.Printf("project %s is now %s\n", args[0], aliasutil.Normalize(args[1]))
		return nil
	},
}

var projectRemoveCmd = &cobra.Command{
	Use:   "remove <alias>",
	Short: "Remove a project and its sub-activities",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		if !app.Ledger.RemoveProject(args[0]) {
			fmt.Printf("no project %q\n", args[0])
			return nil
		}
		if err := app.Store.Save(app.Ledger); err != nil {
			return err
		}
		fmt.Printf("removed project %s\n", args[0])
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects with recorded totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(app.Ledger.Projects)
		}
		for _, p := range app.Ledger.Projects {
			fmt.Printf("%-20s %-30s %s\n", p.Alias, p.Name,
				report.FormatDuration(p.TimeRecords.Total()))
			for _, sub := range p.SubActivities {
				fmt.Printf("  %-18s %-30s %s\n",
					aliasutil.JoinTarget(p.Alias, sub.Alias), sub.Name,
					report.FormatDuration(sub.TimeRecords.Total()))
			}
		}
		return nil
	},
}

var subCmd = &cobra.Command{
	Use:   "sub",
	Short: "Manage sub-activities",
}

var subAddCmd = &cobra.Command{
	Use:   "add <project> <alias>",
	Short: "Add a sub-activity under a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		p := app.Ledger.Project(args[0])
		if p == nil {
			return fmt.Errorf("no project %q", args[0])
		}
		name := addName
		if name == "" {
			name = args[1]
		}
		sub, err := p.AddSub(args[1], name, addDZ)
		if err != nil {
			return err
		}
		if err := app.Store.Save(app.Ledger); err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(sub)
		}
		fmt.Printf("added %s\n", aliasutil.JoinTarget(p.Alias, sub.Alias))
		return nil
	},
}

var subRemoveCmd = &cobra.Command{
	Use:   "remove <project> <alias>",
	Short: "Remove a sub-activity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		p := app.Ledger.Project(args[0])
		if p == nil {
			return fmt.Errorf("no project %q", args[0])
		}
		if !p.RemoveSub(args[1]) {
			fmt.Printf("no sub-activity %q\n", aliasutil.JoinTarget(args[0], args[1]))
			return nil
		}
		if err := app.Store.Save(app.Ledger); err != nil {
			return err
		}
		fmt.Printf("removed %s\n", aliasutil.JoinTarget(args[0], args[1]))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{projectAddCmd, projectRenameCmd, subAddCmd} {
		c.Flags().StringVar(&addName, "name", "", "display name (default: the alias)")
		c.Flags().StringVar(&addDZ, "dz", "", "DZ number")
	}
	projectCmd.AddCommand(projectAddCmd, projectRenameCmd, projectReAliasCmd,
		projectRemoveCmd, projectListCmd)
	subCmd.AddCommand(subAddCmd, subRemoveCmd)
	rootCmd.AddCommand(projectCmd, subCmd)
}
