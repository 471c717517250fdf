// Package cmd wires the avance command tree
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/avance/internal/cli"
	"github.com/thenoetrevino/avance/internal/cli/activity"
	"github.com/thenoetrevino/avance/internal/cli/db"
	"github.com/thenoetrevino/avance/internal/cli/project"
	"github.com/thenoetrevino/avance/internal/cli/tutorial"
	"github.com/thenoetrevino/avance/internal/cli/user"
	"github.com/thenoetrevino/avance/internal/config"
	"github.com/thenoetrevino/avance/internal/logging"
)

// NewRootCmd builds the avance command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "avance",
		Short: "Avance - track projects and their activities",
		Long: `Avance tracks personal projects and the activities inside them.

Log in once per shell session:
  eval $(avance user login --username alice --password-stdin)

Then manage projects and activities:
  avance project create --name "Thesis" --start 2024-01-01 --end 2024-12-31
  avance activity create --project 1 --name "Literature review" --start 2024-01-02 --end 2024-02-15
  avance project progress --id 1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := logging.Init(cfg.Logging); err != nil {
				// The log file is optional; commands still work without it
				fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(user.UserCmd())
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(activity.ActivityCmd())
	rootCmd.AddCommand(db.DBCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())

	return rootCmd
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	err := NewRootCmd().Execute()
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
