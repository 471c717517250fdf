// Package activity holds all cli commands related to project activities
//
// e.g., avance activity ...
package activity

import (
	"github.com/spf13/cobra"
)

// ActivityCmd returns the activity parent command
func ActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage the activities of a project",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
