// Package user holds all cli commands related to user accounts
//
// e.g., avance user ...
package user

import (
	"github.com/spf13/cobra"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(RegisterCmd())
	cmd.AddCommand(LoginCmd())
	cmd.AddCommand(WhoamiCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
