package user

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/avance/internal/cli"
)

// DeleteCmd returns the user delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the current user with all projects and activities",
		Long:  "Delete the current user account (requires confirmation unless --force or --quiet).",
		RunE:  runDelete,
	}

	cli.AddUserFlag(cmd)
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	force, _ := cmd.Flags().GetBool("force")
	formatter := cli.NewFormatter(cmd)

	userID, err := cli.CurrentUserID(cmd)
	if err != nil {
		return formatter.Report(err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	user, err := cliInstance.App.UserService.GetUser(ctx, userID)
	if err != nil {
		return formatter.Report(err)
	}

	if !force && !formatter.Quiet {
		prompt := fmt.Sprintf("Delete user '%s' and all of their projects?", user.Username)
		if !cli.Confirm(cmd, prompt) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if _, err := cliInstance.App.UserService.DeleteUser(ctx, userID); err != nil {
		return formatter.Report(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"user_id": userID,
		})
	}

	fmt.Printf("✓ User '%s' deleted\n", user.Username)
	fmt.Fprintf(os.Stderr, "Run 'unset %s' to clear the session\n", cli.EnvUser)
	return nil
}
