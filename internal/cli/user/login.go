package user

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/avance/internal/cli"
	"github.com/thenoetrevino/avance/internal/sysuser"
)

// ErrInvalidCredentials is reported when the username or password is wrong
var ErrInvalidCredentials = errors.New("invalid username or password")

// LoginCmd returns the user login subcommand
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and set the user for the current shell session",
		Long: `Check credentials and print a shell command that sets the current user.
The output should be evaluated:

  eval $(avance user login --username alice --password-stdin)

The AVANCE_USER environment variable will be set in your current shell
session only. The --user flag on other commands takes precedence over it.`,
		RunE: runLogin,
	}

	cmd.Flags().String("username", sysuser.Username(), "Username (defaults to the OS user)")
	cli.AddPasswordFlags(cmd)

	cli.AddOutputFlags(cmd, "Print only the user ID")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	username, _ := cmd.Flags().GetString("username")
	formatter := cli.NewFormatter(cmd)

	password, err := cli.ReadPassword(cmd)
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "USAGE_ERROR", err, "")
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

	id, err := cliInstance.App.UserService.LoginWithID(ctx, username, password)
	if err != nil {
		return formatter.Report(err)
	}
	if id == nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_CREDENTIALS", ErrInvalidCredentials, "")
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", *id)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"user_id": *id,
		})
	}

	// Shell export on stdout for eval, confirmation on stderr
	fmt.Printf("export %s=%d\n", cli.EnvUser, *id)
	fmt.Fprintf(os.Stderr, "Logged in as %s (ID: %d)\n", username, *id)
	return nil
}
