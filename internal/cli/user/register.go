package user

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/avance/internal/cli"
	userservice "github.com/thenoetrevino/avance/internal/services/user"
	"github.com/thenoetrevino/avance/internal/sysuser"
)

// RegisterCmd returns the user register subcommand
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new user account",
		Long: `Create a new user account. The password is stored as a salted bcrypt hash.

Examples:
  avance user register --username alice --email alice@example.com --password-stdin

  # Quiet mode for bash capture
  USER_ID=$(avance user register --username alice --email a@example.com --password s3cret --quiet)
`,
		RunE: runRegister,
	}

	// Required flags
	cmd.Flags().String("username", sysuser.Username(), "Username, unique (defaults to the OS user)")
	cmd.Flags().String("email", "", "Email address (required)")
	_ = cmd.MarkFlagRequired("email")
	cli.AddPasswordFlags(cmd)

	// Agent-friendly flags
	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	username, _ := cmd.Flags().GetString("username")
	email, _ := cmd.Flags().GetString("email")

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

	id, err := cliInstance.App.UserService.Register(ctx, userservice.RegisterRequest{
		Username: username,
		Password: password,
		Email:    email,
	})
	if err != nil {
		return formatter.Report(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", id)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"user": map[string]any{
				"id":       id,
				"username": username,
				"email":    email,
			},
		})
	}

	fmt.Printf("✓ User '%s' registered (ID: %d)\n", username, id)
	fmt.Printf("  Log in with: eval $(avance user login --username %s --password-stdin)\n", username)
	return nil
}
