package user

import (
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/avance/internal/cli"
	"github.com/thenoetrevino/avance/internal/cli/styles"
)

// WhoamiCmd returns the user whoami subcommand
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		RunE:  runWhoami,
	}

	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd, "Print only the user ID")

	return cmd
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
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

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(user)
	}

	return formatter.Success(styles.RenderField("User", user.Username) + "\n" +
		styles.RenderField("Email", user.Email) + "\n" +
		styles.RenderField("ID", strconv.FormatInt(user.ID, 10)))
}
