package activity

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/avance/internal/cli"
	"github.com/thenoetrevino/avance/internal/cli/styles"
)

// ListCmd returns the activity list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's activities",
		Long:  "List a project's activities, earliest start date first.",
		RunE:  runList,
	}

	cmd.Flags().Int64("project", 0, "Project ID (required)")
	_ = cmd.MarkFlagRequired("project")

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	projectID, _ := cmd.Flags().GetInt64("project")
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	activities, err := cliInstance.App.ActivityService.ListActivities(ctx, projectID)
	if err != nil {
		return formatter.Report(err)
	}

	if formatter.Quiet {
		for _, a := range activities {
			fmt.Printf("%d\n", a.ID)
		}
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":    true,
			"activities": activities,
		})
	}

	if len(activities) == 0 {
		fmt.Println("No activities found")
		return nil
	}

	for _, a := range activities {
		fmt.Println(styles.RenderActivityLine(a))
	}
	return nil
}
