package project

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/avance/internal/cli"
	"github.com/thenoetrevino/avance/internal/cli/styles"
)

// ProgressCmd returns the project progress subcommand
func ProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show the share of a project's activities that are done",
		Long: `Show project progress: the number of Done activities divided by the
number of activities. A project without activities is at 0%.`,
		RunE: runProgress,
	}

	cmd.Flags().Int64("id", 0, "Project ID (required)")
	_ = cmd.MarkFlagRequired("id")

	cli.AddOutputFlags(cmd, "Print only the fraction (0 to 1)")

	return cmd
}

func runProgress(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	projectID, _ := cmd.Flags().GetInt64("id")
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

	project, err := cliInstance.App.ProjectService.GetProject(ctx, projectID)
	if err != nil {
		return formatter.Report(err)
	}
	if project == nil {
		return formatter.Fail(cli.ExitNotFound, "PROJECT_NOT_FOUND",
			fmt.Errorf("project %d not found", projectID), "")
	}

	progress, err := cliInstance.App.ProjectService.GetProjectProgress(ctx, projectID)
	if err != nil {
		return formatter.Report(err)
	}

	if formatter.Quiet {
		fmt.Printf("%g\n", progress)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":    true,
			"project_id": projectID,
			"progress":   progress,
		})
	}

	fmt.Printf("%s  %s\n", styles.TitleStyle.Render(project.Name), styles.RenderProgress(progress))
	return nil
}
