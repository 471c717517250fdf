package project

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/avance/internal/cli"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a project's name, description or dates",
		Long: `Update a project. Only the flags that are given change; the rest keep
their current values.

Examples:
  avance project update --id=3 --name="Dissertation"
  avance project update --id=3 --end=2024-09-30 --description=""
`,
		RunE: runUpdate,
	}

	cmd.Flags().Int64("id", 0, "Project ID (required)")
	_ = cmd.MarkFlagRequired("id")

	cmd.Flags().String("name", "", "New project name")
	cmd.Flags().String("description", "", "New project description")
	cmd.Flags().String("start", "", "New start date, YYYY-MM-DD")
	cmd.Flags().String("end", "", "New end date, YYYY-MM-DD")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
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

	flags := cmd.Flags()
	if flags.Changed("name") {
		project.Name, _ = flags.GetString("name")
	}
	if flags.Changed("description") {
		project.Description, _ = flags.GetString("description")
	}
	if flags.Changed("start") {
		project.StartDate, _ = flags.GetString("start")
	}
	if flags.Changed("end") {
		project.EndDate, _ = flags.GetString("end")
	}

	if err := cli.ValidateDateRange(project.StartDate, project.EndDate); err != nil {
		return formatter.Fail(cli.ExitValidation, "VALIDATION_ERROR", err, "")
	}

	affected, err := cliInstance.App.ProjectService.UpdateProject(ctx, *project)
	if err != nil {
		return formatter.Report(err)
	}
	if affected == 0 {
		return formatter.Fail(cli.ExitNotFound, "PROJECT_NOT_FOUND",
			fmt.Errorf("project %d not found", projectID), "")
	}

	if formatter.Quiet {
		return formatter.Success(project)
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"project": project,
		})
	}

	fmt.Printf("✓ Project %d updated\n", projectID)
	return nil
}
