package project

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/avance/internal/cli"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a project and its activities",
		Long:  "Delete a project by ID (requires confirmation unless --force or --quiet).",
		RunE:  runDelete,
	}

	cmd.Flags().Int64("id", 0, "Project ID (required)")
	_ = cmd.MarkFlagRequired("id")

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	projectID, _ := cmd.Flags().GetInt64("id")
	force, _ := cmd.Flags().GetBool("force")
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

	// Get project details for confirmation
	project, err := cliInstance.App.ProjectService.GetProject(ctx, projectID)
	if err != nil {
		return formatter.Report(err)
	}
	if project == nil {
		return formatter.Fail(cli.ExitNotFound, "PROJECT_NOT_FOUND",
			fmt.Errorf("project %d not found", projectID), "")
	}

	if !force && !formatter.Quiet {
		prompt := fmt.Sprintf("Delete project #%d: '%s' and all of its activities?", projectID, project.Name)
		if !cli.Confirm(cmd, prompt) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if _, err := cliInstance.App.ProjectService.DeleteProject(ctx, projectID); err != nil {
		return formatter.Report(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":    true,
			"project_id": projectID,
		})
	}

	fmt.Printf("✓ Project %d deleted successfully\n", projectID)
	return nil
}
