// Package project holds all cli commands related to projects
//
// e.g., avance project ...
package project

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/avance/internal/cli"
	"github.com/thenoetrevino/avance/internal/models"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project owned by the current user.

Examples:
  # Simple project (human-readable output)
  avance project create --name="Thesis" --start=2024-01-01 --end=2024-06-30

  # JSON output for agents
  avance project create --name="Thesis" --start=2024-01-01 --end=2024-06-30 --json

  # Quiet mode for bash capture
  PROJECT_ID=$(avance project create --name="Thesis" --start=2024-01-01 --end=2024-06-30 --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Project name (required)")
	cmd.Flags().String("start", "", "Start date, YYYY-MM-DD (required)")
	cmd.Flags().String("end", "", "End date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	// Optional flags
	cmd.Flags().String("description", "", "Project description")
	cli.AddUserFlag(cmd)

	// Agent-friendly flags
	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")

	formatter := cli.NewFormatter(cmd)

	userID, err := cli.CurrentUserID(cmd)
	if err != nil {
		return formatter.Report(err)
	}

	if err := cli.ValidateDateRange(start, end); err != nil {
		return formatter.Fail(cli.ExitValidation, "VALIDATION_ERROR", err, "")
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

	project := models.Project{
		UserID:      userID,
		Name:        name,
		Description: description,
		StartDate:   start,
		EndDate:     end,
	}
	id, err := cliInstance.App.ProjectService.CreateProject(ctx, project)
	if err != nil {
		return formatter.Report(err)
	}
	project.ID = id

	if formatter.Quiet {
		fmt.Printf("%d\n", id)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"project": project,
		})
	}

	fmt.Printf("✓ Project '%s' created successfully (ID: %d)\n", project.Name, id)
	if description != "" {
		fmt.Printf("  Description: %s\n", description)
	}
	return nil
}
