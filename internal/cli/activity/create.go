package activity

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/avance/internal/cli"
	"github.com/thenoetrevino/avance/internal/models"
)

// CreateCmd returns the activity create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add an activity to a project",
		Long: `Add an activity to a project.

Examples:
  avance activity create --project=3 --name="Literature review" \
    --start=2024-01-02 --end=2024-02-15

  # Start it as in progress and capture the ID
  ACTIVITY_ID=$(avance activity create --project=3 --name="Draft" \
    --start=2024-02-01 --end=2024-03-01 --status=in-progress --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().Int64("project", 0, "Project ID (required)")
	cmd.Flags().String("name", "", "Activity name (required)")
	cmd.Flags().String("start", "", "Start date, YYYY-MM-DD (required)")
	cmd.Flags().String("end", "", "End date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	// Optional flags
	cmd.Flags().String("description", "", "Activity description")
	cmd.Flags().String("status", "planned", "Status: planned, in-progress, done")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	projectID, _ := cmd.Flags().GetInt64("project")
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	statusFlag, _ := cmd.Flags().GetString("status")

	formatter := cli.NewFormatter(cmd)

	status, err := models.ParseStatus(statusFlag)
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

	activity := models.Activity{
		ProjectID:   projectID,
		Name:        name,
		Description: description,
		StartDate:   start,
		EndDate:     end,
		Status:      status,
	}
	id, err := cliInstance.App.ActivityService.CreateActivity(ctx, activity)
	if err != nil {
		return formatter.Report(err)
	}
	activity.ID = id

	if formatter.Quiet {
		fmt.Printf("%d\n", id)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":  true,
			"activity": activity,
		})
	}

	fmt.Printf("✓ Activity '%s' added to project %d (ID: %d, %s)\n", activity.Name, projectID, id, status)
	return nil
}
