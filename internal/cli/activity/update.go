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

// UpdateCmd returns the activity update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an activity",
		Long: `Update an activity. Only the flags that are given change; the rest keep
their current values.

Examples:
  # Mark an activity done
  avance activity update --id=7 --status=done

  # Move its dates
  avance activity update --id=7 --start=2024-03-01 --end=2024-03-15
`,
		RunE: runUpdate,
	}

	cmd.Flags().Int64("id", 0, "Activity ID (required)")
	_ = cmd.MarkFlagRequired("id")

	cmd.Flags().String("name", "", "New activity name")
	cmd.Flags().String("description", "", "New activity description")
	cmd.Flags().String("start", "", "New start date, YYYY-MM-DD")
	cmd.Flags().String("end", "", "New end date, YYYY-MM-DD")
	cmd.Flags().String("status", "", "New status: planned, in-progress, done")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	activityID, _ := cmd.Flags().GetInt64("id")
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

	activity, err := cliInstance.App.ActivityService.GetActivity(ctx, activityID)
	if err != nil {
		return formatter.Report(err)
	}
	if activity == nil {
		return formatter.Fail(cli.ExitNotFound, "ACTIVITY_NOT_FOUND",
			fmt.Errorf("activity %d not found", activityID), "")
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		activity.Name, _ = flags.GetString("name")
	}
	if flags.Changed("description") {
		activity.Description, _ = flags.GetString("description")
	}
	if flags.Changed("start") {
		activity.StartDate, _ = flags.GetString("start")
	}
	if flags.Changed("end") {
		activity.EndDate, _ = flags.GetString("end")
	}
	if flags.Changed("status") {
		statusFlag, _ := flags.GetString("status")
		status, err := models.ParseStatus(statusFlag)
		if err != nil {
			return formatter.Report(err)
		}
		activity.Status = status
	}

	if err := cli.ValidateDateRange(activity.StartDate, activity.EndDate); err != nil {
		return formatter.Fail(cli.ExitValidation, "VALIDATION_ERROR", err, "")
	}

	affected, err := cliInstance.App.ActivityService.UpdateActivity(ctx, *activity)
	if err != nil {
		return formatter.Report(err)
	}
	if affected == 0 {
		return formatter.Fail(cli.ExitNotFound, "ACTIVITY_NOT_FOUND",
			fmt.Errorf("activity %d not found", activityID), "")
	}

	if formatter.Quiet {
		return formatter.Success(activity)
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":  true,
			"activity": activity,
		})
	}

	fmt.Printf("✓ Activity %d updated (%s)\n", activityID, activity.Status)
	return nil
}
