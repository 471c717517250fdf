package activity

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/avance/internal/cli"
)

// DeleteCmd returns the activity delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an activity",
		Long:  "Delete an activity by ID (requires confirmation unless --force or --quiet).",
		RunE:  runDelete,
	}

	cmd.Flags().Int64("id", 0, "Activity ID (required)")
	_ = cmd.MarkFlagRequired("id")

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	activityID, _ := cmd.Flags().GetInt64("id")
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

	activity, err := cliInstance.App.ActivityService.GetActivity(ctx, activityID)
	if err != nil {
		return formatter.Report(err)
	}
	if activity == nil {
		return formatter.Fail(cli.ExitNotFound, "ACTIVITY_NOT_FOUND",
			fmt.Errorf("activity %d not found", activityID), "")
	}

	if !force && !formatter.Quiet {
		prompt := fmt.Sprintf("Delete activity #%d: '%s'?", activityID, activity.Name)
		if !cli.Confirm(cmd, prompt) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if _, err := cliInstance.App.ActivityService.DeleteActivity(ctx, activityID); err != nil {
		return formatter.Report(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":     true,
			"activity_id": activityID,
		})
	}

	fmt.Printf("✓ Activity %d deleted successfully\n", activityID)
	return nil
}
