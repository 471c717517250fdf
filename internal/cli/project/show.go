package project

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/avance/internal/cli"
	"github.com/thenoetrevino/avance/internal/cli/styles"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a project with its activities",
		RunE:  runShow,
	}

	cmd.Flags().Int64("id", 0, "Project ID (required)")
	_ = cmd.MarkFlagRequired("id")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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
			fmt.Errorf("project %d not found", projectID),
			"Use 'avance project list' to see available projects")
	}

	activities, err := cliInstance.App.ActivityService.ListActivities(ctx, projectID)
	if err != nil {
		return formatter.Report(err)
	}
	progress, err := cliInstance.App.ProjectService.GetProjectProgress(ctx, projectID)
	if err != nil {
		return formatter.Report(err)
	}

	if formatter.Quiet {
		return formatter.Success(project)
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":    true,
			"project":    project,
			"progress":   progress,
			"activities": activities,
		})
	}

	fmt.Println(styles.RenderProjectCard(project, progress))
	fmt.Println(styles.SectionStyle.Render(fmt.Sprintf("Activities (%d)", len(activities))))
	if len(activities) == 0 {
		fmt.Println(styles.SubtitleStyle.Render("  none yet"))
	}
	for _, a := range activities {
		fmt.Println("  " + styles.RenderActivityLine(a))
		if desc := styles.RenderDescription(a.Description, styles.DescriptionWidth); desc != "" {
			for _, line := range strings.Split(desc, "\n") {
				fmt.Println("      " + line)
			}
		}
	}
	return nil
}
