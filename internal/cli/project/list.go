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

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the current user's projects",
		Long:  "List the current user's projects, newest start date first, with their progress.",
		RunE:  runList,
	}

	cli.AddUserFlag(cmd)
	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

// projectWithProgress is the JSON shape of a listed project
type projectWithProgress struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Progress    float64 `json:"progress"`
}

func runList(cmd *cobra.Command, args []string) error {
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

	projects, err := cliInstance.App.ProjectService.ListProjects(ctx, userID)
	if err != nil {
		return formatter.Report(err)
	}

	if formatter.Quiet {
		for _, p := range projects {
			fmt.Printf("%d\n", p.ID)
		}
		return nil
	}

	listed := make([]projectWithProgress, 0, len(projects))
	for _, p := range projects {
		progress, err := cliInstance.App.ProjectService.GetProjectProgress(ctx, p.ID)
		if err != nil {
			return formatter.Report(err)
		}
		listed = append(listed, projectWithProgress{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
			Progress:    progress,
		})
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":  true,
			"projects": listed,
		})
	}

	if len(listed) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("Projects (%d)", len(listed))))
	for _, p := range listed {
		fmt.Printf("  #%-4d %-30s %s → %s  %s\n",
			p.ID, p.Name, p.StartDate, p.EndDate, styles.RenderProgress(p.Progress))
	}
	return nil
}
