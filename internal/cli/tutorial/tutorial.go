// Package tutorial prints the built-in avance walkthrough
package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Print a walkthrough of the avance workflow",
		Long: `Print a markdown walkthrough covering registration, login,
projects, activities and progress tracking.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), tutorialContent)
		},
	}
	return cmd
}
