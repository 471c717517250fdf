// Package db holds the schema maintenance commands
//
// e.g., avance db ...
package db

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/avance/internal/app"
	"github.com/thenoetrevino/avance/internal/cli"
	"github.com/thenoetrevino/avance/internal/database"
)

// DBCmd returns the db parent command
func DBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Inspect and maintain the database schema",
	}

	cmd.AddCommand(VersionCmd())
	cmd.AddCommand(MigrateCmd())
	cmd.AddCommand(ResetCmd())

	return cmd
}

// VersionCmd returns the db version subcommand
func VersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the applied schema version",
		RunE:  runVersion,
	}

	cli.AddOutputFlags(cmd, "Print only the version number")

	return cmd
}

func runVersion(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx, app.WithoutMigrations())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	version, dirty, err := database.SchemaVersion(ctx, cliInstance.App.DB())
	if err != nil {
		return formatter.Report(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", version)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"version": version,
			"latest":  database.LatestSchemaVersion,
			"dirty":   dirty,
		})
	}

	fmt.Printf("Schema version %d (latest %d)\n", version, database.LatestSchemaVersion)
	if dirty {
		fmt.Println("⚠ schema is dirty: a migration failed part-way")
	}
	return nil
}

// MigrateCmd returns the db migrate subcommand
func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Upgrade the schema between two versions, keeping data",
		Long: `Apply the versioned migrations between --from and --to. The database must
currently be at --from. Existing rows are preserved.

Other commands apply pending migrations on startup; the db commands do not,
so an older database can be inspected and upgraded step by step.

Examples:
  avance db version
  avance db migrate --from=3 --to=4
`,
		RunE: runMigrate,
	}

	cmd.Flags().Uint("from", 0, "Version the database is at now (required)")
	cmd.Flags().Uint("to", database.LatestSchemaVersion, "Version to migrate to")
	_ = cmd.MarkFlagRequired("from")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	from, _ := cmd.Flags().GetUint("from")
	to, _ := cmd.Flags().GetUint("to")
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx, app.WithoutMigrations())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	if err := database.UpgradeSchema(ctx, cliInstance.App.DB(), from, to); err != nil {
		return formatter.Report(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"from":    from,
			"to":      to,
		})
	}

	fmt.Printf("✓ Schema migrated from %d to %d\n", from, to)
	return nil
}

// ResetCmd returns the db reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop every table and recreate an empty schema",
		Long:  "Drop all users, projects and activities and recreate the schema. Requires --force.",
		RunE:  runReset,
	}

	cmd.Flags().Bool("force", false, "Confirm that all data should be deleted (required)")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	force, _ := cmd.Flags().GetBool("force")
	formatter := cli.NewFormatter(cmd)

	if !force {
		return formatter.Fail(cli.ExitUsage, "USAGE_ERROR",
			fmt.Errorf("refusing to delete all data without --force"), "")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx, app.WithoutMigrations())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	if err := database.ResetSchema(ctx, cliInstance.App.DB()); err != nil {
		return formatter.Report(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"version": database.LatestSchemaVersion,
		})
	}

	fmt.Println("✓ Database reset; all data removed")
	return nil
}
