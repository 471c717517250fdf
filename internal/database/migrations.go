package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationsTable records the applied schema version
const migrationsTable = "schema_migrations"

// LatestSchemaVersion is the version of the newest embedded migration
const LatestSchemaVersion uint = 4

var (
	// ErrSchemaVersionMismatch indicates the database is not at the version the caller expected
	ErrSchemaVersionMismatch = errors.New("schema version mismatch")

	// ErrSchemaDowngrade indicates a request to move the schema to an older version
	ErrSchemaDowngrade = errors.New("schema downgrades are not supported")

	// ErrDirtySchema indicates a previous migration failed half-way
	ErrDirtySchema = errors.New("schema is dirty")
)

// migrator wraps a migrate instance bound to an existing *sql.DB.
// It must be released with close, which leaves the database open.
type migrator struct {
	m   *migrate.Migrate
	src source.Driver
}

func newMigrator(db *sql.DB) (*migrator, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	m.Log = migrateLogger{}

	return &migrator{m: m, src: src}, nil
}

// close releases the migration source only; migrate.Close would also close
// the caller's *sql.DB through the driver.
func (mg *migrator) close() {
	if err := mg.src.Close(); err != nil {
		slog.Error("failed to close migration source", "error", err)
	}
}

func (mg *migrator) version() (uint, bool, error) {
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, dirty, nil
}

// CreateSchema applies every pending migration. It is idempotent and runs on
// every startup.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mg, err := newMigrator(db)
	if err != nil {
		return err
	}
	defer mg.close()

	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// UpgradeSchema moves the schema from oldVersion to newVersion by applying the
// versioned migrations in between. Existing rows are preserved.
func UpgradeSchema(ctx context.Context, db *sql.DB, oldVersion, newVersion uint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if newVersion < oldVersion {
		return fmt.Errorf("%w: %d -> %d", ErrSchemaDowngrade, oldVersion, newVersion)
	}
	if newVersion > LatestSchemaVersion {
		return fmt.Errorf("%w: version %d does not exist (latest is %d)", ErrSchemaVersionMismatch, newVersion, LatestSchemaVersion)
	}

	mg, err := newMigrator(db)
	if err != nil {
		return err
	}
	defer mg.close()

	current, dirty, err := mg.version()
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("%w at version %d", ErrDirtySchema, current)
	}
	if current != oldVersion {
		return fmt.Errorf("%w: database is at %d, expected %d", ErrSchemaVersionMismatch, current, oldVersion)
	}
	if newVersion == oldVersion {
		return nil
	}

	slog.Info("upgrading schema", "from", oldVersion, "to", newVersion)
	if err := mg.m.Migrate(newVersion); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate schema to %d: %w", newVersion, err)
	}
	return nil
}

// SchemaVersion reports the applied schema version; 0 means no migration has run.
func SchemaVersion(ctx context.Context, db *sql.DB) (uint, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	mg, err := newMigrator(db)
	if err != nil {
		return 0, false, err
	}
	defer mg.close()

	return mg.version()
}

// ResetSchema drops every table and recreates the schema. All data is lost.
// Child tables are dropped before their parents so foreign keys never dangle.
func ResetSchema(ctx context.Context, db *sql.DB) error {
	err := withTx(ctx, db, func(tx *sql.Tx) error {
		for _, table := range []string{"activities", "projects", "users", migrationsTable} {
			if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
				return fmt.Errorf("failed to drop %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Warn("schema reset, all data removed")
	return CreateSchema(ctx, db)
}

// migrateLogger forwards golang-migrate output to slog
type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...any) {
	slog.Debug(fmt.Sprintf(format, v...))
}

func (migrateLogger) Verbose() bool { return false }
