package database

import (
	"context"
	"errors"
	"testing"
)

// connectTestDB opens an in-memory database without applying migrations
func connectTestDB(t *testing.T) *Repository {
	t.Helper()
	db, err := Connect(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db)
}

func TestCreateSchema_Idempotent(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()

	if err := CreateSchema(ctx, db); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}
	if err := CreateSchema(ctx, db); err != nil {
		t.Fatalf("Third CreateSchema failed: %v", err)
	}

	version, dirty, err := SchemaVersion(ctx, db)
	if err != nil {
		t.Fatalf("Failed to read version: %v", err)
	}
	if version != LatestSchemaVersion || dirty {
		t.Errorf("Expected version %d clean, got %d dirty=%v", LatestSchemaVersion, version, dirty)
	}
}

func TestCreateSchema_ForeignKeysEnforced(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	var enabled int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		t.Fatalf("Failed to read pragma: %v", err)
	}
	if enabled != 1 {
		t.Errorf("Expected foreign_keys = 1, got %d", enabled)
	}
}

func TestSchemaVersion_Fresh(t *testing.T) {
	t.Parallel()
	repo := connectTestDB(t)

	version, dirty, err := SchemaVersion(context.Background(), repo.UserRepo.db)
	if err != nil {
		t.Fatalf("Failed to read version: %v", err)
	}
	if version != 0 || dirty {
		t.Errorf("Expected version 0 clean, got %d dirty=%v", version, dirty)
	}
}

func TestUpgradeSchema_PreservesData(t *testing.T) {
	t.Parallel()
	repo := connectTestDB(t)
	db := repo.UserRepo.db
	ctx := context.Background()

	if err := UpgradeSchema(ctx, db, 0, 3); err != nil {
		t.Fatalf("Failed to migrate to version 3: %v", err)
	}

	alice := createTestUser(t, repo, "alice")
	projectID := createTestProject(t, repo, alice, "Thesis", "2024-01-01")

	if err := UpgradeSchema(ctx, db, 3, LatestSchemaVersion); err != nil {
		t.Fatalf("Failed to upgrade: %v", err)
	}

	project, err := repo.GetProjectByID(ctx, projectID)
	if err != nil {
		t.Fatalf("Failed to read project after upgrade: %v", err)
	}
	if project == nil || project.Name != "Thesis" {
		t.Errorf("Project lost during upgrade: %+v", project)
	}

	var indexes int
	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name LIKE 'idx_%'`).Scan(&indexes)
	if err != nil {
		t.Fatalf("Failed to count indexes: %v", err)
	}
	if indexes != 3 {
		t.Errorf("Expected 3 lookup indexes, got %d", indexes)
	}
}

func TestUpgradeSchema_Errors(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()

	err := UpgradeSchema(ctx, db, 1, LatestSchemaVersion)
	if !errors.Is(err, ErrSchemaVersionMismatch) {
		t.Errorf("Expected version mismatch, got %v", err)
	}

	err = UpgradeSchema(ctx, db, LatestSchemaVersion, 1)
	if !errors.Is(err, ErrSchemaDowngrade) {
		t.Errorf("Expected downgrade error, got %v", err)
	}

	err = UpgradeSchema(ctx, db, LatestSchemaVersion, LatestSchemaVersion+1)
	if !errors.Is(err, ErrSchemaVersionMismatch) {
		t.Errorf("Expected mismatch for unknown target, got %v", err)
	}

	if err := UpgradeSchema(ctx, db, LatestSchemaVersion, LatestSchemaVersion); err != nil {
		t.Errorf("No-op upgrade should succeed, got %v", err)
	}
}

func TestResetSchema_DropsData(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, repo, "alice")
	createTestProject(t, repo, alice, "Thesis", "2024-01-01")

	if err := ResetSchema(ctx, db); err != nil {
		t.Fatalf("Failed to reset schema: %v", err)
	}

	if n := countRows(t, db, "users"); n != 0 {
		t.Errorf("Expected no users after reset, got %d", n)
	}
	if n := countRows(t, db, "projects"); n != 0 {
		t.Errorf("Expected no projects after reset, got %d", n)
	}

	version, _, err := SchemaVersion(ctx, db)
	if err != nil {
		t.Fatalf("Failed to read version: %v", err)
	}
	if version != LatestSchemaVersion {
		t.Errorf("Expected version %d after reset, got %d", LatestSchemaVersion, version)
	}

	// The schema is usable again
	createTestUser(t, repo, "alice")
}
