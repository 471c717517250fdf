package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/avance/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB opens a private in-memory database with the full schema
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile opens a file-backed database for persistence tests
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "avance-test.db")
	db, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, dbPath
}

// closeAndReopenDB simulates an app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	return newDB
}

// ============================================================================
// SEED HELPERS
// ============================================================================

func createTestUser(t *testing.T, repo *Repository, username string) int64 {
	t.Helper()
	id, err := repo.InsertUser(context.Background(), username, "hash-"+username, username+"@example.com")
	if err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return id
}

func createTestProject(t *testing.T, repo *Repository, userID int64, name, startDate string) int64 {
	t.Helper()
	id, err := repo.InsertProject(context.Background(), userID, name, "", startDate, "2030-01-01")
	if err != nil {
		t.Fatalf("Failed to create project %s: %v", name, err)
	}
	return id
}

func createTestActivity(t *testing.T, repo *Repository, projectID int64, name, startDate string, status models.Status) int64 {
	t.Helper()
	id, err := repo.InsertActivity(context.Background(), projectID, name, "", startDate, "2030-01-01", status)
	if err != nil {
		t.Fatalf("Failed to create activity %s: %v", name, err)
	}
	return id
}

// countRows counts rows in a table directly, bypassing the repositories
func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return count
}
