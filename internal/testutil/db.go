// Package testutil holds helpers shared by tests across packages
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/avance/internal/database"
	"github.com/thenoetrevino/avance/internal/models"
)

// SetupTestDB creates an in-memory database with the full schema.
// It is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})
	return db
}

// CreateTestUser inserts a user with a placeholder hash and returns its ID
func CreateTestUser(t *testing.T, db *sql.DB, username string) int64 {
	t.Helper()
	id, err := database.NewRepository(db).InsertUser(context.Background(), username, "not-a-real-hash", username+"@example.com")
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return id
}

// CreateTestProject inserts a project for userID and returns its ID
func CreateTestProject(t *testing.T, db *sql.DB, userID int64, name string) int64 {
	t.Helper()
	id, err := database.NewRepository(db).InsertProject(context.Background(), userID, name, "", "2024-01-01", "2024-12-31")
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	return id
}

// CreateTestActivity inserts an activity for projectID and returns its ID
func CreateTestActivity(t *testing.T, db *sql.DB, projectID int64, name string, status models.Status) int64 {
	t.Helper()
	id, err := database.NewRepository(db).InsertActivity(context.Background(), projectID, name, "", "2024-01-02", "2024-01-31", status)
	if err != nil {
		t.Fatalf("Failed to create test activity: %v", err)
	}
	return id
}
