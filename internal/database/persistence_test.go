package database

import (
	"context"
	"testing"

	"github.com/thenoetrevino/avance/internal/models"
)

// TestDataSurvivesRestart verifies users, projects and activities persist across close/reopen
func TestDataSurvivesRestart(t *testing.T) {
	t.Parallel()
	db, dbPath := setupTestDBFile(t)
	repo := NewRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, repo, "alice")
	projectID := createTestProject(t, repo, alice, "Thesis", "2024-01-01")
	createTestActivity(t, repo, projectID, "Outline", "2024-01-02", models.StatusDone)

	db = closeAndReopenDB(t, db, dbPath)
	defer func() { _ = db.Close() }()
	repo = NewRepository(db)

	projects, err := repo.GetProjectsByUser(ctx, alice)
	if err != nil {
		t.Fatalf("Failed to list projects after restart: %v", err)
	}
	if len(projects) != 1 || projects[0].Name != "Thesis" {
		t.Fatalf("Expected Thesis after restart, got %+v", projects)
	}

	activities, err := repo.GetActivitiesByProject(ctx, projectID)
	if err != nil {
		t.Fatalf("Failed to list activities after restart: %v", err)
	}
	if len(activities) != 1 || activities[0].Status != models.StatusDone {
		t.Errorf("Expected one Done activity after restart, got %+v", activities)
	}
}

// TestIDsNotReused verifies AUTOINCREMENT ids are never handed out twice
func TestIDsNotReused(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	alice := createTestUser(t, repo, "alice")

	first := createTestProject(t, repo, alice, "First", "2024-01-01")
	if _, err := repo.DeleteProject(ctx, first); err != nil {
		t.Fatalf("Failed to delete project: %v", err)
	}
	second := createTestProject(t, repo, alice, "Second", "2024-01-01")

	if second <= first {
		t.Errorf("Expected new id greater than %d, got %d", first, second)
	}
}
