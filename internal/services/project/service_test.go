package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/avance/internal/database"
	"github.com/thenoetrevino/avance/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupTestService(t *testing.T) (Service, *database.Repository) {
	t.Helper()
	db, err := database.Open(context.Background(), database.MemoryPath)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	repo := database.NewRepository(db)
	return NewService(repo), repo
}

func createTestUser(t *testing.T, repo *database.Repository, username string) int64 {
	t.Helper()
	id, err := repo.InsertUser(context.Background(), username, "hash", username+"@example.com")
	require.NoError(t, err)
	return id
}

func addActivity(t *testing.T, repo *database.Repository, projectID int64, name string, status models.Status) int64 {
	t.Helper()
	id, err := repo.InsertActivity(context.Background(), projectID, name, "", "2024-01-02", "2024-01-03", status)
	require.NoError(t, err)
	return id
}

func thesis(userID int64) models.Project {
	return models.Project{
		UserID:      userID,
		Name:        "Thesis",
		Description: "Masters thesis",
		StartDate:   "2024-01-01",
		EndDate:     "2024-06-30",
	}
}

// ============================================================================
// CREATE / GET / LIST
// ============================================================================

func TestCreateProject_RoundTrip(t *testing.T) {
	t.Parallel()
	svc, repo := setupTestService(t)
	ctx := context.Background()

	userID := createTestUser(t, repo, "alice")
	id, err := svc.CreateProject(ctx, thesis(userID))
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := svc.GetProject(ctx, id)
	require.NoError(t, err)
	want := thesis(userID)
	want.ID = id
	assert.Equal(t, &want, got)
}

func TestCreateProject_StoresFieldsAsGiven(t *testing.T) {
	t.Parallel()
	svc, repo := setupTestService(t)
	ctx := context.Background()

	userID := createTestUser(t, repo, "alice")
	padded := thesis(userID)
	padded.Name = " Thesis "
	padded.StartDate = " 2024-01-01"

	id, err := svc.CreateProject(ctx, padded)
	require.NoError(t, err)

	projects, err := svc.ListProjects(ctx, userID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	padded.ID = id
	assert.Equal(t, &padded, projects[0])
}

func TestCreateProject_UnknownUser(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)

	id, err := svc.CreateProject(context.Background(), thesis(999))
	assert.Equal(t, database.FailedInsertID, id)
	assert.ErrorIs(t, err, ErrOwnerNotFound)
	assert.ErrorIs(t, err, database.ErrForeignKeyViolation)
}

func TestCreateProject_Validation(t *testing.T) {
	t.Parallel()
	svc, repo := setupTestService(t)
	ctx := context.Background()
	userID := createTestUser(t, repo, "alice")

	tests := []struct {
		name    string
		mutate  func(p *models.Project)
		wantErr error
	}{
		{"no user", func(p *models.Project) { p.UserID = 0 }, ErrInvalidUserID},
		{"blank name", func(p *models.Project) { p.Name = "   " }, ErrEmptyName},
		{"long name", func(p *models.Project) { p.Name = string(make([]byte, 101)) }, ErrNameTooLong},
		{"no start date", func(p *models.Project) { p.StartDate = "" }, ErrMissingStartDate},
		{"no end date", func(p *models.Project) { p.EndDate = "" }, ErrMissingEndDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := thesis(userID)
			tt.mutate(&p)
			id, err := svc.CreateProject(ctx, p)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, database.FailedInsertID, id)
		})
	}
}

func TestGetProject_MissingIsQuiet(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)

	got, err := svc.GetProject(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestListProjects_NewestStartFirst(t *testing.T) {
	t.Parallel()
	svc, repo := setupTestService(t)
	ctx := context.Background()

	alice := createTestUser(t, repo, "alice")
	bob := createTestUser(t, repo, "bob")

	for _, start := range []string{"2024-03-01", "2024-01-01", "2024-02-01"} {
		p := thesis(alice)
		p.Name = "p-" + start
		p.StartDate = start
		_, err := svc.CreateProject(ctx, p)
		require.NoError(t, err)
	}
	_, err := svc.CreateProject(ctx, thesis(bob))
	require.NoError(t, err)

	projects, err := svc.ListProjects(ctx, alice)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "2024-03-01", projects[0].StartDate)
	assert.Equal(t, "2024-02-01", projects[1].StartDate)
	assert.Equal(t, "2024-01-01", projects[2].StartDate)
	for _, p := range projects {
		assert.Equal(t, alice, p.UserID)
	}
}

// ============================================================================
// UPDATE / DELETE
// ============================================================================

func TestUpdateProject(t *testing.T) {
	t.Parallel()
	svc, repo := setupTestService(t)
	ctx := context.Background()

	userID := createTestUser(t, repo, "alice")
	id, err := svc.CreateProject(ctx, thesis(userID))
	require.NoError(t, err)

	updated := models.Project{ID: id, Name: "Dissertation", StartDate: "2024-02-01", EndDate: "2024-12-31"}
	affected, err := svc.UpdateProject(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := svc.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Dissertation", got.Name)
	assert.Empty(t, got.Description)
	assert.Equal(t, userID, got.UserID, "owner must not change")

	affected, err = svc.UpdateProject(ctx, models.Project{ID: id + 50, Name: "x", StartDate: "a", EndDate: "b"})
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestDeleteProject_CascadesActivities(t *testing.T) {
	t.Parallel()
	svc, repo := setupTestService(t)
	ctx := context.Background()

	userID := createTestUser(t, repo, "alice")
	id, err := svc.CreateProject(ctx, thesis(userID))
	require.NoError(t, err)
	addActivity(t, repo, id, "Draft", models.StatusDone)

	affected, err := svc.DeleteProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	count, err := repo.CountActivities(ctx, id, nil)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = svc.DeleteProject(ctx, -1)
	assert.ErrorIs(t, err, ErrInvalidProjectID)
}

// ============================================================================
// PROGRESS
// ============================================================================

func TestGetProjectProgress(t *testing.T) {
	t.Parallel()
	svc, repo := setupTestService(t)
	ctx := context.Background()

	userID := createTestUser(t, repo, "alice")
	id, err := svc.CreateProject(ctx, thesis(userID))
	require.NoError(t, err)

	progress, err := svc.GetProjectProgress(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0.0, progress, "no activities reports exactly zero")

	addActivity(t, repo, id, "Draft", models.StatusDone)
	inProgress := addActivity(t, repo, id, "Review", models.StatusInProgress)

	progress, err = svc.GetProjectProgress(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0.5, progress)

	_, err = repo.UpdateActivity(ctx, inProgress, "Review", "", "2024-01-02", "2024-01-03", models.StatusDone)
	require.NoError(t, err)

	progress, err = svc.GetProjectProgress(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1.0, progress)
}

func TestGetProjectProgress_Bounds(t *testing.T) {
	t.Parallel()
	svc, repo := setupTestService(t)
	ctx := context.Background()

	userID := createTestUser(t, repo, "alice")
	id, err := svc.CreateProject(ctx, thesis(userID))
	require.NoError(t, err)

	statuses := []models.Status{
		models.StatusPlanned, models.StatusDone, models.StatusInProgress,
		models.StatusDone, models.StatusPlanned,
	}
	for i, s := range statuses {
		addActivity(t, repo, id, string(rune('a'+i)), s)

		progress, err := svc.GetProjectProgress(ctx, id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, progress, 0.0)
		assert.LessOrEqual(t, progress, 1.0)
	}

	progress, err := svc.GetProjectProgress(ctx, id)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, progress, 1e-9)
}

func TestGetProjectProgress_IndependentOfCreationOrder(t *testing.T) {
	t.Parallel()
	svc, repo := setupTestService(t)
	ctx := context.Background()
	userID := createTestUser(t, repo, "alice")

	statuses := []models.Status{
		models.StatusDone, models.StatusPlanned, models.StatusInProgress,
		models.StatusDone, models.StatusPlanned, models.StatusDone,
	}
	reversed := make([]models.Status, len(statuses))
	for i, s := range statuses {
		reversed[len(statuses)-1-i] = s
	}

	var results []float64
	for _, order := range [][]models.Status{statuses, reversed} {
		id, err := svc.CreateProject(ctx, thesis(userID))
		require.NoError(t, err)
		for i, s := range order {
			addActivity(t, repo, id, string(rune('a'+i)), s)
		}

		progress, err := svc.GetProjectProgress(ctx, id)
		require.NoError(t, err)
		results = append(results, progress)
	}

	assert.Equal(t, 0.5, results[0])
	assert.Equal(t, results[0], results[1])
}

func TestGetProjectProgress_UnknownProject(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)

	progress, err := svc.GetProjectProgress(context.Background(), 777)
	require.NoError(t, err)
	assert.Equal(t, 0.0, progress)
}
