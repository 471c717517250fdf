package activity

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

func setupTestService(t *testing.T) (Service, *database.Repository, int64) {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(ctx, database.MemoryPath)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	repo := database.NewRepository(db)
	userID, err := repo.InsertUser(ctx, "alice", "hash", "alice@example.com")
	require.NoError(t, err)
	projectID, err := repo.InsertProject(ctx, userID, "Thesis", "", "2024-01-01", "2024-06-30")
	require.NoError(t, err)

	return NewService(repo), repo, projectID
}

func draft(projectID int64) models.Activity {
	return models.Activity{
		ProjectID:   projectID,
		Name:        "Draft",
		Description: "first pass",
		StartDate:   "2024-01-02",
		EndDate:     "2024-02-01",
		Status:      models.StatusPlanned,
	}
}

// ============================================================================
// CREATE / LIST
// ============================================================================

func TestCreateActivity_RoundTrip(t *testing.T) {
	t.Parallel()
	svc, _, projectID := setupTestService(t)
	ctx := context.Background()

	id, err := svc.CreateActivity(ctx, draft(projectID))
	require.NoError(t, err)
	require.Positive(t, id)

	activities, err := svc.ListActivities(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, activities, 1)

	want := draft(projectID)
	want.ID = id
	assert.Equal(t, &want, activities[0])
}

func TestCreateActivity_StoresFieldsAsGiven(t *testing.T) {
	t.Parallel()
	svc, _, projectID := setupTestService(t)
	ctx := context.Background()

	padded := draft(projectID)
	padded.Name = " padded "
	padded.StartDate = " 2024-01-02"
	padded.EndDate = "2024-02-01 "

	id, err := svc.CreateActivity(ctx, padded)
	require.NoError(t, err)

	got, err := svc.GetActivity(ctx, id)
	require.NoError(t, err)
	padded.ID = id
	assert.Equal(t, &padded, got)

	padded.Name = "  renamed"
	_, err = svc.UpdateActivity(ctx, padded)
	require.NoError(t, err)

	got, err = svc.GetActivity(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "  renamed", got.Name)
}

func TestCreateActivity_InvalidStatus(t *testing.T) {
	t.Parallel()
	svc, _, projectID := setupTestService(t)

	a := draft(projectID)
	a.Status = "Blocked"
	id, err := svc.CreateActivity(context.Background(), a)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, database.FailedInsertID, id)
}

func TestCreateActivity_UnknownProject(t *testing.T) {
	t.Parallel()
	svc, _, projectID := setupTestService(t)

	id, err := svc.CreateActivity(context.Background(), draft(projectID+100))
	assert.Equal(t, database.FailedInsertID, id)
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.ErrorIs(t, err, database.ErrForeignKeyViolation)
}

func TestCreateActivity_Validation(t *testing.T) {
	t.Parallel()
	svc, _, projectID := setupTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(a *models.Activity)
		wantErr error
	}{
		{"no project", func(a *models.Activity) { a.ProjectID = 0 }, ErrInvalidProjectID},
		{"blank name", func(a *models.Activity) { a.Name = "" }, ErrEmptyName},
		{"no start date", func(a *models.Activity) { a.StartDate = " " }, ErrMissingStartDate},
		{"no end date", func(a *models.Activity) { a.EndDate = "" }, ErrMissingEndDate},
		{"empty status", func(a *models.Activity) { a.Status = "" }, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := draft(projectID)
			tt.mutate(&a)
			id, err := svc.CreateActivity(ctx, a)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, database.FailedInsertID, id)
		})
	}
}

func TestListActivities_EarliestStartFirst(t *testing.T) {
	t.Parallel()
	svc, _, projectID := setupTestService(t)
	ctx := context.Background()

	for _, start := range []string{"2024-03-01", "2024-01-15", "2024-02-01"} {
		a := draft(projectID)
		a.StartDate = start
		_, err := svc.CreateActivity(ctx, a)
		require.NoError(t, err)
	}

	activities, err := svc.ListActivities(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.Equal(t, "2024-01-15", activities[0].StartDate)
	assert.Equal(t, "2024-02-01", activities[1].StartDate)
	assert.Equal(t, "2024-03-01", activities[2].StartDate)
}

// ============================================================================
// UPDATE / DELETE
// ============================================================================

func TestUpdateActivity_ChangesStatus(t *testing.T) {
	t.Parallel()
	svc, repo, projectID := setupTestService(t)
	ctx := context.Background()

	id, err := svc.CreateActivity(ctx, draft(projectID))
	require.NoError(t, err)

	a := draft(projectID)
	a.ID = id
	a.Status = models.StatusDone
	affected, err := svc.UpdateActivity(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := svc.GetActivity(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.StatusDone, got.Status)

	done := models.StatusDone
	count, err := repo.CountActivities(ctx, projectID, &done)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	a.Status = "Cancelled"
	_, err = svc.UpdateActivity(ctx, a)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	a.ID = id + 10
	a.Status = models.StatusPlanned
	affected, err = svc.UpdateActivity(ctx, a)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestDeleteActivity(t *testing.T) {
	t.Parallel()
	svc, _, projectID := setupTestService(t)
	ctx := context.Background()

	id, err := svc.CreateActivity(ctx, draft(projectID))
	require.NoError(t, err)

	affected, err := svc.DeleteActivity(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	activities, err := svc.ListActivities(ctx, projectID)
	require.NoError(t, err)
	assert.Empty(t, activities)

	_, err = svc.DeleteActivity(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidActivityID)
}
