package cli

import (
	"database/sql"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/thenoetrevino/avance/internal/app"
	"github.com/thenoetrevino/avance/internal/models"
	"github.com/thenoetrevino/avance/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db, app.WithBcryptCost(bcrypt.MinCost))
}

// CreateTestUser wraps testutil.CreateTestUser for CLI tests
func CreateTestUser(t *testing.T, db *sql.DB, username string) int64 {
	t.Helper()
	return testutil.CreateTestUser(t, db, username)
}

// CreateTestProject wraps testutil.CreateTestProject for CLI tests
func CreateTestProject(t *testing.T, db *sql.DB, userID int64, name string) int64 {
	t.Helper()
	return testutil.CreateTestProject(t, db, userID, name)
}

// CreateTestActivity wraps testutil.CreateTestActivity for CLI tests
func CreateTestActivity(t *testing.T, db *sql.DB, projectID int64, name string, status models.Status) int64 {
	t.Helper()
	return testutil.CreateTestActivity(t, db, projectID, name, status)
}
