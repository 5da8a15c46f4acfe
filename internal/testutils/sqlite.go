package testutils

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-campaigns/internal/storage/sqlite"
)

// CreateTestDB opens a migrated SQLite database in a temp dir.
// It is closed when the test finishes.
func CreateTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "campaigns.db"))
	require.NoError(t, err, "failed to open test database")

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}
