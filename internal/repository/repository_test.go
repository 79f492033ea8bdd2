package repository

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ebarbosa/loja-virtual/internal/database"
)

// newTestDB opens an isolated database file for one test through the same
// environment override the server honors.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	t.Setenv(database.EnvDatabasePath, filepath.Join(t.TempDir(), "test.db"))

	db, err := database.Open()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}
