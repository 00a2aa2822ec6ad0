package testutil

import (
	"path/filepath"
	"testing"

	"localnews/database"
	"localnews/internal/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewTestDB opens a migrated SQLite database in a temporary directory that is
// closed when the test ends.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.Database{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "news.db") + "?_busy_timeout=5000",
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.MigrateDatabase(db, zap.NewNop()))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
