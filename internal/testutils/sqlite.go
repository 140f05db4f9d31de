package testutils

import (
	"testing"

	"depth-chart-backend/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLiteDB opens a migrated in-memory SQLite database private to the test.
// It needs no Docker, so service-level tests run it by default.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Initialize("file::memory:?_pragma=busy_timeout(5000)", &database.Options{
		Driver: database.DriverSQLite,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
