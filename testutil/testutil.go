// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/camden-git/moodmatebackend/database"
)

// SetupTestDB opens a migrated SQLite database in a per-test temp directory.
// The connection pool is closed when the test finishes.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "moodmate_test.db")
	db, err := database.InitGormDB(path, logger.Silent)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.AutoMigrateModels(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})
	return db
}
