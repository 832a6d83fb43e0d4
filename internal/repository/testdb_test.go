package repository

import (
	"testing"

	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/database"
)

// testDB opens an in-memory sqlite database through the same connector the
// binaries use. The pool is pinned to one connection so every query sees the
// same in-memory instance.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}
