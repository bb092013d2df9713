// Package dbtest provides SQLite-backed databases for package tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"trivia-api/internal/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Open opens a migrated SQLite database in a per-test temporary directory.
// When seed is true the default trivia bank is loaded.
func Open(t testing.TB, seed bool) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trivia_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: database.NewLogger(false)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if seed {
		if err := database.Seed(db); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return db
}
