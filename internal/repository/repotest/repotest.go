// Package repotest opens throwaway migrated databases for tests.
package repotest

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/ipapMaster/newsSimpleProject/internal/repository"
)

// NewDB returns a fresh in-memory SQLite database with the blog schema applied.
// It is closed when the test finishes.
func NewDB(t testing.TB) *sql.DB {
	t.Helper()

	ctx := context.Background()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := repository.NewDB(ctx, repository.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := repository.Migrate(ctx, db, repository.DriverSQLite); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
