package database

import (
	"context"
	"testing"

	"github.com/nfrund/remora/internal/testutils"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go"
)

// setupTestDB creates a test database connection and returns a cleanup
// function. This is a shared helper for all tests in the database package;
// tests calling it are skipped when no test database is configured.
func setupTestDB(t *testing.T) (*surrealdb.DB, func()) {
	t.Helper()

	cfg := testutils.ConfigForTests(t)

	ctx := context.Background()
	db, err := NewDB(ctx, cfg)
	require.NoError(t, err, "failed to connect to test database")

	return db, func() {
		cleanupCtx := context.Background()
		for _, table := range []string{"realm", "stream", "message", "customer", "customer_plan"} {
			_, _ = surrealdb.Query[any](cleanupCtx, db, "DELETE "+table, nil)
		}
		db.Close(cleanupCtx)
	}
}
