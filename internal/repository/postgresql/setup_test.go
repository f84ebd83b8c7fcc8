package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/konveksi/payroll-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to TEST_DATABASE_URL, migrates it and empties every
// table. Tests are skipped when the variable is unset.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	migrator, err := database.NewMigrator(dsn)
	require.NoError(t, err)
	require.NoError(t, migrator.Up())
	require.NoError(t, migrator.Close())

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, truncateAllTables(context.Background(), db))
	return db
}

func truncateAllTables(ctx context.Context, db *database.DB) error {
	tables := []string{
		"payroll_entries",
		"payroll_periods",
		"deductions",
		"bonuses",
		"allowances",
		"attendances",
		"employees",
	}

	for _, table := range tables {
		if _, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}
	return nil
}
