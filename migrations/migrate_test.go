package migrations_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/piresc/tripindex/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames_Ordered(t *testing.T) {
	names, err := migrations.Names()
	require.NoError(t, err)

	require.NotEmpty(t, names)
	assert.Equal(t, "0001_trip_tables.sql", names[0])
	assert.IsNonDecreasing(t, names)
}

// Runs against a live database when TEST_DATABASE_URL is set.
func TestApply_RecordsMigrations(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.Connect(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, `DROP TABLE IF EXISTS schema_migrations`)
	require.NoError(t, err)

	require.NoError(t, migrations.Apply(ctx, pool))

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&count))

	names, err := migrations.Names()
	require.NoError(t, err)
	assert.Equal(t, len(names), count)

	require.NoError(t, migrations.Apply(ctx, pool))

	var again int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&again))
	assert.Equal(t, count, again)
}
