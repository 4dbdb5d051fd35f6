package employee

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetEmployeeIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
    CREATE TEMP TABLE employees (
      id text PRIMARY KEY,
      status text,
      date_of_joining date,
      relieving_date date
    ) ON COMMIT DROP
  `)
	require.NoError(t, err)
	_, err = tx.Exec(ctx, `INSERT INTO employees VALUES ('EMP-1', 'Left', '2023-01-01', '2024-06-15'), ('EMP-2', NULL, NULL, NULL)`)
	require.NoError(t, err)

	store := NewStore(tx)

	emp, err := store.GetEmployee(ctx, "EMP-1")
	require.NoError(t, err)
	assert.Equal(t, "Left", emp.Status)
	require.NotNil(t, emp.RelievingDate)
	assert.True(t, emp.RelievingDate.Equal(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)))

	emp, err = store.GetEmployee(ctx, "EMP-2")
	require.NoError(t, err)
	assert.Empty(t, emp.Status)
	assert.Nil(t, emp.DateOfJoining)

	_, err = store.GetEmployee(ctx, "EMP-404")
	assert.ErrorIs(t, err, ErrNotFound)
}
