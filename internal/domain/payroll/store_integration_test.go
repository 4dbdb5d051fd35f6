package payroll

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLastSubmittedSlipIntegration(t *testing.T) {
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
    CREATE TEMP TABLE salary_slips (
      id text PRIMARY KEY,
      employee_id text NOT NULL,
      docstatus int NOT NULL,
      end_date date,
      posting_date date
    ) ON COMMIT DROP
  `)
	require.NoError(t, err)
	_, err = tx.Exec(ctx, `
    INSERT INTO salary_slips VALUES
      ('SLIP-1', 'EMP-1', 1, '2024-04-30', '2024-05-01'),
      ('SLIP-2', 'EMP-1', 1, '2024-05-31', '2024-06-01'),
      ('SLIP-3', 'EMP-1', 1, '2024-05-31', '2024-06-03'),
      ('SLIP-4', 'EMP-1', 0, '2024-06-30', NULL),
      ('SLIP-5', 'EMP-1', 2, '2024-07-31', NULL)
  `)
	require.NoError(t, err)

	store := NewStore(tx)

	slip, err := store.LastSubmittedSlip(ctx, "EMP-1")
	require.NoError(t, err)
	assert.Equal(t, "SLIP-3", slip.ID, "latest end date, then latest posting date, submitted only")

	_, err = store.LastSubmittedSlip(ctx, "EMP-2")
	assert.ErrorIs(t, err, ErrSlipNotFound)
}
