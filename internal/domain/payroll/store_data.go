package payroll

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"fnf/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) LastSubmittedSlip(ctx context.Context, employeeID string) (SalarySlip, error) {
	var slip SalarySlip
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, end_date, COALESCE(posting_date, end_date)
    FROM salary_slips
    WHERE employee_id = $1 AND docstatus = 1 AND end_date IS NOT NULL
    ORDER BY end_date DESC, posting_date DESC NULLS LAST
    LIMIT 1
  `, employeeID).Scan(&slip.ID, &slip.EmployeeID, &slip.EndDate, &slip.PostingDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return SalarySlip{}, ErrSlipNotFound
	}
	if err != nil {
		return SalarySlip{}, err
	}
	return slip, nil
}
