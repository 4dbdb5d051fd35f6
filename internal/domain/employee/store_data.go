package employee

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

func (s *Store) GetEmployee(ctx context.Context, id string) (Employee, error) {
	var emp Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, COALESCE(status, ''), date_of_joining, relieving_date
    FROM employees
    WHERE id = $1
  `, id).Scan(&emp.ID, &emp.Status, &emp.DateOfJoining, &emp.RelievingDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	return emp, nil
}
