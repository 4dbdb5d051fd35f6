package leave

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fnf/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) LeaveAllocation(ctx context.Context, employeeID string, date time.Time) (Allocation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT leave_type, details
    FROM leave_allocation_details($1, $2)
  `, employeeID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := Allocation{}
	for rows.Next() {
		var leaveType string
		var raw []byte
		if err := rows.Scan(&leaveType, &raw); err != nil {
			return nil, err
		}
		details, err := decodeDetails(raw)
		if err != nil {
			return nil, fmt.Errorf("decode allocation for %q: %w", leaveType, err)
		}
		out[leaveType] = details
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeDetails(raw []byte) (Details, error) {
	details := Details{}
	if len(raw) == 0 {
		return details, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&details); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *Store) HasLeaveTypeColumn(ctx context.Context, column string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(ctx, `
    SELECT EXISTS (
      SELECT 1 FROM information_schema.columns
      WHERE table_schema = current_schema() AND table_name = 'leave_types' AND column_name = $1
    )
  `, column).Scan(&exists)
	return exists, err
}

func (s *Store) LeaveTypeNames(ctx context.Context, flag string) ([]string, error) {
	var query string
	switch flag {
	case FlagAnnualLeave:
		query = `SELECT name FROM leave_types WHERE is_annual_leave ORDER BY name`
	case FlagAllowEncashment:
		query = `SELECT name FROM leave_types WHERE allow_encashment ORDER BY name`
	default:
		return nil, fmt.Errorf("unsupported leave type flag %q", flag)
	}

	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
