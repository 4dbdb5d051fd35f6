package salary

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"fnf/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) ActiveAssignment(ctx context.Context, employeeID string, asOf time.Time) (Assignment, error) {
	var a Assignment
	var numericJSON []byte
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, from_date, docstatus = 1,
           COALESCE(salary_structure, ''),
           COALESCE(base, 0)::text, COALESCE(variable, 0)::text, COALESCE(custom_total, 0)::text,
           numeric_fields
    FROM salary_structure_assignments
    WHERE employee_id = $1 AND docstatus = 1 AND from_date <= $2
    ORDER BY from_date DESC
    LIMIT 1
  `, employeeID, asOf).Scan(
		&a.ID, &a.EmployeeID, &a.FromDate, &a.Submitted, &a.SalaryStructure,
		&decimalText{&a.Base}, &decimalText{&a.Variable}, &decimalText{&a.CustomTotal},
		&numericJSON,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Assignment{}, ErrNoAssignment
	}
	if err != nil {
		return Assignment{}, err
	}
	a.NumericFields = parseNumericFields(numericJSON)
	return a, nil
}

func (s *Store) Structure(ctx context.Context, name string) (Structure, error) {
	var structure Structure
	err := s.DB.QueryRow(ctx, `
    SELECT name FROM salary_structures WHERE name = $1
  `, name).Scan(&structure.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return Structure{}, ErrStructureNotFound
	}
	if err != nil {
		return Structure{}, err
	}

	rows, err := s.DB.Query(ctx, `
    SELECT COALESCE(salary_component, ''), COALESCE(amount, 0)::text, COALESCE(formula, '')
    FROM salary_structure_earnings
    WHERE salary_structure = $1
    ORDER BY idx
  `, name)
	if err != nil {
		return Structure{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var e Earning
		if err := rows.Scan(&e.Component, &decimalText{&e.Amount}, &e.Formula); err != nil {
			return Structure{}, err
		}
		structure.Earnings = append(structure.Earnings, e)
	}
	if err := rows.Err(); err != nil {
		return Structure{}, err
	}
	return structure, nil
}

// decimalText scans a numeric column rendered as text.
type decimalText struct {
	dst *decimal.Decimal
}

func (d *decimalText) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d.dst = decimal.Zero
		return nil
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return err
		}
		*d.dst = parsed
		return nil
	case []byte:
		parsed, err := decimal.NewFromString(string(v))
		if err != nil {
			return err
		}
		*d.dst = parsed
		return nil
	default:
		return d.dst.Scan(src)
	}
}

// parseNumericFields keeps only the numeric members of the custom field document.
func parseNumericFields(raw []byte) map[string]decimal.Decimal {
	if len(raw) == 0 {
		return nil
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	out := make(map[string]decimal.Decimal, len(doc))
	for name, value := range doc {
		var num json.Number
		if err := json.Unmarshal(value, &num); err != nil {
			continue
		}
		parsed, err := decimal.NewFromString(num.String())
		if err != nil {
			continue
		}
		out[name] = parsed
	}
	return out
}
