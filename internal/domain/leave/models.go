package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	FlagAnnualLeave     = "is_annual_leave"
	FlagAllowEncashment = "allow_encashment"
)

// Details is one leave type's allocation record as returned by the leave subsystem. Its keys
// vary between data-source versions, see fields.go.
type Details map[string]any

// Allocation maps leave type name to its allocation record.
type Allocation map[string]Details

type BreakdownRow struct {
	LeaveType         string          `json:"leave_type"`
	Days              decimal.Decimal `json:"days"`
	AnnualEntitlement decimal.Decimal `json:"annual_entitlement"`
	Accrued           decimal.Decimal `json:"accrued"`
	Taken             decimal.Decimal `json:"taken"`
}

type Encashment struct {
	AsOf      time.Time
	Rate      decimal.Decimal
	Days      decimal.Decimal
	Amount    decimal.Decimal
	Breakdown []BreakdownRow
}

// Reference is the payables reference for the contributing leave types: the single type name,
// "Multiple", or "" when nothing contributed.
func (e Encashment) Reference() string {
	switch len(e.Breakdown) {
	case 0:
		return ""
	case 1:
		return e.Breakdown[0].LeaveType
	default:
		return "Multiple"
	}
}
