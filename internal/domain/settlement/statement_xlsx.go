package settlement

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	payablesSheet  = "Payables"
	breakdownSheet = "Leave Breakdown"
)

// WriteXLSX exports the payables table, totals and the leave breakdown of p.
func WriteXLSX(w io.Writer, p Payload) error {
	if !p.OK {
		return ErrNotSettled
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", payablesSheet); err != nil {
		return fmt.Errorf("name payables sheet: %w", err)
	}

	headings := []string{"Component", "Day Count", "Rate Per Day", "Amount", "Reference Document Type", "Reference Document"}
	col := 'A'
	for _, h := range headings {
		f.SetCellValue(payablesSheet, string(col)+"1", h)
		col++
	}
	row := 2
	for _, pay := range p.Payables {
		values := []any{
			pay.Component,
			pay.DayCount.InexactFloat64(),
			pay.RatePerDay.InexactFloat64(),
			pay.Amount.InexactFloat64(),
			pay.ReferenceDocumentType,
			pay.ReferenceDocument,
		}
		col := 'A'
		for _, value := range values {
			f.SetCellValue(payablesSheet, string(col)+fmt.Sprint(row), value)
			col++
		}
		row++
	}
	if p.Totals != nil {
		f.SetCellValue(payablesSheet, "A"+fmt.Sprint(row), "Total Payable")
		f.SetCellValue(payablesSheet, "D"+fmt.Sprint(row), p.Totals.TotalPayable.InexactFloat64())
		row++
	}
	if p.Note != "" {
		f.SetCellValue(payablesSheet, "A"+fmt.Sprint(row+1), "Note")
		f.SetCellValue(payablesSheet, "B"+fmt.Sprint(row+1), p.Note)
	}

	if _, err := f.NewSheet(breakdownSheet); err != nil {
		return fmt.Errorf("add breakdown sheet: %w", err)
	}
	col = 'A'
	for _, h := range []string{"Leave Type", "Annual Entitlement", "Accrued", "Taken", "Days"} {
		f.SetCellValue(breakdownSheet, string(col)+"1", h)
		col++
	}
	if p.LeaveEncashment != nil {
		for i, b := range p.LeaveEncashment.Breakdown {
			r := fmt.Sprint(i + 2)
			f.SetCellValue(breakdownSheet, "A"+r, b.LeaveType)
			f.SetCellValue(breakdownSheet, "B"+r, b.AnnualEntitlement.InexactFloat64())
			f.SetCellValue(breakdownSheet, "C"+r, b.Accrued.InexactFloat64())
			f.SetCellValue(breakdownSheet, "D"+r, b.Taken.InexactFloat64())
			f.SetCellValue(breakdownSheet, "E"+r, b.Days.InexactFloat64())
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write settlement xlsx: %w", err)
	}
	return nil
}
