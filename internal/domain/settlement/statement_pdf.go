package settlement

import (
	"errors"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

var ErrNotSettled = errors.New("settlement payload is not ok")

// WritePDF renders a printable statement of p. Only ok payloads can be rendered.
func WritePDF(w io.Writer, p Payload) error {
	if !p.OK {
		return ErrNotSettled
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Full and Final Settlement "+p.EmployeeID, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Full and Final Settlement")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", p.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("As of: %s", p.AsOfDate))
	pdf.Ln(7)
	if p.Service != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Service: %d years %d months %d days (%s years)",
			p.Service.Years, p.Service.Months, p.Service.Days, p.Service.CustomTotalOfYears.StringFixed(3)))
		pdf.Ln(7)
	}
	if p.Payroll != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", p.Payroll.PeriodFrom, p.Payroll.PeriodTo))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Monthly salary: %s  Rate per day: %s",
			money(p.Payroll.MonthlySalary), money(p.Payroll.RatePerDay)))
		pdf.Ln(10)
	}

	widths := []float64{45, 25, 30, 60, 30}
	pdf.SetFont("Helvetica", "B", 11)
	for i, heading := range []string{"Component", "Days", "Rate", "Reference", "Amount"} {
		pdf.CellFormat(widths[i], 8, heading, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range p.Payables {
		ref := row.ReferenceDocumentType
		if row.ReferenceDocument != "" {
			ref += ": " + row.ReferenceDocument
		}
		pdf.CellFormat(widths[0], 8, row.Component, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, row.DayCount.StringFixed(3), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 8, money(row.RatePerDay), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 8, ref, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 8, money(row.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if p.Totals != nil {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Total payable: %s", money(p.Totals.TotalPayable)))
		pdf.Ln(7)
	}
	if p.Note != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Note: "+p.Note, "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render settlement pdf: %w", err)
	}
	return nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
