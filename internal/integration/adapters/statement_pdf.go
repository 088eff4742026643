package adapters

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/ledgerline/backend/internal/application/usecase/statement"
	"github.com/ledgerline/backend/internal/domain/entity"
)

// PDFStatementRenderer implements the statement.Renderer interface using
// gofpdf.
type PDFStatementRenderer struct{}

// NewPDFStatementRenderer creates a new PDF statement renderer.
func NewPDFStatementRenderer() *PDFStatementRenderer {
	return &PDFStatementRenderer{}
}

// maxStatementRows bounds each line item table; anything beyond is truncated
// with a note so the document stays a reasonable size.
const maxStatementRows = 200

// Render draws the statement into a PDF document.
func (r *PDFStatementRenderer) Render(data *statement.Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, data.CompanyName)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, fmt.Sprintf("Financial statement (%s)", data.Currency))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s",
		data.PeriodStart.Format("2006-01-02"), data.PeriodEnd.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{46, 46, 46, 46}
	pdf.CellFormat(sumW[0], 10, "Income", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Expenses", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Fees", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[3], 10, "Net", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, formatMinor(data.TotalIncome), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, formatMinor(data.TotalExpense), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, formatMinor(data.TotalFees), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[3], 10, formatMinor(data.Net), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	r.drawLineTable(pdf, "Processor Transactions", data.ChargeLines)
	pdf.Ln(6)
	r.drawLineTable(pdf, "Manual Transactions", data.ManualLines)

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, "Generated "+data.GeneratedAt.Format(time.RFC3339), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawLineTable draws one titled itemized table in the order the lines were
// given.
func (r *PDFStatementRenderer) drawLineTable(pdf *gofpdf.Fpdf, title string, lines []statement.Line) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(20, 20, 20)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)

	colW := []float64{26, 86, 36, 34}
	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(colW[0], 8, "DATE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[1], 8, "DESCRIPTION", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colW[2], 8, "CATEGORY", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colW[3], 8, "AMOUNT", "1", 1, "R", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}
	drawHeader()

	pdf.SetTextColor(30, 30, 30)
	if len(lines) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 8, "No transactions in this period", "1", 1, "C", false, 0, "")
		return
	}

	for i, line := range lines {
		if i >= maxStatementRows {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 8, "...truncated (too many rows)", "1", 1, "C", false, 0, "")
			break
		}

		if pdf.GetY() > 270 {
			pdf.AddPage()
			drawHeader()
		}

		desc := line.Description
		if desc == "" {
			desc = string(line.Kind)
		}

		pdf.CellFormat(colW[0], 8, line.Date.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, trimTo(desc, 58), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[2], 8, trimTo(line.Category, 24), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[3], 8, formatSigned(line), "1", 1, "R", false, 0, "")
	}
}

// formatMinor renders a minor-unit amount as a decimal string.
func formatMinor(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}

// formatSigned renders a line amount, prefixing expenses with a minus.
func formatSigned(line statement.Line) string {
	if line.Kind == entity.LedgerKindExpense {
		return "-" + formatMinor(line.AmountMinor)
	}
	return formatMinor(line.AmountMinor)
}

func trimTo(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
