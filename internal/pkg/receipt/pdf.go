// Package receipt renders fee payment receipts as paginated PDF documents.
package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/ampro/academy-manager/internal/app/models"
)

// Number derives a receipt number from an epoch-millisecond timestamp: the
// last six digits, RCPT-prefixed.
func Number(nowMillis int64) string {
	digits := fmt.Sprintf("%d", nowMillis)
	if len(digits) > 6 {
		digits = digits[len(digits)-6:]
	}
	return "RCPT-" + digits
}

// FileName is the suggested download name for a student's receipt
func FileName(student models.Student) string {
	name := []rune(student.Name)
	for i, r := range name {
		if r == ' ' {
			name[i] = '_'
		}
	}
	return fmt.Sprintf("Receipt_%s.pdf", string(name))
}

// Generate renders an A5 fee receipt for the student and returns the PDF bytes
func Generate(student models.Student, academyName string, now time.Time) ([]byte, error) {
	if academyName == "" {
		academyName = "Academy Receipt"
	}

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(248, 250, 252)
	pdf.Rect(0, 0, 148, 40, "F")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(37, 99, 235)
	pdf.SetXY(0, 10)
	pdf.CellFormat(148, 8, academyName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(0, 21)
	pdf.CellFormat(148, 6, "FEE PAYMENT RECEIPT", "", 1, "C", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	y := 50.0
	lineHeight := 8.0

	writePair := func(label, value string, x, valX, y float64) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(x, y, label)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(valX, y, value)
	}

	writePair("Receipt No:", Number(now.UnixMilli()), 15, 45, y)
	writePair("Date:", now.Format("02/01/2006"), 85, 105, y)
	y += lineHeight * 2

	writePair("Student Name:", student.Name, 15, 45, y)
	y += lineHeight
	writePair("Class:", fmt.Sprintf("%sth Standard", student.Standard), 15, 45, y)
	y += lineHeight
	writePair("Mobile:", student.WhatsApp, 15, 45, y)

	// Payment box
	y += 15
	pdf.SetDrawColor(200, 200, 200)
	pdf.Rect(15, y, 118, 30, "D")

	y += 10
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, y, "Total Amount Paid")
	pdf.SetFont("Helvetica", "B", 14)
	paid := fmt.Sprintf("Rs. %.0f/-", student.PaidFee)
	pdf.Text(128-pdf.GetStringWidth(paid), y, paid)

	y += 10
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	total := fmt.Sprintf("(Out of Total Fees: Rs. %.0f)", student.TotalFee)
	pdf.Text(128-pdf.GetStringWidth(total), y, total)

	// Footer
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.SetXY(0, 180)
	pdf.CellFormat(148, 4, "This is a computer generated receipt.", "", 1, "C", false, 0, "")
	pdf.SetX(0)
	pdf.CellFormat(148, 4, "Thank you for your payment!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
