// Package export produces the delimited-text download of a student listing.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/ampro/academy-manager/internal/app/models"
)

var header = []string{"Name", "WhatsApp", "Class", "Total Fee", "Paid Fee", "Due Amount"}

// FileName is the suggested download name, dated like the original export
func FileName(now time.Time) string {
	return fmt.Sprintf("students_export_%s.csv", now.Format("2006-01-02"))
}

// StudentsCSV renders the given (already filtered) student list as CSV
func StudentsCSV(students []models.Student) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, s := range students {
		record := []string{
			s.Name,
			s.WhatsApp,
			s.Standard,
			formatFee(s.TotalFee),
			formatFee(s.PaidFee),
			formatFee(s.Due()),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatFee(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("%d", int64(amount))
	}
	return fmt.Sprintf("%.2f", amount)
}
