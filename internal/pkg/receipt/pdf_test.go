package receipt

import (
	"bytes"
	"testing"
	"time"

	"github.com/ampro/academy-manager/internal/app/models"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name      string
		nowMillis int64
		want      string
	}{
		{"long timestamp keeps last six digits", 1718452800123, "RCPT-800123"},
		{"short value used as-is", 1234, "RCPT-1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.nowMillis); got != tt.want {
				t.Errorf("Number(%d) = %q, want %q", tt.nowMillis, got, tt.want)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	student := models.Student{Name: "Asha Verma"}
	if got, want := FileName(student), "Receipt_Asha_Verma.pdf"; got != want {
		t.Errorf("FileName() = %q, want %q", got, want)
	}
}

func TestGenerate(t *testing.T) {
	student := models.Student{
		Name:     "Asha Verma",
		WhatsApp: "9876543210",
		Standard: "7",
		TotalFee: 5000,
		PaidFee:  2000,
	}

	data, err := Generate(student, "Sunrise Academy", time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("Generate() output does not start with a PDF header")
	}
}
