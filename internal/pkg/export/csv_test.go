package export

import (
	"encoding/csv"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ampro/academy-manager/internal/app/models"
)

func TestFileName(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	if got, want := FileName(now), "students_export_2025-06-15.csv"; got != want {
		t.Errorf("FileName() = %q, want %q", got, want)
	}
}

func TestStudentsCSV(t *testing.T) {
	students := []models.Student{
		{Name: "Asha Verma", WhatsApp: "9876543210", Standard: "7", TotalFee: 5000, PaidFee: 2000},
		{Name: "Rahul Singh", WhatsApp: "1234567890", Standard: "8", TotalFee: 1500.50, PaidFee: 1500.50},
	}

	data, err := StudentsCSV(students)
	if err != nil {
		t.Fatalf("StudentsCSV() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse generated csv: %v", err)
	}

	want := [][]string{
		{"Name", "WhatsApp", "Class", "Total Fee", "Paid Fee", "Due Amount"},
		{"Asha Verma", "9876543210", "7", "5000", "2000", "3000"},
		{"Rahul Singh", "1234567890", "8", "1500.50", "1500.50", "0"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("StudentsCSV() = %v, want %v", records, want)
	}
}

func TestStudentsCSVEmpty(t *testing.T) {
	data, err := StudentsCSV(nil)
	if err != nil {
		t.Fatalf("StudentsCSV() error = %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != strings.Join(header, ",") {
		t.Errorf("StudentsCSV(nil) = %q, want header only", got)
	}
}
