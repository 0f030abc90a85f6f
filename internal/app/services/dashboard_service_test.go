package services

import (
	"reflect"
	"testing"

	"github.com/ampro/academy-manager/internal/app/models"
	"github.com/ampro/academy-manager/internal/app/models/dto"
)

func student(standard string, total, paid float64) models.Student {
	return models.Student{Standard: standard, TotalFee: total, PaidFee: paid}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		students []models.Student
		want     dto.DashboardStats
	}{
		{
			name:     "empty collection",
			students: nil,
			want:     dto.DashboardStats{},
		},
		{
			name: "basic totals",
			students: []models.Student{
				student("7", 5000, 2000),
				student("8", 3000, 3000),
			},
			want: dto.DashboardStats{
				TotalStudents:     2,
				TotalFeeCollected: 5000,
				TotalPotentialFee: 8000,
				TotalDueAmount:    3000,
				CollectionRate:    63,
			},
		},
		{
			name: "overpayment drives the due total negative",
			students: []models.Student{
				student("7", 1000, 2500),
			},
			want: dto.DashboardStats{
				TotalStudents:     1,
				TotalFeeCollected: 2500,
				TotalPotentialFee: 1000,
				TotalDueAmount:    -1500,
				CollectionRate:    250,
			},
		},
		{
			name: "zero potential yields zero rate",
			students: []models.Student{
				student("7", 0, 500),
			},
			want: dto.DashboardStats{
				TotalStudents:     1,
				TotalFeeCollected: 500,
				TotalDueAmount:    -500,
			},
		},
		{
			name: "rate is rounded",
			students: []models.Student{
				student("7", 3000, 1000),
			},
			want: dto.DashboardStats{
				TotalStudents:     1,
				TotalFeeCollected: 1000,
				TotalPotentialFee: 3000,
				TotalDueAmount:    2000,
				CollectionRate:    33,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(tt.students)
			if got != tt.want {
				t.Errorf("ComputeStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassCounts(t *testing.T) {
	students := []models.Student{
		student("10", 0, 0),
		student("9", 0, 0),
		student("LKG", 0, 0),
		student("9", 0, 0),
		student("Nursery", 0, 0),
	}

	want := []dto.ClassCount{
		{Standard: "9", Count: 2},
		{Standard: "10", Count: 1},
		{Standard: "LKG", Count: 1},
		{Standard: "Nursery", Count: 1},
	}

	got := ClassCounts(students)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ClassCounts() = %+v, want %+v", got, want)
	}
}

func TestTopClassDues(t *testing.T) {
	tests := []struct {
		name     string
		students []models.Student
		want     []dto.ClassDue
	}{
		{
			name: "only positive dues contribute",
			students: []models.Student{
				student("7", 5000, 2000),  // due 3000
				student("7", 1000, 4000),  // overpaid, excluded from the sum
				student("8", 2000, 2000),  // settled
				student("9", 1000, 500),   // due 500
			},
			want: []dto.ClassDue{
				{Standard: "7", Amount: 3000},
				{Standard: "9", Amount: 500},
			},
		},
		{
			name: "capped at five classes",
			students: []models.Student{
				student("1", 600, 0),
				student("2", 500, 0),
				student("3", 400, 0),
				student("4", 300, 0),
				student("5", 200, 0),
				student("6", 100, 0),
			},
			want: []dto.ClassDue{
				{Standard: "1", Amount: 600},
				{Standard: "2", Amount: 500},
				{Standard: "3", Amount: 400},
				{Standard: "4", Amount: 300},
				{Standard: "5", Amount: 200},
			},
		},
		{
			name: "ties break by class label ascending",
			students: []models.Student{
				student("8", 1000, 0),
				student("7", 1000, 0),
			},
			want: []dto.ClassDue{
				{Standard: "7", Amount: 1000},
				{Standard: "8", Amount: 1000},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopClassDues(tt.students)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopClassDues() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"9", "10", true},
		{"10", "9", false},
		{"7", "LKG", true},
		{"LKG", "7", false},
		{"LKG", "Nursery", true},
		{"7", "7", false},
	}

	for _, tt := range tests {
		if got := classLess(tt.a, tt.b); got != tt.want {
			t.Errorf("classLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
