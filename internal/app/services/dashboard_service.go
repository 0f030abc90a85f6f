package services

import (
	"context"
	"math"
	"sort"
	"strconv"

	"github.com/ampro/academy-manager/internal/app/models"
	"github.com/ampro/academy-manager/internal/app/models/dto"
	"github.com/ampro/academy-manager/internal/app/repositories"
)

// topDuesLimit caps the pending-dues-by-class chart.
const topDuesLimit = 5

// DashboardService computes the derived statistics behind the dashboard view
type DashboardService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(studentRepo *repositories.StudentRepository) DashboardService {
	return &dashboardServiceImpl{studentRepo: studentRepo}
}

// GetDashboard recomputes all aggregates from the current collection. The
// dataset is small, so nothing is cached.
func (s *dashboardServiceImpl) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Stats:       ComputeStats(students),
		ClassCounts: ClassCounts(students),
		TopDues:     TopClassDues(students),
	}, nil
}

// ComputeStats sums the collection totals. The due total is unclamped: an
// overpaid student subtracts from it, and it can go negative.
func ComputeStats(students []models.Student) dto.DashboardStats {
	stats := dto.DashboardStats{TotalStudents: len(students)}
	for _, s := range students {
		stats.TotalFeeCollected += s.PaidFee
		stats.TotalPotentialFee += s.TotalFee
		stats.TotalDueAmount += s.Due()
	}
	if stats.TotalPotentialFee != 0 {
		stats.CollectionRate = int(math.Round(stats.TotalFeeCollected / stats.TotalPotentialFee * 100))
	}
	return stats
}

// ClassCounts groups the collection by class label. The result is ordered by
// the numeric value of the label so "9" sorts before "10"; labels that do not
// parse as numbers come last, in lexical order.
func ClassCounts(students []models.Student) []dto.ClassCount {
	counts := make(map[string]int)
	for _, s := range students {
		counts[s.Standard]++
	}

	result := make([]dto.ClassCount, 0, len(counts))
	for standard, count := range counts {
		result = append(result, dto.ClassCount{Standard: standard, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		return classLess(result[i].Standard, result[j].Standard)
	})
	return result
}

// TopClassDues groups strictly positive dues by class and returns the top
// classes by summed due, descending. Classes whose total due is zero or
// negative are excluded entirely. Ties are broken by class label ascending.
func TopClassDues(students []models.Student) []dto.ClassDue {
	dues := make(map[string]float64)
	for _, s := range students {
		if due := s.Due(); due > 0 {
			dues[s.Standard] += due
		}
	}

	result := make([]dto.ClassDue, 0, len(dues))
	for standard, amount := range dues {
		result = append(result, dto.ClassDue{Standard: standard, Amount: amount})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Amount != result[j].Amount {
			return result[i].Amount > result[j].Amount
		}
		return classLess(result[i].Standard, result[j].Standard)
	})
	if len(result) > topDuesLimit {
		result = result[:topDuesLimit]
	}
	return result
}

// classLess orders class labels numerically, with non-numeric labels after the
// numeric ones.
func classLess(a, b string) bool {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
