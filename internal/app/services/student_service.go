package services

import (
	"context"
	"strings"

	"github.com/ampro/academy-manager/internal/app/models"
	"github.com/ampro/academy-manager/internal/app/models/dto"
	"github.com/ampro/academy-manager/internal/app/repositories"
)

// StudentFilter narrows a student listing. Zero value matches everything.
type StudentFilter struct {
	// Standard filters by exact class label; empty means all classes.
	Standard string
	// Search filters by case-insensitive name substring.
	Search string
}

// StudentService handles student CRUD and filtered listings
type StudentService interface {
	List(ctx context.Context, filter StudentFilter) ([]models.Student, error)
	Get(ctx context.Context, id string) (models.Student, error)
	Create(ctx context.Context, req dto.CreateStudentRequest) (models.Student, error)
	Update(ctx context.Context, id string, req dto.UpdateStudentRequest) (models.Student, error)
	Delete(ctx context.Context, id string) error
	DeleteByClass(ctx context.Context, standard string) (int, error)
}

type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{studentRepo: studentRepo}
}

// List returns the collection in stored order, narrowed by the filter
func (s *studentServiceImpl) List(ctx context.Context, filter StudentFilter) ([]models.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter.Standard == "" && filter.Search == "" {
		return students, nil
	}

	search := strings.ToLower(filter.Search)
	filtered := make([]models.Student, 0, len(students))
	for _, st := range students {
		if filter.Standard != "" && st.Standard != filter.Standard {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(st.Name), search) {
			continue
		}
		filtered = append(filtered, st)
	}
	return filtered, nil
}

// Get returns one student by id
func (s *studentServiceImpl) Get(ctx context.Context, id string) (models.Student, error) {
	return s.studentRepo.Get(ctx, id)
}

// Create adds a new student; id and creation timestamp come from the facade
func (s *studentServiceImpl) Create(ctx context.Context, req dto.CreateStudentRequest) (models.Student, error) {
	return s.studentRepo.Add(ctx, models.Student{
		Name:     req.Name,
		WhatsApp: req.WhatsApp,
		Standard: req.Standard,
		TotalFee: req.TotalFee,
		PaidFee:  req.PaidFee,
	})
}

// Update replaces the stored record wholesale, keeping id and createdAt. When
// the request omits lastReminderSent the stored value is preserved, so editing
// a student never resets the reminder cooldown.
func (s *studentServiceImpl) Update(ctx context.Context, id string, req dto.UpdateStudentRequest) (models.Student, error) {
	existing, err := s.studentRepo.Get(ctx, id)
	if err != nil {
		return models.Student{}, err
	}

	lastReminder := existing.LastReminderSent
	if req.LastReminderSent != nil {
		lastReminder = req.LastReminderSent
	}

	updated := models.Student{
		ID:               existing.ID,
		Name:             req.Name,
		WhatsApp:         req.WhatsApp,
		Standard:         req.Standard,
		TotalFee:         req.TotalFee,
		PaidFee:          req.PaidFee,
		LastReminderSent: lastReminder,
		CreatedAt:        existing.CreatedAt,
	}
	if err := s.studentRepo.Update(ctx, updated); err != nil {
		return models.Student{}, err
	}
	return updated, nil
}

// Delete removes one student by id
func (s *studentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.studentRepo.Delete(ctx, id)
}

// DeleteByClass removes every student of the given class, returning the count
func (s *studentServiceImpl) DeleteByClass(ctx context.Context, standard string) (int, error) {
	return s.studentRepo.DeleteByClass(ctx, standard)
}
