package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ampro/academy-manager/internal/app/models"
	"github.com/ampro/academy-manager/internal/pkg/apperrors"
	"github.com/ampro/academy-manager/internal/pkg/logger"
	"github.com/ampro/academy-manager/internal/storage/kv"
)

// StudentRepository stores the full student collection as one JSON array.
// Mutations are read-modify-write over the whole array; there is a single
// writer, so no locking beyond the store's own.
type StudentRepository struct {
	store kv.Store
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(store kv.Store) *StudentRepository {
	return &StudentRepository{store: store}
}

// List returns the full collection in insertion order. A missing record means
// an empty collection; a corrupted payload fails closed to empty and is logged.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	data, err := r.store.Get(ctx, studentsKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return []models.Student{}, nil
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}

	var students []models.Student
	if err := json.Unmarshal(data, &students); err != nil {
		logger.Error().Err(err).Str("key", studentsKey).Msg("Corrupted student payload, falling back to empty collection")
		return []models.Student{}, nil
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}

// Add assigns a fresh id and creation timestamp, appends the record, persists
// the whole collection and returns the stored record.
func (r *StudentRepository) Add(ctx context.Context, student models.Student) (models.Student, error) {
	students, err := r.List(ctx)
	if err != nil {
		return models.Student{}, err
	}

	student.ID = uuid.New().String()
	student.CreatedAt = time.Now().UnixMilli()
	students = append(students, student)

	if err := r.persist(ctx, students); err != nil {
		return models.Student{}, err
	}
	return student, nil
}

// Update replaces the record with a matching id wholesale. A missing id is
// surfaced as ErrStudentNotFound so callers can distinguish "replaced" from
// "target vanished".
func (r *StudentRepository) Update(ctx context.Context, student models.Student) error {
	students, err := r.List(ctx)
	if err != nil {
		return err
	}

	for i := range students {
		if students[i].ID == student.ID {
			students[i] = student
			return r.persist(ctx, students)
		}
	}
	return apperrors.ErrStudentNotFound
}

// Get returns the record with the given id
func (r *StudentRepository) Get(ctx context.Context, id string) (models.Student, error) {
	students, err := r.List(ctx)
	if err != nil {
		return models.Student{}, err
	}
	for _, s := range students {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Student{}, apperrors.ErrStudentNotFound
}

// Delete removes the record with the given id, persisting the remainder
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	students, err := r.List(ctx)
	if err != nil {
		return err
	}

	remaining := students[:0:0]
	for _, s := range students {
		if s.ID != id {
			remaining = append(remaining, s)
		}
	}
	if len(remaining) == len(students) {
		return apperrors.ErrStudentNotFound
	}
	return r.persist(ctx, remaining)
}

// DeleteByClass removes every record whose standard equals the given value.
// Exact string equality: deleting class "7" leaves "70" untouched. Returns the
// number of records removed; removing none is not an error.
func (r *StudentRepository) DeleteByClass(ctx context.Context, standard string) (int, error) {
	students, err := r.List(ctx)
	if err != nil {
		return 0, err
	}

	remaining := students[:0:0]
	for _, s := range students {
		if s.Standard != standard {
			remaining = append(remaining, s)
		}
	}
	removed := len(students) - len(remaining)
	if removed == 0 {
		return 0, nil
	}
	if err := r.persist(ctx, remaining); err != nil {
		return 0, err
	}
	return removed, nil
}

// persist writes the whole collection back to the store
func (r *StudentRepository) persist(ctx context.Context, students []models.Student) error {
	if students == nil {
		students = []models.Student{}
	}
	data, err := json.Marshal(students)
	if err != nil {
		return fmt.Errorf("failed to encode student collection: %w", err)
	}
	if err := r.store.Put(ctx, studentsKey, data); err != nil {
		if errors.Is(err, kv.ErrStoreFull) {
			return fmt.Errorf("%w: %v", apperrors.ErrStorageFull, err)
		}
		return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}
