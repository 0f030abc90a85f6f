package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/ampro/academy-manager/internal/app/models"
	"github.com/ampro/academy-manager/internal/pkg/apperrors"
	"github.com/ampro/academy-manager/internal/storage/kv"
)

func TestStudentRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewStudentRepository(store)

	first, err := repo.Add(ctx, models.Student{
		Name:     "Asha Verma",
		WhatsApp: "9876543210",
		Standard: "7",
		TotalFee: 5000,
		PaidFee:  2000,
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	second, err := repo.Add(ctx, models.Student{Name: "Rahul Singh", WhatsApp: "1", Standard: "8", TotalFee: 100})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if first.ID == "" || second.ID == "" || first.ID == second.ID {
		t.Errorf("Add() ids %q and %q, want distinct non-empty ids", first.ID, second.ID)
	}
	if first.CreatedAt == 0 {
		t.Error("Add() did not set the creation timestamp")
	}

	students, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("List() returned %d students, want 2", len(students))
	}
	if students[0] != first || students[1] != second {
		t.Errorf("List() = %+v, want insertion order preserved with all fields intact", students)
	}
}

func TestStudentRepositoryEmptyCollection(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(kv.NewMemoryStore())

	students, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if students == nil || len(students) != 0 {
		t.Errorf("List() on a fresh store = %v, want empty non-nil slice", students)
	}
}

func TestStudentRepositoryCorruptedPayload(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewStudentRepository(store)

	if err := store.Put(ctx, studentsKey, []byte("{not json")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	// Corruption fails closed to an empty collection instead of erroring out.
	students, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(students) != 0 {
		t.Errorf("List() on corrupted payload = %v, want empty collection", students)
	}
}

func TestStudentRepositoryUpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(kv.NewMemoryStore())

	err := repo.Update(ctx, models.Student{ID: "no-such-id", Name: "X"})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("Update() error = %v, want ErrStudentNotFound", err)
	}
}

func TestStudentRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(kv.NewMemoryStore())

	added, err := repo.Add(ctx, models.Student{Name: "Asha", WhatsApp: "1", Standard: "7", TotalFee: 100})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := repo.Delete(ctx, added.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, added.ID); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("second Delete() error = %v, want ErrStudentNotFound", err)
	}
}

func TestStudentRepositoryDeleteByClassExactMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(kv.NewMemoryStore())

	seed := []models.Student{
		{Name: "A", WhatsApp: "1", Standard: "7"},
		{Name: "B", WhatsApp: "2", Standard: "70"},
		{Name: "C", WhatsApp: "3", Standard: "7"},
	}
	for _, st := range seed {
		if _, err := repo.Add(ctx, st); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	removed, err := repo.DeleteByClass(ctx, "7")
	if err != nil {
		t.Fatalf("DeleteByClass() error = %v", err)
	}
	if removed != 2 {
		t.Errorf("DeleteByClass() removed = %d, want 2", removed)
	}

	students, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(students) != 1 || students[0].Standard != "70" {
		t.Errorf("remaining = %+v, want only class 70", students)
	}
}

func TestStudentRepositoryStoreFull(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewStudentRepository(store)

	added, err := repo.Add(ctx, models.Student{Name: "Asha", WhatsApp: "1", Standard: "7", TotalFee: 100})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	store.FailWrites = true
	if _, err := repo.Add(ctx, models.Student{Name: "B", WhatsApp: "2", Standard: "8"}); !errors.Is(err, apperrors.ErrStorageFull) {
		t.Fatalf("Add() error = %v, want ErrStorageFull", err)
	}
	store.FailWrites = false

	// The failed write must leave the collection untouched.
	students, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(students) != 1 || students[0].ID != added.ID {
		t.Errorf("collection after failed write = %+v, want only the first student", students)
	}
}
