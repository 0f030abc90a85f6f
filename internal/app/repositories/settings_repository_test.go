package repositories

import (
	"context"
	"testing"

	"github.com/ampro/academy-manager/internal/app/models"
	"github.com/ampro/academy-manager/internal/storage/kv"
)

func TestSettingsRepositoryDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(kv.NewMemoryStore())

	settings, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if settings.AcademyName != models.DefaultAcademyName {
		t.Errorf("AcademyName = %q, want default %q", settings.AcademyName, models.DefaultAcademyName)
	}
}

func TestSettingsRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(kv.NewMemoryStore())

	if err := repo.Update(ctx, models.AcademySettings{AcademyName: "Sunrise Academy"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	settings, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if settings.AcademyName != "Sunrise Academy" {
		t.Errorf("AcademyName = %q, want %q", settings.AcademyName, "Sunrise Academy")
	}
}

func TestSettingsRepositoryCorruptedPayload(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewSettingsRepository(store)

	if err := store.Put(ctx, settingsKey, []byte("###")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	settings, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if settings.AcademyName != models.DefaultAcademyName {
		t.Errorf("AcademyName = %q, want defaults after corruption", settings.AcademyName)
	}
}
