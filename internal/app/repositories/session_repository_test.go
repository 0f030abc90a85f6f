package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/ampro/academy-manager/internal/pkg/apperrors"
	"github.com/ampro/academy-manager/internal/storage/kv"
)

func TestSessionRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(kv.NewMemoryStore())

	exists, err := repo.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true on a fresh store")
	}
	if _, err := repo.Get(ctx); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("Get() error = %v, want ErrSessionNotFound", err)
	}

	if err := repo.Create(ctx, "token-one"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	token, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if token != "token-one" {
		t.Errorf("Get() = %q, want %q", token, "token-one")
	}

	// Creating again replaces the previous token.
	if err := repo.Create(ctx, "token-two"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	token, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if token != "token-two" {
		t.Errorf("Get() = %q, want %q", token, "token-two")
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	// Clearing a missing session is a no-op.
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("second Clear() error = %v", err)
	}

	exists, err = repo.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true after clear")
	}
}
