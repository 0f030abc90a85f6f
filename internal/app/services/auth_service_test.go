package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ampro/academy-manager/internal/app/models"
	"github.com/ampro/academy-manager/internal/app/repositories"
	"github.com/ampro/academy-manager/internal/pkg/apperrors"
	"github.com/ampro/academy-manager/internal/pkg/auth"
	"github.com/ampro/academy-manager/internal/storage/kv"
)

func newAuthFixture(t *testing.T, credential string) (AuthService, *repositories.Repositories) {
	t.Helper()
	repos := repositories.NewRepositories(kv.NewMemoryStore())
	tokenService := auth.NewTokenService(auth.TokenConfig{
		SecretKey:   "test-secret",
		TokenIssuer: "academy-manager",
	})
	svc := NewAuthService(repos.Session, repos.Settings, repos.Students, tokenService, credential)
	return svc, repos
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	svc, repos := newAuthFixture(t, "letmein")

	if _, err := repos.Students.Add(ctx, models.Student{Name: "Asha", WhatsApp: "1", Standard: "7", TotalFee: 100}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	resp, err := svc.Login(ctx, "letmein")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token == "" {
		t.Error("Login() returned an empty token")
	}
	if resp.Settings.AcademyName != models.DefaultAcademyName {
		t.Errorf("Settings.AcademyName = %q, want default", resp.Settings.AcademyName)
	}
	if len(resp.Students) != 1 {
		t.Errorf("Login() returned %d students, want 1", len(resp.Students))
	}

	stored, err := repos.Session.Get(ctx)
	if err != nil {
		t.Fatalf("Session.Get() error = %v", err)
	}
	if stored != resp.Token {
		t.Error("stored session token does not match the returned token")
	}
}

func TestAuthLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, repos := newAuthFixture(t, "letmein")

	_, err := svc.Login(ctx, "wrong")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}

	// A failed login must leave no session behind.
	exists, err := repos.Session.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("failed login created a session")
	}
}

func TestAuthLoginBcryptCredential(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("letmein")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	svc, _ := newAuthFixture(t, hash)

	if _, err := svc.Login(ctx, "letmein"); err != nil {
		t.Fatalf("Login() with bcrypt credential error = %v", err)
	}
	if _, err := svc.Login(ctx, "wrong"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthLogout(t *testing.T) {
	ctx := context.Background()
	svc, repos := newAuthFixture(t, "letmein")

	if _, err := svc.Login(ctx, "letmein"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	exists, err := repos.Session.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("session still present after logout")
	}

	// Logging out twice is a no-op.
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("second Logout() error = %v", err)
	}

	authenticated, err := svc.IsAuthenticated(ctx)
	if err != nil {
		t.Fatalf("IsAuthenticated() error = %v", err)
	}
	if authenticated {
		t.Error("IsAuthenticated() = true after logout")
	}
}
