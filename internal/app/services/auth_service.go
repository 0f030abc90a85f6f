package services

import (
	"context"

	"github.com/ampro/academy-manager/internal/app/models/dto"
	"github.com/ampro/academy-manager/internal/app/repositories"
	"github.com/ampro/academy-manager/internal/pkg/apperrors"
	"github.com/ampro/academy-manager/internal/pkg/auth"
	"github.com/ampro/academy-manager/internal/pkg/logger"
)

// AuthService is the session gate: a capability check against one shared
// credential, not an identity system.
type AuthService interface {
	Login(ctx context.Context, password string) (*dto.LoginResponse, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) (bool, error)
}

type authServiceImpl struct {
	sessionRepo  *repositories.SessionRepository
	settingsRepo *repositories.SettingsRepository
	studentRepo  *repositories.StudentRepository
	tokenService *auth.TokenService
	credential   string
}

// NewAuthService creates a new auth service instance. credential is the
// configured gate password, either plaintext or a bcrypt hash.
func NewAuthService(
	sessionRepo *repositories.SessionRepository,
	settingsRepo *repositories.SettingsRepository,
	studentRepo *repositories.StudentRepository,
	tokenService *auth.TokenService,
	credential string,
) AuthService {
	return &authServiceImpl{
		sessionRepo:  sessionRepo,
		settingsRepo: settingsRepo,
		studentRepo:  studentRepo,
		tokenService: tokenService,
		credential:   credential,
	}
}

// Login verifies the password and, on success, creates the session record and
// loads settings and students in the same coordinated fetch. A wrong password
// changes no state. There is no lockout and no rate limiting.
func (s *authServiceImpl) Login(ctx context.Context, password string) (*dto.LoginResponse, error) {
	if !auth.CheckPassword(s.credential, password) {
		logger.Warn().Msg("Login attempt with invalid password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokenService.Generate()
	if err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info().Int("students", len(students)).Msg("Session opened")
	return &dto.LoginResponse{
		Token:    token,
		Settings: settings,
		Students: students,
	}, nil
}

// Logout removes the session record unconditionally; logging out twice is fine
func (s *authServiceImpl) Logout(ctx context.Context) error {
	return s.sessionRepo.Clear(ctx)
}

// IsAuthenticated reports whether a session record exists
func (s *authServiceImpl) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.sessionRepo.Exists(ctx)
}
