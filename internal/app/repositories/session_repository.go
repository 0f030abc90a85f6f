package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/ampro/academy-manager/internal/pkg/apperrors"
	"github.com/ampro/academy-manager/internal/storage/kv"
)

// SessionRepository stores the single session token. Presence of the record is
// what means "authenticated"; there is no expiry and no per-user identity.
type SessionRepository struct {
	store kv.Store
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(store kv.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Exists reports whether a session token is stored
func (r *SessionRepository) Exists(ctx context.Context) (bool, error) {
	_, err := r.store.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}
	return true, nil
}

// Get returns the stored session token, or ErrSessionNotFound
func (r *SessionRepository) Get(ctx context.Context) (string, error) {
	data, err := r.store.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return "", apperrors.ErrSessionNotFound
		}
		return "", fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}
	return string(data), nil
}

// Create stores the session token, replacing any previous one
func (r *SessionRepository) Create(ctx context.Context, token string) error {
	if err := r.store.Put(ctx, sessionKey, []byte(token)); err != nil {
		if errors.Is(err, kv.ErrStoreFull) {
			return fmt.Errorf("%w: %v", apperrors.ErrStorageFull, err)
		}
		return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

// Clear removes the session token. Clearing a missing session is a no-op.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}
