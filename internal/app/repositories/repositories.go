// Package repositories is the persistence facade: three logical records
// (session token, settings, student collection) serialized as JSON into a
// key-value store. This is the only serialization boundary in the system;
// every write persists the whole record, never a delta.
package repositories

import (
	"github.com/ampro/academy-manager/internal/storage/kv"
)

// Storage keys of the three logical records. The amp_ prefix is the original
// record layout and is kept so existing data files keep working.
const (
	studentsKey = "amp_students"
	settingsKey = "amp_settings"
	sessionKey  = "amp_session_token"
)

// Repositories bundles the facade over a single store
type Repositories struct {
	Students *StudentRepository
	Settings *SettingsRepository
	Session  *SessionRepository
}

// NewRepositories creates all repositories over the given store
func NewRepositories(store kv.Store) *Repositories {
	return &Repositories{
		Students: NewStudentRepository(store),
		Settings: NewSettingsRepository(store),
		Session:  NewSessionRepository(store),
	}
}
