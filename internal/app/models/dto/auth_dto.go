package dto

import "github.com/ampro/academy-manager/internal/app/models"

// LoginRequest represents login credentials. The gate is a single shared
// password, not a per-user account.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the bootstrap payload returned on a successful login:
// the session token plus everything the dashboard needs in one fetch.
type LoginResponse struct {
	Token    string                 `json:"token"`
	Settings models.AcademySettings `json:"settings"`
	Students []models.Student       `json:"students"`
}

// SessionResponse reports whether an active session exists
type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}
