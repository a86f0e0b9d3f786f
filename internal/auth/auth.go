// Package auth implements authentication for the pricing service. A
// config-selected Verifier checks credentials (database-backed passwords or a
// shared access code) and successful logins are issued signed expiring
// bearer tokens.
package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents a row in the users table for the password scheme.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginCommand carries the credentials for either scheme. Username and
// Password serve the password scheme; AccessCode serves the access code
// scheme.
type LoginCommand struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	AccessCode string `json:"accessCode"`
}

// LoginResult is the successful login response.
type LoginResult struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	Username string `json:"username"`
}
