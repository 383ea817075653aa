package model

import "github.com/google/uuid"

// TokenManager signs and verifies session tokens.
type TokenManager interface {
	// Sign returns a new token bound to userID. Tokens carry no expiry.
	Sign(userID uuid.UUID) (string, error)
	// Verify checks the signature and returns the bound user id.
	Verify(token string) (uuid.UUID, error)
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
