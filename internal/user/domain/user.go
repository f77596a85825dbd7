package domain

import (
	"strings"
	"time"
)

type ID string

type User struct {
	ID           ID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// NormalizeEmail is the canonical form stored and looked up: trimmed and
// lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
