package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// emailPattern is a baseline sanity check; the unique index on lower(email)
// is the authoritative guard against duplicates.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail lowercases and trims an email the same way the storage
// layer indexes it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NewUser builds an unpersisted user record. The password hash must already
// be derived; this constructor never sees a plaintext password.
func NewUser(name, email, passwordHash string, now time.Time) (User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if name == "" {
		return User{}, ErrMissingField("name")
	}
	if email == "" {
		return User{}, ErrMissingField("email")
	}
	if !ValidEmail(email) {
		return User{}, ErrInvalidField("email", "invalid format")
	}
	if passwordHash == "" {
		return User{}, ErrMissingField("password_hash")
	}

	return User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		IsAdmin:      false,
		CreatedAt:    now.UTC(),
		UpdatedAt:    now.UTC(),
	}, nil
}
