package auth

import (
	"context"
	"time"

	"github.com/developerUmair/ecommerce-backend/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type Service struct {
	users  UserStore
	hasher PasswordHasher
	signer TokenSigner
	clock  Clock

	tokenTTL time.Duration
}

type Config struct {
	TokenTTL time.Duration
}

func NewService(users UserStore, hasher PasswordHasher, signer TokenSigner, cfg Config) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		users:    users,
		hasher:   hasher,
		signer:   signer,
		clock:    realClock{},
		tokenTTL: ttl,
	}
}

// WithClock swaps the time source; tests use it to pin issuance time.
func (s *Service) WithClock(c Clock) *Service {
	if c != nil {
		s.clock = c
	}
	return s
}

// AuthTokens is the common token output for handlers/DTO mapping.
type AuthTokens struct {
	AccessToken string
	TokenType   string // "Bearer"
	ExpiresIn   int64  // seconds
}

type RegisterResult struct {
	User   domain.User
	Tokens AuthTokens
}

type LoginResult struct {
	User   domain.User
	Tokens AuthTokens
}

func (s *Service) issueTokens(userID string, isAdmin bool) (AuthTokens, error) {
	access, err := s.signer.SignAccessToken(userID, isAdmin, s.tokenTTL)
	if err != nil {
		return AuthTokens{}, domain.ErrTokenSignFailed(err)
	}

	return AuthTokens{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

// GetUserByID resolves a user for /me and for the auth middleware.
func (s *Service) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return s.users.GetByID(ctx, id)
}
