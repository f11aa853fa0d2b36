package auth

import (
	"context"
	"strings"

	"github.com/developerUmair/ecommerce-backend/internal/domain"
)

// Login authenticates a user and issues a token. Unknown email surfaces as
// not-found and a bad password as invalid credentials; the split mirrors the
// public API contract even though it reveals whether an email is registered.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)

	if email == "" {
		return LoginResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return LoginResult{}, domain.ErrMissingField("password")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	toks, err := s.issueTokens(u.ID, u.IsAdmin)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{User: u, Tokens: toks}, nil
}
