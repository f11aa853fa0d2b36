package auth

import (
	"context"

	"github.com/developerUmair/ecommerce-backend/internal/domain"
)

// Register creates a credential record and issues a token, all-or-nothing.
// The whole flow runs inside one storage transaction: the duplicate check,
// the insert and the token signing either all take effect or none do. The
// in-tx email lookup is a fast path; the unique index on lower(email) is the
// final arbiter under concurrent registrations.
func (s *Service) Register(ctx context.Context, name, email, password string) (RegisterResult, error) {
	if name == "" {
		return RegisterResult{}, domain.ErrMissingField("name")
	}
	if email == "" {
		return RegisterResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return RegisterResult{}, domain.ErrMissingField("password")
	}

	var res RegisterResult
	err := s.users.WithTx(ctx, func(tx UserTx) error {
		_, err := tx.GetByEmail(ctx, email)
		switch {
		case err == nil:
			return domain.ErrUserAlreadyExists()
		case !domain.Is(err, "user_not_found"):
			return err
		}

		hash, err := s.hasher.Hash(password)
		if err != nil {
			return err
		}

		u, err := domain.NewUser(name, email, hash, s.clock.Now())
		if err != nil {
			return err
		}

		created, err := tx.Create(ctx, u)
		if err != nil {
			return err
		}

		toks, err := s.issueTokens(created.ID, created.IsAdmin)
		if err != nil {
			return err
		}

		res = RegisterResult{User: created, Tokens: toks}
		return nil
	})
	if err != nil {
		return RegisterResult{}, err
	}
	return res, nil
}
