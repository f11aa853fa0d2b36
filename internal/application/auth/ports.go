package auth

import (
	"context"
	"time"

	"github.com/developerUmair/ecommerce-backend/internal/domain"
)

/*
UserReader
----------
Read-side persistence port for users. Only describes WHAT the auth flows
need, not HOW records are stored.
*/
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
}

/*
UserTx
------
Operations available inside a registration transaction. Rollback on any
error return is the store's responsibility.
*/
type UserTx interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

/*
UserStore
---------
Full persistence port: reads plus a scoped transaction. WithTx must commit
only when fn returns nil and roll back on every other exit, panics included.
*/
type UserStore interface {
	UserReader
	WithTx(ctx context.Context, fn func(tx UserTx) error) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt. Compare returns nil on match.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

/*
TokenSigner
-----------
Issues and verifies access tokens (JWT).
Used by service + auth middleware.
*/
type TokenClaims struct {
	UserID  string
	IsAdmin bool
	Exp     time.Time
}

type TokenSigner interface {
	SignAccessToken(userID string, isAdmin bool, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}
