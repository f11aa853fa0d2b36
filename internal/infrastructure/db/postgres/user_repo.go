package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/developerUmair/ecommerce-backend/internal/application/auth"
	"github.com/developerUmair/ecommerce-backend/internal/domain"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, name, email, password_hash, is_admin, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func getUserByEmail(ctx context.Context, q querier, email string) (domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}

	const query = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1
LIMIT 1;
`
	u, err := scanUser(q.QueryRowContext(ctx, query, email))
	if err != nil {
		if isNoRows(err) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return u, nil
}

// ---------- auth.UserReader ----------

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return getUserByEmail(ctx, r.db, email)
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}

	const query = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
LIMIT 1;
`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return u, nil
}

// ---------- auth.UserStore ----------

// WithTx runs fn inside one transaction; rollback is guaranteed on any
// non-nil return or panic.
func (r *UserRepo) WithTx(ctx context.Context, fn func(tx auth.UserTx) error) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return fn(&userTx{tx: tx})
	})
}

type userTx struct {
	tx *sql.Tx
}

func (t *userTx) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return getUserByEmail(ctx, t.tx, email)
}

func (t *userTx) Create(ctx context.Context, u domain.User) (domain.User, error) {
	u.Email = domain.NormalizeEmail(u.Email)
	if u.ID == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}
	if u.Email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if u.PasswordHash == "" {
		return domain.User{}, domain.ErrMissingField("password_hash")
	}

	const query = `
INSERT INTO users (id, name, email, password_hash, is_admin, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING ` + userColumns + `;
`
	created, err := scanUser(t.tx.QueryRowContext(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.IsAdmin, u.CreatedAt, u.UpdatedAt,
	))
	if err != nil {
		// The unique index on lower(email) decides the check-then-create
		// race; map it to the same conflict as the pre-check.
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrUserAlreadyExists()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return created, nil
}
