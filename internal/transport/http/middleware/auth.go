package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/developerUmair/ecommerce-backend/internal/application/auth"
	"github.com/developerUmair/ecommerce-backend/internal/domain"
	"github.com/developerUmair/ecommerce-backend/internal/logger"
	"github.com/developerUmair/ecommerce-backend/internal/transport/http/response"
)

type ctxKey string

const ctxUser ctxKey = "current_user"

// UserResolver loads the user behind a verified token. Deleted users get a
// 401 even when their token is still within its TTL.
type UserResolver interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
}

type AuthMiddleware struct {
	verifier auth.TokenSigner
	users    UserResolver
}

func NewAuth(verifier auth.TokenSigner, users UserResolver) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, users: users}
}

// Require verifies the bearer token, resolves the user and injects it into
// the request context. All failures map to a uniform 401.
func (a *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := bearerToken(r)
		if err != nil {
			response.Err(w, r, err)
			return
		}

		claims, err := a.verifier.VerifyAccessToken(raw)
		if err != nil {
			if domain.IsTokenExpired(err) {
				logger.WithCtx(r.Context()).Debug().Msg("expired token rejected")
			}
			response.Err(w, r, err)
			return
		}

		user, err := a.users.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			if domain.Is(err, "user_not_found") {
				response.Err(w, r, domain.ErrTokenInvalid())
				return
			}
			response.Err(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), ctxUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates admin-only routes. Must run after Require.
func (a *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := CurrentUser(r)
		if !ok {
			response.Err(w, r, domain.ErrTokenMissing())
			return
		}
		if !user.IsAdmin {
			response.Err(w, r, domain.ErrAdminOnly())
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, error) {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if h == "" {
		return "", domain.ErrTokenMissing()
	}
	if !strings.HasPrefix(h, "Bearer ") {
		return "", domain.ErrTokenInvalid()
	}
	raw := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if raw == "" {
		return "", domain.ErrTokenMissing()
	}
	return raw, nil
}

// CurrentUser returns the authenticated user injected by Require.
func CurrentUser(r *http.Request) (domain.User, bool) {
	u, ok := r.Context().Value(ctxUser).(domain.User)
	return u, ok
}
