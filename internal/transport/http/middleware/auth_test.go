package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developerUmair/ecommerce-backend/internal/application/auth"
	"github.com/developerUmair/ecommerce-backend/internal/domain"
	"github.com/developerUmair/ecommerce-backend/internal/infrastructure/security"
)

type fakeUsers struct {
	users map[string]domain.User
}

func (f *fakeUsers) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return domain.User{}, domain.ErrUserNotFound()
}

func okHandler(t *testing.T, hit *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		u, ok := CurrentUser(r)
		require.True(t, ok)
		require.NotEmpty(t, u.ID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRequire(t *testing.T) {
	signer := security.NewJWTSigner("test-secret", "ecommerce-api")
	users := &fakeUsers{users: map[string]domain.User{
		"user-1":  {ID: "user-1", Email: "alice@example.com"},
		"admin-1": {ID: "admin-1", Email: "root@example.com", IsAdmin: true},
	}}
	mw := NewAuth(signer, users)

	do := func(t *testing.T, header string) (*httptest.ResponseRecorder, bool) {
		var hit bool
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		mw.Require(okHandler(t, &hit)).ServeHTTP(rr, req)
		return rr, hit
	}

	t.Run("no_header_401", func(t *testing.T) {
		rr, hit := do(t, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, hit)
		assert.Contains(t, rr.Body.String(), "unauthorized")
	})

	t.Run("wrong_scheme_401", func(t *testing.T) {
		rr, hit := do(t, "Basic dXNlcjpwdw==")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, hit)
	})

	t.Run("garbage_token_401", func(t *testing.T) {
		rr, hit := do(t, "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, hit)
	})

	t.Run("expired_token_401", func(t *testing.T) {
		tok, err := signer.SignAccessToken("user-1", false, -time.Minute)
		require.NoError(t, err)
		rr, hit := do(t, "Bearer "+tok)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, hit)
	})

	t.Run("deleted_user_401", func(t *testing.T) {
		tok, err := signer.SignAccessToken("ghost", false, time.Hour)
		require.NoError(t, err)
		rr, hit := do(t, "Bearer "+tok)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, hit)
	})

	t.Run("valid_token_passes", func(t *testing.T) {
		tok, err := signer.SignAccessToken("user-1", false, time.Hour)
		require.NoError(t, err)
		rr, hit := do(t, "Bearer "+tok)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, hit)
	})
}

func TestRequireAdmin(t *testing.T) {
	signer := security.NewJWTSigner("test-secret", "ecommerce-api")
	users := &fakeUsers{users: map[string]domain.User{
		"user-1":  {ID: "user-1"},
		"admin-1": {ID: "admin-1", IsAdmin: true},
	}}
	mw := NewAuth(signer, users)

	do := func(t *testing.T, userID string, isAdmin bool) *httptest.ResponseRecorder {
		tok, err := signer.SignAccessToken(userID, isAdmin, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rr := httptest.NewRecorder()

		var hit bool
		mw.Require(mw.RequireAdmin(okHandler(t, &hit))).ServeHTTP(rr, req)
		return rr
	}

	t.Run("non_admin_403", func(t *testing.T) {
		rr := do(t, "user-1", false)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "admin_only")
	})

	t.Run("admin_passes", func(t *testing.T) {
		rr := do(t, "admin-1", true)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("without_require_first_401", func(t *testing.T) {
		var hit bool
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		rr := httptest.NewRecorder()
		mw.RequireAdmin(okHandler(t, &hit)).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, hit)
	})
}

// mismatched claim vs store: token says admin but the stored user is not.
// The stored record wins because RequireAdmin reads the resolved user.
func TestAdminFlagComesFromStore(t *testing.T) {
	signer := security.NewJWTSigner("test-secret", "ecommerce-api")
	users := &fakeUsers{users: map[string]domain.User{
		"user-1": {ID: "user-1", IsAdmin: false},
	}}
	mw := NewAuth(signer, users)

	tok, err := signer.SignAccessToken("user-1", true, time.Hour)
	require.NoError(t, err)

	var hit bool
	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := httptest.NewRecorder()
	mw.Require(mw.RequireAdmin(okHandler(t, &hit))).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, hit)
}

var _ auth.TokenSigner = (*security.JWTSigner)(nil)
