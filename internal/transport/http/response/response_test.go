package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developerUmair/ecommerce-backend/internal/domain"
)

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestErrStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrMissingField("name"), http.StatusBadRequest, "missing_field"},
		{domain.ErrTokenMissing(), http.StatusUnauthorized, "unauthorized"},
		{domain.ErrAdminOnly(), http.StatusForbidden, "admin_only"},
		{domain.ErrUserNotFound(), http.StatusNotFound, "user_not_found"},
		{domain.ErrUserAlreadyExists(), http.StatusConflict, "user_already_exists"},
		{domain.ErrMediaUpload(errors.New("minio down")), http.StatusBadGateway, "media_upload_failed"},
		{domain.ErrDBUnavailable(errors.New("refused")), http.StatusServiceUnavailable, "db_unavailable"},
		{errors.New("plain"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Request-Id", "req-123")
			rr := httptest.NewRecorder()

			Err(rr, req, tc.err)

			assert.Equal(t, tc.status, rr.Code)
			body := decodeError(t, rr)
			assert.False(t, body.Success)
			assert.Equal(t, tc.code, body.Error.Code)
			assert.Equal(t, "req-123", body.Error.RequestID)
		})
	}
}

func TestErrNeverLeaksCause(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	Err(rr, req, domain.ErrDBUnavailable(errors.New("password=hunter2 host=10.0.0.5")))

	assert.NotContains(t, rr.Body.String(), "hunter2")
	assert.NotContains(t, rr.Body.String(), "10.0.0.5")
}

func TestSuccessEnvelopes(t *testing.T) {
	rr := httptest.NewRecorder()
	Created(rr, "user registered successfully", map[string]string{"id": "u-1"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))

	var env Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "user registered successfully", env.Message)
}

func TestDecodeJSON(t *testing.T) {
	t.Run("empty_body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var dst struct{}
		assert.True(t, domain.Is(DecodeJSON(req, &dst), "invalid_json"))
	})

	t.Run("unknown_field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"extra":1}`))
		var dst struct{}
		assert.True(t, domain.Is(DecodeJSON(req, &dst), "invalid_json"))
	})

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
		var dst struct {
			Name string `json:"name"`
		}
		require.NoError(t, DecodeJSON(req, &dst))
		assert.Equal(t, "x", dst.Name)
	})
}
