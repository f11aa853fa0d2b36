package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/developerUmair/ecommerce-backend/internal/logger"
)

const HeaderXRequestID = "X-Request-Id"

// RequestID assigns every request an id, echoes it in the response header
// and binds it to the request-scoped logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
			r.Header.Set(HeaderXRequestID, reqID)
		}

		w.Header().Set(HeaderXRequestID, reqID)

		ctx := logger.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
