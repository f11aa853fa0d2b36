package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/developerUmair/ecommerce-backend/internal/transport/http/response"
)

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			status["status"] = "degraded"
			status["db"] = "unreachable"
			response.JSON(w, http.StatusServiceUnavailable, response.Envelope{Success: false, Message: "degraded", Data: status})
			return
		}
	}

	response.OK(w, "", status)
}
