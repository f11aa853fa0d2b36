package handlers

import (
	"net/http"

	"github.com/developerUmair/ecommerce-backend/internal/application/auth"
	"github.com/developerUmair/ecommerce-backend/internal/domain"
	"github.com/developerUmair/ecommerce-backend/internal/metrics"
	"github.com/developerUmair/ecommerce-backend/internal/transport/http/dto"
	"github.com/developerUmair/ecommerce-backend/internal/transport/http/middleware"
	"github.com/developerUmair/ecommerce-backend/internal/transport/http/response"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	if err := dto.Validate(req); err != nil {
		response.Err(w, r, err)
		return
	}

	res, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	metrics.RecordRegistration()
	response.Created(w, "user registered successfully", dto.ToAuthData(res.User, res.Tokens))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	if err := dto.Validate(req); err != nil {
		response.Err(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case domain.Is(err, "user_not_found"):
			metrics.RecordLoginAttempt("user_not_found")
		case domain.Is(err, "invalid_credentials"):
			metrics.RecordLoginAttempt("invalid_credentials")
		}
		response.Err(w, r, err)
		return
	}

	metrics.RecordLoginAttempt("success")
	response.OK(w, "login successful", dto.ToAuthData(res.User, res.Tokens))
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		response.Err(w, r, domain.ErrTokenMissing())
		return
	}
	response.OK(w, "", dto.ToUserView(user))
}
