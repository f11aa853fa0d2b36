// Package response writes the API envelopes and maps domain errors to HTTP
// status codes at a single boundary.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/developerUmair/ecommerce-backend/internal/domain"
	"github.com/developerUmair/ecommerce-backend/internal/logger"
)

// Envelope is the success envelope:
// {"success":true,"message":"...","data":...}
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorBody is the failure envelope:
// {"success":false,"message":"...","error":{"code":"...","meta":{...},"request_id":"..."}}
type ErrorBody struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Error   ErrorPayload `json:"error"`
}

type ErrorPayload struct {
	Code      string            `json:"code"`
	Meta      map[string]string `json:"meta,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// JSON writes raw JSON with Content-Type.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 success envelope.
func OK(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created writes a 201 success envelope.
func Created(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Fail writes a failure envelope with the given status.
func Fail(w http.ResponseWriter, status int, code, message string, meta map[string]string, requestID string) {
	JSON(w, status, ErrorBody{
		Success: false,
		Message: message,
		Error: ErrorPayload{
			Code:      code,
			Meta:      meta,
			RequestID: requestID,
		},
	})
}

// Err translates a domain error into the failure envelope. Anything that is
// not a *domain.Error stays in the logs and surfaces as a generic 500.
func Err(w http.ResponseWriter, r *http.Request, err error) {
	requestID := RequestIDFromRequest(r)

	var de *domain.Error
	if errors.As(err, &de) {
		Fail(w, statusFromKind(de.Kind), de.Code, de.Message, de.Meta, requestID)
		return
	}

	logger.WithCtx(r.Context()).Error().Err(err).Msg("unhandled error")
	Fail(w, http.StatusInternalServerError, "internal_error", "internal error", nil, requestID)
}

func statusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	case domain.KindUpstream:
		return http.StatusBadGateway
	case domain.KindInfrastructure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON parses a request body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.ErrInvalidJSON(err)
	}
	return nil
}
