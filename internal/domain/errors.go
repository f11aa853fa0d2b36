package domain

import (
	"errors"
	"fmt"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation     ErrKind = "validation"     // 400
	KindAuth           ErrKind = "auth"           // 401
	KindForbidden      ErrKind = "forbidden"      // 403
	KindNotFound       ErrKind = "not_found"      // 404
	KindConflict       ErrKind = "conflict"       // 409
	KindRateLimited    ErrKind = "rate_limited"   // 429
	KindUpstream       ErrKind = "upstream"       // 502
	KindInfrastructure ErrKind = "infrastructure" // 503
	KindInternal       ErrKind = "internal"       // 500
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: safe summary for clients (never includes hashes or plaintext)
// - Meta: optional details (field, reason, etc.)
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Meta    map[string]string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind ErrKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind ErrKind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func WithMeta(err *Error, meta map[string]string) *Error {
	err.Meta = meta
	return err
}

// Is reports whether err carries the given stable code.
func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ----------------------
// Validation errors (400)
// ----------------------

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, "invalid_json", "invalid JSON body", cause)
}

func ErrMissingField(field string) *Error {
	return WithMeta(New(KindValidation, "missing_field", "missing required field"), map[string]string{
		"field": field,
	})
}

func ErrInvalidField(field, reason string) *Error {
	return WithMeta(New(KindValidation, "invalid_field", "invalid field"), map[string]string{
		"field":  field,
		"reason": reason,
	})
}

func ErrWeakPassword(reason string) *Error {
	return WithMeta(New(KindValidation, "weak_password", "password does not meet requirements"), map[string]string{
		"reason": reason,
	})
}

func ErrInvalidImage(reason string) *Error {
	return WithMeta(New(KindValidation, "invalid_image", "invalid image upload"), map[string]string{
		"reason": reason,
	})
}

// ----------------------
// Auth errors (401)
// ----------------------

func ErrInvalidCredentials() *Error {
	return New(KindAuth, "invalid_credentials", "invalid password")
}

func ErrTokenMissing() *Error {
	return New(KindAuth, "unauthorized", "no token provided")
}

// Invalid, expired and malformed tokens all surface the same client-facing
// code so the response does not reveal why verification failed.
func ErrTokenInvalid() *Error {
	return New(KindAuth, "unauthorized", "invalid or expired token")
}

func ErrTokenExpired() *Error {
	return &Error{Kind: KindAuth, Code: "unauthorized", Message: "invalid or expired token", Cause: errTokenExpired}
}

var errTokenExpired = errors.New("token is expired")

// IsTokenExpired distinguishes expiry from other auth failures for logging
// and tests; the HTTP mapping stays uniform.
func IsTokenExpired(err error) bool {
	return errors.Is(err, errTokenExpired)
}

// ----------------------
// Forbidden (403)
// ----------------------

func ErrAdminOnly() *Error {
	return New(KindForbidden, "admin_only", "access denied, admins only")
}

// ----------------------
// Not Found (404)
// ----------------------

func ErrUserNotFound() *Error {
	return New(KindNotFound, "user_not_found", "user not found")
}

func ErrCategoryNotFound() *Error {
	return New(KindNotFound, "category_not_found", "category not found")
}

func ErrProductNotFound() *Error {
	return New(KindNotFound, "product_not_found", "product not found")
}

// ----------------------
// Conflict (409)
// ----------------------

func ErrUserAlreadyExists() *Error {
	return New(KindConflict, "user_already_exists", "user already exists")
}

func ErrCategoryNameTaken() *Error {
	return New(KindConflict, "category_name_taken", "category name already exists")
}

// ----------------------
// Upstream (502)
// ----------------------

func ErrMediaUpload(cause error) *Error {
	return Wrap(KindUpstream, "media_upload_failed", "image storage service unavailable", cause)
}

// ----------------------
// Infrastructure / internal (5xx)
// ----------------------

func ErrDBUnavailable(cause error) *Error {
	return Wrap(KindInfrastructure, "db_unavailable", "database unavailable", cause)
}

func ErrHashFailed(cause error) *Error {
	return Wrap(KindInternal, "hash_failed", "password hashing failed", cause)
}

func ErrTokenSignFailed(cause error) *Error {
	return Wrap(KindInternal, "token_sign_failed", "token signing failed", cause)
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "internal error", cause)
}
