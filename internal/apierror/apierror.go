// Package apierror provides the canonical error response envelope and the
// typed domain errors used across services. All errors returned to clients
// go through this package so that internal details (stack traces, SQL
// errors) never leak.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ── Typed domain errors ──────────────────────────────────────────────────────
// Services return these; handlers map them to HTTP statuses via Status().

// ValidationError: missing or malformed required input. Detected before any
// write, so a rejected request has zero side effects.
type ValidationError struct {
	Detail string
	Fields map[string]string
}

func (e *ValidationError) Error() string { return e.Detail }

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "dados inválidos", Fields: fields}
}

func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}

// NotFoundError: a referenced id does not resolve to an active row.
type NotFoundError struct{ Detail string }

func (e *NotFoundError) Error() string { return e.Detail }

func NotFoundf(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Detail: fmt.Sprintf(format, args...)}
}

// ConflictError: the operation would violate an invariant (second active
// allocation, second open maintenance, stale version).
type ConflictError struct{ Detail string }

func (e *ConflictError) Error() string { return e.Detail }

func Conflictf(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Detail: fmt.Sprintf(format, args...)}
}

// StorageError wraps an underlying store failure. The cause is logged; the
// client only ever sees the generic detail.
type StorageError struct {
	Detail string
	Cause  error
}

func (e *StorageError) Error() string { return e.Detail }
func (e *StorageError) Unwrap() error { return e.Cause }

func Storage(cause error) *StorageError {
	return &StorageError{Detail: "erro interno do servidor", Cause: cause}
}

// Status maps a domain error to its HTTP status code.
func Status(err error) int {
	var (
		ve *ValidationError
		nf *NotFoundError
		ce *ConflictError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ce):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Envelope converts a domain error into the response body for Status(err).
// Unknown errors collapse into the generic storage message.
func Envelope(err error) *APIError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return &APIError{Detail: ve.Detail, Fields: ve.Fields}
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return New(nf.Detail)
	}
	var ce *ConflictError
	if errors.As(err, &ce) {
		return New(ce.Detail)
	}
	return New("erro interno do servidor")
}
