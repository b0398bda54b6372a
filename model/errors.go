package model

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to callers. Every user-visible failure carries exactly
// one of these plus a short message; raw store errors never cross the boundary.
const (
	ErrKindValidation          = "VALIDATION"
	ErrKindAuthRejected        = "AUTH_REJECTED"
	ErrKindForbidden           = "FORBIDDEN"
	ErrKindNotFound            = "NOT_FOUND"
	ErrKindPreconditionFailed  = "PRECONDITION_FAILED"
	ErrKindConflict            = "CONFLICT"
	ErrKindUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
)

type AppError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func NewAppError(kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// ErrKind extracts the taxonomy kind from an error chain. Anything that is
// not an AppError is treated as an unavailable collaborator.
func ErrKind(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ErrKindUpstreamUnavailable
}
