package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ticket-billing/internal/domain"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewConflict(code, message string) error {
	return NewDomainError(code, message, http.StatusConflict, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError, mapping the
// lifecycle sentinels and repository misses to their HTTP shapes.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	switch {
	case errors.Is(err, domain.ErrTicketAlreadyClosed):
		return NewDomainError("TICKET_ALREADY_CLOSED", "ticket is already closed", http.StatusConflict, nil)
	case errors.Is(err, domain.ErrInvalidTicketState):
		return NewDomainError("INVALID_TICKET_STATE", "closed tickets cannot be toggled", http.StatusConflict, nil)
	case errors.Is(err, domain.ErrCompanyNotFound):
		return mustDomain(NewNotFound("company", nil))
	case errors.Is(err, domain.ErrTicketNotFound):
		return mustDomain(NewNotFound("ticket", nil))
	case errors.Is(err, domain.ErrOrderNotFound):
		return mustDomain(NewNotFound("order", nil))
	case errors.Is(err, domain.ErrUserNotFound):
		return mustDomain(NewNotFound("user", nil))
	case errors.Is(err, pgx.ErrNoRows):
		return mustDomain(NewNotFound("resource", nil))
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}

func mustDomain(err error) *DomainError {
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}
	return NewDomainError("INTERNAL_ERROR", "internal server error", http.StatusInternalServerError, nil)
}
