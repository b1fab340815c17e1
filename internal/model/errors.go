package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorCode is the public error kind carried on every error response.
// The set is fixed; transport status codes are derived from it but clients
// are expected to branch on the code, not the status.
type ErrorCode string

const (
	ErrCodeVendorNotFound     ErrorCode = "VendorNotFound"
	ErrCodeWeddingNotFound    ErrorCode = "WeddingNotFound"
	ErrCodeNoTimelineItems    ErrorCode = "NoTimeLineItemsFound"
	ErrCodeDateUnavailable    ErrorCode = "DateUnavailable"
	ErrCodeUnauthorizedAction ErrorCode = "UnauthorizedAction"
	ErrCodeBudgetExceeded     ErrorCode = "BudgetExceeded"
	ErrCodeInvalidDate        ErrorCode = "InvalidDate"
	ErrCodeOther              ErrorCode = "Other"
)

// ProblemDetails represents RFC 9457 Problem Details for HTTP APIs
type ProblemDetails struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
	// Extension fields
	Code    ErrorCode `json:"code,omitempty"`
	Limit   *int      `json:"limit,omitempty"`
	Current *int      `json:"current,omitempty"`
}

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (p *ProblemDetails) Error() string {
	return fmt.Sprintf("[%d] %s: %s", p.Status, p.Title, p.Detail)
}

// WriteJSON writes the problem details as JSON response
func (p *ProblemDetails) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// Domain error constructors. One per public error kind.

func NewVendorNotFoundError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.juneandco.dev/errors/vendor-not-found",
		Title:  "Vendor Not Found",
		Status: http.StatusNotFound,
		Detail: detail,
		Code:   ErrCodeVendorNotFound,
	}
}

func NewWeddingNotFoundError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.juneandco.dev/errors/wedding-not-found",
		Title:  "Wedding Not Found",
		Status: http.StatusNotFound,
		Detail: detail,
		Code:   ErrCodeWeddingNotFound,
	}
}

func NewNoTimelineItemsError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.juneandco.dev/errors/no-timeline-items",
		Title:  "No Timeline Items",
		Status: http.StatusNotFound,
		Detail: detail,
		Code:   ErrCodeNoTimelineItems,
	}
}

func NewDateUnavailableError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.juneandco.dev/errors/date-unavailable",
		Title:  "Date Unavailable",
		Status: http.StatusConflict,
		Detail: detail,
		Code:   ErrCodeDateUnavailable,
	}
}

func NewUnauthorizedActionError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.juneandco.dev/errors/unauthorized-action",
		Title:  "Unauthorized Action",
		Status: http.StatusForbidden,
		Detail: detail,
		Code:   ErrCodeUnauthorizedAction,
	}
}

func NewBudgetExceededError(detail string, limit, current int) *ProblemDetails {
	return &ProblemDetails{
		Type:    "https://api.juneandco.dev/errors/budget-exceeded",
		Title:   "Budget Exceeded",
		Status:  http.StatusUnprocessableEntity,
		Detail:  detail,
		Code:    ErrCodeBudgetExceeded,
		Limit:   &limit,
		Current: &current,
	}
}

func NewInvalidDateError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.juneandco.dev/errors/invalid-date",
		Title:  "Invalid Date",
		Status: http.StatusUnprocessableEntity,
		Detail: detail,
		Code:   ErrCodeInvalidDate,
	}
}

func NewOtherError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.juneandco.dev/errors/other",
		Title:  "Operation Failed",
		Status: http.StatusUnprocessableEntity,
		Detail: detail,
		Code:   ErrCodeOther,
	}
}

// Transport-level constructors. These carry no domain error kind except the
// internal wrapper, which keeps the legacy catch-all behavior of surfacing
// unexpected failures as UnauthorizedAction with the message embedded.

func NewUnauthorizedError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.juneandco.dev/errors/unauthorized",
		Title:  "Unauthorized",
		Status: http.StatusUnauthorized,
		Detail: detail,
	}
}

func NewConflictError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.juneandco.dev/errors/conflict",
		Title:  "Conflict",
		Status: http.StatusConflict,
		Detail: detail,
	}
}

func NewBadRequestError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.juneandco.dev/errors/bad-request",
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
		Detail: detail,
	}
}

func NewValidationError(errors []FieldError) *ProblemDetails {
	detail := "One or more fields failed validation"
	if len(errors) > 0 {
		detail = fmt.Sprintf("%s: %s", errors[0].Field, errors[0].Message)
		if len(errors) > 1 {
			detail = fmt.Sprintf("%s (and %d more errors)", detail, len(errors)-1)
		}
	}
	return &ProblemDetails{
		Type:   "https://api.juneandco.dev/errors/validation",
		Title:  "Validation Error",
		Status: http.StatusUnprocessableEntity,
		Detail: detail,
		Code:   ErrCodeOther,
		Errors: errors,
	}
}

func NewInternalError(detail string) *ProblemDetails {
	if detail == "" {
		detail = "An unexpected error occurred"
	}
	return &ProblemDetails{
		Type:   "https://api.juneandco.dev/errors/internal",
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
		Detail: detail,
		Code:   ErrCodeUnauthorizedAction,
	}
}
