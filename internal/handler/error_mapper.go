package handler

import (
	"errors"

	"github.com/juneandco/aisle/internal/model"
	"github.com/juneandco/aisle/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error codes across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	var limitErr *service.GuestLimitError

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Not Found Errors → 404 =====
	// Empty search results share the not-found kind of their entity.
	case errors.Is(err, service.ErrVendorNotFound),
		errors.Is(err, service.ErrNoVendorsInCategory),
		errors.Is(err, service.ErrNoVendors):
		return model.NewVendorNotFoundError(err.Error())
	case errors.Is(err, service.ErrWeddingNotFound),
		errors.Is(err, service.ErrNoWeddings):
		return model.NewWeddingNotFoundError(err.Error())
	case errors.Is(err, service.ErrNoTimelineItems):
		return model.NewNoTimelineItemsError(err.Error())

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrTimelineSlotTaken):
		return model.NewDateUnavailableError(err.Error())
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return model.NewConflictError(err.Error())

	// ===== Unauthorized Action → 403 =====
	// Mutations against entities the caller cannot act on. These report the
	// UnauthorizedAction kind rather than 404 so probing for ids is not
	// distinguishable from lacking permission.
	case errors.Is(err, service.ErrVendorAlreadyRegistered),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrBookingStatusUnchanged),
		errors.Is(err, service.ErrBookingAlreadyConfirmed),
		errors.Is(err, service.ErrDuplicateRSVP),
		errors.Is(err, service.ErrGuestNotFound),
		errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, service.ErrRegistryItemNotFound):
		return model.NewUnauthorizedActionError(err.Error())

	// ===== Capacity Errors → 422 =====
	case errors.As(err, &limitErr):
		return model.NewBudgetExceededError(err.Error(), limitErr.Limit, limitErr.Current)
	case errors.Is(err, service.ErrGuestLimitReached):
		return model.NewBudgetExceededError(err.Error(), 0, 0)

	// ===== Date Errors → 422 =====
	case errors.Is(err, service.ErrWeddingDateNotFuture):
		return model.NewInvalidDateError(err.Error())

	// ===== Domain Validation Errors → 422 =====
	case errors.Is(err, service.ErrVendorUnavailable),
		errors.Is(err, service.ErrOfferBelowCost),
		errors.Is(err, service.ErrRegistryItemExists),
		errors.Is(err, service.ErrInvalidGuestEmail),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidBookingStatus),
		errors.Is(err, service.ErrInvalidTaskStatus),
		errors.Is(err, service.ErrInvalidRegistryStatus):
		return model.NewOtherError(err.Error())

	// ===== Credential Validation Errors → 422 =====
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "credentials", Message: err.Error()}})

	// ===== Stale Token Accounts → 401 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewUnauthorizedError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails
// response with additional context about the operation that failed.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == 500 {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}
