package service

import "errors"

// Domain sentinel errors. Message text is part of the API contract: the
// error mapper embeds it verbatim in problem detail bodies.
var (
	// Vendor errors
	ErrVendorNotFound          = errors.New("Vendor not found")
	ErrVendorAlreadyRegistered = errors.New("Vendor already registered")
	ErrNoVendorsInCategory     = errors.New("No vendors found in the selected category")
	ErrNoVendors               = errors.New("No vendors found")
	ErrInvalidCategory         = errors.New("Invalid vendor category")
	ErrInvalidRating           = errors.New("Review rating must be between 1 and 5")

	// Wedding errors
	ErrWeddingNotFound      = errors.New("Wedding not found")
	ErrNoWeddings           = errors.New("No weddings found")
	ErrWeddingDateNotFuture = errors.New("Wedding date must be in the future")

	// Booking errors
	ErrVendorUnavailable       = errors.New("Vendor not available on the wedding date")
	ErrOfferBelowCost          = errors.New("Offer below vendor's service cost")
	ErrBookingNotFound         = errors.New("Booking not found")
	ErrBookingStatusUnchanged  = errors.New("Booking status already set")
	ErrBookingAlreadyConfirmed = errors.New("Booking already confirmed")
	ErrInvalidBookingStatus    = errors.New("Invalid booking status")

	// Guest list errors
	ErrInvalidGuestEmail = errors.New("Invalid email address")
	ErrDuplicateRSVP     = errors.New("Guest RSVP already submitted")
	ErrGuestLimitReached = errors.New("Guest count limit has been reached for this wedding")
	ErrGuestNotFound     = errors.New("Guest not found in the wedding list")

	// Timeline errors
	ErrTimelineSlotTaken = errors.New("Timeline item already exists at this time")
	ErrNoTimelineItems   = errors.New("No timeline items for this wedding")

	// Task errors
	ErrTaskNotFound      = errors.New("Task not found")
	ErrInvalidTaskStatus = errors.New("Invalid task status")

	// Registry errors
	ErrRegistryItemExists    = errors.New("Registry item already exists")
	ErrRegistryItemNotFound  = errors.New("Registry item not found")
	ErrInvalidRegistryStatus = errors.New("Invalid registry item status")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
)

// GuestLimitError carries the capacity numbers alongside the sentinel, so
// the error response can report the limit and the current head count.
// errors.Is(err, ErrGuestLimitReached) matches it.
type GuestLimitError struct {
	Limit   int
	Current int
}

func (e *GuestLimitError) Error() string { return ErrGuestLimitReached.Error() }

func (e *GuestLimitError) Is(target error) bool { return target == ErrGuestLimitReached }
