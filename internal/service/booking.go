package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/juneandco/aisle/internal/model"
)

// BookingService coordinates the booking lifecycle across both aggregates.
//
// Date exclusivity is reactive: booking requests against an already-booked
// date fail up front, but multiple pending bookings may share a date. The
// first confirmation claims the date and cascades a cancellation over every
// other same-date booking on that vendor.
type BookingService struct {
	vendors  VendorStore
	weddings WeddingStore
	pair     PairWriter
}

// BookingServiceConfig holds the dependencies for BookingService
type BookingServiceConfig struct {
	Vendors  VendorStore
	Weddings WeddingStore
	Pair     PairWriter
}

// NewBookingService creates a new booking service
func NewBookingService(cfg BookingServiceConfig) *BookingService {
	return &BookingService{
		vendors:  cfg.Vendors,
		weddings: cfg.Weddings,
		pair:     cfg.Pair,
	}
}

// Book creates a pending booking for a wedding against a vendor. The checks
// run in a fixed order so a request failing several of them reports the same
// error every time: wedding exists, vendor exists, date free, offer covers
// the vendor's service cost.
func (s *BookingService) Book(ctx context.Context, weddingID string, req model.BookVendorRequest) (*model.BookingResult, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	vendor, err := s.vendors.Get(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	if vendor.HasBookedDate(wedding.Date) {
		return nil, ErrVendorUnavailable
	}
	if req.Offer < vendor.ServiceCost {
		return nil, ErrOfferBelowCost
	}

	booking := model.VendorBooking{
		ID:        uuid.NewString(),
		VendorID:  vendor.ID,
		WeddingID: wedding.ID,
		Offer:     req.Offer,
		Detail:    req.Detail,
		Status:    model.BookingStatusPending(),
		Date:      wedding.Date,
	}

	vendor.Bookings = append(vendor.Bookings, booking)
	wedding.Bookings = append(wedding.Bookings, model.BookingRef{
		ID:       booking.ID,
		VendorID: vendor.ID,
	})

	if err := s.pair.UpsertVendorAndWedding(ctx, vendor, wedding); err != nil {
		return nil, err
	}

	return &model.BookingResult{
		Wedding: wedding,
		Vendor:  vendor,
		Booking: &vendor.Bookings[len(vendor.Bookings)-1],
	}, nil
}

// UpdateStatus transitions a booking to a new status.
//
// Transition rules, checked in order: the booking must exist on the vendor,
// the new tag must differ from the current one, a confirmed booking never
// moves again (not even to paid), and the tag must be a known status.
// Confirming claims the wedding date on the vendor and cancels every other
// booking on the same date.
func (s *BookingService) UpdateStatus(ctx context.Context, vendorID, bookingID string, req model.UpdateBookingStatusRequest) (*model.VendorBooking, error) {
	vendor, err := s.vendors.Get(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	idx := vendor.FindBooking(bookingID)
	if idx == -1 {
		return nil, ErrBookingNotFound
	}
	booking := &vendor.Bookings[idx]

	if booking.Status.Tag == req.Status {
		return nil, ErrBookingStatusUnchanged
	}
	if booking.Status.Tag == model.BookingConfirmed {
		return nil, ErrBookingAlreadyConfirmed
	}
	if !req.Status.IsValid() {
		return nil, ErrInvalidBookingStatus
	}

	switch req.Status {
	case model.BookingConfirmed:
		s.confirm(vendor, idx)
	case model.BookingCancelled:
		booking.Status = model.BookingStatusCancelled(req.Reason)
	case model.BookingPaid:
		booking.Status = model.BookingStatusPaid()
	case model.BookingPending:
		booking.Status = model.BookingStatusPending()
	}

	if err := s.vendors.Upsert(ctx, vendor); err != nil {
		return nil, err
	}
	return &vendor.Bookings[idx], nil
}

// confirm marks the booking at idx confirmed, claims its date, and cascades
// a cancellation over every other booking on the same date regardless of
// their current status.
func (s *BookingService) confirm(vendor *model.Vendor, idx int) {
	booking := &vendor.Bookings[idx]
	booking.Status = model.BookingStatusConfirmed()

	if !vendor.HasBookedDate(booking.Date) {
		vendor.BookedDates = append(vendor.BookedDates, booking.Date)
	}

	for i := range vendor.Bookings {
		if i == idx {
			continue
		}
		if vendor.Bookings[i].Date == booking.Date {
			vendor.Bookings[i].Status = model.BookingStatusCancelled(model.CancellationUnavailable)
		}
	}
}
