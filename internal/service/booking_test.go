package service

import (
	"context"
	"testing"

	"github.com/juneandco/aisle/internal/model"
)

func newBookingService(vendors *mockVendorStore, weddings *mockWeddingStore, pair *mockPairWriter) *BookingService {
	return NewBookingService(BookingServiceConfig{
		Vendors:  vendors,
		Weddings: weddings,
		Pair:     pair,
	})
}

// ============================================================================
// Book Tests
// ============================================================================

func TestBook_WeddingMissing_ReturnsErrWeddingNotFound(t *testing.T) {
	t.Parallel()
	svc := newBookingService(&mockVendorStore{}, &mockWeddingStore{}, &mockPairWriter{})

	_, err := svc.Book(context.Background(), "w1", model.BookVendorRequest{VendorID: "v1", Offer: 200})

	if err != ErrWeddingNotFound {
		t.Errorf("expected ErrWeddingNotFound, got %v", err)
	}
}

func TestBook_VendorMissing_ReturnsErrVendorNotFound(t *testing.T) {
	t.Parallel()
	weddings := &mockWeddingStore{
		getFunc: func(ctx context.Context, id string) (*model.Wedding, error) {
			return testWedding(), nil
		},
	}
	svc := newBookingService(&mockVendorStore{}, weddings, &mockPairWriter{})

	_, err := svc.Book(context.Background(), "w1", model.BookVendorRequest{VendorID: "v1", Offer: 200})

	if err != ErrVendorNotFound {
		t.Errorf("expected ErrVendorNotFound, got %v", err)
	}
}

func TestBook_DateAlreadyBooked_ReturnsErrVendorUnavailable(t *testing.T) {
	t.Parallel()
	weddings := &mockWeddingStore{
		getFunc: func(ctx context.Context, id string) (*model.Wedding, error) {
			return testWedding(), nil
		},
	}
	vendors := &mockVendorStore{
		getFunc: func(ctx context.Context, id string) (*model.Vendor, error) {
			v := testVendor()
			v.BookedDates = []string{"2030-06-15"}
			return v, nil
		},
	}
	svc := newBookingService(vendors, weddings, &mockPairWriter{})

	_, err := svc.Book(context.Background(), "w1", model.BookVendorRequest{VendorID: "v1", Offer: 200})

	if err != ErrVendorUnavailable {
		t.Errorf("expected ErrVendorUnavailable, got %v", err)
	}
}

func TestBook_OfferBelowServiceCost_ReturnsErrOfferBelowCost(t *testing.T) {
	t.Parallel()
	weddings := &mockWeddingStore{
		getFunc: func(ctx context.Context, id string) (*model.Wedding, error) {
			return testWedding(), nil
		},
	}
	vendors := &mockVendorStore{
		getFunc: func(ctx context.Context, id string) (*model.Vendor, error) {
			return testVendor(), nil
		},
	}
	svc := newBookingService(vendors, weddings, &mockPairWriter{})

	_, err := svc.Book(context.Background(), "w1", model.BookVendorRequest{VendorID: "v1", Offer: 50})

	if err != ErrOfferBelowCost {
		t.Errorf("expected ErrOfferBelowCost, got %v", err)
	}
}

func TestBook_OfferEqualToServiceCost_Succeeds(t *testing.T) {
	t.Parallel()
	weddings := &mockWeddingStore{
		getFunc: func(ctx context.Context, id string) (*model.Wedding, error) {
			return testWedding(), nil
		},
	}
	vendors := &mockVendorStore{
		getFunc: func(ctx context.Context, id string) (*model.Vendor, error) {
			return testVendor(), nil
		},
	}
	svc := newBookingService(vendors, weddings, &mockPairWriter{})

	result, err := svc.Book(context.Background(), "w1", model.BookVendorRequest{VendorID: "v1", Offer: 100})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Booking.Status.Tag != model.BookingPending {
		t.Errorf("expected pending status, got %s", result.Booking.Status.Tag)
	}
}

func TestBook_Success_WritesBothAggregatesAtomically(t *testing.T) {
	t.Parallel()
	weddings := &mockWeddingStore{
		getFunc: func(ctx context.Context, id string) (*model.Wedding, error) {
			return testWedding(), nil
		},
	}
	vendors := &mockVendorStore{
		getFunc: func(ctx context.Context, id string) (*model.Vendor, error) {
			return testVendor(), nil
		},
	}
	var wroteVendor *model.Vendor
	var wroteWedding *model.Wedding
	pair := &mockPairWriter{
		upsertPairFunc: func(ctx context.Context, v *model.Vendor, w *model.Wedding) error {
			wroteVendor, wroteWedding = v, w
			return nil
		},
	}
	svc := newBookingService(vendors, weddings, pair)

	result, err := svc.Book(context.Background(), "w1", model.BookVendorRequest{VendorID: "v1", Offer: 150, Detail: "full day"})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if wroteVendor == nil || wroteWedding == nil {
		t.Fatal("expected both aggregates written through the pair writer")
	}
	if len(wroteVendor.Bookings) != 1 {
		t.Fatalf("expected 1 vendor booking, got %d", len(wroteVendor.Bookings))
	}
	if len(wroteWedding.Bookings) != 1 {
		t.Fatalf("expected 1 wedding booking ref, got %d", len(wroteWedding.Bookings))
	}
	booking := wroteVendor.Bookings[0]
	ref := wroteWedding.Bookings[0]
	if booking.ID != ref.ID {
		t.Errorf("expected matching booking ids, got %q and %q", booking.ID, ref.ID)
	}
	if booking.Date != "2030-06-15" {
		t.Errorf("expected booking date copied from wedding, got %q", booking.Date)
	}
	if booking.Offer != 150 {
		t.Errorf("expected offer 150, got %d", booking.Offer)
	}
	if result.Booking.ID != booking.ID {
		t.Errorf("result booking mismatch: %q vs %q", result.Booking.ID, booking.ID)
	}
	// Pending bookings do not claim the date
	if wroteVendor.HasBookedDate("2030-06-15") {
		t.Error("expected date to stay unclaimed until confirmation")
	}
}

func TestBook_TwoPendingBookingsOnSameDate_Allowed(t *testing.T) {
	t.Parallel()
	vendor := testVendor()
	vendor.Bookings = []model.VendorBooking{{
		ID:        "b1",
		VendorID:  "v1",
		WeddingID: "w0",
		Offer:     120,
		Status:    model.BookingStatusPending(),
		Date:      "2030-06-15",
	}}
	weddings := &mockWeddingStore{
		getFunc: func(ctx context.Context, id string) (*model.Wedding, error) {
			return testWedding(), nil
		},
	}
	vendors := &mockVendorStore{
		getFunc: func(ctx context.Context, id string) (*model.Vendor, error) {
			return vendor, nil
		},
	}
	svc := newBookingService(vendors, weddings, &mockPairWriter{})

	_, err := svc.Book(context.Background(), "w1", model.BookVendorRequest{VendorID: "v1", Offer: 150})

	if err != nil {
		t.Fatalf("expected pending bookings to share a date, got %v", err)
	}
}

// ============================================================================
// UpdateStatus Tests
// ============================================================================

func vendorWithBookings(bookings ...model.VendorBooking) *model.Vendor {
	v := testVendor()
	v.Bookings = bookings
	return v
}

func pendingBooking(id, date string) model.VendorBooking {
	return model.VendorBooking{
		ID:        id,
		VendorID:  "v1",
		WeddingID: "w1",
		Offer:     150,
		Status:    model.BookingStatusPending(),
		Date:      date,
	}
}

func TestUpdateStatus_BookingMissing_ReturnsErrBookingNotFound(t *testing.T) {
	t.Parallel()
	vendors := &mockVendorStore{
		getFunc: func(ctx context.Context, id string) (*model.Vendor, error) {
			return testVendor(), nil
		},
	}
	svc := newBookingService(vendors, &mockWeddingStore{}, &mockPairWriter{})

	_, err := svc.UpdateStatus(context.Background(), "v1", "nope", model.UpdateBookingStatusRequest{Status: model.BookingConfirmed})

	if err != ErrBookingNotFound {
		t.Errorf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestUpdateStatus_SameTag_ReturnsErrBookingStatusUnchanged(t *testing.T) {
	t.Parallel()
	vendors := &mockVendorStore{
		getFunc: func(ctx context.Context, id string) (*model.Vendor, error) {
			return vendorWithBookings(pendingBooking("b1", "2030-06-15")), nil
		},
	}
	svc := newBookingService(vendors, &mockWeddingStore{}, &mockPairWriter{})

	_, err := svc.UpdateStatus(context.Background(), "v1", "b1", model.UpdateBookingStatusRequest{Status: model.BookingPending})

	if err != ErrBookingStatusUnchanged {
		t.Errorf("expected ErrBookingStatusUnchanged, got %v", err)
	}
}

func TestUpdateStatus_ConfirmedIsTerminal_EvenTowardPaid(t *testing.T) {
	t.Parallel()
	confirmed := pendingBooking("b1", "2030-06-15")
	confirmed.Status = model.BookingStatusConfirmed()
	vendors := &mockVendorStore{
		getFunc: func(ctx context.Context, id string) (*model.Vendor, error) {
			return vendorWithBookings(confirmed), nil
		},
	}
	svc := newBookingService(vendors, &mockWeddingStore{}, &mockPairWriter{})

	_, err := svc.UpdateStatus(context.Background(), "v1", "b1", model.UpdateBookingStatusRequest{Status: model.BookingPaid})

	if err != ErrBookingAlreadyConfirmed {
		t.Errorf("expected ErrBookingAlreadyConfirmed, got %v", err)
	}
}

func TestUpdateStatus_UnknownTag_ReturnsErrInvalidBookingStatus(t *testing.T) {
	t.Parallel()
	vendors := &mockVendorStore{
		getFunc: func(ctx context.Context, id string) (*model.Vendor, error) {
			return vendorWithBookings(pendingBooking("b1", "2030-06-15")), nil
		},
	}
	svc := newBookingService(vendors, &mockWeddingStore{}, &mockPairWriter{})

	_, err := svc.UpdateStatus(context.Background(), "v1", "b1", model.UpdateBookingStatusRequest{Status: "postponed"})

	if err != ErrInvalidBookingStatus {
		t.Errorf("expected ErrInvalidBookingStatus, got %v", err)
	}
}

func TestUpdateStatus_Confirm_ClaimsDateAndCancelsSameDateSiblings(t *testing.T) {
	t.Parallel()
	var wrote *model.Vendor
	vendors := &mockVendorStore{
		getFunc: func(ctx context.Context, id string) (*model.Vendor, error) {
			return vendorWithBookings(
				pendingBooking("b1", "2030-06-15"),
				pendingBooking("b2", "2030-06-15"),
				pendingBooking("b3", "2030-09-01"),
			), nil
		},
		upsertFunc: func(ctx context.Context, v *model.Vendor) error {
			wrote = v
			return nil
		},
	}
	svc := newBookingService(vendors, &mockWeddingStore{}, &mockPairWriter{})

	_, err := svc.UpdateStatus(context.Background(), "v1", "b1", model.UpdateBookingStatusRequest{Status: model.BookingConfirmed})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if wrote == nil {
		t.Fatal("expected vendor written")
	}
	if !wrote.HasBookedDate("2030-06-15") {
		t.Error("expected confirmed date added to booked dates")
	}
	if got := wrote.Bookings[0].Status.Tag; got != model.BookingConfirmed {
		t.Errorf("expected b1 confirmed, got %s", got)
	}
	if got := wrote.Bookings[1].Status; got.Tag != model.BookingCancelled || got.Reason != model.CancellationUnavailable {
		t.Errorf("expected b2 cancelled with %q, got %+v", model.CancellationUnavailable, got)
	}
	if got := wrote.Bookings[2].Status.Tag; got != model.BookingPending {
		t.Errorf("expected b3 untouched, got %s", got)
	}
}

func TestUpdateStatus_ReturnsTheUpdatedBooking(t *testing.T) {
	t.Parallel()
	vendors := &mockVendorStore{
		getFunc: func(ctx context.Context, id string) (*model.Vendor, error) {
			return vendorWithBookings(
				pendingBooking("b1", "2030-06-15"),
				pendingBooking("b2", "2030-09-01"),
			), nil
		},
		upsertFunc: func(ctx context.Context, v *model.Vendor) error { return nil },
	}
	svc := newBookingService(vendors, &mockWeddingStore{}, &mockPairWriter{})

	booking, err := svc.UpdateStatus(context.Background(), "v1", "b2", model.UpdateBookingStatusRequest{
		Status: model.BookingConfirmed,
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if booking.ID != "b2" {
		t.Errorf("expected booking b2 returned, got %s", booking.ID)
	}
	if booking.Status.Tag != model.BookingConfirmed {
		t.Errorf("expected confirmed status on returned booking, got %s", booking.Status.Tag)
	}
}

func TestUpdateStatus_Cancel_RecordsReason(t *testing.T) {
	t.Parallel()
	var wrote *model.Vendor
	vendors := &mockVendorStore{
		getFunc: func(ctx context.Context, id string) (*model.Vendor, error) {
			return vendorWithBookings(pendingBooking("b1", "2030-06-15")), nil
		},
		upsertFunc: func(ctx context.Context, v *model.Vendor) error {
			wrote = v
			return nil
		},
	}
	svc := newBookingService(vendors, &mockWeddingStore{}, &mockPairWriter{})

	_, err := svc.UpdateStatus(context.Background(), "v1", "b1", model.UpdateBookingStatusRequest{
		Status: model.BookingCancelled,
		Reason: "changed venue",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := wrote.Bookings[0].Status; got.Tag != model.BookingCancelled || got.Reason != "changed venue" {
		t.Errorf("expected cancellation with reason, got %+v", got)
	}
}

func TestUpdateStatus_CancelledCanBeConfirmedLater(t *testing.T) {
	t.Parallel()
	cancelled := pendingBooking("b1", "2030-06-15")
	cancelled.Status = model.BookingStatusCancelled("thinking it over")
	var wrote *model.Vendor
	vendors := &mockVendorStore{
		getFunc: func(ctx context.Context, id string) (*model.Vendor, error) {
			return vendorWithBookings(cancelled), nil
		},
		upsertFunc: func(ctx context.Context, v *model.Vendor) error {
			wrote = v
			return nil
		},
	}
	svc := newBookingService(vendors, &mockWeddingStore{}, &mockPairWriter{})

	_, err := svc.UpdateStatus(context.Background(), "v1", "b1", model.UpdateBookingStatusRequest{Status: model.BookingConfirmed})

	if err != nil {
		t.Fatalf("expected cancelled booking to accept confirmation, got %v", err)
	}
	if got := wrote.Bookings[0].Status.Tag; got != model.BookingConfirmed {
		t.Errorf("expected confirmed, got %s", got)
	}
}
