package model

// BookingStatusTag is the discriminant of a booking status.
type BookingStatusTag string

const (
	BookingPending   BookingStatusTag = "pending"
	BookingConfirmed BookingStatusTag = "confirmed"
	BookingPaid      BookingStatusTag = "paid"
	BookingCancelled BookingStatusTag = "cancelled"
)

// IsValid reports whether the tag is a known booking status.
func (t BookingStatusTag) IsValid() bool {
	switch t {
	case BookingPending, BookingConfirmed, BookingPaid, BookingCancelled:
		return true
	default:
		return false
	}
}

// BookingStatus is a tagged union. Reason is only meaningful when the tag
// is cancelled; transition rules compare tags only.
type BookingStatus struct {
	Tag    BookingStatusTag `json:"tag"`
	Reason string           `json:"reason,omitempty"`
}

// CancellationUnavailable is the reason written onto sibling bookings when
// a confirmation cascade cancels them.
const CancellationUnavailable = "No longer available"

func BookingStatusPending() BookingStatus {
	return BookingStatus{Tag: BookingPending}
}

func BookingStatusConfirmed() BookingStatus {
	return BookingStatus{Tag: BookingConfirmed}
}

func BookingStatusPaid() BookingStatus {
	return BookingStatus{Tag: BookingPaid}
}

func BookingStatusCancelled(reason string) BookingStatus {
	return BookingStatus{Tag: BookingCancelled, Reason: reason}
}

// VendorBooking lives inside a vendor's booking list. Date is copied from
// the wedding at booking time and never changes afterwards.
type VendorBooking struct {
	ID        string        `json:"id"`
	VendorID  string        `json:"vendor_id"`
	WeddingID string        `json:"wedding_id"`
	Offer     uint64        `json:"offer"`
	Detail    string        `json:"detail,omitempty"`
	Status    BookingStatus `json:"status"`
	Date      string        `json:"date"`
}

// BookingRef is the wedding-side reference to a booking stored on a vendor.
type BookingRef struct {
	ID       string `json:"id"`
	VendorID string `json:"vendor_id"`
}

// BookVendorRequest is the payload for POST /v1/weddings/{weddingId}/bookings.
type BookVendorRequest struct {
	VendorID string `json:"vendor_id"`
	Offer    uint64 `json:"offer"`
	Detail   string `json:"detail,omitempty"`
}

// UpdateBookingStatusRequest is the payload for
// PATCH /v1/vendors/{vendorId}/bookings/{bookingId}.
type UpdateBookingStatusRequest struct {
	Status BookingStatusTag `json:"status"`
	Reason string           `json:"reason,omitempty"`
}

// BookingResult is the success payload of a booking creation: both touched
// aggregates plus the booking itself.
type BookingResult struct {
	Wedding *Wedding       `json:"wedding"`
	Vendor  *Vendor        `json:"vendor"`
	Booking *VendorBooking `json:"booking"`
}
