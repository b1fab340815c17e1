package model

// VendorCategory classifies the service a vendor sells.
type VendorCategory string

const (
	CategoryVenue       VendorCategory = "venue"
	CategoryCatering    VendorCategory = "catering"
	CategoryPhotography VendorCategory = "photography"
	CategoryMusic       VendorCategory = "music"
	CategoryDecor       VendorCategory = "decor"
	CategoryPlanning    VendorCategory = "planning"
	CategoryAttire      VendorCategory = "attire"
	CategoryBeauty      VendorCategory = "beauty"
	CategoryTransport   VendorCategory = "transport"
	CategoryStationery  VendorCategory = "stationery"
	CategoryCake        VendorCategory = "cake"
	CategoryFavors      VendorCategory = "favors"
	CategoryOther       VendorCategory = "other"
)

// IsValid reports whether the category is one of the fixed enumeration.
func (c VendorCategory) IsValid() bool {
	switch c {
	case CategoryVenue, CategoryCatering, CategoryPhotography, CategoryMusic,
		CategoryDecor, CategoryPlanning, CategoryAttire, CategoryBeauty,
		CategoryTransport, CategoryStationery, CategoryCake, CategoryFavors,
		CategoryOther:
		return true
	default:
		return false
	}
}

// Review limits
const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// Vendor is a top-level aggregate. BookedDates must contain exactly the
// dates of all bookings on this vendor whose status is Confirmed.
type Vendor struct {
	ID          string          `json:"id"`
	Owner       string          `json:"owner"`
	Name        string          `json:"name"`
	Category    VendorCategory  `json:"category"`
	Description string          `json:"description,omitempty"`
	ServiceCost uint64          `json:"service_cost"`
	BookedDates []string        `json:"booked_dates"`
	Rating      int             `json:"rating"`
	Reviews     []Review        `json:"reviews"`
	Bookings    []VendorBooking `json:"bookings"`
	Verified    bool            `json:"verified"`
	Portfolio   []string        `json:"portfolio,omitempty"`
}

// Review is a guest or planner rating attached to a vendor. The vendor's
// Rating field is the truncated mean over all review ratings.
type Review struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
	Date    string `json:"date"`
}

// HasBookedDate reports whether date is already in the vendor's booked set.
func (v *Vendor) HasBookedDate(date string) bool {
	for _, d := range v.BookedDates {
		if d == date {
			return true
		}
	}
	return false
}

// FindBooking returns the index of the booking with the given id, or -1.
func (v *Vendor) FindBooking(bookingID string) int {
	for i := range v.Bookings {
		if v.Bookings[i].ID == bookingID {
			return i
		}
	}
	return -1
}

// RecomputeRating recalculates the aggregate rating from the review list.
func (v *Vendor) RecomputeRating() {
	if len(v.Reviews) == 0 {
		v.Rating = 0
		return
	}
	sum := 0
	for _, r := range v.Reviews {
		sum += r.Rating
	}
	v.Rating = sum / len(v.Reviews)
}

// RegisterVendorRequest is the payload for POST /v1/vendors.
type RegisterVendorRequest struct {
	Name        string         `json:"name"`
	Category    VendorCategory `json:"category"`
	Description string         `json:"description,omitempty"`
	ServiceCost uint64         `json:"service_cost"`
	Portfolio   []string       `json:"portfolio,omitempty"`
}

// AddReviewRequest is the payload for POST /v1/vendors/{vendorId}/reviews.
type AddReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}
