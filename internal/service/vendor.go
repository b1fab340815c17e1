package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/juneandco/aisle/internal/model"
)

// VendorService handles vendor registration, discovery, reviews, and admin
// verification.
type VendorService struct {
	vendors VendorStore
}

// VendorServiceConfig holds the dependencies for VendorService
type VendorServiceConfig struct {
	Vendors VendorStore
}

// NewVendorService creates a new vendor service
func NewVendorService(cfg VendorServiceConfig) *VendorService {
	return &VendorService{vendors: cfg.Vendors}
}

// Register creates a new vendor owned by the calling user. New vendors start
// unverified with no bookings, no reviews, and a zero rating.
func (s *VendorService) Register(ctx context.Context, owner string, req model.RegisterVendorRequest) (*model.Vendor, error) {
	if !req.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	id := uuid.NewString()
	existing, err := s.vendors.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrVendorAlreadyRegistered
	}

	vendor := &model.Vendor{
		ID:          id,
		Owner:       owner,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		ServiceCost: req.ServiceCost,
		BookedDates: []string{},
		Rating:      0,
		Reviews:     []model.Review{},
		Bookings:    []model.VendorBooking{},
		Verified:    false,
		Portfolio:   req.Portfolio,
	}

	if err := s.vendors.Upsert(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// Get retrieves a single vendor by id.
func (s *VendorService) Get(ctx context.Context, vendorID string) (*model.Vendor, error) {
	vendor, err := s.vendors.Get(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}
	return vendor, nil
}

// Search lists vendors, optionally filtered by category. An empty result is
// an error, not an empty list; the two cases carry distinct messages so
// clients can tell "nothing in this category" from "nothing at all".
func (s *VendorService) Search(ctx context.Context, category model.VendorCategory) ([]*model.Vendor, error) {
	vendors, err := s.vendors.List(ctx)
	if err != nil {
		return nil, err
	}

	if category != "" {
		if !category.IsValid() {
			return nil, ErrInvalidCategory
		}
		filtered := make([]*model.Vendor, 0, len(vendors))
		for _, v := range vendors {
			if v.Category == category {
				filtered = append(filtered, v)
			}
		}
		if len(filtered) == 0 {
			return nil, ErrNoVendorsInCategory
		}
		return filtered, nil
	}

	if len(vendors) == 0 {
		return nil, ErrNoVendors
	}
	return vendors, nil
}

// AddReview appends a review and recomputes the vendor's aggregate rating.
func (s *VendorService) AddReview(ctx context.Context, vendorID, author string, req model.AddReviewRequest) (*model.Vendor, error) {
	if req.Rating < model.MinReviewRating || req.Rating > model.MaxReviewRating {
		return nil, ErrInvalidRating
	}

	vendor, err := s.vendors.Get(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	vendor.Reviews = append(vendor.Reviews, model.Review{
		Author:  author,
		Rating:  req.Rating,
		Comment: req.Comment,
		Date:    time.Now().UTC().Format(model.WeddingDateLayout),
	})
	vendor.RecomputeRating()

	if err := s.vendors.Upsert(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// Verify marks a vendor as verified. Idempotent; verifying twice is fine.
func (s *VendorService) Verify(ctx context.Context, vendorID string) (*model.Vendor, error) {
	vendor, err := s.vendors.Get(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	vendor.Verified = true
	if err := s.vendors.Upsert(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}
