package repository

import (
	"context"
	"fmt"

	"github.com/juneandco/aisle/internal/database"
	"github.com/juneandco/aisle/internal/model"
)

// BookingRepository coordinates writes that touch both aggregates. Booking a
// vendor appends a booking to the vendor and a reference to the wedding; the
// two replacements must land together or not at all.
type BookingRepository struct {
	db database.Database
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db database.Database) *BookingRepository {
	return &BookingRepository{db: db}
}

// UpsertVendorAndWedding replaces both aggregates in one transaction.
func (r *BookingRepository) UpsertVendorAndWedding(ctx context.Context, vendor *model.Vendor, wedding *model.Wedding) error {
	vq, vv, err := vendorUpsert(vendor)
	if err != nil {
		return fmt.Errorf("building vendor upsert: %w", err)
	}
	wq, wv, err := weddingUpsert(wedding)
	if err != nil {
		return fmt.Errorf("building wedding upsert: %w", err)
	}

	return database.NewAtomicBatch().
		Add(vq, vv).
		Add(wq, wv).
		Execute(ctx, r.db)
}
