package service

import (
	"context"

	"github.com/juneandco/aisle/internal/model"
)

// VendorStore is the vendor persistence surface the services consume.
// Get returns (nil, nil) when the vendor does not exist.
type VendorStore interface {
	Get(ctx context.Context, id string) (*model.Vendor, error)
	Upsert(ctx context.Context, vendor *model.Vendor) error
	List(ctx context.Context) ([]*model.Vendor, error)
}

// WeddingStore is the wedding persistence surface the services consume.
// Get returns (nil, nil) when the wedding does not exist.
type WeddingStore interface {
	Get(ctx context.Context, id string) (*model.Wedding, error)
	Upsert(ctx context.Context, wedding *model.Wedding) error
	List(ctx context.Context) ([]*model.Wedding, error)
}

// UserStore is the account persistence surface the auth service consumes.
// Create returns database.ErrDuplicate on an email collision; reads return
// (nil, nil) when absent.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// PairWriter commits a vendor and a wedding in one transaction. Booking a
// vendor is the only operation that mutates both aggregates at once.
type PairWriter interface {
	UpsertVendorAndWedding(ctx context.Context, vendor *model.Vendor, wedding *model.Wedding) error
}
