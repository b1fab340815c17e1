package repository

import (
	"context"
	"errors"

	"github.com/juneandco/aisle/internal/database"
	"github.com/juneandco/aisle/internal/model"
)

// VendorRepository handles vendor aggregate storage
type VendorRepository struct {
	db database.Database
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db database.Database) *VendorRepository {
	return &VendorRepository{db: db}
}

// Get retrieves a vendor aggregate by id. Returns (nil, nil) when absent.
func (r *VendorRepository) Get(ctx context.Context, id string) (*model.Vendor, error) {
	query := `SELECT * FROM type::thing('vendor', $id)`
	vars := map[string]interface{}{"id": id}

	row, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return decodeVendor(row)
}

// Upsert writes the whole vendor aggregate, replacing any existing record.
func (r *VendorRepository) Upsert(ctx context.Context, vendor *model.Vendor) error {
	query, vars, err := vendorUpsert(vendor)
	if err != nil {
		return err
	}
	return r.db.Execute(ctx, query, vars)
}

// List retrieves all vendor aggregates. Order is not significant.
func (r *VendorRepository) List(ctx context.Context) ([]*model.Vendor, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM vendor`, nil)
	if err != nil {
		return nil, err
	}

	vendors := make([]*model.Vendor, 0, len(rows))
	for _, row := range rows {
		v, err := decodeVendor(row)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, nil
}

// vendorUpsert builds the whole-record replacement statement for a vendor.
// Exposed to the booking repository so both aggregate writes can share one
// atomic batch.
func vendorUpsert(vendor *model.Vendor) (string, map[string]interface{}, error) {
	content, err := contentFor(vendor)
	if err != nil {
		return "", nil, err
	}
	query := `UPSERT type::thing('vendor', $id) CONTENT $data`
	vars := map[string]interface{}{
		"id":   vendor.ID,
		"data": content,
	}
	return query, vars, nil
}

func decodeVendor(row interface{}) (*model.Vendor, error) {
	var vendor model.Vendor
	key, err := decodeRow(row, &vendor)
	if err != nil {
		return nil, err
	}
	vendor.ID = key
	return &vendor, nil
}
