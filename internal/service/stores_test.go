package service

import (
	"context"

	"github.com/juneandco/aisle/internal/model"
)

// ============================================================================
// Mock Stores
// ============================================================================

type mockVendorStore struct {
	getFunc    func(ctx context.Context, id string) (*model.Vendor, error)
	upsertFunc func(ctx context.Context, vendor *model.Vendor) error
	listFunc   func(ctx context.Context) ([]*model.Vendor, error)
}

func (m *mockVendorStore) Get(ctx context.Context, id string) (*model.Vendor, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockVendorStore) Upsert(ctx context.Context, vendor *model.Vendor) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, vendor)
	}
	return nil
}

func (m *mockVendorStore) List(ctx context.Context) ([]*model.Vendor, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockWeddingStore struct {
	getFunc    func(ctx context.Context, id string) (*model.Wedding, error)
	upsertFunc func(ctx context.Context, wedding *model.Wedding) error
	listFunc   func(ctx context.Context) ([]*model.Wedding, error)
}

func (m *mockWeddingStore) Get(ctx context.Context, id string) (*model.Wedding, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockWeddingStore) Upsert(ctx context.Context, wedding *model.Wedding) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, wedding)
	}
	return nil
}

func (m *mockWeddingStore) List(ctx context.Context) ([]*model.Wedding, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockUserStore struct {
	createFunc     func(ctx context.Context, user *model.User) error
	getByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	getByIDFunc    func(ctx context.Context, id string) (*model.User, error)
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockPairWriter struct {
	upsertPairFunc func(ctx context.Context, vendor *model.Vendor, wedding *model.Wedding) error
}

func (m *mockPairWriter) UpsertVendorAndWedding(ctx context.Context, vendor *model.Vendor, wedding *model.Wedding) error {
	if m.upsertPairFunc != nil {
		return m.upsertPairFunc(ctx, vendor, wedding)
	}
	return nil
}

// ============================================================================
// Shared Fixtures
// ============================================================================

func testVendor() *model.Vendor {
	return &model.Vendor{
		ID:          "v1",
		Owner:       "u1",
		Name:        "Grand Ballroom",
		Category:    model.CategoryVenue,
		ServiceCost: 100,
		BookedDates: []string{},
		Reviews:     []model.Review{},
		Bookings:    []model.VendorBooking{},
	}
}

func testWedding() *model.Wedding {
	return &model.Wedding{
		ID:          "w1",
		CoupleNames: []string{"Ada", "Grace"},
		Date:        "2030-06-15",
		Budget:      50000,
		Location:    "Lakeside",
		GuestCount:  2,
		Timeline:    []model.TimelineItem{},
		Bookings:    []model.BookingRef{},
		Tasks:       []model.Task{},
		GuestList:   []model.Guest{},
		Registry:    []model.RegistryItem{},
		Status:      model.WeddingStatusPlanning(),
	}
}
