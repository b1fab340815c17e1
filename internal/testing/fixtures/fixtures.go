package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/juneandco/aisle/internal/database"
	"github.com/juneandco/aisle/internal/model"
	"github.com/juneandco/aisle/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	users    *repository.UserRepository
	vendors  *repository.VendorRepository
	weddings *repository.WeddingRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		users:    repository.NewUserRepository(db),
		vendors:  repository.NewVendorRepository(db),
		weddings: repository.NewWeddingRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel // fixture operations are expected to finish within the timeout
	return c
}

// futureDate returns a wedding date one year out
func futureDate() string {
	return time.Now().AddDate(1, 0, 0).Format(model.WeddingDateLayout)
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Email    string
	Name     string
	Password string
	Role     string
}

// CreateUser creates a planner account with optional customizations
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	o := &UserOpts{
		Email:    fmt.Sprintf("user_%s@test.local", randomID()),
		Name:     fmt.Sprintf("user_%s", randomID()),
		Password: "testpass123",
		Role:     model.UserRolePlanner,
	}
	for _, fn := range opts {
		fn(o)
	}

	// MinCost keeps fixture creation fast
	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}

	user := &model.User{
		ID:           randomID(),
		Email:        o.Email,
		Name:         o.Name,
		PasswordHash: string(hash),
		Role:         o.Role,
	}

	if err := f.users.Create(ctx(), user); err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}
	return user
}

// CreateAdmin creates an admin user
func (f *Factory) CreateAdmin(t *testing.T) *model.User {
	return f.CreateUser(t, func(o *UserOpts) {
		o.Role = model.UserRoleAdmin
	})
}

// ============================================================================
// Vendor Fixtures
// ============================================================================

// VendorOpts customizes vendor creation
type VendorOpts struct {
	Owner       string
	Name        string
	Category    model.VendorCategory
	ServiceCost uint64
	BookedDates []string
	Verified    bool
}

// CreateVendor creates a vendor with optional customizations
func (f *Factory) CreateVendor(t *testing.T, opts ...func(*VendorOpts)) *model.Vendor {
	t.Helper()

	o := &VendorOpts{
		Owner:       randomID(),
		Name:        fmt.Sprintf("vendor_%s", randomID()),
		Category:    model.CategoryVenue,
		ServiceCost: 1000,
	}
	for _, fn := range opts {
		fn(o)
	}

	vendor := &model.Vendor{
		ID:          randomID(),
		Owner:       o.Owner,
		Name:        o.Name,
		Category:    o.Category,
		ServiceCost: o.ServiceCost,
		BookedDates: o.BookedDates,
		Reviews:     []model.Review{},
		Bookings:    []model.VendorBooking{},
		Verified:    o.Verified,
	}
	if vendor.BookedDates == nil {
		vendor.BookedDates = []string{}
	}

	if err := f.vendors.Upsert(ctx(), vendor); err != nil {
		t.Fatalf("fixtures: failed to create vendor: %v", err)
	}
	return vendor
}

// ============================================================================
// Wedding Fixtures
// ============================================================================

// WeddingOpts customizes wedding creation
type WeddingOpts struct {
	CoupleNames []string
	Date        string
	Budget      uint64
	Location    string
	GuestCount  uint
}

// CreateWedding creates a wedding with optional customizations.
// The default date is one year in the future.
func (f *Factory) CreateWedding(t *testing.T, opts ...func(*WeddingOpts)) *model.Wedding {
	t.Helper()

	o := &WeddingOpts{
		CoupleNames: []string{fmt.Sprintf("Partner %s", randomID()), fmt.Sprintf("Partner %s", randomID())},
		Date:        futureDate(),
		Budget:      50000,
		Location:    "Riverside Gardens",
		GuestCount:  100,
	}
	for _, fn := range opts {
		fn(o)
	}

	wedding := &model.Wedding{
		ID:          randomID(),
		CoupleNames: o.CoupleNames,
		Date:        o.Date,
		Budget:      o.Budget,
		Location:    o.Location,
		GuestCount:  o.GuestCount,
		Timeline:    []model.TimelineItem{},
		Bookings:    []model.BookingRef{},
		Tasks:       []model.Task{},
		GuestList:   []model.Guest{},
		Registry:    []model.RegistryItem{},
		Status:      model.WeddingStatusPlanning(),
	}

	if err := f.weddings.Upsert(ctx(), wedding); err != nil {
		t.Fatalf("fixtures: failed to create wedding: %v", err)
	}
	return wedding
}

// AddGuest appends a confirmed guest directly to a wedding's guest list.
func (f *Factory) AddGuest(t *testing.T, wedding *model.Wedding, email string) *model.Guest {
	t.Helper()

	guest := model.Guest{
		ID:     randomID(),
		Name:   fmt.Sprintf("Guest %s", randomID()),
		Email:  email,
		Status: model.RSVPStatusConfirmed(),
		Table:  model.Unassigned(),
	}
	wedding.GuestList = append(wedding.GuestList, guest)

	if err := f.weddings.Upsert(ctx(), wedding); err != nil {
		t.Fatalf("fixtures: failed to add guest: %v", err)
	}
	return &wedding.GuestList[len(wedding.GuestList)-1]
}
