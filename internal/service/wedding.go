package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/juneandco/aisle/internal/model"
)

// WeddingService handles wedding creation and retrieval.
type WeddingService struct {
	weddings WeddingStore
	now      func() time.Time
}

// WeddingServiceConfig holds the dependencies for WeddingService
type WeddingServiceConfig struct {
	Weddings WeddingStore

	// Now overrides the clock in tests. Defaults to time.Now.
	Now func() time.Time
}

// NewWeddingService creates a new wedding service
func NewWeddingService(cfg WeddingServiceConfig) *WeddingService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &WeddingService{weddings: cfg.Weddings, now: now}
}

// Create creates a new wedding in planning status. The date must parse as
// yyyy-mm-dd and lie strictly in the future; today's date is rejected.
func (s *WeddingService) Create(ctx context.Context, req model.CreateWeddingRequest) (*model.Wedding, error) {
	date, err := time.Parse(model.WeddingDateLayout, req.Date)
	if err != nil {
		return nil, ErrWeddingDateNotFuture
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if !date.After(today) {
		return nil, ErrWeddingDateNotFuture
	}

	names := req.CoupleNames
	if names == nil {
		names = []string{}
	}

	wedding := &model.Wedding{
		ID:          uuid.NewString(),
		CoupleNames: names,
		Date:        req.Date,
		Budget:      req.Budget,
		Location:    req.Location,
		GuestCount:  req.GuestCount,
		Timeline:    []model.TimelineItem{},
		Bookings:    []model.BookingRef{},
		Tasks:       []model.Task{},
		GuestList:   []model.Guest{},
		Registry:    []model.RegistryItem{},
		Status:      model.WeddingStatusPlanning(),
	}

	if err := s.weddings.Upsert(ctx, wedding); err != nil {
		return nil, err
	}
	return wedding, nil
}

// Get retrieves a single wedding by id.
func (s *WeddingService) Get(ctx context.Context, weddingID string) (*model.Wedding, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}
	return wedding, nil
}

// List retrieves all weddings. An empty system is an error, not an empty
// list.
func (s *WeddingService) List(ctx context.Context) ([]*model.Wedding, error) {
	weddings, err := s.weddings.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(weddings) == 0 {
		return nil, ErrNoWeddings
	}
	return weddings, nil
}
