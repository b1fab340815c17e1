package service

import (
	"context"
	"testing"
	"time"

	"github.com/juneandco/aisle/internal/model"
)

func fixedClock(date string) func() time.Time {
	t, _ := time.Parse(model.WeddingDateLayout, date)
	return func() time.Time { return t }
}

// ============================================================================
// Create Tests
// ============================================================================

func TestCreateWedding_PastDate_ReturnsErrWeddingDateNotFuture(t *testing.T) {
	t.Parallel()
	svc := NewWeddingService(WeddingServiceConfig{
		Weddings: &mockWeddingStore{},
		Now:      fixedClock("2030-06-15"),
	})

	_, err := svc.Create(context.Background(), model.CreateWeddingRequest{
		CoupleNames: []string{"Ada", "Grace"},
		Date:        "2030-06-14",
		GuestCount:  100,
	})

	if err != ErrWeddingDateNotFuture {
		t.Errorf("expected ErrWeddingDateNotFuture, got %v", err)
	}
}

func TestCreateWedding_Today_ReturnsErrWeddingDateNotFuture(t *testing.T) {
	t.Parallel()
	svc := NewWeddingService(WeddingServiceConfig{
		Weddings: &mockWeddingStore{},
		Now:      fixedClock("2030-06-15"),
	})

	_, err := svc.Create(context.Background(), model.CreateWeddingRequest{
		CoupleNames: []string{"Ada", "Grace"},
		Date:        "2030-06-15",
		GuestCount:  100,
	})

	if err != ErrWeddingDateNotFuture {
		t.Errorf("expected ErrWeddingDateNotFuture for same-day date, got %v", err)
	}
}

func TestCreateWedding_UnparseableDate_ReturnsErrWeddingDateNotFuture(t *testing.T) {
	t.Parallel()
	svc := NewWeddingService(WeddingServiceConfig{
		Weddings: &mockWeddingStore{},
		Now:      fixedClock("2030-06-15"),
	})

	_, err := svc.Create(context.Background(), model.CreateWeddingRequest{
		CoupleNames: []string{"Ada", "Grace"},
		Date:        "June 16th, 2030",
		GuestCount:  100,
	})

	if err != ErrWeddingDateNotFuture {
		t.Errorf("expected ErrWeddingDateNotFuture for unparseable date, got %v", err)
	}
}

func TestCreateWedding_FutureDate_StartsPlanningWithEmptyCollections(t *testing.T) {
	t.Parallel()
	var wrote *model.Wedding
	svc := NewWeddingService(WeddingServiceConfig{
		Weddings: &mockWeddingStore{
			upsertFunc: func(ctx context.Context, w *model.Wedding) error {
				wrote = w
				return nil
			},
		},
		Now: fixedClock("2030-06-15"),
	})

	wedding, err := svc.Create(context.Background(), model.CreateWeddingRequest{
		CoupleNames: []string{"Ada", "Grace"},
		Date:        "2030-06-16",
		Budget:      50000,
		Location:    "Lakeside",
		GuestCount:  100,
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if wedding.ID == "" {
		t.Error("expected generated id")
	}
	if wedding.Status.Tag != model.WeddingPlanning {
		t.Errorf("expected planning status, got %s", wedding.Status.Tag)
	}
	if len(wedding.CoupleNames) != 2 || wedding.CoupleNames[0] != "Ada" || wedding.CoupleNames[1] != "Grace" {
		t.Errorf("expected couple names preserved in order, got %v", wedding.CoupleNames)
	}
	if wedding.Timeline == nil || wedding.Bookings == nil || wedding.Tasks == nil ||
		wedding.GuestList == nil || wedding.Registry == nil {
		t.Error("expected all collections initialized")
	}
	if wrote == nil {
		t.Error("expected wedding persisted")
	}
}

// ============================================================================
// Get / List Tests
// ============================================================================

func TestGetWedding_Missing_ReturnsErrWeddingNotFound(t *testing.T) {
	t.Parallel()
	svc := NewWeddingService(WeddingServiceConfig{Weddings: &mockWeddingStore{}})

	_, err := svc.Get(context.Background(), "w1")

	if err != ErrWeddingNotFound {
		t.Errorf("expected ErrWeddingNotFound, got %v", err)
	}
}

func TestListWeddings_Empty_ReturnsErrNoWeddings(t *testing.T) {
	t.Parallel()
	svc := NewWeddingService(WeddingServiceConfig{Weddings: &mockWeddingStore{
		listFunc: func(ctx context.Context) ([]*model.Wedding, error) {
			return []*model.Wedding{}, nil
		},
	}})

	_, err := svc.List(context.Background())

	if err != ErrNoWeddings {
		t.Errorf("expected ErrNoWeddings, got %v", err)
	}
}

func TestListWeddings_NonEmpty_ReturnsAll(t *testing.T) {
	t.Parallel()
	svc := NewWeddingService(WeddingServiceConfig{Weddings: &mockWeddingStore{
		listFunc: func(ctx context.Context) ([]*model.Wedding, error) {
			return []*model.Wedding{testWedding()}, nil
		},
	}})

	got, err := svc.List(context.Background())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 wedding, got %d", len(got))
	}
}
