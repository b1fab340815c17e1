package tests

/*
FEATURE: Weddings
DOMAIN: Wedding Lifecycle

ACCEPTANCE CRITERIA:
===================

AC-WED-001: Create Wedding
  GIVEN a future date
  WHEN planner creates a wedding
  THEN the wedding is persisted in planning status with empty collections

AC-WED-002: Past Date Rejected
  GIVEN a date in the past
  WHEN planner creates a wedding
  THEN creation fails

AC-WED-003: List Weddings
  GIVEN no weddings exist
  WHEN listing
  THEN the request fails with a not-found error
*/

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juneandco/aisle/internal/model"
	"github.com/juneandco/aisle/internal/repository"
	"github.com/juneandco/aisle/internal/service"
	"github.com/juneandco/aisle/internal/testing/testdb"
)

func newWeddingService(tdb *testdb.TestDB) *service.WeddingService {
	return service.NewWeddingService(service.WeddingServiceConfig{
		Weddings: repository.NewWeddingRepository(tdb.DB),
	})
}

func TestWedding_Create(t *testing.T) {
	// AC-WED-001: Create Wedding
	tdb := testdb.New(t)
	defer tdb.Close()

	svc := newWeddingService(tdb)
	ctx := context.Background()

	date := time.Now().AddDate(1, 0, 0).Format(model.WeddingDateLayout)
	wedding, err := svc.Create(ctx, model.CreateWeddingRequest{
		CoupleNames: []string{"Alex", "Sam"},
		Date:        date,
		Budget:      50000,
		Location:    "Riverside Gardens",
		GuestCount:  120,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, wedding.ID)

	fetched, err := svc.Get(ctx, wedding.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alex", "Sam"}, fetched.CoupleNames)
	assert.Equal(t, date, fetched.Date)
	assert.Equal(t, model.WeddingPlanning, fetched.Status.Tag)
	assert.Empty(t, fetched.GuestList)
	assert.Empty(t, fetched.Tasks)
	assert.Empty(t, fetched.Registry)
}

func TestWedding_Create_PastDateRejected(t *testing.T) {
	// AC-WED-002: Past Date Rejected
	tdb := testdb.New(t)
	defer tdb.Close()

	svc := newWeddingService(tdb)

	_, err := svc.Create(context.Background(), model.CreateWeddingRequest{
		CoupleNames: []string{"Alex", "Sam"},
		Date:        "2020-01-01",
		GuestCount:  10,
	})
	require.ErrorIs(t, err, service.ErrWeddingDateNotFuture)
}

func TestWedding_List_EmptyFails(t *testing.T) {
	// AC-WED-003: List Weddings
	tdb := testdb.New(t)
	defer tdb.Close()

	svc := newWeddingService(tdb)

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, service.ErrNoWeddings)
}
