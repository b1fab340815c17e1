package tests

/*
FEATURE: Guest RSVPs
DOMAIN: Guest List & Capacity

ACCEPTANCE CRITERIA:
===================

AC-RSVP-001: Submit RSVP
  GIVEN a wedding with open capacity
  WHEN a guest submits an RSVP
  THEN the guest joins the list as pending and unassigned

AC-RSVP-002: Duplicate Email Rejected
  GIVEN a guest already on the list
  WHEN the same email submits again
  THEN submission fails

AC-RSVP-003: Capacity Enforced
  GIVEN a wedding whose guest list has reached guest count
  WHEN another guest submits
  THEN submission fails with the limit error

AC-RSVP-004: Approve Guest
  GIVEN a pending guest
  WHEN the planner approves them with a table
  THEN the guest is confirmed and seated
*/

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juneandco/aisle/internal/model"
	"github.com/juneandco/aisle/internal/repository"
	"github.com/juneandco/aisle/internal/service"
	"github.com/juneandco/aisle/internal/testing/fixtures"
	"github.com/juneandco/aisle/internal/testing/testdb"
)

func newRSVPService(tdb *testdb.TestDB) *service.RSVPService {
	return service.NewRSVPService(service.RSVPServiceConfig{
		Weddings: repository.NewWeddingRepository(tdb.DB),
	})
}

func TestRSVP_Submit(t *testing.T) {
	// AC-RSVP-001: Submit RSVP
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newRSVPService(tdb)
	ctx := context.Background()

	wedding := f.CreateWedding(t)

	result, err := svc.Submit(ctx, wedding.ID, model.SubmitRSVPRequest{
		Name:  "Jordan Lee",
		Email: "jordan@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RSVPPending, result.Guest.Status.Tag)
	assert.Equal(t, model.Unassigned(), result.Guest.Table)

	guests, err := svc.Guests(ctx, wedding.ID)
	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.Equal(t, "jordan@example.com", guests[0].Email)
}

func TestRSVP_DuplicateEmailRejected(t *testing.T) {
	// AC-RSVP-002: Duplicate Email Rejected
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newRSVPService(tdb)
	ctx := context.Background()

	wedding := f.CreateWedding(t)

	_, err := svc.Submit(ctx, wedding.ID, model.SubmitRSVPRequest{Name: "A", Email: "dup@example.com"})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, wedding.ID, model.SubmitRSVPRequest{Name: "B", Email: "dup@example.com"})
	require.ErrorIs(t, err, service.ErrDuplicateRSVP)
}

func TestRSVP_CapacityEnforced(t *testing.T) {
	// AC-RSVP-003: Capacity Enforced
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newRSVPService(tdb)
	ctx := context.Background()

	wedding := f.CreateWedding(t, func(o *fixtures.WeddingOpts) {
		o.GuestCount = 1
	})

	_, err := svc.Submit(ctx, wedding.ID, model.SubmitRSVPRequest{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, wedding.ID, model.SubmitRSVPRequest{Name: "B", Email: "b@example.com"})
	require.ErrorIs(t, err, service.ErrGuestLimitReached)

	var limitErr *service.GuestLimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, 1, limitErr.Limit)
	assert.Equal(t, 1, limitErr.Current)
}

func TestRSVP_ApproveGuest(t *testing.T) {
	// AC-RSVP-004: Approve Guest
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newRSVPService(tdb)
	ctx := context.Background()

	wedding := f.CreateWedding(t)

	submitted, err := svc.Submit(ctx, wedding.ID, model.SubmitRSVPRequest{
		Name:  "Jordan Lee",
		Email: "jordan@example.com",
	})
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, wedding.ID, submitted.Guest.ID, model.ApproveGuestRequest{
		Table: model.TableAssignment{Type: model.TableFamily, Number: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, model.RSVPConfirmed, approved.Guest.Status.Tag)
	assert.Equal(t, model.TableFamily, approved.Guest.Table.Type)

	status, err := svc.StatusByEmail(ctx, wedding.ID, "jordan@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RSVPConfirmed, status.Tag)
}
