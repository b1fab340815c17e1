package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/juneandco/aisle/internal/model"
)

// RSVPService manages a wedding's guest list: public RSVP submission plus
// planner approval and decline.
type RSVPService struct {
	weddings WeddingStore
}

// RSVPServiceConfig holds the dependencies for RSVPService
type RSVPServiceConfig struct {
	Weddings WeddingStore
}

// NewRSVPService creates a new RSVP service
func NewRSVPService(cfg RSVPServiceConfig) *RSVPService {
	return &RSVPService{weddings: cfg.Weddings}
}

// Submit records a guest's RSVP. Checks run in order: wedding exists, email
// has a plausible shape, no guest with the same email (exact match), and the
// list is below the wedding's guest capacity. New guests start pending with
// no table.
func (s *RSVPService) Submit(ctx context.Context, weddingID string, req model.SubmitRSVPRequest) (*model.RSVPResult, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	if !model.IsValidGuestEmail(req.Email) {
		return nil, ErrInvalidGuestEmail
	}
	if wedding.FindGuestByEmail(req.Email) != -1 {
		return nil, ErrDuplicateRSVP
	}
	if uint(len(wedding.GuestList)) >= wedding.GuestCount {
		return nil, &GuestLimitError{
			Limit:   int(wedding.GuestCount),
			Current: len(wedding.GuestList),
		}
	}

	guest := model.Guest{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Status:  model.RSVPStatusPending(),
		Dietary: req.Dietary,
		PlusOne: req.PlusOne,
		Table:   model.Unassigned(),
	}
	wedding.GuestList = append(wedding.GuestList, guest)

	if err := s.weddings.Upsert(ctx, wedding); err != nil {
		return nil, err
	}

	return &model.RSVPResult{
		Wedding: wedding,
		Guest:   &wedding.GuestList[len(wedding.GuestList)-1],
	}, nil
}

// Approve confirms a guest and assigns their table. The assignment is stored
// verbatim; there is no seat arithmetic here.
func (s *RSVPService) Approve(ctx context.Context, weddingID, guestID string, req model.ApproveGuestRequest) (*model.RSVPResult, error) {
	return s.updateGuest(ctx, weddingID, guestID, func(g *model.Guest) {
		g.Status = model.RSVPStatusConfirmed()
		g.Table = req.Table
	})
}

// Decline marks a guest declined with the given reason.
func (s *RSVPService) Decline(ctx context.Context, weddingID, guestID string, req model.DeclineGuestRequest) (*model.RSVPResult, error) {
	return s.updateGuest(ctx, weddingID, guestID, func(g *model.Guest) {
		g.Status = model.RSVPStatusDeclined(req.Reason)
	})
}

func (s *RSVPService) updateGuest(ctx context.Context, weddingID, guestID string, apply func(*model.Guest)) (*model.RSVPResult, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	idx := wedding.FindGuest(guestID)
	if idx == -1 {
		return nil, ErrGuestNotFound
	}
	apply(&wedding.GuestList[idx])

	if err := s.weddings.Upsert(ctx, wedding); err != nil {
		return nil, err
	}

	return &model.RSVPResult{
		Wedding: wedding,
		Guest:   &wedding.GuestList[idx],
	}, nil
}

// Guests returns the wedding's full guest list. Empty is fine here.
func (s *RSVPService) Guests(ctx context.Context, weddingID string) ([]model.Guest, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}
	return wedding.GuestList, nil
}

// GuestByEmail finds a guest by exact email match.
func (s *RSVPService) GuestByEmail(ctx context.Context, weddingID, email string) (*model.Guest, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	idx := wedding.FindGuestByEmail(email)
	if idx == -1 {
		return nil, ErrGuestNotFound
	}
	return &wedding.GuestList[idx], nil
}

// StatusByEmail returns just the RSVP status for a guest email.
func (s *RSVPService) StatusByEmail(ctx context.Context, weddingID, email string) (*model.RSVPStatus, error) {
	guest, err := s.GuestByEmail(ctx, weddingID, email)
	if err != nil {
		return nil, err
	}
	return &guest.Status, nil
}

// Count returns how many guests are on the list, regardless of status.
func (s *RSVPService) Count(ctx context.Context, weddingID string) (int, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return 0, err
	}
	if wedding == nil {
		return 0, ErrWeddingNotFound
	}
	return len(wedding.GuestList), nil
}
