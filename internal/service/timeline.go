package service

import (
	"context"

	"github.com/juneandco/aisle/internal/model"
)

// TimelineService manages a wedding's day-of timeline. Items are keyed by
// their time string; one item per slot.
type TimelineService struct {
	weddings WeddingStore
}

// TimelineServiceConfig holds the dependencies for TimelineService
type TimelineServiceConfig struct {
	Weddings WeddingStore
}

// NewTimelineService creates a new timeline service
func NewTimelineService(cfg TimelineServiceConfig) *TimelineService {
	return &TimelineService{weddings: cfg.Weddings}
}

// Add appends a pending timeline item. The time slot must be free; slots
// compare as exact strings.
func (s *TimelineService) Add(ctx context.Context, weddingID string, req model.AddTimelineItemRequest) (*model.Wedding, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	if wedding.HasTimelineSlot(req.Time) {
		return nil, ErrTimelineSlotTaken
	}

	wedding.Timeline = append(wedding.Timeline, model.TimelineItem{
		WeddingID:   wedding.ID,
		Time:        req.Time,
		Description: req.Description,
		Responsible: req.Responsible,
		Status:      model.TimelineItemPending,
	})

	if err := s.weddings.Upsert(ctx, wedding); err != nil {
		return nil, err
	}
	return wedding, nil
}

// Get returns the wedding's timeline. An empty timeline is an error, unlike
// the guest list.
func (s *TimelineService) Get(ctx context.Context, weddingID string) ([]model.TimelineItem, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	if len(wedding.Timeline) == 0 {
		return nil, ErrNoTimelineItems
	}
	return wedding.Timeline, nil
}
