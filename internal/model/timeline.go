package model

// TimelineItemStatus tracks whether a timeline entry has happened.
type TimelineItemStatus string

const (
	TimelineItemPending   TimelineItemStatus = "pending"
	TimelineItemCompleted TimelineItemStatus = "completed"
)

// TimelineItem lives inside a wedding's timeline. Time is the key: it is a
// human-entered string and must be unique per wedding, exact match only.
type TimelineItem struct {
	WeddingID   string             `json:"wedding_id"`
	Time        string             `json:"time"`
	Description string             `json:"description"`
	Responsible string             `json:"responsible"`
	Status      TimelineItemStatus `json:"status"`
}

// AddTimelineItemRequest is the payload for
// POST /v1/weddings/{weddingId}/timeline.
type AddTimelineItemRequest struct {
	Time        string `json:"time"`
	Description string `json:"description"`
	Responsible string `json:"responsible"`
}
