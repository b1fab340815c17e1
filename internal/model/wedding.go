package model

// WeddingStatusTag is the discriminant of a wedding's lifecycle status.
type WeddingStatusTag string

const (
	WeddingPlanning  WeddingStatusTag = "planning"
	WeddingUpcoming  WeddingStatusTag = "upcoming"
	WeddingCompleted WeddingStatusTag = "completed"
)

// WeddingStatus carries a descriptive label alongside the tag.
type WeddingStatus struct {
	Tag   WeddingStatusTag `json:"tag"`
	Label string           `json:"label"`
}

func WeddingStatusPlanning() WeddingStatus {
	return WeddingStatus{Tag: WeddingPlanning, Label: "Planning"}
}

func WeddingStatusUpcoming() WeddingStatus {
	return WeddingStatus{Tag: WeddingUpcoming, Label: "Upcoming"}
}

func WeddingStatusCompleted() WeddingStatus {
	return WeddingStatus{Tag: WeddingCompleted, Label: "Completed"}
}

// WeddingDateLayout is the layout for all wedding dates. Dates compare
// lexically, which is equivalent to chronological order for this layout.
const WeddingDateLayout = "2006-01-02"

// Wedding is a top-level aggregate. GuestList never grows past GuestCount,
// and every BookingRef corresponds 1:1 with a booking on the referenced
// vendor. Both invariants are enforced by the services, not the store.
type Wedding struct {
	ID          string         `json:"id"`
	CoupleNames []string       `json:"couple_names"`
	Date        string         `json:"date"`
	Budget      uint64         `json:"budget"`
	Location    string         `json:"location"`
	GuestCount  uint           `json:"guest_count"`
	Timeline    []TimelineItem `json:"timeline"`
	Bookings    []BookingRef   `json:"bookings"`
	Tasks       []Task         `json:"tasks"`
	GuestList   []Guest        `json:"guest_list"`
	Registry    []RegistryItem `json:"registry"`
	Status      WeddingStatus  `json:"status"`
}

// FindGuest returns the index of the guest with the given id, or -1.
func (w *Wedding) FindGuest(guestID string) int {
	for i := range w.GuestList {
		if w.GuestList[i].ID == guestID {
			return i
		}
	}
	return -1
}

// FindGuestByEmail returns the index of the guest with the given email, or
// -1. Emails compare byte-for-byte; no case folding.
func (w *Wedding) FindGuestByEmail(email string) int {
	for i := range w.GuestList {
		if w.GuestList[i].Email == email {
			return i
		}
	}
	return -1
}

// FindTask returns the index of the task with the given id, or -1.
func (w *Wedding) FindTask(taskID string) int {
	for i := range w.Tasks {
		if w.Tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

// FindRegistryItem returns the index of the registry item with the given
// name, or -1. Name is the key; exact match only.
func (w *Wedding) FindRegistryItem(name string) int {
	for i := range w.Registry {
		if w.Registry[i].Name == name {
			return i
		}
	}
	return -1
}

// HasTimelineSlot reports whether an item already occupies the time slot.
func (w *Wedding) HasTimelineSlot(time string) bool {
	for i := range w.Timeline {
		if w.Timeline[i].Time == time {
			return true
		}
	}
	return false
}

// CreateWeddingRequest is the payload for POST /v1/weddings.
type CreateWeddingRequest struct {
	CoupleNames []string `json:"couple_names"`
	Date        string   `json:"date"`
	Budget      uint64   `json:"budget"`
	Location    string   `json:"location"`
	GuestCount  uint     `json:"guest_count"`
}
