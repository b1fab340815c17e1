package model

import "regexp"

// RSVPStatusTag is the discriminant of a guest's RSVP status.
type RSVPStatusTag string

const (
	RSVPPending   RSVPStatusTag = "pending"
	RSVPConfirmed RSVPStatusTag = "confirmed"
	RSVPDeclined  RSVPStatusTag = "declined"
)

// RSVPStatus is a tagged union. Reason is only meaningful when declined.
type RSVPStatus struct {
	Tag    RSVPStatusTag `json:"tag"`
	Reason string        `json:"reason,omitempty"`
}

func RSVPStatusPending() RSVPStatus {
	return RSVPStatus{Tag: RSVPPending}
}

func RSVPStatusConfirmed() RSVPStatus {
	return RSVPStatus{Tag: RSVPConfirmed}
}

func RSVPStatusDeclined(reason string) RSVPStatus {
	return RSVPStatus{Tag: RSVPDeclined, Reason: reason}
}

// TableType is the discriminant of a guest's table assignment.
type TableType string

const (
	TableVIP        TableType = "vip"
	TableFamily     TableType = "family"
	TableStandard   TableType = "standard"
	TableUnassigned TableType = "unassigned"
)

// IsValid reports whether the table type is known.
func (t TableType) IsValid() bool {
	switch t {
	case TableVIP, TableFamily, TableStandard, TableUnassigned:
		return true
	default:
		return false
	}
}

// TableAssignment is a tagged union. Number is only meaningful for the
// numbered variants; it is accepted verbatim, with no uniqueness or
// capacity check across guests.
type TableAssignment struct {
	Type   TableType `json:"type"`
	Number int       `json:"number,omitempty"`
}

func Unassigned() TableAssignment {
	return TableAssignment{Type: TableUnassigned}
}

// Guest lives inside a wedding's guest list. Email is unique within the
// list by exact string match.
type Guest struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Status  RSVPStatus      `json:"status"`
	Dietary string          `json:"dietary,omitempty"`
	PlusOne bool            `json:"plus_one"`
	Table   TableAssignment `json:"table"`
}

// emailShape matches local@domain.tld with no whitespace. Deliberately
// loose; the invitation flow is the real gatekeeper.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidGuestEmail reports whether the email has a plausible shape.
func IsValidGuestEmail(email string) bool {
	return emailShape.MatchString(email)
}

// SubmitRSVPRequest is the payload for POST /v1/weddings/{weddingId}/rsvps.
type SubmitRSVPRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Dietary string `json:"dietary,omitempty"`
	PlusOne bool   `json:"plus_one"`
}

// ApproveGuestRequest is the payload for guest approval.
type ApproveGuestRequest struct {
	Table TableAssignment `json:"table"`
}

// DeclineGuestRequest is the payload for guest decline.
type DeclineGuestRequest struct {
	Reason string `json:"reason"`
}

// RSVPResult is the success payload of an RSVP mutation: the updated
// wedding plus the guest that changed.
type RSVPResult struct {
	Wedding *Wedding `json:"wedding"`
	Guest   *Guest   `json:"guest"`
}
