package handler

import (
	"net/http"

	"github.com/juneandco/aisle/internal/middleware"
	"github.com/juneandco/aisle/internal/model"
	"github.com/juneandco/aisle/internal/service"
)

// RSVPHandler handles guest list and RSVP endpoints
type RSVPHandler struct {
	rsvpService *service.RSVPService
}

// NewRSVPHandler creates a new RSVP handler
func NewRSVPHandler(rsvpService *service.RSVPService) *RSVPHandler {
	return &RSVPHandler{
		rsvpService: rsvpService,
	}
}

// Submit handles POST /v1/weddings/{weddingId}/rsvps - public, no auth
func (h *RSVPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	weddingID := r.PathValue("weddingId")
	if weddingID == "" {
		WriteError(w, model.NewBadRequestError("wedding ID required"))
		return
	}

	var req model.SubmitRSVPRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.rsvpService.Submit(r.Context(), weddingID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, result, map[string]string{
		"self":   "/v1/weddings/" + weddingID + "/guests/" + result.Guest.ID,
		"status": "/v1/weddings/" + weddingID + "/rsvp-status?email=" + result.Guest.Email,
	})
}

// Approve handles POST /v1/weddings/{weddingId}/guests/{guestId}/approve
func (h *RSVPHandler) Approve(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	weddingID := r.PathValue("weddingId")
	guestID := r.PathValue("guestId")
	if weddingID == "" || guestID == "" {
		WriteError(w, model.NewBadRequestError("wedding ID and guest ID required"))
		return
	}

	var req model.ApproveGuestRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.rsvpService.Approve(r.Context(), weddingID, guestID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, result, map[string]string{
		"self": "/v1/weddings/" + weddingID + "/guests/" + guestID,
	})
}

// Decline handles POST /v1/weddings/{weddingId}/guests/{guestId}/decline
func (h *RSVPHandler) Decline(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	weddingID := r.PathValue("weddingId")
	guestID := r.PathValue("guestId")
	if weddingID == "" || guestID == "" {
		WriteError(w, model.NewBadRequestError("wedding ID and guest ID required"))
		return
	}

	var req model.DeclineGuestRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.rsvpService.Decline(r.Context(), weddingID, guestID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, result, map[string]string{
		"self": "/v1/weddings/" + weddingID + "/guests/" + guestID,
	})
}

// Guests handles GET /v1/weddings/{weddingId}/guests
func (h *RSVPHandler) Guests(w http.ResponseWriter, r *http.Request) {
	weddingID := r.PathValue("weddingId")
	if weddingID == "" {
		WriteError(w, model.NewBadRequestError("wedding ID required"))
		return
	}

	guests, err := h.rsvpService.Guests(r.Context(), weddingID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, guests, len(guests), map[string]string{
		"self": "/v1/weddings/" + weddingID + "/guests",
	})
}

// Lookup handles GET /v1/weddings/{weddingId}/guests/lookup?email=
func (h *RSVPHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	weddingID := r.PathValue("weddingId")
	email := r.URL.Query().Get("email")
	if weddingID == "" || email == "" {
		WriteError(w, model.NewBadRequestError("wedding ID and email required"))
		return
	}

	guest, err := h.rsvpService.GuestByEmail(r.Context(), weddingID, email)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, guest, map[string]string{
		"self": "/v1/weddings/" + weddingID + "/guests/" + guest.ID,
	})
}

// Status handles GET /v1/weddings/{weddingId}/rsvp-status?email=
func (h *RSVPHandler) Status(w http.ResponseWriter, r *http.Request) {
	weddingID := r.PathValue("weddingId")
	email := r.URL.Query().Get("email")
	if weddingID == "" || email == "" {
		WriteError(w, model.NewBadRequestError("wedding ID and email required"))
		return
	}

	status, err := h.rsvpService.StatusByEmail(r.Context(), weddingID, email)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, status, nil)
}

// Count handles GET /v1/weddings/{weddingId}/guests/count
func (h *RSVPHandler) Count(w http.ResponseWriter, r *http.Request) {
	weddingID := r.PathValue("weddingId")
	if weddingID == "" {
		WriteError(w, model.NewBadRequestError("wedding ID required"))
		return
	}

	count, err := h.rsvpService.Count(r.Context(), weddingID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, map[string]int{"count": count}, map[string]string{
		"self": "/v1/weddings/" + weddingID + "/guests/count",
	})
}
