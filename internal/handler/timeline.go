package handler

import (
	"net/http"

	"github.com/juneandco/aisle/internal/middleware"
	"github.com/juneandco/aisle/internal/model"
	"github.com/juneandco/aisle/internal/service"
)

// TimelineHandler handles timeline endpoints
type TimelineHandler struct {
	timelineService *service.TimelineService
}

// NewTimelineHandler creates a new timeline handler
func NewTimelineHandler(timelineService *service.TimelineService) *TimelineHandler {
	return &TimelineHandler{
		timelineService: timelineService,
	}
}

// Add handles POST /v1/weddings/{weddingId}/timeline
func (h *TimelineHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	weddingID := r.PathValue("weddingId")
	if weddingID == "" {
		WriteError(w, model.NewBadRequestError("wedding ID required"))
		return
	}

	var req model.AddTimelineItemRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.Time == "" {
		WriteError(w, model.NewBadRequestError("time required"))
		return
	}

	wedding, err := h.timelineService.Add(r.Context(), weddingID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, wedding, map[string]string{
		"self": "/v1/weddings/" + wedding.ID + "/timeline",
	})
}

// Get handles GET /v1/weddings/{weddingId}/timeline
func (h *TimelineHandler) Get(w http.ResponseWriter, r *http.Request) {
	weddingID := r.PathValue("weddingId")
	if weddingID == "" {
		WriteError(w, model.NewBadRequestError("wedding ID required"))
		return
	}

	items, err := h.timelineService.Get(r.Context(), weddingID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, items, len(items), map[string]string{
		"self": "/v1/weddings/" + weddingID + "/timeline",
	})
}
