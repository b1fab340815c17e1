package handler

import (
	"net/http"

	"github.com/juneandco/aisle/internal/middleware"
	"github.com/juneandco/aisle/internal/model"
	"github.com/juneandco/aisle/internal/service"
)

// WeddingHandler handles wedding endpoints
type WeddingHandler struct {
	weddingService *service.WeddingService
}

// NewWeddingHandler creates a new wedding handler
func NewWeddingHandler(weddingService *service.WeddingService) *WeddingHandler {
	return &WeddingHandler{
		weddingService: weddingService,
	}
}

// Create handles POST /v1/weddings
func (h *WeddingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateWeddingRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	wedding, err := h.weddingService.Create(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, wedding, map[string]string{
		"self": "/v1/weddings/" + wedding.ID,
	})
}

// Get handles GET /v1/weddings/{weddingId}
func (h *WeddingHandler) Get(w http.ResponseWriter, r *http.Request) {
	weddingID := r.PathValue("weddingId")
	if weddingID == "" {
		WriteError(w, model.NewBadRequestError("wedding ID required"))
		return
	}

	wedding, err := h.weddingService.Get(r.Context(), weddingID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, wedding, map[string]string{
		"self": "/v1/weddings/" + wedding.ID,
	})
}

// List handles GET /v1/weddings
func (h *WeddingHandler) List(w http.ResponseWriter, r *http.Request) {
	weddings, err := h.weddingService.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, weddings, len(weddings), map[string]string{
		"self": "/v1/weddings",
	})
}
