package handler

import (
	"net/http"
	"net/url"

	"github.com/juneandco/aisle/internal/middleware"
	"github.com/juneandco/aisle/internal/model"
	"github.com/juneandco/aisle/internal/service"
)

// RegistryHandler handles gift registry endpoints
type RegistryHandler struct {
	registryService *service.RegistryService
}

// NewRegistryHandler creates a new registry handler
func NewRegistryHandler(registryService *service.RegistryService) *RegistryHandler {
	return &RegistryHandler{
		registryService: registryService,
	}
}

// itemName decodes the {itemName} path segment. Registry items are keyed by
// their human-entered name, which may contain spaces.
func itemName(r *http.Request) string {
	name := r.PathValue("itemName")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

// Add handles POST /v1/weddings/{weddingId}/registry
func (h *RegistryHandler) Add(w http.ResponseWriter, r *http.Request) {
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

	var req model.AddRegistryItemRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, model.NewBadRequestError("name required"))
		return
	}

	wedding, err := h.registryService.Add(r.Context(), weddingID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, wedding, map[string]string{
		"self": "/v1/weddings/" + wedding.ID + "/registry",
	})
}

// UpdateStatus handles PATCH /v1/weddings/{weddingId}/registry/{itemName}
// Public: gift givers mark items purchased without an account.
func (h *RegistryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	weddingID := r.PathValue("weddingId")
	name := itemName(r)
	if weddingID == "" || name == "" {
		WriteError(w, model.NewBadRequestError("wedding ID and item name required"))
		return
	}

	var req model.UpdateRegistryItemRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	wedding, err := h.registryService.UpdateStatus(r.Context(), weddingID, name, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, wedding, map[string]string{
		"self": "/v1/weddings/" + weddingID + "/registry/" + url.PathEscape(name),
	})
}

// Delete handles DELETE /v1/weddings/{weddingId}/registry/{itemName}
func (h *RegistryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	weddingID := r.PathValue("weddingId")
	name := itemName(r)
	if weddingID == "" || name == "" {
		WriteError(w, model.NewBadRequestError("wedding ID and item name required"))
		return
	}

	if _, err := h.registryService.Delete(r.Context(), weddingID, name); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// List handles GET /v1/weddings/{weddingId}/registry
func (h *RegistryHandler) List(w http.ResponseWriter, r *http.Request) {
	weddingID := r.PathValue("weddingId")
	if weddingID == "" {
		WriteError(w, model.NewBadRequestError("wedding ID required"))
		return
	}

	items, err := h.registryService.List(r.Context(), weddingID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, items, len(items), map[string]string{
		"self": "/v1/weddings/" + weddingID + "/registry",
	})
}

// Get handles GET /v1/weddings/{weddingId}/registry/{itemName}
func (h *RegistryHandler) Get(w http.ResponseWriter, r *http.Request) {
	weddingID := r.PathValue("weddingId")
	name := itemName(r)
	if weddingID == "" || name == "" {
		WriteError(w, model.NewBadRequestError("wedding ID and item name required"))
		return
	}

	item, err := h.registryService.Get(r.Context(), weddingID, name)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, item, map[string]string{
		"self": "/v1/weddings/" + weddingID + "/registry/" + url.PathEscape(name),
	})
}
