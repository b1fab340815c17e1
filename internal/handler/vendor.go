package handler

import (
	"net/http"

	"github.com/juneandco/aisle/internal/middleware"
	"github.com/juneandco/aisle/internal/model"
	"github.com/juneandco/aisle/internal/service"
)

// VendorHandler handles vendor endpoints
type VendorHandler struct {
	vendorService *service.VendorService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService *service.VendorService) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
	}
}

// Register handles POST /v1/vendors - register a vendor owned by the caller
func (h *VendorHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.RegisterVendorRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	vendor, err := h.vendorService.Register(r.Context(), userID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, vendor, map[string]string{
		"self": "/v1/vendors/" + vendor.ID,
	})
}

// Get handles GET /v1/vendors/{vendorId}
func (h *VendorHandler) Get(w http.ResponseWriter, r *http.Request) {
	vendorID := r.PathValue("vendorId")
	if vendorID == "" {
		WriteError(w, model.NewBadRequestError("vendor ID required"))
		return
	}

	vendor, err := h.vendorService.Get(r.Context(), vendorID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, vendor, map[string]string{
		"self": "/v1/vendors/" + vendor.ID,
	})
}

// Search handles GET /v1/vendors?category= - list vendors, optionally by category
func (h *VendorHandler) Search(w http.ResponseWriter, r *http.Request) {
	category := model.VendorCategory(r.URL.Query().Get("category"))

	vendors, err := h.vendorService.Search(r.Context(), category)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, vendors, len(vendors), map[string]string{
		"self": "/v1/vendors",
	})
}

// AddReview handles POST /v1/vendors/{vendorId}/reviews
func (h *VendorHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	vendorID := r.PathValue("vendorId")
	if vendorID == "" {
		WriteError(w, model.NewBadRequestError("vendor ID required"))
		return
	}

	var req model.AddReviewRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	vendor, err := h.vendorService.AddReview(r.Context(), vendorID, userID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, vendor, map[string]string{
		"self": "/v1/vendors/" + vendor.ID,
	})
}

// Verify handles POST /v1/admin/vendors/{vendorId}/verify - admin only
func (h *VendorHandler) Verify(w http.ResponseWriter, r *http.Request) {
	vendorID := r.PathValue("vendorId")
	if vendorID == "" {
		WriteError(w, model.NewBadRequestError("vendor ID required"))
		return
	}

	vendor, err := h.vendorService.Verify(r.Context(), vendorID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, vendor, map[string]string{
		"self": "/v1/vendors/" + vendor.ID,
	})
}
