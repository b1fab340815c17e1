package handler

import (
	"net/http"

	"github.com/juneandco/aisle/internal/middleware"
	"github.com/juneandco/aisle/internal/model"
	"github.com/juneandco/aisle/internal/service"
)

// BookingHandler handles booking endpoints
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// Book handles POST /v1/weddings/{weddingId}/bookings - book a vendor
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
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

	var req model.BookVendorRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.VendorID == "" {
		WriteError(w, model.NewBadRequestError("vendor ID required"))
		return
	}

	result, err := h.bookingService.Book(r.Context(), weddingID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, result, map[string]string{
		"self":    "/v1/vendors/" + result.Vendor.ID + "/bookings/" + result.Booking.ID,
		"wedding": "/v1/weddings/" + result.Wedding.ID,
		"vendor":  "/v1/vendors/" + result.Vendor.ID,
	})
}

// UpdateStatus handles PATCH /v1/vendors/{vendorId}/bookings/{bookingId}
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	vendorID := r.PathValue("vendorId")
	bookingID := r.PathValue("bookingId")
	if vendorID == "" || bookingID == "" {
		WriteError(w, model.NewBadRequestError("vendor ID and booking ID required"))
		return
	}

	var req model.UpdateBookingStatusRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	booking, err := h.bookingService.UpdateStatus(r.Context(), vendorID, bookingID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, booking, map[string]string{
		"self":   "/v1/vendors/" + vendorID + "/bookings/" + booking.ID,
		"vendor": "/v1/vendors/" + vendorID,
	})
}
