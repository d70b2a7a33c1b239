package api

import (
	"net/http"

	"smarak/internal/service"
)

type AdminHandler struct {
	Bookings *service.BookingService
	Parking  *service.ParkingService
}

func NewAdminHandler(bookings *service.BookingService, parking *service.ParkingService) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Parking: parking}
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Bookings.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Parking.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
