package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"smarak/internal/auth"
	"smarak/internal/entities"
	"smarak/internal/service"

	"github.com/gorilla/mux"
)

type ParkingHandler struct {
	Service *service.ParkingService
}

func NewParkingHandler(svc *service.ParkingService) *ParkingHandler {
	return &ParkingHandler{Service: svc}
}

// Slots handles GET /api/parking/slots?monument=...&date=...&vehicle_type=...
// vehicle_type is optional; when omitted all types are returned.
func (h *ParkingHandler) Slots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	monument := query.Get("monument")
	date := query.Get("date")
	vehicleType := query.Get("vehicle_type")
	if monument == "" || date == "" {
		http.Error(w, "monument and date query parameters are required", http.StatusBadRequest)
		return
	}
	slots, err := h.Service.AvailableSlots(monument, date, vehicleType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, slots)
}

func (h *ParkingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req entities.ParkingQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	quote, err := h.Service.Quote(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *ParkingHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req entities.ParkingReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.Reserve(auth.UserID(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *ParkingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid reservation id", http.StatusBadRequest)
		return
	}
	var payment entities.PaymentDetails
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.Pay(auth.UserID(r.Context()), id, payment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ParkingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid reservation id", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.Get(auth.UserID(r.Context()), auth.IsAdmin(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ParkingHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.ListForUser(auth.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
