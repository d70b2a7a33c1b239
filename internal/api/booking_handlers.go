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

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// Availability handles GET /api/slots?monument=...&date=YYYY-MM-DD.
func (h *BookingHandler) Availability(w http.ResponseWriter, r *http.Request) {
	monument := r.URL.Query().Get("monument")
	date := r.URL.Query().Get("date")
	if monument == "" || date == "" {
		http.Error(w, "monument and date query parameters are required", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.Availability(monument, date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req entities.QuoteRequest
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

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.Create(auth.UserID(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.Get(auth.UserID(r.Context()), auth.IsAdmin(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.ListForUser(auth.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Scan handles the gate scanner's QR verification lookup.
func (h *BookingHandler) Scan(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.Scan(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
