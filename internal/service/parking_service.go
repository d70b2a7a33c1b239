package service

import (
	"time"

	"smarak/internal/db"
	"smarak/internal/entities"
	apperrors "smarak/internal/errors"
	"smarak/internal/metrics"
	"smarak/internal/monuments"
	"smarak/internal/pricing"
	"smarak/internal/qr"
	"smarak/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ParkingService struct {
	repo   repository.ParkingRepository
	sender *SenderService
	log    *zerolog.Logger
}

func NewParkingService(repo repository.ParkingRepository, sender *SenderService, log *zerolog.Logger) *ParkingService {
	return &ParkingService{repo: repo, sender: sender, log: log}
}

func validVehicleType(t string) bool {
	return t == "two_wheeler" || t == "four_wheeler" || t == "bus"
}

// AvailableSlots lists the free slots at a monument for a date, optionally
// filtered by vehicle type. Occupancy is date-scoped: a slot reserved for one
// day is free on all others.
func (s *ParkingService) AvailableSlots(monument, dateStr, vehicleType string) ([]entities.ParkingSlotResponse, error) {
	if !monuments.HasParking(monument) {
		return nil, apperrors.ErrNotFound
	}
	if vehicleType != "" && !validVehicleType(vehicleType) {
		return nil, apperrors.NewValidationError("vehicle_type")
	}
	date, err := parseFutureDate(dateStr)
	if err != nil {
		return nil, err
	}

	slots, err := s.repo.AvailableSlots(monument, date, vehicleType)
	if err != nil {
		return nil, apperrors.NewPersistenceError("list parking slots", err)
	}
	out := make([]entities.ParkingSlotResponse, 0, len(slots))
	for _, slot := range slots {
		out = append(out, entities.ParkingSlotResponse{
			ID:          slot.ID,
			Monument:    slot.Monument,
			SlotNumber:  slot.SlotNumber,
			VehicleType: slot.VehicleType,
		})
	}
	return out, nil
}

// Quote prices a parking reservation without persisting anything.
func (s *ParkingService) Quote(req entities.ParkingQuoteRequest) (*entities.ParkingQuoteResponse, error) {
	amount, err := pricing.QuoteParking(req.DurationHours)
	if err != nil {
		return nil, apperrors.NewValidationError("duration_hours")
	}
	return &entities.ParkingQuoteResponse{
		DurationHours: req.DurationHours,
		HourlyRate:    pricing.ParkingHourlyRate,
		Amount:        amount,
	}, nil
}

// Reserve creates a pending reservation for a slot and date. The slot stays
// held until the payment completes or the cleanup job purges it.
func (s *ParkingService) Reserve(userID int, req entities.ParkingReservationRequest) (*entities.ParkingReservationResponse, error) {
	var missing []string
	if req.Monument == "" {
		missing = append(missing, "monument")
	}
	if req.SlotID == 0 {
		missing = append(missing, "slot_id")
	}
	if req.VehicleNumber == "" {
		missing = append(missing, "vehicle_number")
	}
	if req.DriverName == "" {
		missing = append(missing, "driver_name")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.ReservationDate == "" {
		missing = append(missing, "reservation_date")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(missing...)
	}

	if !monuments.HasParking(req.Monument) {
		return nil, apperrors.ErrNotFound
	}
	if !validVehicleType(req.VehicleType) {
		return nil, apperrors.NewValidationError("vehicle_type")
	}
	date, err := parseFutureDate(req.ReservationDate)
	if err != nil {
		return nil, err
	}
	amount, err := pricing.QuoteParking(req.DurationHours)
	if err != nil {
		return nil, apperrors.NewValidationError("duration_hours")
	}

	slot, err := s.repo.GetSlot(req.SlotID)
	if err != nil {
		return nil, err
	}
	if slot.Monument != req.Monument || slot.VehicleType != req.VehicleType {
		return nil, apperrors.ErrInvalidSlot
	}

	reservation := &db.ParkingReservation{
		UserID:          userID,
		SlotID:          slot.ID,
		Monument:        req.Monument,
		VehicleType:     req.VehicleType,
		VehicleNumber:   req.VehicleNumber,
		DriverName:      req.DriverName,
		Phone:           req.Phone,
		ReservationDate: date,
		DurationHours:   req.DurationHours,
		Amount:          amount,
		PaymentStatus:   statusPending,
	}
	if err := s.repo.CreateReservation(reservation); err != nil {
		return nil, err
	}

	metrics.IncReservation(reservation.Monument)
	s.log.Info().
		Int("reservation_id", reservation.ID).
		Str("monument", reservation.Monument).
		Int("slot_id", reservation.SlotID).
		Str("date", req.ReservationDate).
		Msg("parking reservation created")
	return reservationResponse(reservation), nil
}

// Pay completes the payment on a pending reservation and issues its QR code.
func (s *ParkingService) Pay(userID, id int, payment entities.PaymentDetails) (*entities.ParkingReservationResponse, error) {
	reservation, err := s.repo.GetReservation(id)
	if err != nil {
		return nil, err
	}
	if reservation.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	if reservation.PaymentStatus == statusCompleted {
		return nil, apperrors.ErrAlreadyPaid
	}
	if err := ValidatePayment(payment); err != nil {
		metrics.IncPaymentFailure()
		return nil, err
	}

	slot, err := s.repo.GetSlot(reservation.SlotID)
	if err != nil {
		return nil, err
	}
	code, err := qr.Encode(qr.ParkingCredential{
		Ref:           uuid.NewString(),
		Type:          "parking",
		ReservationID: reservation.ID,
		Monument:      reservation.Monument,
		Date:          reservation.ReservationDate.Format(dateLayout),
		SlotNumber:    slot.SlotNumber,
		VehicleNumber: reservation.VehicleNumber,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.CompletePayment(reservation.ID, payment.Method, code); err != nil {
		return nil, err
	}
	reservation.PaymentStatus = statusCompleted
	reservation.PaymentMethod = payment.Method
	reservation.QRCode = code

	s.log.Info().
		Int("reservation_id", reservation.ID).
		Str("method", payment.Method).
		Float64("amount", reservation.Amount).
		Msg("parking payment completed")

	s.sender.SendParkingConfirmation(reservation)
	return reservationResponse(reservation), nil
}

// Get returns one reservation. Non-admin callers only see their own.
func (s *ParkingService) Get(userID int, isAdmin bool, id int) (*entities.ParkingReservationResponse, error) {
	reservation, err := s.repo.GetReservation(id)
	if err != nil {
		return nil, err
	}
	if reservation.UserID != userID && !isAdmin {
		return nil, apperrors.ErrNotFound
	}
	return reservationResponse(reservation), nil
}

func (s *ParkingService) ListForUser(userID int) ([]entities.ParkingReservationResponse, error) {
	reservations, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return reservationResponses(reservations), nil
}

func (s *ParkingService) ListAll() ([]entities.ParkingReservationResponse, error) {
	reservations, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return reservationResponses(reservations), nil
}

func reservationResponse(r *db.ParkingReservation) *entities.ParkingReservationResponse {
	return &entities.ParkingReservationResponse{
		ID:              r.ID,
		Monument:        r.Monument,
		SlotID:          r.SlotID,
		VehicleType:     r.VehicleType,
		VehicleNumber:   r.VehicleNumber,
		DriverName:      r.DriverName,
		Phone:           r.Phone,
		ReservationDate: r.ReservationDate.Format(dateLayout),
		DurationHours:   r.DurationHours,
		Amount:          r.Amount,
		PaymentStatus:   r.PaymentStatus,
		PaymentMethod:   r.PaymentMethod,
		QRCode:          r.QRCode,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

func reservationResponses(reservations []db.ParkingReservation) []entities.ParkingReservationResponse {
	out := make([]entities.ParkingReservationResponse, 0, len(reservations))
	for i := range reservations {
		out = append(out, *reservationResponse(&reservations[i]))
	}
	return out
}
