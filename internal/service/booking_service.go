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

const dateLayout = "2006-01-02"

const (
	statusPending   = "pending"
	statusCompleted = "completed"
)

type BookingService struct {
	bookings repository.BookingRepository
	slots    repository.SlotRepository
	users    repository.UserRepository
	sender   *SenderService
	log      *zerolog.Logger
}

func NewBookingService(bookings repository.BookingRepository, slots repository.SlotRepository,
	users repository.UserRepository, sender *SenderService, log *zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, slots: slots, users: users, sender: sender, log: log}
}

// Availability returns the visit windows of a monument on a date that still
// have room. The fixed daily windows are created lazily on first request.
func (s *BookingService) Availability(monument, dateStr string) (*entities.AvailabilityResponse, error) {
	if _, ok := monuments.Get(monument); !ok {
		return nil, apperrors.ErrNotFound
	}
	date, err := parseFutureDate(dateStr)
	if err != nil {
		return nil, err
	}

	if err := s.slots.EnsureDefaultSlots(monument, date); err != nil {
		return nil, apperrors.NewPersistenceError("seed slots", err)
	}
	slots, err := s.slots.AvailableSlots(monument, date)
	if err != nil {
		return nil, apperrors.NewPersistenceError("list slots", err)
	}

	resp := &entities.AvailabilityResponse{Monument: monument, Date: dateStr}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, entities.SlotAvailability{
			Label:     slot.Label,
			Capacity:  slot.Capacity,
			Booked:    slot.Booked,
			Available: slot.Available(),
		})
	}
	return resp, nil
}

// Quote prices a visit without persisting anything.
func (s *BookingService) Quote(req entities.QuoteRequest) (*pricing.VisitQuote, error) {
	fee, err := s.residentFee(req.Monument)
	if err != nil {
		return nil, err
	}
	if req.AdditionalVisitors < 0 || req.AdditionalVisitors > pricing.MaxAdditionalVisitors {
		return nil, apperrors.ErrTooManyVisitors
	}
	quote, err := pricing.QuoteVisit(fee, req.AdditionalVisitors, req.NeedGuide, req.IsStudent)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// Create confirms a booking: it validates the request, prices it the same way
// Quote does, simulates the payment, and reserves the slot capacity together
// with the booking row. The QR code is attached after the insert because its
// payload includes the booking ID.
func (s *BookingService) Create(userID int, req entities.BookingRequest) (*entities.BookingResponse, error) {
	var missing []string
	if req.Monument == "" {
		missing = append(missing, "monument")
	}
	if req.VisitDate == "" {
		missing = append(missing, "visit_date")
	}
	if req.TimeSlot == "" {
		missing = append(missing, "time_slot")
	}
	if req.Nationality == "" {
		missing = append(missing, "nationality")
	}
	if req.IDNumber == "" {
		missing = append(missing, "id_number")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(missing...)
	}

	fee, err := s.residentFee(req.Monument)
	if err != nil {
		return nil, err
	}
	date, err := parseFutureDate(req.VisitDate)
	if err != nil {
		return nil, err
	}
	if len(req.Visitors) > pricing.MaxAdditionalVisitors {
		return nil, apperrors.ErrTooManyVisitors
	}
	if err := ValidatePayment(req.Payment); err != nil {
		metrics.IncPaymentFailure()
		return nil, err
	}

	quote, err := pricing.QuoteVisit(fee, len(req.Visitors), req.NeedGuide, req.IsStudent)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if err := s.slots.EnsureDefaultSlots(req.Monument, date); err != nil {
		return nil, apperrors.NewPersistenceError("seed slots", err)
	}

	booking := &db.Booking{
		UserID:                 userID,
		Monument:               req.Monument,
		VisitDate:              date,
		TimeSlot:               req.TimeSlot,
		Visitors:               req.Visitors,
		NeedGuide:              req.NeedGuide,
		NeedParking:            req.NeedParking,
		BaseAmount:             quote.BaseAmount,
		FinalAmount:            quote.FinalAmount,
		PaymentStatus:          statusCompleted,
		PaymentMethod:          req.Payment.Method,
		Nationality:            req.Nationality,
		IDNumber:               req.IDNumber,
		CameraRequired:         req.CameraRequired,
		IsStudent:              req.IsStudent,
		StudentDiscountApplied: quote.StudentDiscount > 0,
	}
	if booking.Visitors == nil {
		booking.Visitors = []db.Visitor{}
	}
	if err := s.bookings.CreateCompleted(booking); err != nil {
		return nil, err
	}

	code, err := qr.Encode(qr.VisitCredential{
		Ref:            uuid.NewString(),
		BookingID:      booking.ID,
		Monument:       booking.Monument,
		Date:           req.VisitDate,
		TimeSlot:       booking.TimeSlot,
		Name:           user.Name,
		Email:          user.Email,
		Visitors:       booking.Visitors,
		IsStudent:      booking.IsStudent,
		NeedGuide:      booking.NeedGuide,
		NeedParking:    booking.NeedParking,
		IDNumber:       booking.IDNumber,
		CameraRequired: booking.CameraRequired,
	})
	if err != nil {
		s.log.Error().Err(err).Int("booking_id", booking.ID).Msg("qr generation failed")
	} else {
		booking.QRCode = code
		if err := s.bookings.SetQRCode(booking.ID, code); err != nil {
			s.log.Error().Err(err).Int("booking_id", booking.ID).Msg("storing qr code failed")
		}
	}

	metrics.IncBooking(booking.Monument)
	s.log.Info().
		Int("booking_id", booking.ID).
		Str("monument", booking.Monument).
		Str("time_slot", booking.TimeSlot).
		Int("visitors", len(booking.Visitors)+1).
		Float64("amount", booking.FinalAmount).
		Msg("booking confirmed")

	s.sender.SendBookingConfirmation(user.Email, user.Name, booking)
	return bookingResponse(booking), nil
}

// Get returns one booking. Non-admin callers only see their own.
func (s *BookingService) Get(userID int, isAdmin bool, id int) (*entities.BookingResponse, error) {
	booking, err := s.bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID && !isAdmin {
		return nil, apperrors.ErrNotFound
	}
	return bookingResponse(booking), nil
}

func (s *BookingService) ListForUser(userID int) ([]entities.BookingResponse, error) {
	bookings, err := s.bookings.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return bookingResponses(bookings), nil
}

func (s *BookingService) ListAll() ([]entities.BookingResponse, error) {
	bookings, err := s.bookings.ListAll()
	if err != nil {
		return nil, err
	}
	return bookingResponses(bookings), nil
}

// Scan verifies a booking at the entry gate. A booking is valid when its
// payment completed, a QR code was issued, and the visit date has not passed.
func (s *BookingService) Scan(id int) (*entities.ScanResponse, error) {
	booking, err := s.bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return &entities.ScanResponse{
		Valid: booking.PaymentStatus == statusCompleted &&
			booking.QRCode != "" && !booking.VisitDate.Before(today),
		BookingID:     booking.ID,
		Monument:      booking.Monument,
		VisitDate:     booking.VisitDate.Format(dateLayout),
		TimeSlot:      booking.TimeSlot,
		Visitors:      booking.Visitors,
		PaymentStatus: booking.PaymentStatus,
	}, nil
}

func (s *BookingService) residentFee(name string) (float64, error) {
	monument, ok := monuments.Get(name)
	if !ok {
		return 0, apperrors.ErrNotFound
	}
	fee, err := monuments.ParseResidentFee(monument.EntryFee)
	if err != nil {
		return 0, err
	}
	return fee, nil
}

// parseFutureDate parses a YYYY-MM-DD date and rejects dates in the past.
func parseFutureDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date")
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return time.Time{}, apperrors.NewValidationError("date")
	}
	return date, nil
}

func bookingResponse(b *db.Booking) *entities.BookingResponse {
	return &entities.BookingResponse{
		ID:                     b.ID,
		Monument:               b.Monument,
		VisitDate:              b.VisitDate.Format(dateLayout),
		TimeSlot:               b.TimeSlot,
		Visitors:               b.Visitors,
		NeedGuide:              b.NeedGuide,
		NeedParking:            b.NeedParking,
		BaseAmount:             b.BaseAmount,
		FinalAmount:            b.FinalAmount,
		PaymentStatus:          b.PaymentStatus,
		PaymentMethod:          b.PaymentMethod,
		StudentDiscountApplied: b.StudentDiscountApplied,
		QRCode:                 b.QRCode,
		CreatedAt:              b.CreatedAt.Format(time.RFC3339),
	}
}

func bookingResponses(bookings []db.Booking) []entities.BookingResponse {
	out := make([]entities.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, *bookingResponse(&bookings[i]))
	}
	return out
}
