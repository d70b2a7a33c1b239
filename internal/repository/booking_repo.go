package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"smarak/internal/db"
	apperrors "smarak/internal/errors"
)

type BookingRepository interface {
	CreateCompleted(booking *db.Booking) error
	SetQRCode(id int, qrCode string) error
	GetByID(id int) (*db.Booking, error)
	ListByUser(userID int) ([]db.Booking, error)
	ListAll() ([]db.Booking, error)
}

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(database *sql.DB) BookingRepository {
	return &bookingRepository{db: database}
}

const bookingColumns = `id, user_id, monument, visit_date, time_slot, visitors,
	need_guide, need_parking, base_amount, final_amount, payment_status,
	COALESCE(payment_method, ''), COALESCE(qr_code, ''), nationality, id_number,
	camera_required, is_student, student_discount_applied, created_at, updated_at`

// CreateCompleted reserves the visit window's capacity and inserts the booking
// in a single transaction. The conditional UPDATE only matches when the window
// exists and has room for the whole party, which keeps concurrent bookings
// from overselling a slot.
func (r *bookingRepository) CreateCompleted(booking *db.Booking) error {
	seats := len(booking.Visitors) + 1

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting booking transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE time_slots
		SET booked = booked + $4
		WHERE monument = $1 AND date = $2 AND slot_label = $3
		  AND booked + $4 <= capacity`,
		booking.Monument, booking.VisitDate, booking.TimeSlot, seats)
	if err != nil {
		return fmt.Errorf("error reserving time slot: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reserving time slot: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSlotUnavailable
	}

	visitors, err := json.Marshal(booking.Visitors)
	if err != nil {
		return fmt.Errorf("error encoding visitors: %w", err)
	}

	err = tx.QueryRow(`
		INSERT INTO bookings (user_id, monument, visit_date, time_slot, visitors,
			need_guide, need_parking, base_amount, final_amount, payment_status,
			payment_method, nationality, id_number, camera_required, is_student,
			student_discount_applied)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at`,
		booking.UserID, booking.Monument, booking.VisitDate, booking.TimeSlot,
		visitors, booking.NeedGuide, booking.NeedParking, booking.BaseAmount,
		booking.FinalAmount, booking.PaymentStatus, booking.PaymentMethod,
		booking.Nationality, booking.IDNumber, booking.CameraRequired,
		booking.IsStudent, booking.StudentDiscountApplied).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) SetQRCode(id int, qrCode string) error {
	res, err := r.db.Exec(
		`UPDATE bookings SET qr_code = $1, updated_at = NOW() WHERE id = $2`,
		qrCode, id)
	if err != nil {
		return fmt.Errorf("error storing booking qr code: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error storing booking qr code: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *bookingRepository) GetByID(id int) (*db.Booking, error) {
	row := r.db.QueryRow(
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	booking, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	return booking, nil
}

func (r *bookingRepository) ListByUser(userID int) ([]db.Booking, error) {
	return r.list(`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *bookingRepository) ListAll() ([]db.Booking, error) {
	return r.list(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`)
}

func (r *bookingRepository) list(query string, args ...any) ([]db.Booking, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, *booking)
	}
	return bookings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*db.Booking, error) {
	var booking db.Booking
	var visitors []byte
	err := row.Scan(&booking.ID, &booking.UserID, &booking.Monument,
		&booking.VisitDate, &booking.TimeSlot, &visitors, &booking.NeedGuide,
		&booking.NeedParking, &booking.BaseAmount, &booking.FinalAmount,
		&booking.PaymentStatus, &booking.PaymentMethod, &booking.QRCode,
		&booking.Nationality, &booking.IDNumber, &booking.CameraRequired,
		&booking.IsStudent, &booking.StudentDiscountApplied,
		&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(visitors, &booking.Visitors); err != nil {
		return nil, fmt.Errorf("error decoding visitors: %w", err)
	}
	return &booking, nil
}
