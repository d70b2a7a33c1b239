package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smarak/internal/db"
	apperrors "smarak/internal/errors"

	"github.com/lib/pq"
)

// Per-vehicle-type slot count seeded for every monument that offers parking.
const slotsPerVehicleType = 10

var vehicleTypes = []string{"two_wheeler", "four_wheeler", "bus"}

type ParkingRepository interface {
	SeedSlots(monuments []string) error
	AvailableSlots(monument string, date time.Time, vehicleType string) ([]db.ParkingSlot, error)
	GetSlot(id int) (*db.ParkingSlot, error)
	CreateReservation(reservation *db.ParkingReservation) error
	CompletePayment(id int, method, qrCode string) error
	GetReservation(id int) (*db.ParkingReservation, error)
	ListByUser(userID int) ([]db.ParkingReservation, error)
	ListAll() ([]db.ParkingReservation, error)
	DeleteStalePending(before time.Time) (int64, error)
}

type parkingRepository struct {
	db *sql.DB
}

func NewParkingRepository(database *sql.DB) ParkingRepository {
	return &parkingRepository{db: database}
}

// SeedSlots creates the fixed parking layout for each monument: ten slots per
// vehicle type, numbered consecutively. Existing rows are kept, so reruns on
// startup do not disturb reservations.
func (r *parkingRepository) SeedSlots(monuments []string) error {
	query := `
		INSERT INTO parking_slots (monument, slot_number, vehicle_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (monument, slot_number) DO NOTHING`

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting parking seed: %w", err)
	}
	defer tx.Rollback()

	for _, monument := range monuments {
		number := 1
		for _, vehicleType := range vehicleTypes {
			for i := 0; i < slotsPerVehicleType; i++ {
				if _, err := tx.Exec(query, monument, number, vehicleType); err != nil {
					return fmt.Errorf("error seeding parking slots for %s: %w", monument, err)
				}
				number++
			}
		}
	}
	return tx.Commit()
}

// AvailableSlots lists the monument's slots that have no reservation on the
// given date. An empty vehicleType matches all types.
func (r *parkingRepository) AvailableSlots(monument string, date time.Time, vehicleType string) ([]db.ParkingSlot, error) {
	query := `
		SELECT id, monument, slot_number, vehicle_type
		FROM parking_slots
		WHERE monument = $1 AND ($2 = '' OR vehicle_type = $2)
		  AND id NOT IN (
			SELECT slot_id FROM parking_reservations WHERE reservation_date = $3
		  )
		ORDER BY slot_number`
	rows, err := r.db.Query(query, monument, vehicleType, date)
	if err != nil {
		return nil, fmt.Errorf("error querying parking slots: %w", err)
	}
	defer rows.Close()

	var slots []db.ParkingSlot
	for rows.Next() {
		var s db.ParkingSlot
		if err := rows.Scan(&s.ID, &s.Monument, &s.SlotNumber, &s.VehicleType); err != nil {
			return nil, fmt.Errorf("error scanning parking slot: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func (r *parkingRepository) GetSlot(id int) (*db.ParkingSlot, error) {
	var s db.ParkingSlot
	err := r.db.QueryRow(
		`SELECT id, monument, slot_number, vehicle_type FROM parking_slots WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Monument, &s.SlotNumber, &s.VehicleType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrInvalidSlot
		}
		return nil, fmt.Errorf("error querying parking slot: %w", err)
	}
	return &s, nil
}

// CreateReservation inserts a pending reservation. The UNIQUE constraint on
// (slot_id, reservation_date) is the arbiter under concurrency; a violation
// means somebody else took the slot for that date first.
func (r *parkingRepository) CreateReservation(reservation *db.ParkingReservation) error {
	query := `
		INSERT INTO parking_reservations (user_id, slot_id, monument, vehicle_type,
			vehicle_number, driver_name, phone, reservation_date, duration_hours,
			amount, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query,
		reservation.UserID, reservation.SlotID, reservation.Monument,
		reservation.VehicleType, reservation.VehicleNumber, reservation.DriverName,
		reservation.Phone, reservation.ReservationDate, reservation.DurationHours,
		reservation.Amount, reservation.PaymentStatus).
		Scan(&reservation.ID, &reservation.CreatedAt, &reservation.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return apperrors.ErrAlreadyReserved
		}
		return fmt.Errorf("error creating parking reservation: %w", err)
	}
	return nil
}

func (r *parkingRepository) CompletePayment(id int, method, qrCode string) error {
	res, err := r.db.Exec(`
		UPDATE parking_reservations
		SET payment_status = 'completed', payment_method = $1, qr_code = $2, updated_at = NOW()
		WHERE id = $3`,
		method, qrCode, id)
	if err != nil {
		return fmt.Errorf("error completing reservation payment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error completing reservation payment: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const reservationColumns = `r.id, r.user_id, r.slot_id, r.monument, r.vehicle_type,
	r.vehicle_number, r.driver_name, r.phone, r.reservation_date, r.duration_hours,
	r.amount, r.payment_status, COALESCE(r.payment_method, ''), COALESCE(r.qr_code, ''),
	r.created_at, r.updated_at`

func (r *parkingRepository) GetReservation(id int) (*db.ParkingReservation, error) {
	row := r.db.QueryRow(
		`SELECT `+reservationColumns+` FROM parking_reservations r WHERE r.id = $1`, id)
	reservation, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying parking reservation: %w", err)
	}
	return reservation, nil
}

func (r *parkingRepository) ListByUser(userID int) ([]db.ParkingReservation, error) {
	return r.list(`SELECT `+reservationColumns+`
		FROM parking_reservations r WHERE r.user_id = $1 ORDER BY r.created_at DESC`, userID)
}

func (r *parkingRepository) ListAll() ([]db.ParkingReservation, error) {
	return r.list(`SELECT ` + reservationColumns + `
		FROM parking_reservations r ORDER BY r.created_at DESC`)
}

func (r *parkingRepository) list(query string, args ...any) ([]db.ParkingReservation, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying parking reservations: %w", err)
	}
	defer rows.Close()

	var reservations []db.ParkingReservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning parking reservation: %w", err)
		}
		reservations = append(reservations, *reservation)
	}
	return reservations, rows.Err()
}

// DeleteStalePending removes unpaid reservations created before the cutoff,
// releasing their slots for the date.
func (r *parkingRepository) DeleteStalePending(before time.Time) (int64, error) {
	res, err := r.db.Exec(
		`DELETE FROM parking_reservations WHERE payment_status = 'pending' AND created_at < $1`,
		before)
	if err != nil {
		return 0, fmt.Errorf("error purging stale reservations: %w", err)
	}
	return res.RowsAffected()
}

func scanReservation(row rowScanner) (*db.ParkingReservation, error) {
	var reservation db.ParkingReservation
	err := row.Scan(&reservation.ID, &reservation.UserID, &reservation.SlotID,
		&reservation.Monument, &reservation.VehicleType, &reservation.VehicleNumber,
		&reservation.DriverName, &reservation.Phone, &reservation.ReservationDate,
		&reservation.DurationHours, &reservation.Amount, &reservation.PaymentStatus,
		&reservation.PaymentMethod, &reservation.QRCode,
		&reservation.CreatedAt, &reservation.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}
