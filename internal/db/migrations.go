package db

import (
	"database/sql"
	"fmt"
)

// RunMigrations creates the schema if it does not exist yet. Statements are
// idempotent so this is safe to run on every startup.
func RunMigrations(database *sql.DB) error {
	migrations := []string{
		createUsersTable,
		createTimeSlotsTable,
		createParkingSlotsTable,
		createBookingsTable,
		createParkingReservationsTable,
		createBookingsUserIndex,
		createReservationsDateIndex,
	}

	for i, migration := range migrations {
		if _, err := database.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    email VARCHAR(120) UNIQUE NOT NULL,
    password_hash VARCHAR(200) NOT NULL,
    is_admin BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createTimeSlotsTable = `
CREATE TABLE IF NOT EXISTS time_slots (
    id SERIAL PRIMARY KEY,
    monument VARCHAR(100) NOT NULL,
    date DATE NOT NULL,
    slot_label VARCHAR(20) NOT NULL,
    capacity INTEGER NOT NULL DEFAULT 50,
    booked INTEGER NOT NULL DEFAULT 0,

    UNIQUE(monument, date, slot_label),
    CHECK (booked >= 0 AND booked <= capacity)
);`

const createParkingSlotsTable = `
CREATE TABLE IF NOT EXISTS parking_slots (
    id SERIAL PRIMARY KEY,
    monument VARCHAR(100) NOT NULL,
    slot_number INTEGER NOT NULL,
    vehicle_type VARCHAR(20) NOT NULL,

    UNIQUE(monument, slot_number),
    CHECK (vehicle_type IN ('two_wheeler', 'four_wheeler', 'bus'))
);`

const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id),
    monument VARCHAR(100) NOT NULL,
    visit_date DATE NOT NULL,
    time_slot VARCHAR(20) NOT NULL,
    visitors JSONB NOT NULL DEFAULT '[]',
    need_guide BOOLEAN NOT NULL DEFAULT FALSE,
    need_parking BOOLEAN NOT NULL DEFAULT FALSE,
    base_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
    final_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
    payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
    payment_method VARCHAR(50),
    qr_code TEXT,
    nationality VARCHAR(20) NOT NULL,
    id_number VARCHAR(50) NOT NULL,
    camera_required BOOLEAN NOT NULL DEFAULT FALSE,
    is_student BOOLEAN NOT NULL DEFAULT FALSE,
    student_discount_applied BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),

    CHECK (payment_status IN ('pending', 'completed'))
);`

const createParkingReservationsTable = `
CREATE TABLE IF NOT EXISTS parking_reservations (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id),
    slot_id INTEGER NOT NULL REFERENCES parking_slots(id),
    monument VARCHAR(100) NOT NULL,
    vehicle_type VARCHAR(20) NOT NULL,
    vehicle_number VARCHAR(20) NOT NULL,
    driver_name VARCHAR(100) NOT NULL,
    phone VARCHAR(15) NOT NULL,
    reservation_date DATE NOT NULL,
    duration_hours INTEGER NOT NULL,
    amount NUMERIC(10,2) NOT NULL,
    payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
    payment_method VARCHAR(50),
    qr_code TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),

    UNIQUE(slot_id, reservation_date),
    CHECK (duration_hours > 0),
    CHECK (payment_status IN ('pending', 'completed'))
);`

const createBookingsUserIndex = `
CREATE INDEX IF NOT EXISTS bookings_user_id_idx ON bookings (user_id);`

const createReservationsDateIndex = `
CREATE INDEX IF NOT EXISTS parking_reservations_date_idx
ON parking_reservations (monument, reservation_date);`
