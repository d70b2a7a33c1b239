package repository

import (
	"database/sql"
	"fmt"
	"time"

	"smarak/internal/db"
)

type SlotRepository interface {
	EnsureDefaultSlots(monument string, date time.Time) error
	AvailableSlots(monument string, date time.Time) ([]db.TimeSlot, error)
}

type slotRepository struct {
	db *sql.DB
}

func NewSlotRepository(database *sql.DB) SlotRepository {
	return &slotRepository{db: database}
}

// EnsureDefaultSlots lazily creates the fixed daily windows for a monument
// and date. Existing rows are left untouched, so concurrent callers and
// repeated availability checks never reset booked counts.
func (r *slotRepository) EnsureDefaultSlots(monument string, date time.Time) error {
	query := `
		INSERT INTO time_slots (monument, date, slot_label, capacity, booked)
		VALUES ($1, $2, $3, $4, 0)
		ON CONFLICT (monument, date, slot_label) DO NOTHING`
	for _, label := range db.DefaultSlotLabels {
		if _, err := r.db.Exec(query, monument, date, label, db.DefaultSlotCapacity); err != nil {
			return fmt.Errorf("error seeding time slot %s: %w", label, err)
		}
	}
	return nil
}

// AvailableSlots returns the windows that still have remaining capacity,
// ordered by label so the morning slots come first.
func (r *slotRepository) AvailableSlots(monument string, date time.Time) ([]db.TimeSlot, error) {
	query := `
		SELECT id, monument, date, slot_label, capacity, booked
		FROM time_slots
		WHERE monument = $1 AND date = $2 AND booked < capacity
		ORDER BY slot_label`
	rows, err := r.db.Query(query, monument, date)
	if err != nil {
		return nil, fmt.Errorf("error querying time slots: %w", err)
	}
	defer rows.Close()

	var slots []db.TimeSlot
	for rows.Next() {
		var s db.TimeSlot
		if err := rows.Scan(&s.ID, &s.Monument, &s.Date, &s.Label, &s.Capacity, &s.Booked); err != nil {
			return nil, fmt.Errorf("error scanning time slot: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}
