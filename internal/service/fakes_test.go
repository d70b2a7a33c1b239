package service

import (
	"fmt"
	"sort"
	"time"

	"smarak/internal/db"
	apperrors "smarak/internal/errors"

	"github.com/rs/zerolog"
)

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// In-memory stand-ins for the Postgres repositories. They mirror the schema
// constraints the real queries rely on: slot capacity checks and the unique
// (slot, date) reservation rule.

type fakeUserRepo struct {
	nextID int
	users  map[int]*db.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*db.User{}}
}

func (r *fakeUserRepo) GetByEmail(email string) (*db.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(id int) (*db.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) Create(user *db.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailTaken
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

type fakeSlotRepo struct {
	slots map[string]*db.TimeSlot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: map[string]*db.TimeSlot{}}
}

func slotKey(monument string, date time.Time, label string) string {
	return fmt.Sprintf("%s|%s|%s", monument, date.Format("2006-01-02"), label)
}

func (r *fakeSlotRepo) EnsureDefaultSlots(monument string, date time.Time) error {
	for _, label := range db.DefaultSlotLabels {
		key := slotKey(monument, date, label)
		if _, ok := r.slots[key]; !ok {
			r.slots[key] = &db.TimeSlot{
				ID:       len(r.slots) + 1,
				Monument: monument,
				Date:     date,
				Label:    label,
				Capacity: db.DefaultSlotCapacity,
			}
		}
	}
	return nil
}

func (r *fakeSlotRepo) AvailableSlots(monument string, date time.Time) ([]db.TimeSlot, error) {
	var out []db.TimeSlot
	for _, s := range r.slots {
		if s.Monument == monument && s.Date.Equal(date) && s.Booked < s.Capacity {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

type fakeBookingRepo struct {
	slots    *fakeSlotRepo
	nextID   int
	bookings map[int]*db.Booking
}

func newFakeBookingRepo(slots *fakeSlotRepo) *fakeBookingRepo {
	return &fakeBookingRepo{slots: slots, bookings: map[int]*db.Booking{}}
}

func (r *fakeBookingRepo) CreateCompleted(booking *db.Booking) error {
	seats := len(booking.Visitors) + 1
	slot, ok := r.slots.slots[slotKey(booking.Monument, booking.VisitDate, booking.TimeSlot)]
	if !ok || slot.Booked+seats > slot.Capacity {
		return apperrors.ErrSlotUnavailable
	}
	slot.Booked += seats

	r.nextID++
	booking.ID = r.nextID
	booking.CreatedAt = time.Now().UTC()
	booking.UpdatedAt = booking.CreatedAt
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) SetQRCode(id int, qrCode string) error {
	b, ok := r.bookings[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	b.QRCode = qrCode
	return nil
}

func (r *fakeBookingRepo) GetByID(id int) (*db.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) ListByUser(userID int) ([]db.Booking, error) {
	var out []db.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListAll() ([]db.Booking, error) {
	var out []db.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

type fakeParkingRepo struct {
	nextSlotID int
	nextResID  int
	slots      map[int]*db.ParkingSlot
	reserved   map[string]int // slotID|date -> reservation ID
	resvs      map[int]*db.ParkingReservation
}

func newFakeParkingRepo() *fakeParkingRepo {
	return &fakeParkingRepo{
		slots:    map[int]*db.ParkingSlot{},
		reserved: map[string]int{},
		resvs:    map[int]*db.ParkingReservation{},
	}
}

func reservationKey(slotID int, date time.Time) string {
	return fmt.Sprintf("%d|%s", slotID, date.Format("2006-01-02"))
}

func (r *fakeParkingRepo) SeedSlots(monuments []string) error {
	types := []string{"two_wheeler", "four_wheeler", "bus"}
	for _, monument := range monuments {
		seeded := false
		for _, s := range r.slots {
			if s.Monument == monument {
				seeded = true
				break
			}
		}
		if seeded {
			continue
		}
		number := 1
		for _, vehicleType := range types {
			for i := 0; i < 10; i++ {
				r.nextSlotID++
				r.slots[r.nextSlotID] = &db.ParkingSlot{
					ID:          r.nextSlotID,
					Monument:    monument,
					SlotNumber:  number,
					VehicleType: vehicleType,
				}
				number++
			}
		}
	}
	return nil
}

func (r *fakeParkingRepo) AvailableSlots(monument string, date time.Time, vehicleType string) ([]db.ParkingSlot, error) {
	var out []db.ParkingSlot
	for _, s := range r.slots {
		if s.Monument != monument {
			continue
		}
		if vehicleType != "" && s.VehicleType != vehicleType {
			continue
		}
		if _, taken := r.reserved[reservationKey(s.ID, date)]; taken {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotNumber < out[j].SlotNumber })
	return out, nil
}

func (r *fakeParkingRepo) GetSlot(id int) (*db.ParkingSlot, error) {
	s, ok := r.slots[id]
	if !ok {
		return nil, apperrors.ErrInvalidSlot
	}
	copied := *s
	return &copied, nil
}

func (r *fakeParkingRepo) CreateReservation(reservation *db.ParkingReservation) error {
	key := reservationKey(reservation.SlotID, reservation.ReservationDate)
	if _, taken := r.reserved[key]; taken {
		return apperrors.ErrAlreadyReserved
	}
	r.nextResID++
	reservation.ID = r.nextResID
	reservation.CreatedAt = time.Now().UTC()
	reservation.UpdatedAt = reservation.CreatedAt
	copied := *reservation
	r.resvs[reservation.ID] = &copied
	r.reserved[key] = reservation.ID
	return nil
}

func (r *fakeParkingRepo) CompletePayment(id int, method, qrCode string) error {
	res, ok := r.resvs[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	res.PaymentStatus = "completed"
	res.PaymentMethod = method
	res.QRCode = qrCode
	res.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakeParkingRepo) GetReservation(id int) (*db.ParkingReservation, error) {
	res, ok := r.resvs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *fakeParkingRepo) ListByUser(userID int) ([]db.ParkingReservation, error) {
	var out []db.ParkingReservation
	for _, res := range r.resvs {
		if res.UserID == userID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *fakeParkingRepo) ListAll() ([]db.ParkingReservation, error) {
	var out []db.ParkingReservation
	for _, res := range r.resvs {
		out = append(out, *res)
	}
	return out, nil
}

func (r *fakeParkingRepo) DeleteStalePending(before time.Time) (int64, error) {
	var purged int64
	for id, res := range r.resvs {
		if res.PaymentStatus == "pending" && res.CreatedAt.Before(before) {
			delete(r.reserved, reservationKey(res.SlotID, res.ReservationDate))
			delete(r.resvs, id)
			purged++
		}
	}
	return purged, nil
}
