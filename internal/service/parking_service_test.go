package service

import (
	"testing"
	"time"

	"smarak/internal/entities"
	apperrors "smarak/internal/errors"
	"smarak/internal/monuments"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParkingFixture(t *testing.T) (*ParkingService, *fakeParkingRepo) {
	t.Helper()
	repo := newFakeParkingRepo()
	require.NoError(t, repo.SeedSlots(monuments.ParkingMonuments))
	svc := NewParkingService(repo, NewSenderService(nopLogger()), nopLogger())
	return svc, repo
}

func validReservation(slotID int, date string) entities.ParkingReservationRequest {
	return entities.ParkingReservationRequest{
		Monument:        "Taj Mahal",
		SlotID:          slotID,
		VehicleType:     "four_wheeler",
		VehicleNumber:   "DL01AB1234",
		DriverName:      "Ravi Kumar",
		Phone:           "+919876543210",
		ReservationDate: date,
		DurationHours:   4,
	}
}

func TestAvailableParkingSlots(t *testing.T) {
	svc, _ := newParkingFixture(t)

	slots, err := svc.AvailableSlots("Taj Mahal", futureDate(2), "four_wheeler")
	require.NoError(t, err)
	assert.Len(t, slots, 10)
	for _, slot := range slots {
		assert.Equal(t, "four_wheeler", slot.VehicleType)
	}
}

func TestSeedCreatesThirtySlotsPerMonument(t *testing.T) {
	svc, repo := newParkingFixture(t)

	// Reseeding must not duplicate the layout.
	require.NoError(t, repo.SeedSlots(monuments.ParkingMonuments))

	all, err := svc.AvailableSlots("Taj Mahal", futureDate(2), "")
	require.NoError(t, err)
	assert.Len(t, all, 30)

	byType := map[string]int{}
	for _, slot := range all {
		byType[slot.VehicleType]++
	}
	assert.Equal(t, map[string]int{"two_wheeler": 10, "four_wheeler": 10, "bus": 10}, byType)
}

func TestAvailableParkingSlotsValidation(t *testing.T) {
	svc, _ := newParkingFixture(t)

	// Lodi Gardens has no parking lot.
	_, err := svc.AvailableSlots("Lodi Gardens", futureDate(2), "four_wheeler")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var validation *apperrors.ValidationError
	_, err = svc.AvailableSlots("Taj Mahal", futureDate(2), "tractor")
	assert.ErrorAs(t, err, &validation)
}

func TestParkingQuote(t *testing.T) {
	svc, _ := newParkingFixture(t)

	quote, err := svc.Quote(entities.ParkingQuoteRequest{DurationHours: 4})
	require.NoError(t, err)
	assert.Equal(t, 100.0, quote.Amount)
	assert.Equal(t, 25.0, quote.HourlyRate)

	var validation *apperrors.ValidationError
	_, err = svc.Quote(entities.ParkingQuoteRequest{DurationHours: 0})
	assert.ErrorAs(t, err, &validation)
}

func TestReserveParkingSlot(t *testing.T) {
	svc, _ := newParkingFixture(t)
	date := futureDate(3)

	slots, err := svc.AvailableSlots("Taj Mahal", date, "four_wheeler")
	require.NoError(t, err)
	slotID := slots[0].ID

	resp, err := svc.Reserve(1, validReservation(slotID, date))
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.PaymentStatus)
	assert.Equal(t, 100.0, resp.Amount)
	assert.Empty(t, resp.QRCode)

	// The slot is held for that date and gone from availability.
	remaining, err := svc.AvailableSlots("Taj Mahal", date, "four_wheeler")
	require.NoError(t, err)
	assert.Len(t, remaining, 9)

	// Same slot, another date is still free.
	otherDay, err := svc.AvailableSlots("Taj Mahal", futureDate(5), "four_wheeler")
	require.NoError(t, err)
	assert.Len(t, otherDay, 10)
}

func TestReserveSameSlotTwice(t *testing.T) {
	svc, _ := newParkingFixture(t)
	date := futureDate(3)

	slots, err := svc.AvailableSlots("Taj Mahal", date, "four_wheeler")
	require.NoError(t, err)
	slotID := slots[0].ID

	_, err = svc.Reserve(1, validReservation(slotID, date))
	require.NoError(t, err)

	_, err = svc.Reserve(2, validReservation(slotID, date))
	assert.ErrorIs(t, err, apperrors.ErrAlreadyReserved)
}

func TestReserveSlotMismatch(t *testing.T) {
	svc, _ := newParkingFixture(t)
	date := futureDate(3)

	// A two_wheeler slot cannot be reserved for a four_wheeler.
	slots, err := svc.AvailableSlots("Taj Mahal", date, "two_wheeler")
	require.NoError(t, err)

	req := validReservation(slots[0].ID, date)
	_, err = svc.Reserve(1, req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSlot)

	req.SlotID = 99999
	_, err = svc.Reserve(1, req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSlot)
}

func TestPayReservation(t *testing.T) {
	svc, _ := newParkingFixture(t)
	date := futureDate(3)

	slots, err := svc.AvailableSlots("Taj Mahal", date, "four_wheeler")
	require.NoError(t, err)
	created, err := svc.Reserve(1, validReservation(slots[0].ID, date))
	require.NoError(t, err)

	paid, err := svc.Pay(1, created.ID, entities.PaymentDetails{Method: "upi", UPIID: "ravi@upi"})
	require.NoError(t, err)
	assert.Equal(t, "completed", paid.PaymentStatus)
	assert.Equal(t, "upi", paid.PaymentMethod)
	assert.NotEmpty(t, paid.QRCode)

	// Paying twice is rejected.
	_, err = svc.Pay(1, created.ID, entities.PaymentDetails{Method: "upi", UPIID: "ravi@upi"})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyPaid)
}

func TestPayReservationWrongUser(t *testing.T) {
	svc, _ := newParkingFixture(t)
	date := futureDate(3)

	slots, err := svc.AvailableSlots("Taj Mahal", date, "four_wheeler")
	require.NoError(t, err)
	created, err := svc.Reserve(1, validReservation(slots[0].ID, date))
	require.NoError(t, err)

	_, err = svc.Pay(2, created.ID, entities.PaymentDetails{Method: "upi", UPIID: "x@upi"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPayReservationInvalidMethod(t *testing.T) {
	svc, _ := newParkingFixture(t)
	date := futureDate(3)

	slots, err := svc.AvailableSlots("Taj Mahal", date, "four_wheeler")
	require.NoError(t, err)
	created, err := svc.Reserve(1, validReservation(slots[0].ID, date))
	require.NoError(t, err)

	_, err = svc.Pay(1, created.ID, entities.PaymentDetails{Method: "cash"})
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedPayment)

	// The reservation stays pending after the failed payment.
	got, err := svc.Get(1, false, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", got.PaymentStatus)
}

func TestPurgeStalePendingReservations(t *testing.T) {
	svc, repo := newParkingFixture(t)
	date := futureDate(3)

	slots, err := svc.AvailableSlots("Taj Mahal", date, "four_wheeler")
	require.NoError(t, err)
	created, err := svc.Reserve(1, validReservation(slots[0].ID, date))
	require.NoError(t, err)

	// Age the reservation past the TTL.
	repo.resvs[created.ID].CreatedAt = time.Now().UTC().Add(-48 * time.Hour)

	job := NewJobService(repo, 24*time.Hour, nopLogger())
	require.NoError(t, job.PurgeStalePendingReservations())

	_, err = svc.Get(1, false, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// The slot is bookable again.
	remaining, err := svc.AvailableSlots("Taj Mahal", date, "four_wheeler")
	require.NoError(t, err)
	assert.Len(t, remaining, 10)
}

func TestPurgeKeepsPaidReservations(t *testing.T) {
	svc, repo := newParkingFixture(t)
	date := futureDate(3)

	slots, err := svc.AvailableSlots("Taj Mahal", date, "four_wheeler")
	require.NoError(t, err)
	created, err := svc.Reserve(1, validReservation(slots[0].ID, date))
	require.NoError(t, err)
	_, err = svc.Pay(1, created.ID, entities.PaymentDetails{Method: "netbanking", Bank: "SBI"})
	require.NoError(t, err)

	repo.resvs[created.ID].CreatedAt = time.Now().UTC().Add(-48 * time.Hour)

	job := NewJobService(repo, 24*time.Hour, nopLogger())
	require.NoError(t, job.PurgeStalePendingReservations())

	got, err := svc.Get(1, false, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.PaymentStatus)
}
