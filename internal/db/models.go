package db

import "time"

// Visitor is one entry of a booking's visitor list, stored as JSON on the
// bookings row.
type Visitor struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	IsStudent bool   `json:"is_student"`
}

type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// DefaultSlotLabels are the visit windows every monument offers each day.
var DefaultSlotLabels = []string{"09:00-11:00", "11:00-13:00", "14:00-16:00", "16:00-18:00"}

// DefaultSlotCapacity is how many visitors a single window admits.
const DefaultSlotCapacity = 50

// TimeSlot is one visit window of a monument on a given date.
// Invariant: 0 <= Booked <= Capacity.
type TimeSlot struct {
	ID       int
	Monument string
	Date     time.Time
	Label    string
	Capacity int
	Booked   int
}

// Available returns the remaining capacity of the slot.
func (s TimeSlot) Available() int {
	return s.Capacity - s.Booked
}

// ParkingSlot is a single parking space at a monument. Occupancy is
// date-scoped and derived from parking_reservations, not stored here.
type ParkingSlot struct {
	ID          int
	Monument    string
	SlotNumber  int
	VehicleType string
}

type Booking struct {
	ID                     int
	UserID                 int
	Monument               string
	VisitDate              time.Time
	TimeSlot               string
	Visitors               []Visitor
	NeedGuide              bool
	NeedParking            bool
	BaseAmount             float64
	FinalAmount            float64
	PaymentStatus          string
	PaymentMethod          string
	QRCode                 string
	Nationality            string
	IDNumber               string
	CameraRequired         bool
	IsStudent              bool
	StudentDiscountApplied bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type ParkingReservation struct {
	ID              int
	UserID          int
	SlotID          int
	Monument        string
	VehicleType     string
	VehicleNumber   string
	DriverName      string
	Phone           string
	ReservationDate time.Time
	DurationHours   int
	Amount          float64
	PaymentStatus   string
	PaymentMethod   string
	QRCode          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
