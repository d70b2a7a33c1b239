package entities

import "smarak/internal/db"

// PaymentDetails carries the simulated payment instrument. Which fields are
// required depends on Method: card needs the card fields, upi needs UPIID,
// netbanking needs Bank.
type PaymentDetails struct {
	Method     string `json:"method"`
	CardNumber string `json:"card_number,omitempty"`
	Expiry     string `json:"expiry,omitempty"`
	CVV        string `json:"cvv,omitempty"`
	CardName   string `json:"card_name,omitempty"`
	UPIID      string `json:"upi_id,omitempty"`
	Bank       string `json:"bank,omitempty"`
}

type QuoteRequest struct {
	Monument           string `json:"monument"`
	AdditionalVisitors int    `json:"additional_visitors"`
	NeedGuide          bool   `json:"need_guide"`
	IsStudent          bool   `json:"is_student"`
}

type BookingRequest struct {
	Monument       string         `json:"monument"`
	VisitDate      string         `json:"visit_date"`
	TimeSlot       string         `json:"time_slot"`
	Visitors       []db.Visitor   `json:"visitors"`
	NeedGuide      bool           `json:"need_guide"`
	NeedParking    bool           `json:"need_parking"`
	Nationality    string         `json:"nationality"`
	IDNumber       string         `json:"id_number"`
	CameraRequired bool           `json:"camera_required"`
	IsStudent      bool           `json:"is_student"`
	Payment        PaymentDetails `json:"payment"`
}

type BookingResponse struct {
	ID                     int          `json:"id"`
	Monument               string       `json:"monument"`
	VisitDate              string       `json:"visit_date"`
	TimeSlot               string       `json:"time_slot"`
	Visitors               []db.Visitor `json:"visitors"`
	NeedGuide              bool         `json:"need_guide"`
	NeedParking            bool         `json:"need_parking"`
	BaseAmount             float64      `json:"base_amount"`
	FinalAmount            float64      `json:"final_amount"`
	PaymentStatus          string       `json:"payment_status"`
	PaymentMethod          string       `json:"payment_method"`
	StudentDiscountApplied bool         `json:"student_discount_applied"`
	QRCode                 string       `json:"qr_code,omitempty"`
	CreatedAt              string       `json:"created_at"`
}

// ScanResponse is what a gate scanner sees when verifying a booking QR code.
type ScanResponse struct {
	Valid         bool         `json:"valid"`
	BookingID     int          `json:"booking_id"`
	Monument      string       `json:"monument"`
	VisitDate     string       `json:"visit_date"`
	TimeSlot      string       `json:"time_slot"`
	Visitors      []db.Visitor `json:"visitors"`
	PaymentStatus string       `json:"payment_status"`
}
