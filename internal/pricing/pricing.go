package pricing

import "fmt"

const (
	// GuideFee is the flat fee for a tour guide per booking.
	GuideFee = 300.0
	// StudentDiscountRate is applied to the primary visitor's single entry
	// fee when the primary contact is a student. It does not scale with the
	// visitor count.
	StudentDiscountRate = 0.30
	// ParkingHourlyRate is the parking fee per hour, any vehicle type.
	ParkingHourlyRate = 25.0

	// MaxAdditionalVisitors caps the extra visitors on one booking.
	MaxAdditionalVisitors = 10
)

// VisitQuote is the fee breakdown for a monument visit. It is never
// persisted; confirmed bookings copy its amounts.
type VisitQuote struct {
	BaseAmount      float64 `json:"base_amount"`
	TotalVisitors   int     `json:"total_visitors"`
	GuideFee        float64 `json:"guide_fee"`
	StudentDiscount float64 `json:"student_discount"`
	FinalAmount     float64 `json:"final_amount"`
}

// QuoteVisit computes the entry fee for a visit. baseFee is the per-person
// resident entry fee of the monument, additionalVisitors the count of
// visitors besides the primary contact (who is always counted). The student
// discount covers the primary contact's single fee only.
func QuoteVisit(baseFee float64, additionalVisitors int, needGuide, primaryIsStudent bool) (VisitQuote, error) {
	if baseFee < 0 {
		return VisitQuote{}, fmt.Errorf("base fee must not be negative, got %.2f", baseFee)
	}
	if additionalVisitors < 0 || additionalVisitors > MaxAdditionalVisitors {
		return VisitQuote{}, fmt.Errorf("additional visitors must be between 0 and %d, got %d", MaxAdditionalVisitors, additionalVisitors)
	}

	quote := VisitQuote{
		BaseAmount:    baseFee,
		TotalVisitors: additionalVisitors + 1,
	}
	if needGuide {
		quote.GuideFee = GuideFee
	}
	if primaryIsStudent {
		quote.StudentDiscount = baseFee * StudentDiscountRate
	}

	quote.FinalAmount = baseFee*float64(quote.TotalVisitors) + quote.GuideFee - quote.StudentDiscount
	return quote, nil
}

// QuoteParking computes the parking fee for a whole-day reservation of
// durationHours hours.
func QuoteParking(durationHours int) (float64, error) {
	if durationHours <= 0 {
		return 0, fmt.Errorf("duration must be a positive number of hours, got %d", durationHours)
	}
	return ParkingHourlyRate * float64(durationHours), nil
}
