package service

import (
	"smarak/internal/entities"
	apperrors "smarak/internal/errors"
)

// ValidatePayment checks the simulated payment instrument. No charge is made;
// the details only have to be structurally complete for the chosen method.
func ValidatePayment(p entities.PaymentDetails) error {
	var missing []string
	switch p.Method {
	case "card":
		if p.CardNumber == "" {
			missing = append(missing, "card_number")
		}
		if p.Expiry == "" {
			missing = append(missing, "expiry")
		}
		if p.CVV == "" {
			missing = append(missing, "cvv")
		}
		if p.CardName == "" {
			missing = append(missing, "card_name")
		}
	case "upi":
		if p.UPIID == "" {
			missing = append(missing, "upi_id")
		}
	case "netbanking":
		if p.Bank == "" {
			missing = append(missing, "bank")
		}
	default:
		return apperrors.ErrUnsupportedPayment
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError(missing...)
	}
	return nil
}
