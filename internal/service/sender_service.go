package service

import (
	"fmt"
	"os"
	"strings"

	"smarak/internal/db"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SenderService delivers booking confirmations over email and SMS. Sends run
// in the background; a delivery failure never fails the booking itself.
type SenderService struct {
	log *zerolog.Logger
}

func NewSenderService(log *zerolog.Logger) *SenderService {
	return &SenderService{log: log}
}

func (s *SenderService) SendBookingConfirmation(toEmail, toName string, booking *db.Booking) {
	subject := fmt.Sprintf("Your visit to %s is confirmed - Booking #%d", booking.Monument, booking.ID)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour monument visit is confirmed.\n\n"+
			"Booking Details:\n"+
			"Booking ID: %d\n"+
			"Monument: %s\n"+
			"Date: %s\n"+
			"Time Slot: %s\n"+
			"Visitors: %d\n"+
			"Amount Paid: ₹%.2f\n\n"+
			"Show the QR code from your booking at the entry gate.\n\n"+
			"Thank you for booking with Smarak.",
		toName, booking.ID, booking.Monument,
		booking.VisitDate.Format("02 Jan 2006"), booking.TimeSlot,
		len(booking.Visitors)+1, booking.FinalAmount,
	)

	go func() {
		if err := sendEmailWithSendGrid(toEmail, toName, subject, body); err != nil {
			s.log.Warn().Err(err).Int("booking_id", booking.ID).Msg("confirmation email failed")
		}
	}()
}

func (s *SenderService) SendParkingConfirmation(reservation *db.ParkingReservation) {
	message := fmt.Sprintf(
		"Smarak: Parking confirmed at %s on %s. Slot reservation #%d, vehicle %s. Show your QR code at the lot.",
		reservation.Monument, reservation.ReservationDate.Format("02 Jan"),
		reservation.ID, reservation.VehicleNumber,
	)

	go func() {
		if err := sendSMS(reservation.Phone, message); err != nil {
			s.log.Warn().Err(err).Int("reservation_id", reservation.ID).Msg("confirmation sms failed")
		}
	}()
}

func sendEmailWithSendGrid(toEmail, toName, subject, plainBody string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY not set")
	}
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL not set")
	}
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "Smarak"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainBody, "")

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

func sendSMS(toNumber, messageBody string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_FROM_NUMBER")
	if accountSid == "" || authToken == "" || fromNumber == "" {
		return fmt.Errorf("twilio credentials not configured")
	}
	if !strings.HasPrefix(toNumber, "+") {
		return fmt.Errorf("destination number %q is not in E.164 format", toNumber)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(fromNumber)
	params.SetBody(messageBody)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}
