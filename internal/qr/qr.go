package qr

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"smarak/internal/db"

	qrcode "github.com/skip2/go-qrcode"
)

// VisitCredential is the payload embedded in a visit booking's QR code.
type VisitCredential struct {
	Ref            string       `json:"ref"`
	BookingID      int          `json:"booking_id"`
	Monument       string       `json:"monument"`
	Date           string       `json:"date"`
	TimeSlot       string       `json:"time_slot"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Visitors       []db.Visitor `json:"visitors"`
	IsStudent      bool         `json:"is_student"`
	NeedGuide      bool         `json:"need_guide"`
	NeedParking    bool         `json:"need_parking"`
	IDNumber       string       `json:"id_number"`
	CameraRequired bool         `json:"camera_required"`
}

// ParkingCredential is the payload embedded in a parking reservation's QR code.
type ParkingCredential struct {
	Ref           string `json:"ref"`
	Type          string `json:"type"`
	ReservationID int    `json:"reservation_id"`
	Monument      string `json:"monument"`
	Date          string `json:"date"`
	SlotNumber    int    `json:"slot"`
	VehicleNumber string `json:"vehicle"`
}

const imageSize = 256

// Encode serializes the payload as JSON and renders it into a PNG QR image,
// returned base64-encoded for storage in a text column.
func Encode(payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal qr payload: %w", err)
	}
	png, err := qrcode.Encode(string(data), qrcode.Low, imageSize)
	if err != nil {
		return "", fmt.Errorf("encode qr image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
