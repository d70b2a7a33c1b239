package entities

type ParkingSlotResponse struct {
	ID          int    `json:"id"`
	Monument    string `json:"monument"`
	SlotNumber  int    `json:"slot_number"`
	VehicleType string `json:"vehicle_type"`
}

type ParkingQuoteRequest struct {
	DurationHours int `json:"duration_hours"`
}

type ParkingQuoteResponse struct {
	DurationHours int     `json:"duration_hours"`
	HourlyRate    float64 `json:"hourly_rate"`
	Amount        float64 `json:"amount"`
}

type ParkingReservationRequest struct {
	Monument        string `json:"monument"`
	SlotID          int    `json:"slot_id"`
	VehicleType     string `json:"vehicle_type"`
	VehicleNumber   string `json:"vehicle_number"`
	DriverName      string `json:"driver_name"`
	Phone           string `json:"phone"`
	ReservationDate string `json:"reservation_date"`
	DurationHours   int    `json:"duration_hours"`
}

type ParkingReservationResponse struct {
	ID              int     `json:"id"`
	Monument        string  `json:"monument"`
	SlotID          int     `json:"slot_id"`
	VehicleType     string  `json:"vehicle_type"`
	VehicleNumber   string  `json:"vehicle_number"`
	DriverName      string  `json:"driver_name"`
	Phone           string  `json:"phone"`
	ReservationDate string  `json:"reservation_date"`
	DurationHours   int     `json:"duration_hours"`
	Amount          float64 `json:"amount"`
	PaymentStatus   string  `json:"payment_status"`
	PaymentMethod   string  `json:"payment_method,omitempty"`
	QRCode          string  `json:"qr_code,omitempty"`
	CreatedAt       string  `json:"created_at"`
}
