package entities

// SlotAvailability is one visit window with its remaining capacity.
type SlotAvailability struct {
	Label     string `json:"label"`
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Available int    `json:"available"`
}

type AvailabilityResponse struct {
	Monument string             `json:"monument"`
	Date     string             `json:"date"`
	Slots    []SlotAvailability `json:"slots"`
}
