package monuments

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Monument is static reference data for one site. ResidentFee is the
// canonical numeric entry fee for resident visitors; EntryFee keeps the
// legacy display string shown to users.
type Monument struct {
	Name             string `json:"name"`
	ShortDescription string `json:"short_description"`
	Timing           string `json:"timing"`
	EntryFee         string `json:"entry_fee"`
	ResidentFee      float64 `json:"resident_fee"`
	BestTime         string `json:"best_time"`
}

var catalog = map[string]Monument{
	"Red Fort": {
		Name:             "Red Fort (Lal Qila)",
		ShortDescription: "A historic fort built by Mughal Emperor Shah Jahan",
		Timing:           "9:30 AM - 4:30 PM (Closed on Mondays)",
		EntryFee:         "₹25 for Indians, ₹50 for Foreigners",
		ResidentFee:      25,
		BestTime:         "October to March (Winter Season)",
	},
	"Qutub Minar": {
		Name:             "Qutub Minar",
		ShortDescription: "The tallest brick minaret in the world",
		Timing:           "7:00 AM - 5:00 PM (Open all days)",
		EntryFee:         "₹30 for Indians, ₹60 for Foreigners",
		ResidentFee:      30,
		BestTime:         "October to March (Winter Season)",
	},
	"India Gate": {
		Name:             "India Gate",
		ShortDescription: "A war memorial dedicated to Indian soldiers",
		Timing:           "Open 24 hours",
		EntryFee:         "Free for all visitors",
		ResidentFee:      0,
		BestTime:         "October to March (Winter Season)",
	},
	"Taj Mahal": {
		Name:             "Taj Mahal",
		ShortDescription: "One of the Seven Wonders of the World",
		Timing:           "Sunrise to Sunset (Closed on Fridays)",
		EntryFee:         "₹40 for Indians, ₹80 for Foreigners",
		ResidentFee:      40,
		BestTime:         "October to March (Winter Season)",
	},
	"Lotus Temple": {
		Name:             "Lotus Temple",
		ShortDescription: "A Bahá'í House of Worship",
		Timing:           "9:00 AM - 5:30 PM (Closed on Mondays)",
		EntryFee:         "Free for all visitors",
		ResidentFee:      0,
		BestTime:         "October to March (Winter Season)",
	},
	"Jama Masjid": {
		Name:             "Jama Masjid",
		ShortDescription: "One of the largest mosques in India",
		Timing:           "7:00 AM - 12:00 PM, 1:30 PM - 6:30 PM (Closed during prayer times)",
		EntryFee:         "Free for Indian visitors, ₹35 for Foreign visitors",
		ResidentFee:      0,
		BestTime:         "October to March (Winter Season)",
	},
	"Purana Qila": {
		Name:             "Purana Qila (Old Fort)",
		ShortDescription: "The oldest fort in Delhi",
		Timing:           "7:00 AM - 5:00 PM (Open all days)",
		EntryFee:         "₹20 for Indians, ₹40 for Foreigners",
		ResidentFee:      20,
		BestTime:         "October to March (Winter Season)",
	},
	"Rashtrapati Bhavan": {
		Name:             "Rashtrapati Bhavan",
		ShortDescription: "The official residence of the President of India",
		Timing:           "9:00 AM - 4:00 PM (Closed on Mondays)",
		EntryFee:         "₹15 for Indians, ₹30 for Foreigners",
		ResidentFee:      15,
		BestTime:         "October to March (Winter Season)",
	},
	"Jantar Mantar": {
		Name:             "Jantar Mantar",
		ShortDescription: "An astronomical observatory",
		Timing:           "9:00 AM - 4:30 PM (Open all days)",
		EntryFee:         "₹20 for Indians, ₹40 for Foreigners",
		ResidentFee:      20,
		BestTime:         "October to March (Winter Season)",
	},
	"Akshardham Temple": {
		Name:             "Akshardham Temple",
		ShortDescription: "A modern Hindu temple complex",
		Timing:           "9:30 AM - 6:30 PM (Closed on Mondays)",
		EntryFee:         "₹15 for Indians, ₹30 for Foreigners",
		ResidentFee:      15,
		BestTime:         "October to March (Winter Season)",
	},
	"Lodi Gardens": {
		Name:             "Lodi Gardens",
		ShortDescription: "A city park with historical monuments",
		Timing:           "6:00 AM - 8:00 PM (Open all days)",
		EntryFee:         "Free for all visitors",
		ResidentFee:      0,
		BestTime:         "October to March (Winter Season)",
	},
}

// ParkingMonuments lists the sites that have a parking lot. Parking slots are
// seeded for these at startup.
var ParkingMonuments = []string{
	"Taj Mahal", "Red Fort", "Qutub Minar", "India Gate", "Lotus Temple",
}

// HasParking reports whether the monument offers on-site parking.
func HasParking(name string) bool {
	for _, m := range ParkingMonuments {
		if m == name {
			return true
		}
	}
	return false
}

// Get returns the monument entry by its catalog key.
func Get(name string) (Monument, bool) {
	m, ok := catalog[name]
	return m, ok
}

// List returns all monuments sorted by catalog key.
func List() []Monument {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Monument, 0, len(names))
	for _, name := range names {
		out = append(out, catalog[name])
	}
	return out
}

var residentFeeRe = regexp.MustCompile(`₹\s*(\d+)\s*for Indians`)

// ParseResidentFee extracts the resident entry fee from a legacy display
// string such as "₹25 for Indians, ₹50 for Foreigners". Fee-free strings
// ("Free for all visitors", "Free for Indian visitors, ...") yield 0.
// Anything else is an error; callers must not fall back to 0 silently.
func ParseResidentFee(display string) (float64, error) {
	if strings.HasPrefix(display, "Free for all") || strings.HasPrefix(display, "Free for Indian") {
		return 0, nil
	}
	m := residentFeeRe.FindStringSubmatch(display)
	if m == nil {
		return 0, fmt.Errorf("unrecognized entry fee format: %q", display)
	}
	fee, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("invalid fee amount in %q: %w", display, err)
	}
	return float64(fee), nil
}
