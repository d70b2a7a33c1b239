package monuments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResidentFee(t *testing.T) {
	tests := []struct {
		display string
		want    float64
	}{
		{"₹25 for Indians, ₹50 for Foreigners", 25},
		{"₹40 for Indians, ₹80 for Foreigners", 40},
		{"Free for all visitors", 0},
		{"Free for Indian visitors, ₹35 for Foreign visitors", 0},
	}
	for _, tt := range tests {
		fee, err := ParseResidentFee(tt.display)
		require.NoError(t, err, tt.display)
		assert.Equal(t, tt.want, fee, tt.display)
	}
}

func TestParseResidentFeeRejectsUnknownFormat(t *testing.T) {
	_, err := ParseResidentFee("$25 per person")
	assert.Error(t, err)

	_, err = ParseResidentFee("")
	assert.Error(t, err)
}

// Every catalog entry's display string must parse to its structured fee, so
// the two can never drift apart.
func TestCatalogFeesAreConsistent(t *testing.T) {
	for _, m := range List() {
		fee, err := ParseResidentFee(m.EntryFee)
		require.NoError(t, err, m.Name)
		assert.Equal(t, m.ResidentFee, fee, m.Name)
	}
}

func TestGet(t *testing.T) {
	m, ok := Get("Taj Mahal")
	require.True(t, ok)
	assert.Equal(t, "Taj Mahal", m.Name)
	assert.Equal(t, 40.0, m.ResidentFee)

	_, ok = Get("Atlantis")
	assert.False(t, ok)
}

func TestListIsStable(t *testing.T) {
	list := List()
	require.Len(t, list, 11)
	assert.Equal(t, "Akshardham Temple", list[0].Name)
	assert.Equal(t, "Taj Mahal", list[len(list)-1].Name)
}

func TestHasParking(t *testing.T) {
	assert.True(t, HasParking("Taj Mahal"))
	assert.True(t, HasParking("Red Fort"))
	assert.False(t, HasParking("Lodi Gardens"))
	assert.False(t, HasParking("Atlantis"))
}
