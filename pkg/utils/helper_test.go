package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42", "hotel_id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-3", "abc"} {
		_, err := ParseID(raw, "hotel_id")
		assert.ErrorContains(t, err, "invalid hotel_id")
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-01-10", "from")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("10/01/2024", "from")
	assert.ErrorContains(t, err, "invalid from")
}

func TestFormatValidationErrorsIsSorted(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{
		"StartDate": "This field is required",
		"HotelID":   "This field is required",
	})
	assert.Equal(t, "HotelID: This field is required; StartDate: This field is required", msg)
}
