package utils_test

import (
	"testing"
	"time"

	"joyful-cargo/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		email    string
		expected bool
	}{
		{"ops@joyfulcargo.com", true},
		{"first.last+tag@example.co.uk", true},
		{"plainaddress", false},
		{"missing@tld", false},
		{"@no-local.com", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.expected, utils.ValidateEmail(tc.email))
		})
	}
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, utils.ValidatePhone("017123456"))
	assert.True(t, utils.ValidatePhone("+8801712345678"))
	assert.False(t, utils.ValidatePhone("12345"))
	assert.False(t, utils.ValidatePhone(""))
}

func TestParseTimestamp(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "rfc3339 with offset",
			input:    "2025-06-15T10:30:00+06:00",
			expected: time.Date(2025, 6, 15, 10, 30, 0, 0, time.FixedZone("", 6*3600)),
		},
		{
			name:     "trailing zulu",
			input:    "2025-06-15T10:30:00Z",
			expected: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "zone-less read as utc",
			input:    "2025-06-15T10:30:00",
			expected: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "date only",
			input:    "2025-06-15",
			expected: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := utils.ParseTimestamp(tc.input)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(parsed), "expected %v, got %v", tc.expected, parsed)
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "15/06/2025", "2025-13-40"} {
		_, err := utils.ParseTimestamp(input)
		assert.Error(t, err, "input %q should not parse", input)
	}
}

func TestBeginningOfMonth(t *testing.T) {
	mid := time.Date(2025, 6, 15, 13, 45, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), utils.BeginningOfMonth(mid))

	first := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, first, utils.BeginningOfMonth(first))
}
