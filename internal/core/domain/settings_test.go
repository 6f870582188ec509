package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeZone(t *testing.T) {
	tests := []struct {
		in     string
		offset int
	}{
		{"", 0},
		{"GMT", 0},
		{"utc", 0},
		{"GMT+7", 7 * 3600},
		{"GMT-3", -3 * 3600},
		{"GMT-3:30", -(3*3600 + 30*60)},
		{"UTC+0545", 5*3600 + 45*60},
	}
	ref := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			loc, err := ParseTimeZone(tt.in)
			require.NoError(t, err)
			_, offset := ref.In(loc).Zone()
			assert.Equal(t, tt.offset, offset)
		})
	}
}

func TestParseTimeZoneIANA(t *testing.T) {
	loc, err := ParseTimeZone("Asia/Jakarta")
	require.NoError(t, err)
	_, offset := time.Date(2024, 1, 15, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, 7*3600, offset)
}

func TestParseTimeZoneInvalid(t *testing.T) {
	for _, in := range []string{"GMT7", "GMT+25", "Mars/Olympus"} {
		_, err := ParseTimeZone(in)
		assert.ErrorIs(t, err, ErrInvalidCell, in)
	}
}
