package builder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulk-trafficker/internal/core/domain"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		cell string
		want string
	}{
		{"45352", "2024-03-01"},
		{"45352.75", "2024-03-01"},
		{"2024-03-01", "2024-03-01"},
		{"03/01/2024", "2024-03-01"},
		{"2024/03/01", "2024-03-01"},
	}
	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			got, err := FormatDate("d", tt.cell, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDateTimeConvertsToUTC(t *testing.T) {
	loc, err := domain.ParseTimeZone("GMT-5")
	require.NoError(t, err)

	got, err := FormatDateTime("t", "45352.5", loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T17:00:00.000Z", got)

	got, err = FormatDateTime("t", "2024-03-01T12:00:00Z", loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T12:00:00.000Z", got)
}

func TestFormatDateRejects(t *testing.T) {
	for _, cell := range []string{"", "next tuesday"} {
		_, err := FormatDate("startDate", cell, time.UTC)
		assert.ErrorIs(t, err, domain.ErrInvalidCell, cell)
	}
}

func TestFormatDateNilLocationIsUTC(t *testing.T) {
	got, err := FormatDateTime("t", "2024-03-01 08:30", nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T08:30:00.000Z", got)
}
