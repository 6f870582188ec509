package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1234", 1234, false},
		{"1234.0", 1234, false},
		{"12345678901", 12345678901, false},
		{"", 0, true},
		{"0", 0, true},
		{"-5", 0, true},
		{"12.5", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseID("id", tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCell)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAdRow(t *testing.T) {
	r := Row{"77", "Launch", "45352", "45382", "1", "3", "AD_SERVING_CLICK_TRACKER_DYNAMIC", "501", "", "https://example.com/?q=1", ""}

	row, err := ParseAdRow(r)
	require.NoError(t, err)
	assert.Equal(t, int64(77), row.CampaignID)
	assert.Equal(t, 3, row.Priority)
	assert.Equal(t, int64(501), row.PlacementID)
	assert.Zero(t, row.CreativeID)
	assert.Equal(t, "https://example.com/?q=1", row.LandingPage)
}

func TestParseCreativeRowUpperCasesType(t *testing.T) {
	row, err := ParseCreativeRow(Row{"42", "77", " html_image ", "Banner"})
	require.NoError(t, err)
	assert.Equal(t, "HTML_IMAGE", row.Type)
}

func TestParsePlacementRowKeepsRawTagFormats(t *testing.T) {
	row, err := ParsePlacementRow(Row{"77", "P", "9", "display", "300x250", "", "", "PRICING_TYPE_CPM", "A,\nB"})
	require.NoError(t, err)
	assert.Equal(t, "A,\nB", row.TagFormats)
}

func TestCellErrorNamesField(t *testing.T) {
	_, err := ParseCampaignRow(Row{"x"})

	var cellErr *CellError
	require.True(t, errors.As(err, &cellErr))
	assert.Equal(t, "advertiserId", cellErr.Field)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestRowErrorMessage(t *testing.T) {
	cause := errors.New("boom")
	err := &RowError{Sheet: SheetAds, Row: 7, Err: cause}
	assert.Equal(t, "Ads row 7: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	err.Message = "failed to upload"
	assert.Equal(t, "Ads row 7: failed to upload", err.Error())
}
