package builder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulk-trafficker/internal/core/domain"
)

func TestParseTagFormats(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want []string
	}{
		{"default", "DEFAULT", DefaultTagFormats},
		{"default padded", "  DEFAULT \n", DefaultTagFormats},
		{"newline folds", "A,\nB, C", []string{"A", "B, C"}},
		{"newline wins over inner comma", "A, B\nC", []string{"A, B", "C"}},
		{"single trailing line break splits on commas", "A, B\n", []string{"A", "B"}},
		{"crlf", "A\r\nB", []string{"A", "B"}},
		{"comma list", "PLACEMENT_TAG_TRACKING, PLACEMENT_TAG_JAVASCRIPT", []string{"PLACEMENT_TAG_TRACKING", "PLACEMENT_TAG_JAVASCRIPT"}},
		{"trailing separators", "A,,B,", []string{"A", "B"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTagFormats(tt.cell))
		})
	}
}

func TestDefaultTagFormatsIsCopied(t *testing.T) {
	got := ParseTagFormats("DEFAULT")
	require.Len(t, got, 7)
	got[0] = "changed"
	assert.Equal(t, "PLACEMENT_TAG_TRACKING", DefaultTagFormats[0])
}

func TestParseSize(t *testing.T) {
	for _, cell := range []string{"300 x 250", "300x250", "300X250", " 300 X 250 "} {
		w, h, err := ParseSize(cell)
		require.NoError(t, err, cell)
		assert.Equal(t, "300", w)
		assert.Equal(t, "250", h)
	}

	_, _, err := ParseSize("300-250")
	assert.ErrorIs(t, err, domain.ErrInvalidCell)
}

func TestBuildPlacement(t *testing.T) {
	row := domain.PlacementRow{
		CampaignID:    77,
		Name:          "Homepage MPU",
		SiteID:        9,
		Compatibility: " display ",
		Size:          "300 x 250",
		PricingStart:  "45352",
		PricingEnd:    "2024-03-31",
		PricingType:   "PRICING_TYPE_CPM",
		TagFormats:    "DEFAULT",
	}
	p, err := BuildPlacement(row, domain.Settings{ProfileID: 1, Location: time.UTC})
	require.NoError(t, err)

	assert.Equal(t, domain.KindPlacement, p.Kind)
	assert.Equal(t, "DISPLAY", p.Compatibility)
	assert.Equal(t, domain.PaymentAgencyPaid, p.PaymentSource)
	assert.Equal(t, domain.Size{Width: 300, Height: 250}, p.Size)
	assert.Equal(t, "2024-03-01", p.PricingSchedule.StartDate)
	assert.Equal(t, "2024-03-31", p.PricingSchedule.EndDate)
	assert.Equal(t, DefaultTagFormats, p.TagFormats)
}

func TestBuildPlacementRejectsBadSize(t *testing.T) {
	_, err := BuildPlacement(domain.PlacementRow{Size: "big"}, domain.Settings{})
	assert.ErrorIs(t, err, domain.ErrInvalidCell)
}
