package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligible(t *testing.T) {
	l := SheetLayout{Name: SheetCampaigns, KeyColumn: 1, StatusColumn: 6}

	tests := []struct {
		name string
		row  Row
		want bool
	}{
		{"key set, status blank", Row{"42", "Spring", "7", "", "", ""}, true},
		{"short row", Row{"42", "Spring"}, true},
		{"status populated", Row{"42", "Spring", "7", "", "", "9001"}, false},
		{"status whitespace only", Row{"42", "", "", "", "", "  "}, true},
		{"key blank", Row{"", "Spring", "7", "", "", ""}, false},
		{"key whitespace only", Row{" \t", "Spring"}, false},
		{"empty row", Row{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eligible(tt.row, l))
		})
	}
}

func TestLayoutFor(t *testing.T) {
	for _, name := range []string{"LandingPages", "landingpages", "landing-pages", "LANDING-PAGES"} {
		l, err := LayoutFor(name)
		require.NoError(t, err, name)
		assert.Equal(t, SheetLandingPages, l.Name)
		assert.Equal(t, 4, l.StatusColumn)
	}

	for _, name := range BatchOrder {
		_, err := LayoutFor(name)
		assert.NoError(t, err, name)
	}

	_, err := LayoutFor(SheetLists)
	assert.ErrorIs(t, err, ErrUnknownSheet)
}

func TestRowCell(t *testing.T) {
	r := Row{" a ", "b\n"}
	assert.Equal(t, "a", r.Cell(1))
	assert.Equal(t, "b", r.Cell(2))
	assert.Equal(t, "b\n", r.Raw(2))
	assert.Empty(t, r.Cell(3))
	assert.Empty(t, r.Cell(0))
}

func TestListColumn(t *testing.T) {
	col, err := ListColumn("Landing-Pages")
	require.NoError(t, err)
	assert.Equal(t, 14, col)

	_, err = ListColumn("budgets")
	assert.ErrorIs(t, err, ErrUnknownListing)
}
