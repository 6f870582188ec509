package domain

import "strings"

// Sheet names used by the trafficking workbook.
const (
	SheetSetup             = "Setup"
	SheetLists             = "Lists"
	SheetCampaigns         = "Campaigns"
	SheetPlacements        = "Placements"
	SheetAds               = "Ads"
	SheetCreatives         = "Creatives"
	SheetLandingPages      = "LandingPages"
	SheetCampaignCreatives = "CampaignCreatives"
	SheetAdCreatives       = "AdCreatives"
)

// Named cells on the Setup sheet holding per-operation settings.
const (
	NameProfileID      = "DCMUserProfileID"
	NameCreativeFolder = "CreativeFolderID"
	NameTimeZone       = "TimeZone"
)

// StatusDone is written into the status column of pure association rows,
// which have no identifier of their own.
const StatusDone = "DONE"

// SheetLayout describes where the key and status columns of a sheet live.
// Both columns are 1-based, matching spreadsheet column numbering.
type SheetLayout struct {
	Name         string
	KeyColumn    int
	StatusColumn int
}

var layouts = map[string]SheetLayout{
	SheetCampaigns:         {Name: SheetCampaigns, KeyColumn: 1, StatusColumn: 6},
	SheetPlacements:        {Name: SheetPlacements, KeyColumn: 1, StatusColumn: 10},
	SheetAds:               {Name: SheetAds, KeyColumn: 1, StatusColumn: 11},
	SheetCreatives:         {Name: SheetCreatives, KeyColumn: 1, StatusColumn: 11},
	SheetLandingPages:      {Name: SheetLandingPages, KeyColumn: 1, StatusColumn: 4},
	SheetCampaignCreatives: {Name: SheetCampaignCreatives, KeyColumn: 1, StatusColumn: 3},
	SheetAdCreatives:       {Name: SheetAdCreatives, KeyColumn: 1, StatusColumn: 3},
}

// BatchOrder is the order in which RunAll processes the entity sheets.
// Sheets appear after the sheets their rows reference.
var BatchOrder = []string{
	SheetLandingPages,
	SheetCampaigns,
	SheetPlacements,
	SheetCreatives,
	SheetAds,
	SheetCampaignCreatives,
	SheetAdCreatives,
}

// LayoutFor returns the layout of an entity sheet. Sheet names are matched
// case-insensitively and may be given in kebab case ("landing-pages").
func LayoutFor(sheet string) (SheetLayout, error) {
	want := strings.ReplaceAll(strings.ToLower(sheet), "-", "")
	for name, l := range layouts {
		if strings.ToLower(name) == want {
			return l, nil
		}
	}
	return SheetLayout{}, ErrUnknownSheet
}

// Row is one spreadsheet row as text cells, left to right.
type Row []string

// Cell returns the trimmed value of the 1-based column, or "" when the row
// is shorter than that.
func (r Row) Cell(col int) string {
	if col < 1 || col > len(r) {
		return ""
	}
	return strings.TrimSpace(r[col-1])
}

// Raw returns the untrimmed value of the 1-based column.
func (r Row) Raw(col int) string {
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

// Eligible reports whether a row should be submitted: its key column holds
// a value and its status column is still blank. A populated status column
// means the row was already submitted and is never sent again.
func Eligible(r Row, l SheetLayout) bool {
	return r.Cell(l.KeyColumn) != "" && r.Cell(l.StatusColumn) == ""
}
