package domain

import "strings"

// Listing kinds written to the Lists sheet.
const (
	ListSites         = "sites"
	ListAdvertisers   = "advertisers"
	ListCreatives     = "creatives"
	ListLandingPages  = "landing-pages"
	ListCreativeFiles = "creative-files"
)

// Site is a site the profile can traffic to.
type Site struct {
	ID   int64
	Name string
}

// Advertiser is an advertiser visible to the profile.
type Advertiser struct {
	ID   int64
	Name string
}

// CreativeSummary is a creative as shown on the Lists sheet.
type CreativeSummary struct {
	ID           int64
	Name         string
	AdvertiserID int64
}

// File is an entry in the creative asset folder.
type File struct {
	ID   string
	Name string
}

// Table is a block of cells written to the Lists sheet. Column is the
// 1-based column of the first header cell; the header goes on row 1 and
// rows follow from row 2.
type Table struct {
	Column int
	Header []string
	Rows   [][]string
}

var listColumns = map[string]int{
	ListSites:         1,  // A
	ListAdvertisers:   4,  // D
	ListCreativeFiles: 7,  // G
	ListCreatives:     10, // J
	ListLandingPages:  14, // N
}

// ListColumn returns the first Lists-sheet column of a listing kind.
func ListColumn(kind string) (int, error) {
	col, ok := listColumns[strings.ToLower(kind)]
	if !ok {
		return 0, ErrUnknownListing
	}
	return col, nil
}
