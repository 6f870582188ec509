package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// The records below are the named-field form of each entity sheet. A row
// is parsed once, right after it is read, so nothing downstream depends on
// column positions.

type CampaignRow struct {
	AdvertiserID  int64
	Name          string
	LandingPageID int64
	StartDate     string
	EndDate       string
}

func ParseCampaignRow(r Row) (CampaignRow, error) {
	var (
		out CampaignRow
		err error
	)
	if out.AdvertiserID, err = ParseID("advertiserId", r.Cell(1)); err != nil {
		return out, err
	}
	out.Name = r.Cell(2)
	if out.LandingPageID, err = ParseID("landingPageId", r.Cell(3)); err != nil {
		return out, err
	}
	out.StartDate = r.Cell(4)
	out.EndDate = r.Cell(5)
	return out, nil
}

type PlacementRow struct {
	CampaignID    int64
	Name          string
	SiteID        int64
	Compatibility string
	Size          string
	PricingStart  string
	PricingEnd    string
	PricingType   string
	TagFormats    string
}

func ParsePlacementRow(r Row) (PlacementRow, error) {
	var (
		out PlacementRow
		err error
	)
	if out.CampaignID, err = ParseID("campaignId", r.Cell(1)); err != nil {
		return out, err
	}
	out.Name = r.Cell(2)
	if out.SiteID, err = ParseID("siteId", r.Cell(3)); err != nil {
		return out, err
	}
	out.Compatibility = r.Cell(4)
	out.Size = r.Cell(5)
	out.PricingStart = r.Cell(6)
	out.PricingEnd = r.Cell(7)
	out.PricingType = r.Cell(8)
	out.TagFormats = r.Raw(9)
	return out, nil
}

type AdRow struct {
	CampaignID      int64
	Name            string
	StartTime       string
	EndTime         string
	ImpressionRatio int64
	Priority        int
	Type            string
	PlacementID     int64
	// CreativeID is zero for dynamic click trackers, which carry no creative.
	CreativeID  int64
	LandingPage string
}

func ParseAdRow(r Row) (AdRow, error) {
	var (
		out AdRow
		err error
	)
	if out.CampaignID, err = ParseID("campaignId", r.Cell(1)); err != nil {
		return out, err
	}
	out.Name = r.Cell(2)
	out.StartTime = r.Cell(3)
	out.EndTime = r.Cell(4)
	if out.ImpressionRatio, err = ParseNumber("impressionRatio", r.Cell(5)); err != nil {
		return out, err
	}
	priority, err := ParseNumber("priority", r.Cell(6))
	if err != nil {
		return out, err
	}
	out.Priority = int(priority)
	out.Type = r.Cell(7)
	if out.PlacementID, err = ParseID("placementId", r.Cell(8)); err != nil {
		return out, err
	}
	if out.CreativeID, err = parseOptionalID("creativeId", r.Cell(9)); err != nil {
		return out, err
	}
	out.LandingPage = r.Cell(10)
	return out, nil
}

type CreativeRow struct {
	AdvertiserID int64
	CampaignID   int64
	Type         string
	Name         string
	Size         string
	AssetName    string
	AssetPath    string
	BackupName   string
	BackupPath   string
	BackupURL    string
}

func ParseCreativeRow(r Row) (CreativeRow, error) {
	var (
		out CreativeRow
		err error
	)
	if out.AdvertiserID, err = ParseID("advertiserId", r.Cell(1)); err != nil {
		return out, err
	}
	if out.CampaignID, err = ParseID("campaignId", r.Cell(2)); err != nil {
		return out, err
	}
	out.Type = strings.ToUpper(r.Cell(3))
	out.Name = r.Cell(4)
	out.Size = r.Cell(5)
	out.AssetName = r.Cell(6)
	out.AssetPath = r.Cell(7)
	out.BackupName = r.Cell(8)
	out.BackupPath = r.Cell(9)
	out.BackupURL = r.Cell(10)
	return out, nil
}

type LandingPageRow struct {
	AdvertiserID int64
	Name         string
	URL          string
}

func ParseLandingPageRow(r Row) (LandingPageRow, error) {
	id, err := ParseID("advertiserId", r.Cell(1))
	if err != nil {
		return LandingPageRow{}, err
	}
	return LandingPageRow{AdvertiserID: id, Name: r.Cell(2), URL: r.Cell(3)}, nil
}

type CampaignCreativeRow struct {
	CampaignID int64
	CreativeID int64
}

func ParseCampaignCreativeRow(r Row) (CampaignCreativeRow, error) {
	var (
		out CampaignCreativeRow
		err error
	)
	if out.CampaignID, err = ParseID("campaignId", r.Cell(1)); err != nil {
		return out, err
	}
	out.CreativeID, err = ParseID("creativeId", r.Cell(2))
	return out, err
}

type AdCreativeRow struct {
	AdID       int64
	CreativeID int64
}

func ParseAdCreativeRow(r Row) (AdCreativeRow, error) {
	var (
		out AdCreativeRow
		err error
	)
	if out.AdID, err = ParseID("adId", r.Cell(1)); err != nil {
		return out, err
	}
	out.CreativeID, err = ParseID("creativeId", r.Cell(2))
	return out, err
}

var errRequired = errors.New("value required")

// ParseID parses a positive identifier. Spreadsheets hand numeric cells
// back as "1234" or "1234.0"; both are accepted.
func ParseID(field, s string) (int64, error) {
	if s == "" {
		return 0, &CellError{Field: field, Value: s, Err: errRequired}
	}
	n, err := ParseNumber(field, s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, &CellError{Field: field, Value: s, Err: errors.New("must be positive")}
	}
	return n, nil
}

func parseOptionalID(field, s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return ParseID(field, s)
}

// ParseNumber parses an integral cell value.
func ParseNumber(field, s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if s == "" {
			err = errRequired
		}
		return 0, &CellError{Field: field, Value: s, Err: err}
	}
	if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, &CellError{Field: field, Value: s, Err: errors.New("not an integer")}
	}
	return int64(f), nil
}
