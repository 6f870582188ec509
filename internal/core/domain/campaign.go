package domain

// Resource kinds as the trafficking API names them.
const (
	KindCampaign                    = "dfareporting#campaign"
	KindPlacement                   = "dfareporting#placement"
	KindAd                          = "dfareporting#ad"
	KindLandingPage                 = "dfareporting#landingPage"
	KindCampaignCreativeAssociation = "dfareporting#campaignCreativeAssociation"
)

// Campaign is a campaign resource ready for insertion.
// Dates are rendered yyyy-MM-dd in the operator's zone.
type Campaign struct {
	ID                   int64
	Kind                 string
	AdvertiserID         int64
	Name                 string
	StartDate            string
	EndDate              string
	DefaultLandingPageID int64
}

// PaymentAgencyPaid is the payment source set on every placement.
const PaymentAgencyPaid = "PLACEMENT_AGENCY_PAID"

// Size is a width/height pair in pixels.
type Size struct {
	Width  int64
	Height int64
}

// PricingSchedule carries the placement flight and pricing type.
type PricingSchedule struct {
	StartDate   string
	EndDate     string
	PricingType string
}

// Placement is a placement resource ready for insertion.
type Placement struct {
	ID              int64
	Kind            string
	CampaignID      int64
	Name            string
	SiteID          int64
	PaymentSource   string
	Compatibility   string
	Size            Size
	PricingSchedule PricingSchedule
	TagFormats      []string
}

// LandingPage is an advertiser landing page.
type LandingPage struct {
	ID           int64
	Kind         string
	AdvertiserID int64
	Name         string
	URL          string
}
