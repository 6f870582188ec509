package domain

import "io"

// Creative types accepted in the type column of the Creatives sheet.
const (
	CreativeKindHTML         = "HTML"
	CreativeKindHTMLImage    = "HTML_IMAGE"
	CreativeKindTrackingText = "TRACKING_TEXT"
)

// Remote creative and asset type names.
const (
	CreativeTypeDisplay      = "DISPLAY"
	CreativeTypeTrackingText = "TRACKING_TEXT"
	AssetTypeHTML            = "HTML"
	AssetTypeHTMLImage       = "HTML_IMAGE"
	AssetRolePrimary         = "PRIMARY"
	AssetRoleBackupImage     = "BACKUP_IMAGE"
)

// AssetIdentifier names an asset within an advertiser.
type AssetIdentifier struct {
	Name string
	Type string
}

// CreativeAsset is an asset attached to a creative.
type CreativeAsset struct {
	Identifier AssetIdentifier
	Role       string
}

// Creative is a creative resource ready for insertion.
type Creative struct {
	ID           int64
	AdvertiserID int64
	Name         string
	Type         string
	Active       bool
	Size         *Size
	Assets       []CreativeAsset
	// BackupClickThroughURL is the custom landing URL of the backup image.
	BackupClickThroughURL string
}

// AssetUpload is a binary asset to upload before the creative insert. The
// remote service answers with the identifier it assigned, which may differ
// from the requested name.
type AssetUpload struct {
	AdvertiserID int64
	Identifier   AssetIdentifier
	Content      io.Reader
}

// CampaignCreativeAssociation attaches a creative to a campaign.
type CampaignCreativeAssociation struct {
	Kind       string
	CampaignID int64
	CreativeID int64
}
