package port

import (
	"context"

	"bulk-trafficker/internal/core/domain"
)

// CampaignManager is the outbound port to the remote trafficking service.
// Every call is scoped to a user profile. Insert methods return the
// resource as stored remotely, with its assigned ID.
type CampaignManager interface {
	InsertCampaign(ctx context.Context, profileID int64, c domain.Campaign) (domain.Campaign, error)
	InsertPlacement(ctx context.Context, profileID int64, p domain.Placement) (domain.Placement, error)
	InsertLandingPage(ctx context.Context, profileID int64, lp domain.LandingPage) (domain.LandingPage, error)

	InsertAd(ctx context.Context, profileID int64, ad domain.Ad) (domain.Ad, error)
	// GetAd returns the ad with its Remote field populated.
	GetAd(ctx context.Context, profileID, adID int64) (domain.Ad, error)
	// UpdateAd replaces the whole ad. There is no version check: changes
	// made remotely since GetAd are overwritten.
	UpdateAd(ctx context.Context, profileID int64, ad domain.Ad) (domain.Ad, error)

	// UploadCreativeAsset uploads binary content and returns the asset
	// identifier the service assigned to it.
	UploadCreativeAsset(ctx context.Context, profileID int64, upload domain.AssetUpload) (domain.AssetIdentifier, error)
	InsertCreative(ctx context.Context, profileID int64, c domain.Creative) (domain.Creative, error)
	InsertCampaignCreativeAssociation(ctx context.Context, profileID int64, a domain.CampaignCreativeAssociation) error

	ListSites(ctx context.Context, profileID int64) ([]domain.Site, error)
	ListAdvertisers(ctx context.Context, profileID int64) ([]domain.Advertiser, error)
	ListCreatives(ctx context.Context, profileID int64) ([]domain.CreativeSummary, error)
	ListLandingPages(ctx context.Context, profileID int64) ([]domain.LandingPage, error)
}
