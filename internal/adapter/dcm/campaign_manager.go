// Package dcm implements port.CampaignManager on top of the Campaign
// Manager 360 trafficking API (dfareporting v4).
package dcm

import (
	"context"
	"errors"
	"fmt"

	dfa "google.golang.org/api/dfareporting/v4"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"bulk-trafficker/internal/core/domain"
	"bulk-trafficker/internal/core/port"
)

// CampaignManager talks to the trafficking API. Calls are not retried.
type CampaignManager struct {
	svc *dfa.Service
}

var _ port.CampaignManager = (*CampaignManager)(nil)

// New builds the API client. Callers pass credentials and, in tests, an
// endpoint through opts.
func New(ctx context.Context, opts ...option.ClientOption) (*CampaignManager, error) {
	opts = append([]option.ClientOption{option.WithScopes(dfa.DfatraffickingScope)}, opts...)
	svc, err := dfa.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create dfareporting service: %w", err)
	}
	return &CampaignManager{svc: svc}, nil
}

func (c *CampaignManager) InsertCampaign(ctx context.Context, profileID int64, campaign domain.Campaign) (domain.Campaign, error) {
	out, err := c.svc.Campaigns.Insert(profileID, toAPICampaign(campaign)).Context(ctx).Do()
	if err != nil {
		return domain.Campaign{}, apiError("campaigns.insert", err)
	}
	return fromAPICampaign(out), nil
}

func (c *CampaignManager) InsertPlacement(ctx context.Context, profileID int64, p domain.Placement) (domain.Placement, error) {
	out, err := c.svc.Placements.Insert(profileID, toAPIPlacement(p)).Context(ctx).Do()
	if err != nil {
		return domain.Placement{}, apiError("placements.insert", err)
	}
	return fromAPIPlacement(out), nil
}

func (c *CampaignManager) InsertLandingPage(ctx context.Context, profileID int64, lp domain.LandingPage) (domain.LandingPage, error) {
	out, err := c.svc.AdvertiserLandingPages.Insert(profileID, toAPILandingPage(lp)).Context(ctx).Do()
	if err != nil {
		return domain.LandingPage{}, apiError("advertiserLandingPages.insert", err)
	}
	return fromAPILandingPage(out), nil
}

func (c *CampaignManager) InsertAd(ctx context.Context, profileID int64, ad domain.Ad) (domain.Ad, error) {
	out, err := c.svc.Ads.Insert(profileID, toAPIAd(ad)).Context(ctx).Do()
	if err != nil {
		return domain.Ad{}, apiError("ads.insert", err)
	}
	return fromAPIAd(out), nil
}

func (c *CampaignManager) GetAd(ctx context.Context, profileID, adID int64) (domain.Ad, error) {
	out, err := c.svc.Ads.Get(profileID, adID).Context(ctx).Do()
	if err != nil {
		return domain.Ad{}, apiError("ads.get", err)
	}
	return fromAPIAd(out), nil
}

// UpdateAd sends the whole ad. When the ad came from GetAd the original
// resource is used as the base so fields unknown to the domain survive.
func (c *CampaignManager) UpdateAd(ctx context.Context, profileID int64, ad domain.Ad) (domain.Ad, error) {
	body := toAPIAd(ad)
	if remote, ok := ad.Remote.(*dfa.Ad); ok && remote != nil {
		body = mergeAd(remote, ad)
	}
	out, err := c.svc.Ads.Update(profileID, body).Context(ctx).Do()
	if err != nil {
		return domain.Ad{}, apiError("ads.update", err)
	}
	return fromAPIAd(out), nil
}

func (c *CampaignManager) UploadCreativeAsset(ctx context.Context, profileID int64, upload domain.AssetUpload) (domain.AssetIdentifier, error) {
	meta := &dfa.CreativeAssetMetadata{
		AssetIdentifier: &dfa.CreativeAssetId{
			Name: upload.Identifier.Name,
			Type: upload.Identifier.Type,
		},
	}
	out, err := c.svc.CreativeAssets.
		Insert(profileID, upload.AdvertiserID, meta).
		Media(upload.Content).
		Context(ctx).
		Do()
	if err != nil {
		return domain.AssetIdentifier{}, apiError("creativeAssets.insert", err)
	}
	if out.AssetIdentifier == nil {
		return domain.AssetIdentifier{}, errors.New("creativeAssets.insert: response has no asset identifier")
	}
	return domain.AssetIdentifier{Name: out.AssetIdentifier.Name, Type: out.AssetIdentifier.Type}, nil
}

func (c *CampaignManager) InsertCreative(ctx context.Context, profileID int64, creative domain.Creative) (domain.Creative, error) {
	out, err := c.svc.Creatives.Insert(profileID, toAPICreative(creative)).Context(ctx).Do()
	if err != nil {
		return domain.Creative{}, apiError("creatives.insert", err)
	}
	return fromAPICreative(out), nil
}

func (c *CampaignManager) InsertCampaignCreativeAssociation(ctx context.Context, profileID int64, a domain.CampaignCreativeAssociation) error {
	body := &dfa.CampaignCreativeAssociation{Kind: a.Kind, CreativeId: a.CreativeID}
	if _, err := c.svc.CampaignCreativeAssociations.Insert(profileID, a.CampaignID, body).Context(ctx).Do(); err != nil {
		return apiError("campaignCreativeAssociations.insert", err)
	}
	return nil
}

func (c *CampaignManager) ListSites(ctx context.Context, profileID int64) ([]domain.Site, error) {
	var out []domain.Site
	err := c.svc.Sites.List(profileID).Pages(ctx, func(resp *dfa.SitesListResponse) error {
		for _, s := range resp.Sites {
			out = append(out, domain.Site{ID: s.Id, Name: s.Name})
		}
		return nil
	})
	if err != nil {
		return nil, apiError("sites.list", err)
	}
	return out, nil
}

func (c *CampaignManager) ListAdvertisers(ctx context.Context, profileID int64) ([]domain.Advertiser, error) {
	var out []domain.Advertiser
	err := c.svc.Advertisers.List(profileID).Pages(ctx, func(resp *dfa.AdvertisersListResponse) error {
		for _, a := range resp.Advertisers {
			out = append(out, domain.Advertiser{ID: a.Id, Name: a.Name})
		}
		return nil
	})
	if err != nil {
		return nil, apiError("advertisers.list", err)
	}
	return out, nil
}

func (c *CampaignManager) ListCreatives(ctx context.Context, profileID int64) ([]domain.CreativeSummary, error) {
	var out []domain.CreativeSummary
	err := c.svc.Creatives.List(profileID).Pages(ctx, func(resp *dfa.CreativesListResponse) error {
		for _, cr := range resp.Creatives {
			out = append(out, domain.CreativeSummary{ID: cr.Id, Name: cr.Name, AdvertiserID: cr.AdvertiserId})
		}
		return nil
	})
	if err != nil {
		return nil, apiError("creatives.list", err)
	}
	return out, nil
}

func (c *CampaignManager) ListLandingPages(ctx context.Context, profileID int64) ([]domain.LandingPage, error) {
	var out []domain.LandingPage
	err := c.svc.AdvertiserLandingPages.List(profileID).Pages(ctx, func(resp *dfa.AdvertiserLandingPagesListResponse) error {
		for _, lp := range resp.LandingPages {
			out = append(out, fromAPILandingPage(lp))
		}
		return nil
	})
	if err != nil {
		return nil, apiError("advertiserLandingPages.list", err)
	}
	return out, nil
}

// apiError prefixes err with the API method and, for service errors, keeps
// the status code and message in the text.
func apiError(method string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return fmt.Errorf("%s: %d %s: %w", method, gerr.Code, gerr.Message, err)
	}
	return fmt.Errorf("%s: %w", method, err)
}
