package dcm

import (
	dfa "google.golang.org/api/dfareporting/v4"

	"bulk-trafficker/internal/core/domain"
)

func toAPICampaign(c domain.Campaign) *dfa.Campaign {
	return &dfa.Campaign{
		Kind:                 c.Kind,
		AdvertiserId:         c.AdvertiserID,
		Name:                 c.Name,
		StartDate:            c.StartDate,
		EndDate:              c.EndDate,
		DefaultLandingPageId: c.DefaultLandingPageID,
	}
}

func fromAPICampaign(c *dfa.Campaign) domain.Campaign {
	return domain.Campaign{
		ID:                   c.Id,
		Kind:                 c.Kind,
		AdvertiserID:         c.AdvertiserId,
		Name:                 c.Name,
		StartDate:            c.StartDate,
		EndDate:              c.EndDate,
		DefaultLandingPageID: c.DefaultLandingPageId,
	}
}

func toAPIPlacement(p domain.Placement) *dfa.Placement {
	return &dfa.Placement{
		Kind:          p.Kind,
		CampaignId:    p.CampaignID,
		Name:          p.Name,
		SiteId:        p.SiteID,
		PaymentSource: p.PaymentSource,
		Compatibility: p.Compatibility,
		Size:          &dfa.Size{Width: p.Size.Width, Height: p.Size.Height},
		PricingSchedule: &dfa.PricingSchedule{
			StartDate:   p.PricingSchedule.StartDate,
			EndDate:     p.PricingSchedule.EndDate,
			PricingType: p.PricingSchedule.PricingType,
		},
		TagFormats: p.TagFormats,
	}
}

func fromAPIPlacement(p *dfa.Placement) domain.Placement {
	out := domain.Placement{
		ID:            p.Id,
		Kind:          p.Kind,
		CampaignID:    p.CampaignId,
		Name:          p.Name,
		SiteID:        p.SiteId,
		PaymentSource: p.PaymentSource,
		Compatibility: p.Compatibility,
		TagFormats:    p.TagFormats,
	}
	if p.Size != nil {
		out.Size = domain.Size{Width: p.Size.Width, Height: p.Size.Height}
	}
	if p.PricingSchedule != nil {
		out.PricingSchedule = domain.PricingSchedule{
			StartDate:   p.PricingSchedule.StartDate,
			EndDate:     p.PricingSchedule.EndDate,
			PricingType: p.PricingSchedule.PricingType,
		}
	}
	return out
}

func toAPILandingPage(lp domain.LandingPage) *dfa.LandingPage {
	return &dfa.LandingPage{
		Kind:         lp.Kind,
		AdvertiserId: lp.AdvertiserID,
		Name:         lp.Name,
		Url:          lp.URL,
	}
}

func fromAPILandingPage(lp *dfa.LandingPage) domain.LandingPage {
	return domain.LandingPage{
		ID:           lp.Id,
		Kind:         lp.Kind,
		AdvertiserID: lp.AdvertiserId,
		Name:         lp.Name,
		URL:          lp.Url,
	}
}

func toAPIClickThrough(c *domain.ClickThroughURL) *dfa.ClickThroughUrl {
	if c == nil {
		return nil
	}
	out := &dfa.ClickThroughUrl{
		DefaultLandingPage:    c.DefaultLandingPage,
		CustomClickThroughUrl: c.CustomClickThroughURL,
	}
	if !c.DefaultLandingPage {
		out.ForceSendFields = []string{"DefaultLandingPage"}
	}
	return out
}

func fromAPIClickThrough(c *dfa.ClickThroughUrl) *domain.ClickThroughURL {
	if c == nil {
		return nil
	}
	return &domain.ClickThroughURL{
		DefaultLandingPage:    c.DefaultLandingPage,
		CustomClickThroughURL: c.CustomClickThroughUrl,
	}
}

// toAPIAssignment always sends Active and SslCompliant; an inactive
// assignment must reach the service as an explicit false.
func toAPIAssignment(a domain.CreativeAssignment) *dfa.CreativeAssignment {
	return &dfa.CreativeAssignment{
		CreativeId:      a.CreativeID,
		Active:          a.Active,
		SslCompliant:    a.SSLCompliant,
		Sequence:        a.Sequence,
		ClickThroughUrl: toAPIClickThrough(a.ClickThroughURL),
		ForceSendFields: []string{"Active", "SslCompliant"},
	}
}

func toAPIAd(ad domain.Ad) *dfa.Ad {
	out := &dfa.Ad{
		Id:                  ad.ID,
		Kind:                ad.Kind,
		CampaignId:          ad.CampaignID,
		Name:                ad.Name,
		StartTime:           ad.StartTime,
		EndTime:             ad.EndTime,
		Type:                ad.Type,
		Active:              ad.Active,
		DynamicClickTracker: ad.DynamicClickTracker,
		DeliverySchedule: &dfa.DeliverySchedule{
			ImpressionRatio: ad.DeliverySchedule.ImpressionRatio,
			Priority:        ad.DeliverySchedule.Priority,
		},
		ClickThroughUrl: toAPIClickThrough(ad.ClickThroughURL),
	}
	for _, pa := range ad.PlacementAssignments {
		out.PlacementAssignments = append(out.PlacementAssignments, &dfa.PlacementAssignment{
			PlacementId: pa.PlacementID,
			Active:      pa.Active,
		})
	}
	if ad.CreativeRotation != nil {
		out.CreativeRotation = &dfa.CreativeRotation{}
		for _, ca := range ad.CreativeRotation.CreativeAssignments {
			out.CreativeRotation.CreativeAssignments = append(out.CreativeRotation.CreativeAssignments, toAPIAssignment(ca))
		}
	}
	return out
}

func fromAPIAd(ad *dfa.Ad) domain.Ad {
	out := domain.Ad{
		ID:                  ad.Id,
		Kind:                ad.Kind,
		CampaignID:          ad.CampaignId,
		Name:                ad.Name,
		StartTime:           ad.StartTime,
		EndTime:             ad.EndTime,
		Type:                ad.Type,
		Active:              ad.Active,
		DynamicClickTracker: ad.DynamicClickTracker,
		ClickThroughURL:     fromAPIClickThrough(ad.ClickThroughUrl),
		Remote:              ad,
	}
	if ad.DeliverySchedule != nil {
		out.DeliverySchedule = domain.DeliverySchedule{
			ImpressionRatio: ad.DeliverySchedule.ImpressionRatio,
			Priority:        ad.DeliverySchedule.Priority,
		}
	}
	for _, pa := range ad.PlacementAssignments {
		out.PlacementAssignments = append(out.PlacementAssignments, domain.PlacementAssignment{
			PlacementID: pa.PlacementId,
			Active:      pa.Active,
		})
	}
	if ad.CreativeRotation != nil {
		out.CreativeRotation = &domain.CreativeRotation{}
		for _, ca := range ad.CreativeRotation.CreativeAssignments {
			out.CreativeRotation.CreativeAssignments = append(out.CreativeRotation.CreativeAssignments, domain.CreativeAssignment{
				CreativeID:      ca.CreativeId,
				Active:          ca.Active,
				SSLCompliant:    ca.SslCompliant,
				Sequence:        ca.Sequence,
				ClickThroughURL: fromAPIClickThrough(ca.ClickThroughUrl),
			})
		}
	}
	return out
}

// mergeAd applies the rotation of ad onto the resource it was read from.
// Assignments already present remotely keep every field the domain does not
// carry; only their active flag follows the domain value.
func mergeAd(remote *dfa.Ad, ad domain.Ad) *dfa.Ad {
	merged := *remote
	if ad.CreativeRotation == nil {
		return &merged
	}

	rotation := dfa.CreativeRotation{}
	var existing []*dfa.CreativeAssignment
	if remote.CreativeRotation != nil {
		rotation = *remote.CreativeRotation
		existing = remote.CreativeRotation.CreativeAssignments
	}
	assignments := make([]*dfa.CreativeAssignment, 0, len(ad.CreativeRotation.CreativeAssignments))
	for i, ca := range ad.CreativeRotation.CreativeAssignments {
		if i < len(existing) && existing[i].CreativeId == ca.CreativeID {
			kept := *existing[i]
			kept.Active = ca.Active
			kept.ForceSendFields = append(kept.ForceSendFields, "Active")
			assignments = append(assignments, &kept)
			continue
		}
		assignments = append(assignments, toAPIAssignment(ca))
	}
	rotation.CreativeAssignments = assignments
	merged.CreativeRotation = &rotation
	return &merged
}

func toAPICreative(c domain.Creative) *dfa.Creative {
	out := &dfa.Creative{
		AdvertiserId:    c.AdvertiserID,
		Name:            c.Name,
		Type:            c.Type,
		Active:          c.Active,
		ForceSendFields: []string{"Active"},
	}
	if c.Size != nil {
		out.Size = &dfa.Size{Width: c.Size.Width, Height: c.Size.Height}
	}
	for _, a := range c.Assets {
		out.CreativeAssets = append(out.CreativeAssets, &dfa.CreativeAsset{
			AssetIdentifier: &dfa.CreativeAssetId{Name: a.Identifier.Name, Type: a.Identifier.Type},
			Role:            a.Role,
		})
	}
	if c.BackupClickThroughURL != "" {
		out.BackupImageClickThroughUrl = &dfa.CreativeClickThroughUrl{
			CustomClickThroughUrl: c.BackupClickThroughURL,
		}
	}
	return out
}

func fromAPICreative(c *dfa.Creative) domain.Creative {
	out := domain.Creative{
		ID:           c.Id,
		AdvertiserID: c.AdvertiserId,
		Name:         c.Name,
		Type:         c.Type,
		Active:       c.Active,
	}
	if c.Size != nil {
		out.Size = &domain.Size{Width: c.Size.Width, Height: c.Size.Height}
	}
	for _, a := range c.CreativeAssets {
		if a.AssetIdentifier == nil {
			continue
		}
		out.Assets = append(out.Assets, domain.CreativeAsset{
			Identifier: domain.AssetIdentifier{Name: a.AssetIdentifier.Name, Type: a.AssetIdentifier.Type},
			Role:       a.Role,
		})
	}
	if c.BackupImageClickThroughUrl != nil {
		out.BackupClickThroughURL = c.BackupImageClickThroughUrl.CustomClickThroughUrl
	}
	return out
}
