package builder

import (
	"bulk-trafficker/internal/core/domain"
)

// BuildCampaign maps a Campaigns row onto a campaign resource.
func BuildCampaign(row domain.CampaignRow, s domain.Settings) (domain.Campaign, error) {
	start, err := FormatDate("startDate", row.StartDate, s.Location)
	if err != nil {
		return domain.Campaign{}, err
	}
	end, err := FormatDate("endDate", row.EndDate, s.Location)
	if err != nil {
		return domain.Campaign{}, err
	}
	return domain.Campaign{
		Kind:                 domain.KindCampaign,
		AdvertiserID:         row.AdvertiserID,
		Name:                 row.Name,
		StartDate:            start,
		EndDate:              end,
		DefaultLandingPageID: row.LandingPageID,
	}, nil
}

// BuildLandingPage maps a LandingPages row onto a landing page resource.
func BuildLandingPage(row domain.LandingPageRow) domain.LandingPage {
	return domain.LandingPage{
		Kind:         domain.KindLandingPage,
		AdvertiserID: row.AdvertiserID,
		Name:         row.Name,
		URL:          row.URL,
	}
}
