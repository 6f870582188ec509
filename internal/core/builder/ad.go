package builder

import (
	"errors"
	"fmt"

	"bulk-trafficker/internal/core/domain"
)

// FormatPriority renders a priority as the API expects it: two digits,
// zero padded, with the AD_PRIORITY_ prefix.
func FormatPriority(p int) string {
	return fmt.Sprintf("AD_PRIORITY_%02d", p)
}

// BuildAd maps an Ads row onto an ad resource. Dynamic click trackers are
// sent as plain click trackers with the dynamic flag and the row's landing
// page as their click-through. Every other type rotates the row's creative,
// landing on the creative's default page unless the row overrides it.
func BuildAd(row domain.AdRow, s domain.Settings) (domain.Ad, error) {
	if row.Type != domain.AdTypeClickTrackerDynamic && row.CreativeID == 0 {
		return domain.Ad{}, &domain.CellError{Field: "creativeId", Err: errors.New("value required")}
	}
	start, err := FormatDateTime("startTime", row.StartTime, s.Location)
	if err != nil {
		return domain.Ad{}, err
	}
	end, err := FormatDateTime("endTime", row.EndTime, s.Location)
	if err != nil {
		return domain.Ad{}, err
	}

	ad := domain.Ad{
		Kind:       domain.KindAd,
		CampaignID: row.CampaignID,
		Name:       row.Name,
		StartTime:  start,
		EndTime:    end,
		Type:       row.Type,
		DeliverySchedule: domain.DeliverySchedule{
			ImpressionRatio: row.ImpressionRatio,
			Priority:        FormatPriority(row.Priority),
		},
		ClickThroughURL: &domain.ClickThroughURL{DefaultLandingPage: true},
		PlacementAssignments: []domain.PlacementAssignment{
			{PlacementID: row.PlacementID, Active: true},
		},
	}

	switch {
	case row.Type == domain.AdTypeClickTrackerDynamic:
		ad.Type = domain.AdTypeClickTracker
		ad.DynamicClickTracker = true
		ad.ClickThroughURL = &domain.ClickThroughURL{CustomClickThroughURL: row.LandingPage}
	case row.LandingPage == "":
		ad.CreativeRotation = &domain.CreativeRotation{
			CreativeAssignments: []domain.CreativeAssignment{{
				CreativeID:      row.CreativeID,
				Active:          true,
				SSLCompliant:    true,
				ClickThroughURL: &domain.ClickThroughURL{DefaultLandingPage: true},
			}},
		}
		ad.Active = true
	default:
		ad.CreativeRotation = &domain.CreativeRotation{
			CreativeAssignments: []domain.CreativeAssignment{{
				CreativeID:      row.CreativeID,
				Active:          true,
				SSLCompliant:    true,
				ClickThroughURL: &domain.ClickThroughURL{CustomClickThroughURL: row.LandingPage},
			}},
		}
		ad.Active = true
	}
	return ad, nil
}
