package builder

import (
	"bulk-trafficker/internal/core/domain"
)

// BuildCampaignCreativeAssociation attaches a creative to a campaign.
func BuildCampaignCreativeAssociation(campaignID, creativeID int64) domain.CampaignCreativeAssociation {
	return domain.CampaignCreativeAssociation{
		Kind:       domain.KindCampaignCreativeAssociation,
		CampaignID: campaignID,
		CreativeID: creativeID,
	}
}

// AppendCreativeAssignment returns a copy of ad with an inactive assignment
// for creativeID added at index len(existing). An ad without a rotation
// starts from an empty one. The input ad is left untouched.
func AppendCreativeAssignment(ad domain.Ad, creativeID int64) domain.Ad {
	var existing []domain.CreativeAssignment
	if ad.CreativeRotation != nil {
		existing = ad.CreativeRotation.CreativeAssignments
	}
	assignments := make([]domain.CreativeAssignment, len(existing), len(existing)+1)
	copy(assignments, existing)
	assignments = append(assignments, domain.CreativeAssignment{
		CreativeID:   creativeID,
		Active:       false,
		SSLCompliant: true,
	})
	ad.CreativeRotation = &domain.CreativeRotation{CreativeAssignments: assignments}
	return ad
}
