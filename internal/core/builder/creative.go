package builder

import (
	"errors"

	"bulk-trafficker/internal/core/domain"
)

// AssetSource is a binary asset a creative row needs uploaded before the
// creative itself can be inserted.
type AssetSource struct {
	FileID     string
	Identifier domain.AssetIdentifier
	Role       string
}

// SupportedCreative reports whether the type column holds a creative kind
// this tool can traffic.
func SupportedCreative(kind string) bool {
	switch kind {
	case domain.CreativeKindHTML, domain.CreativeKindHTMLImage, domain.CreativeKindTrackingText:
		return true
	}
	return false
}

// CreativeAssetSources lists the uploads a row requires. Only HTML_IMAGE
// creatives carry binary assets: the primary image and, when a backup path
// is given, the backup image.
func CreativeAssetSources(row domain.CreativeRow) ([]AssetSource, error) {
	if row.Type != domain.CreativeKindHTMLImage {
		return nil, nil
	}
	if row.AssetPath == "" {
		return nil, &domain.CellError{Field: "creativeAssetPath", Err: errors.New("value required")}
	}
	if row.AssetName == "" {
		return nil, &domain.CellError{Field: "creativeAssetName", Err: errors.New("value required")}
	}
	sources := []AssetSource{{
		FileID:     row.AssetPath,
		Identifier: domain.AssetIdentifier{Name: row.AssetName, Type: domain.AssetTypeHTMLImage},
		Role:       domain.AssetRolePrimary,
	}}
	if row.BackupPath != "" {
		name := row.BackupName
		if name == "" {
			name = row.AssetName
		}
		sources = append(sources, AssetSource{
			FileID:     row.BackupPath,
			Identifier: domain.AssetIdentifier{Name: name, Type: domain.AssetTypeHTMLImage},
			Role:       domain.AssetRoleBackupImage,
		})
	}
	return sources, nil
}

// BuildCreative maps a Creatives row onto a creative resource. uploaded holds
// the assets returned by the upload step, in CreativeAssetSources order.
func BuildCreative(row domain.CreativeRow, uploaded []domain.CreativeAsset) (domain.Creative, error) {
	c := domain.Creative{
		AdvertiserID: row.AdvertiserID,
		Name:         row.Name,
		Active:       true,
	}
	switch row.Type {
	case domain.CreativeKindTrackingText:
		c.Type = domain.CreativeTypeTrackingText
		return c, nil

	case domain.CreativeKindHTML:
		if row.AssetName == "" {
			return domain.Creative{}, &domain.CellError{Field: "creativeAssetName", Err: errors.New("value required")}
		}
		c.Assets = []domain.CreativeAsset{{
			Identifier: domain.AssetIdentifier{Name: row.AssetName, Type: domain.AssetTypeHTML},
			Role:       domain.AssetRolePrimary,
		}}

	case domain.CreativeKindHTMLImage:
		if len(uploaded) == 0 {
			return domain.Creative{}, errors.New("html image creative without uploaded assets")
		}
		c.Assets = uploaded
		c.BackupClickThroughURL = row.BackupURL

	default:
		return domain.Creative{}, &domain.CellError{Field: "creativeType", Value: row.Type, Err: domain.ErrUnsupportedCreative}
	}

	size, err := sizeOf(row.Size)
	if err != nil {
		return domain.Creative{}, err
	}
	c.Type = domain.CreativeTypeDisplay
	c.Size = &size
	return c, nil
}
