package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulk-trafficker/internal/core/domain"
)

func TestCreativeAssetSources(t *testing.T) {
	row := domain.CreativeRow{
		Type:       domain.CreativeKindHTMLImage,
		AssetName:  "banner.png",
		AssetPath:  "file-1",
		BackupPath: "file-2",
	}
	sources, err := CreativeAssetSources(row)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "file-1", sources[0].FileID)
	assert.Equal(t, domain.AssetRolePrimary, sources[0].Role)
	assert.Equal(t, "file-2", sources[1].FileID)
	assert.Equal(t, domain.AssetRoleBackupImage, sources[1].Role)
	assert.Equal(t, "banner.png", sources[1].Identifier.Name)

	row.BackupPath = ""
	sources, err = CreativeAssetSources(row)
	require.NoError(t, err)
	assert.Len(t, sources, 1)

	sources, err = CreativeAssetSources(domain.CreativeRow{Type: domain.CreativeKindHTML, AssetName: "x.html"})
	require.NoError(t, err)
	assert.Empty(t, sources)

	_, err = CreativeAssetSources(domain.CreativeRow{Type: domain.CreativeKindHTMLImage, AssetName: "a.png"})
	assert.ErrorIs(t, err, domain.ErrInvalidCell)
}

func TestBuildCreativeKinds(t *testing.T) {
	base := domain.CreativeRow{AdvertiserID: 42, Name: "C", Size: "728x90", AssetName: "tag.html"}

	t.Run("tracking text", func(t *testing.T) {
		row := base
		row.Type = domain.CreativeKindTrackingText
		c, err := BuildCreative(row, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.CreativeTypeTrackingText, c.Type)
		assert.Nil(t, c.Size)
		assert.Empty(t, c.Assets)
	})

	t.Run("html", func(t *testing.T) {
		row := base
		row.Type = domain.CreativeKindHTML
		c, err := BuildCreative(row, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.CreativeTypeDisplay, c.Type)
		assert.Equal(t, &domain.Size{Width: 728, Height: 90}, c.Size)
		require.Len(t, c.Assets, 1)
		assert.Equal(t, domain.AssetIdentifier{Name: "tag.html", Type: domain.AssetTypeHTML}, c.Assets[0].Identifier)
	})

	t.Run("html image", func(t *testing.T) {
		row := base
		row.Type = domain.CreativeKindHTMLImage
		row.BackupURL = "https://example.com"
		uploaded := []domain.CreativeAsset{{
			Identifier: domain.AssetIdentifier{Name: "stored.png", Type: domain.AssetTypeHTMLImage},
			Role:       domain.AssetRolePrimary,
		}}
		c, err := BuildCreative(row, uploaded)
		require.NoError(t, err)
		assert.Equal(t, uploaded, c.Assets)
		assert.Equal(t, "https://example.com", c.BackupClickThroughURL)
	})

	t.Run("unsupported", func(t *testing.T) {
		row := base
		row.Type = "VIDEO"
		_, err := BuildCreative(row, nil)
		assert.ErrorIs(t, err, domain.ErrUnsupportedCreative)
		assert.False(t, SupportedCreative(row.Type))
	})
}
