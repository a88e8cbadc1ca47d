package dto

import "github.com/sideforge/backend/internal/models"

type AssetCreateRequest struct {
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description"`
	GLBPath          string `json:"glbPath" validate:"required"`
	ThumbnailDefault string `json:"thumbnailDefault" validate:"omitempty,max=255"`
	PartsConfigJSON  string `json:"partsConfigJson"`
}

// AssetUpdateRequest replaces every field unconditionally, unlike the
// null-skip design/scene updates.
type AssetUpdateRequest struct {
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description"`
	GLBPath          string `json:"glbPath" validate:"required"`
	ThumbnailDefault string `json:"thumbnailDefault" validate:"omitempty,max=255"`
	PartsConfigJSON  string `json:"partsConfigJson"`
}

type AssetResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	GLBPath          string `json:"glbPath"`
	ThumbnailDefault string `json:"thumbnailDefault"`
	PartsConfigJSON  string `json:"partsConfigJson"`
}

func AssetToResponse(asset *models.Asset) AssetResponse {
	return AssetResponse{
		ID:               asset.ID,
		Name:             asset.Name,
		Description:      asset.Description,
		GLBPath:          asset.GLBPath,
		ThumbnailDefault: asset.ThumbnailDefault,
		PartsConfigJSON:  asset.PartsConfigJSON,
	}
}

func AssetsToResponses(assets []models.Asset) []AssetResponse {
	responses := make([]AssetResponse, 0, len(assets))
	for i := range assets {
		responses = append(responses, AssetToResponse(&assets[i]))
	}
	return responses
}
