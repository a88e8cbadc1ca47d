package dto

import "github.com/sideforge/backend/internal/models"

type DesignCreateRequest struct {
	Name            string `json:"name" validate:"required"`
	TextureMapURL   string `json:"textureMapUrl"`
	MaterialsJSON   string `json:"materialsJson"`
	PartsColorsJSON string `json:"partsColorsJson"`
	LogoConfigJSON  string `json:"logoConfigJson"`
	TextConfigJSON  string `json:"textConfigJson"`
	AssetID         uint   `json:"assetId" validate:"required,gt=0"`
	OwnerID         uint   `json:"ownerId" validate:"required,gt=0"`
}

// DesignUpdateRequest applies null-skip semantics: absent fields keep their
// stored value.
type DesignUpdateRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1"`
	TextureMapURL   *string `json:"textureMapUrl"`
	MaterialsJSON   *string `json:"materialsJson"`
	PartsColorsJSON *string `json:"partsColorsJson"`
	LogoConfigJSON  *string `json:"logoConfigJson"`
	TextConfigJSON  *string `json:"textConfigJson"`
	AssetID         *uint   `json:"assetId" validate:"omitempty,gt=0"`
}

type DesignResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	TextureMapURL   string `json:"textureMapUrl"`
	MaterialsJSON   string `json:"materialsJson"`
	PartsColorsJSON string `json:"partsColorsJson"`
	LogoConfigJSON  string `json:"logoConfigJson"`
	TextConfigJSON  string `json:"textConfigJson"`
	AssetID         uint   `json:"assetId"`
	OwnerID         uint   `json:"ownerId"`
}

func DesignToResponse(design *models.Design) DesignResponse {
	return DesignResponse{
		ID:              design.ID,
		Name:            design.Name,
		TextureMapURL:   design.TextureMapURL,
		MaterialsJSON:   design.MaterialsJSON,
		PartsColorsJSON: design.PartsColorsJSON,
		LogoConfigJSON:  design.LogoConfigJSON,
		TextConfigJSON:  design.TextConfigJSON,
		AssetID:         design.AssetID,
		OwnerID:         design.OwnerID,
	}
}

func DesignsToResponses(designs []models.Design) []DesignResponse {
	responses := make([]DesignResponse, 0, len(designs))
	for i := range designs {
		responses = append(responses, DesignToResponse(&designs[i]))
	}
	return responses
}
