package services

import (
	"errors"

	"github.com/sideforge/backend/internal/apperr"
	"github.com/sideforge/backend/internal/dto"
	"github.com/sideforge/backend/internal/models"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

type DesignService struct {
	DB *gorm.DB
}

func NewDesignService(db *gorm.DB) *DesignService {
	return &DesignService{DB: db}
}

var designSortColumns = map[string]string{
	"id":      "id",
	"name":    "name",
	"assetId": "asset_id",
	"ownerId": "owner_id",
}

func (s *DesignService) Create(req dto.DesignCreateRequest) (dto.DesignResponse, error) {
	var design models.Design
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := findAsset(tx, req.AssetID); err != nil {
			return err
		}
		if err := ensureUserExists(tx, req.OwnerID); err != nil {
			return err
		}
		if err := ensureDesignSlotFree(tx, req.AssetID, req.OwnerID, 0); err != nil {
			return err
		}

		design = models.Design{
			Name:            req.Name,
			TextureMapURL:   req.TextureMapURL,
			MaterialsJSON:   req.MaterialsJSON,
			PartsColorsJSON: req.PartsColorsJSON,
			LogoConfigJSON:  req.LogoConfigJSON,
			TextConfigJSON:  req.TextConfigJSON,
			AssetID:         req.AssetID,
			OwnerID:         req.OwnerID,
		}
		return tx.Create(&design).Error
	})
	if err != nil {
		return dto.DesignResponse{}, err
	}
	return dto.DesignToResponse(&design), nil
}

func (s *DesignService) GetByID(id uint) (dto.DesignResponse, error) {
	design, err := findDesign(s.DB, id)
	if err != nil {
		return dto.DesignResponse{}, err
	}
	return dto.DesignToResponse(design), nil
}

func (s *DesignService) List() ([]dto.DesignResponse, error) {
	var designs []models.Design
	if err := s.DB.Find(&designs).Error; err != nil {
		return nil, err
	}
	return dto.DesignsToResponses(designs), nil
}

// Update is null-skip: only fields present in the payload are applied. A
// supplied assetId must resolve to an existing asset.
func (s *DesignService) Update(id uint, req dto.DesignUpdateRequest) (dto.DesignResponse, error) {
	var design *models.Design
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		design, err = findDesign(tx, id)
		if err != nil {
			return err
		}

		if req.AssetID != nil && *req.AssetID != design.AssetID {
			if _, err := findAsset(tx, *req.AssetID); err != nil {
				return err
			}
			if err := ensureDesignSlotFree(tx, *req.AssetID, design.OwnerID, design.ID); err != nil {
				return err
			}
			design.AssetID = *req.AssetID
		}
		if req.Name != nil {
			design.Name = *req.Name
		}
		if req.TextureMapURL != nil {
			design.TextureMapURL = *req.TextureMapURL
		}
		if req.MaterialsJSON != nil {
			design.MaterialsJSON = *req.MaterialsJSON
		}
		if req.PartsColorsJSON != nil {
			design.PartsColorsJSON = *req.PartsColorsJSON
		}
		if req.LogoConfigJSON != nil {
			design.LogoConfigJSON = *req.LogoConfigJSON
		}
		if req.TextConfigJSON != nil {
			design.TextConfigJSON = *req.TextConfigJSON
		}
		return tx.Save(design).Error
	})
	if err != nil {
		return dto.DesignResponse{}, err
	}
	return dto.DesignToResponse(design), nil
}

func (s *DesignService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		design, err := findDesign(tx, id)
		if err != nil {
			return err
		}
		return tx.Delete(design).Error
	})
}

// GetByAssetID returns the design attached to the given asset. When several
// owners hold a design for the asset, the lowest id wins.
func (s *DesignService) GetByAssetID(assetID uint) (dto.DesignResponse, error) {
	var design models.Design
	err := s.DB.Where("asset_id = ?", assetID).Order("id asc").First(&design).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DesignResponse{}, apperr.NotFound("Design not found for asset id: %d", assetID)
		}
		return dto.DesignResponse{}, err
	}
	return dto.DesignToResponse(&design), nil
}

func (s *DesignService) Page(q utils.PageQuery) (utils.PageResponse, error) {
	return s.pageDesigns(s.DB.Model(&models.Design{}), q)
}

func (s *DesignService) PageByAssetIDs(assetIDs []uint, q utils.PageQuery) (utils.PageResponse, error) {
	query := s.DB.Model(&models.Design{}).Where("asset_id IN ?", assetIDs)
	return s.pageDesigns(query, q)
}

func (s *DesignService) pageDesigns(query *gorm.DB, q utils.PageQuery) (utils.PageResponse, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.PageResponse{}, err
	}
	var designs []models.Design
	if err := utils.ApplyPage(query, q, designSortColumns).Find(&designs).Error; err != nil {
		return utils.PageResponse{}, err
	}
	return utils.NewPage(dto.DesignsToResponses(designs), q, total), nil
}

func findDesign(tx *gorm.DB, id uint) (*models.Design, error) {
	var design models.Design
	if err := tx.First(&design, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Design not found with id: %d", id)
		}
		return nil, err
	}
	return &design, nil
}

func ensureUserExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperr.NotFound("User not found with id: %d", id)
	}
	return nil
}

// ensureDesignSlotFree guards the one-design-per-asset-per-owner rule ahead
// of the unique index, so a clash surfaces as Conflict instead of a driver
// error.
func ensureDesignSlotFree(tx *gorm.DB, assetID, ownerID, excludeID uint) error {
	query := tx.Model(&models.Design{}).Where("asset_id = ? AND owner_id = ?", assetID, ownerID)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("Owner already has a design for asset id: %d", assetID)
	}
	return nil
}
