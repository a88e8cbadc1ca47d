package services

import (
	"errors"

	"github.com/sideforge/backend/internal/apperr"
	"github.com/sideforge/backend/internal/dto"
	"github.com/sideforge/backend/internal/models"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

type AssetService struct {
	DB *gorm.DB
}

func NewAssetService(db *gorm.DB) *AssetService {
	return &AssetService{DB: db}
}

var assetSortColumns = map[string]string{
	"id":               "id",
	"name":             "name",
	"description":      "description",
	"glbPath":          "glb_path",
	"thumbnailDefault": "thumbnail_default",
}

func (s *AssetService) Create(req dto.AssetCreateRequest) (dto.AssetResponse, error) {
	asset := models.Asset{
		Name:             req.Name,
		Description:      req.Description,
		GLBPath:          req.GLBPath,
		ThumbnailDefault: req.ThumbnailDefault,
		PartsConfigJSON:  req.PartsConfigJSON,
	}
	if err := s.DB.Create(&asset).Error; err != nil {
		return dto.AssetResponse{}, err
	}
	return dto.AssetToResponse(&asset), nil
}

func (s *AssetService) GetByID(id uint) (dto.AssetResponse, error) {
	asset, err := findAsset(s.DB, id)
	if err != nil {
		return dto.AssetResponse{}, err
	}
	return dto.AssetToResponse(asset), nil
}

func (s *AssetService) List() ([]dto.AssetResponse, error) {
	var assets []models.Asset
	if err := s.DB.Find(&assets).Error; err != nil {
		return nil, err
	}
	return dto.AssetsToResponses(assets), nil
}

// Update replaces every column with the payload value, blank or not. Assets
// do not follow the null-skip convention of the other entities.
func (s *AssetService) Update(id uint, req dto.AssetUpdateRequest) (dto.AssetResponse, error) {
	var asset *models.Asset
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		asset, err = findAsset(tx, id)
		if err != nil {
			return err
		}
		asset.Name = req.Name
		asset.Description = req.Description
		asset.GLBPath = req.GLBPath
		asset.ThumbnailDefault = req.ThumbnailDefault
		asset.PartsConfigJSON = req.PartsConfigJSON
		return tx.Save(asset).Error
	})
	if err != nil {
		return dto.AssetResponse{}, err
	}
	return dto.AssetToResponse(asset), nil
}

func (s *AssetService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		asset, err := findAsset(tx, id)
		if err != nil {
			return err
		}
		return tx.Delete(asset).Error
	})
}

func (s *AssetService) Page(q utils.PageQuery) (utils.PageResponse, error) {
	return s.pageAssets(s.DB.Model(&models.Asset{}), q)
}

// SearchByName pages assets whose name contains the given fragment,
// case-insensitively. LOWER/LIKE keeps the match portable between the
// postgres and sqlite drivers.
func (s *AssetService) SearchByName(name string, q utils.PageQuery) (utils.PageResponse, error) {
	query := s.DB.Model(&models.Asset{}).
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	return s.pageAssets(query, q)
}

// SetModelPath records the storage object key of the uploaded GLB model.
func (s *AssetService) SetModelPath(id uint, path string) (dto.AssetResponse, error) {
	return s.setStoredPath(id, func(asset *models.Asset) { asset.GLBPath = path })
}

// SetThumbnailPath records the storage object key of the uploaded thumbnail.
func (s *AssetService) SetThumbnailPath(id uint, path string) (dto.AssetResponse, error) {
	return s.setStoredPath(id, func(asset *models.Asset) { asset.ThumbnailDefault = path })
}

func (s *AssetService) setStoredPath(id uint, apply func(*models.Asset)) (dto.AssetResponse, error) {
	var asset *models.Asset
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		asset, err = findAsset(tx, id)
		if err != nil {
			return err
		}
		apply(asset)
		return tx.Save(asset).Error
	})
	if err != nil {
		return dto.AssetResponse{}, err
	}
	return dto.AssetToResponse(asset), nil
}

func (s *AssetService) pageAssets(query *gorm.DB, q utils.PageQuery) (utils.PageResponse, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.PageResponse{}, err
	}
	var assets []models.Asset
	if err := utils.ApplyPage(query, q, assetSortColumns).Find(&assets).Error; err != nil {
		return utils.PageResponse{}, err
	}
	return utils.NewPage(dto.AssetsToResponses(assets), q, total), nil
}

func findAsset(tx *gorm.DB, id uint) (*models.Asset, error) {
	var asset models.Asset
	if err := tx.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Asset not found with id: %d", id)
		}
		return nil, err
	}
	return &asset, nil
}
