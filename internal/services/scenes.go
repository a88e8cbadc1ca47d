package services

import (
	"errors"
	"time"

	"github.com/sideforge/backend/internal/apperr"
	"github.com/sideforge/backend/internal/dto"
	"github.com/sideforge/backend/internal/models"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

type SceneService struct {
	DB *gorm.DB
}

func NewSceneService(db *gorm.DB) *SceneService {
	return &SceneService{DB: db}
}

var sceneSortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"ownerId":   "owner_id",
	"designId":  "design_id",
}

// Create resolves the owner and the design before any write; timestamps are
// stored exactly as the caller supplied them.
func (s *SceneService) Create(req dto.SceneCreateRequest) (dto.SceneResponse, error) {
	var scene models.Scene
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureUserExists(tx, req.OwnerID); err != nil {
			return err
		}
		if _, err := findDesign(tx, req.DesignID); err != nil {
			return err
		}
		if err := ensureDesignUnattached(tx, req.DesignID, 0); err != nil {
			return err
		}

		scene = models.Scene{
			Name:               req.Name,
			LightingConfigJSON: req.LightingConfigJSON,
			CameraConfigJSON:   req.CameraConfigJSON,
			Thumbnail:          req.Thumbnail,
			CreatedAt:          *req.CreatedAt,
			UpdatedAt:          *req.UpdatedAt,
			OwnerID:            req.OwnerID,
			DesignID:           req.DesignID,
		}
		return tx.Create(&scene).Error
	})
	if err != nil {
		return dto.SceneResponse{}, err
	}
	return dto.SceneToResponse(&scene), nil
}

func (s *SceneService) GetByID(id uint) (dto.SceneResponse, error) {
	scene, err := findScene(s.DB, id)
	if err != nil {
		return dto.SceneResponse{}, err
	}
	return dto.SceneToResponse(scene), nil
}

// Update is null-skip. Swapping the design resolves the replacement first and
// removes the displaced design, which would otherwise be orphaned.
func (s *SceneService) Update(id uint, req dto.SceneUpdateRequest) (dto.SceneResponse, error) {
	var scene *models.Scene
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		scene, err = findScene(tx, id)
		if err != nil {
			return err
		}

		if req.OwnerID != nil && *req.OwnerID != scene.OwnerID {
			if err := ensureUserExists(tx, *req.OwnerID); err != nil {
				return err
			}
			scene.OwnerID = *req.OwnerID
		}
		var displacedDesign uint
		if req.DesignID != nil && *req.DesignID != scene.DesignID {
			if _, err := findDesign(tx, *req.DesignID); err != nil {
				return err
			}
			if err := ensureDesignUnattached(tx, *req.DesignID, scene.ID); err != nil {
				return err
			}
			displacedDesign = scene.DesignID
			scene.DesignID = *req.DesignID
		}
		if req.Name != nil {
			scene.Name = *req.Name
		}
		if req.LightingConfigJSON != nil {
			scene.LightingConfigJSON = *req.LightingConfigJSON
		}
		if req.CameraConfigJSON != nil {
			scene.CameraConfigJSON = *req.CameraConfigJSON
		}
		if req.Thumbnail != nil {
			scene.Thumbnail = *req.Thumbnail
		}
		if req.CreatedAt != nil {
			scene.CreatedAt = *req.CreatedAt
		}
		if req.UpdatedAt != nil {
			scene.UpdatedAt = *req.UpdatedAt
		}
		if err := tx.Save(scene).Error; err != nil {
			return err
		}
		if displacedDesign != 0 {
			return tx.Delete(&models.Design{}, displacedDesign).Error
		}
		return nil
	})
	if err != nil {
		return dto.SceneResponse{}, err
	}
	return dto.SceneToResponse(scene), nil
}

func (s *SceneService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		scene, err := findScene(tx, id)
		if err != nil {
			return err
		}
		return deleteSceneCascade(tx, scene)
	})
}

func (s *SceneService) Page(q utils.PageQuery) (utils.PageResponse, error) {
	return s.pageScenes(s.DB.Model(&models.Scene{}), q)
}

func (s *SceneService) PageByOwner(ownerID uint, q utils.PageQuery) (utils.PageResponse, error) {
	query := s.DB.Model(&models.Scene{}).Where("owner_id = ?", ownerID)
	return s.pageScenes(query, q)
}

// PageCreatedBetween pages scenes whose createdAt falls inside the closed
// [start, end] range.
func (s *SceneService) PageCreatedBetween(start, end time.Time, q utils.PageQuery) (utils.PageResponse, error) {
	query := s.DB.Model(&models.Scene{}).Where("created_at BETWEEN ? AND ?", start, end)
	return s.pageScenes(query, q)
}

func (s *SceneService) GetByNameAndOwner(name string, ownerID uint) (dto.SceneResponse, error) {
	var scene models.Scene
	err := s.DB.Where("name = ? AND owner_id = ?", name, ownerID).First(&scene).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SceneResponse{}, apperr.NotFound("Scene not found with name: %s and owner id: %d", name, ownerID)
		}
		return dto.SceneResponse{}, err
	}
	return dto.SceneToResponse(&scene), nil
}

func (s *SceneService) CountByOwner(ownerID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Scene{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (s *SceneService) pageScenes(query *gorm.DB, q utils.PageQuery) (utils.PageResponse, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.PageResponse{}, err
	}
	var scenes []models.Scene
	if err := utils.ApplyPage(query, q, sceneSortColumns).Find(&scenes).Error; err != nil {
		return utils.PageResponse{}, err
	}
	return utils.NewPage(dto.ScenesToResponses(scenes), q, total), nil
}

func findScene(tx *gorm.DB, id uint) (*models.Scene, error) {
	var scene models.Scene
	if err := tx.First(&scene, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Scene not found with id: %d", id)
		}
		return nil, err
	}
	return &scene, nil
}

// ensureDesignUnattached keeps the one-scene-per-design rule ahead of the
// unique index, so the clash surfaces as Conflict instead of a driver error.
func ensureDesignUnattached(tx *gorm.DB, designID, excludeSceneID uint) error {
	query := tx.Model(&models.Scene{}).Where("design_id = ?", designID)
	if excludeSceneID != 0 {
		query = query.Where("id <> ?", excludeSceneID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("Design already attached to a scene: %d", designID)
	}
	return nil
}

// deleteSceneCascade removes the scene and the design it exclusively owns.
func deleteSceneCascade(tx *gorm.DB, scene *models.Scene) error {
	if err := tx.Delete(scene).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Design{}, scene.DesignID).Error
}
