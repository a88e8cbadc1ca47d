package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sideforge/backend/internal/apperr"
	"github.com/sideforge/backend/internal/dto"
	"github.com/sideforge/backend/internal/services"
	"github.com/sideforge/backend/internal/storage"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

const modelURLExpiry = 15 * time.Minute

type AssetsHandler struct {
	Service *services.AssetService
	Storage *storage.MinIOClient
}

func NewAssetsHandler(db *gorm.DB, store *storage.MinIOClient) *AssetsHandler {
	return &AssetsHandler{Service: services.NewAssetService(db), Storage: store}
}

func (h *AssetsHandler) Create(c *fiber.Ctx) error {
	var req dto.AssetCreateRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	asset, err := h.Service.Create(req)
	if err != nil {
		return err
	}
	return created(c, fmt.Sprintf("/api/assets/%d", asset.ID), asset)
}

func (h *AssetsHandler) List(c *fiber.Ctx) error {
	assets, err := h.Service.List()
	if err != nil {
		return err
	}
	return c.JSON(assets)
}

func (h *AssetsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	asset, err := h.Service.GetByID(id)
	if err != nil {
		return err
	}
	return c.JSON(asset)
}

func (h *AssetsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.AssetUpdateRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	asset, err := h.Service.Update(id, req)
	if err != nil {
		return err
	}
	return c.JSON(asset)
}

func (h *AssetsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Service.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AssetsHandler) Page(c *fiber.Ctx) error {
	q, err := utils.ParsePageQuery(c)
	if err != nil {
		return err
	}
	page, err := h.Service.Page(q)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *AssetsHandler) Search(c *fiber.Ctx) error {
	q, err := utils.ParsePageQuery(c)
	if err != nil {
		return err
	}
	page, err := h.Service.SearchByName(strings.TrimSpace(c.Query("name")), q)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// UploadModel stores the GLB model in object storage and records its key on
// the asset.
func (h *AssetsHandler) UploadModel(c *fiber.Ctx) error {
	return h.uploadObject(c, "model.glb", "model/gltf-binary", h.Service.SetModelPath)
}

// UploadThumbnail stores the thumbnail in object storage and records its key
// on the asset.
func (h *AssetsHandler) UploadThumbnail(c *fiber.Ctx) error {
	return h.uploadObject(c, "thumbnail.png", "image/png", h.Service.SetThumbnailPath)
}

// ModelURL returns a short-lived presigned download URL for the stored GLB
// model.
func (h *AssetsHandler) ModelURL(c *fiber.Ctx) error {
	if h.Storage == nil {
		return apperr.BadRequest("Object storage is not configured")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	asset, err := h.Service.GetByID(id)
	if err != nil {
		return err
	}
	url, err := h.Storage.PresignedGetURL(c.Context(), asset.GLBPath, modelURLExpiry)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"url": url, "expiresInSeconds": int(modelURLExpiry.Seconds())})
}

func (h *AssetsHandler) uploadObject(c *fiber.Ctx, objectSuffix, defaultContentType string, record func(uint, string) (dto.AssetResponse, error)) error {
	if h.Storage == nil {
		return apperr.BadRequest("Object storage is not configured")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.Service.GetByID(id); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperr.BadRequest("Missing multipart field: file")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apperr.BadRequest("Unreadable multipart field: file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	objectName := fmt.Sprintf("assets/%d/%s", id, objectSuffix)
	if err := h.Storage.Upload(c.Context(), objectName, file, fileHeader.Size, contentType); err != nil {
		return err
	}
	asset, err := record(id, objectName)
	if err != nil {
		return err
	}
	return c.JSON(asset)
}
