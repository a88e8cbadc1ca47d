package dto

import (
	"time"

	"github.com/sideforge/backend/internal/models"
)

type SceneCreateRequest struct {
	Name               string     `json:"name" validate:"required"`
	LightingConfigJSON string     `json:"lightingConfigJson"`
	CameraConfigJSON   string     `json:"cameraConfigJson"`
	Thumbnail          string     `json:"thumbnail" validate:"omitempty,max=255"`
	CreatedAt          *time.Time `json:"createdAt" validate:"required"`
	UpdatedAt          *time.Time `json:"updatedAt" validate:"required"`
	OwnerID            uint       `json:"ownerId" validate:"required,gt=0"`
	DesignID           uint       `json:"designId" validate:"required,gt=0"`
}

type SceneUpdateRequest struct {
	Name               *string    `json:"name" validate:"omitempty,min=1"`
	LightingConfigJSON *string    `json:"lightingConfigJson"`
	CameraConfigJSON   *string    `json:"cameraConfigJson"`
	Thumbnail          *string    `json:"thumbnail" validate:"omitempty,max=255"`
	CreatedAt          *time.Time `json:"createdAt"`
	UpdatedAt          *time.Time `json:"updatedAt"`
	OwnerID            *uint      `json:"ownerId" validate:"omitempty,gt=0"`
	DesignID           *uint      `json:"designId" validate:"omitempty,gt=0"`
}

type SceneResponse struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	LightingConfigJSON string    `json:"lightingConfigJson"`
	CameraConfigJSON   string    `json:"cameraConfigJson"`
	Thumbnail          string    `json:"thumbnail"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	OwnerID            uint      `json:"ownerId"`
	DesignID           uint      `json:"designId"`
}

func SceneToResponse(scene *models.Scene) SceneResponse {
	return SceneResponse{
		ID:                 scene.ID,
		Name:               scene.Name,
		LightingConfigJSON: scene.LightingConfigJSON,
		CameraConfigJSON:   scene.CameraConfigJSON,
		Thumbnail:          scene.Thumbnail,
		CreatedAt:          scene.CreatedAt,
		UpdatedAt:          scene.UpdatedAt,
		OwnerID:            scene.OwnerID,
		DesignID:           scene.DesignID,
	}
}

func ScenesToResponses(scenes []models.Scene) []SceneResponse {
	responses := make([]SceneResponse, 0, len(scenes))
	for i := range scenes {
		responses = append(responses, SceneToResponse(&scenes[i]))
	}
	return responses
}
