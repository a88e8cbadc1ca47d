package models

import "time"

// Scene pairs one design with one owning user plus camera/lighting blobs.
// Timestamps are caller-supplied, not server-generated.
type Scene struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"type:varchar(255);not null"`
	LightingConfigJSON string    `json:"lightingConfigJson" gorm:"column:lighting_config_json;type:text"`
	CameraConfigJSON   string    `json:"cameraConfigJson" gorm:"column:camera_config_json;type:text"`
	Thumbnail          string    `json:"thumbnail" gorm:"type:varchar(255)"`
	CreatedAt          time.Time `json:"createdAt" gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt          time.Time `json:"updatedAt" gorm:"not null;autoUpdateTime:false"`
	OwnerID            uint      `json:"ownerId" gorm:"not null;index"`
	DesignID           uint      `json:"designId" gorm:"not null;uniqueIndex"`

	Owner  User   `json:"-" gorm:"foreignKey:OwnerID"`
	Design Design `json:"-" gorm:"foreignKey:DesignID"`
}

func (Scene) TableName() string {
	return "scenes"
}
