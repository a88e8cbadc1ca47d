package models

// Asset is a base customizable 3D object (mug, t-shirt, ...). The parts
// configuration is an opaque JSON document stored and returned verbatim.
type Asset struct {
	ID               uint    `json:"id" gorm:"primaryKey"`
	Name             string  `json:"name" gorm:"type:varchar(255);not null"`
	Description      string  `json:"description" gorm:"type:text"`
	GLBPath          string  `json:"glbPath" gorm:"column:glb_path;type:text;not null"`
	ThumbnailDefault string  `json:"thumbnailDefault" gorm:"type:varchar(255)"`
	PartsConfigJSON  string  `json:"partsConfigJson" gorm:"column:parts_config_json;type:text"`
	Designs          []Design `json:"-" gorm:"foreignKey:AssetID"`
}

func (Asset) TableName() string {
	return "assets"
}
