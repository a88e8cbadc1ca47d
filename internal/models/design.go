package models

// Design customizes one asset for one owning customer. A customer cannot
// hold two designs on the same asset.
type Design struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"type:varchar(255);not null"`
	TextureMapURL   string `json:"textureMapUrl" gorm:"column:texture_map_url;type:varchar(255)"`
	MaterialsJSON   string `json:"materialsJson" gorm:"column:materials_json;type:text"`
	PartsColorsJSON string `json:"partsColorsJson" gorm:"column:parts_colors_json;type:text"`
	LogoConfigJSON  string `json:"logoConfigJson" gorm:"column:logo_config_json;type:text"`
	TextConfigJSON  string `json:"textConfigJson" gorm:"column:text_config_json;type:text"`
	AssetID         uint   `json:"assetId" gorm:"not null;index;uniqueIndex:idx_designs_asset_owner"`
	OwnerID         uint   `json:"ownerId" gorm:"not null;index;uniqueIndex:idx_designs_asset_owner"`

	Asset Asset `json:"-" gorm:"foreignKey:AssetID"`
	Owner User  `json:"-" gorm:"foreignKey:OwnerID"`
}

func (Design) TableName() string {
	return "designs"
}
