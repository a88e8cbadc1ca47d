package database

import (
	"time"

	"github.com/sideforge/backend/internal/models"
	"github.com/sideforge/backend/pkg/logger"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

// SeedDemoData loads the demo dataset. Each block gates on its own table
// being empty, so a partially seeded database is topped up rather than
// duplicated.
func SeedDemoData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedAdmins(tx); err != nil {
			return err
		}
		customer1, customer2, err := seedCustomers(tx)
		if err != nil {
			return err
		}
		if err := seedCatalog(tx, customer1, customer2); err != nil {
			return err
		}
		logger.Info("demo_data_seeded", nil)
		return nil
	})
}

func seedAdmins(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("kind = ?", models.KindAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range []struct{ username, password, email string }{
		{"admin1", "adminpass1", "admin1@sideforge.com"},
		{"admin2", "adminpass2", "admin2@sideforge.com"},
	} {
		hash, err := utils.HashPassword(seed.password)
		if err != nil {
			return err
		}
		admin := models.User{
			Kind:         models.KindAdmin,
			Username:     seed.username,
			Email:        seed.email,
			PasswordHash: hash,
			Role:         models.RoleAdmin,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCustomers(tx *gorm.DB) (*models.User, *models.User, error) {
	var count int64
	if err := tx.Model(&models.User{}).Where("kind = ?", models.KindCustomer).Count(&count).Error; err != nil {
		return nil, nil, err
	}

	if count == 0 {
		for _, seed := range []struct{ username, password, email string }{
			{"customer1", "custpass1", "customer1@sideforge.com"},
			{"customer2", "custpass2", "customer2@sideforge.com"},
		} {
			hash, err := utils.HashPassword(seed.password)
			if err != nil {
				return nil, nil, err
			}
			customer := models.User{
				Kind:         models.KindCustomer,
				Username:     seed.username,
				Email:        seed.email,
				PasswordHash: hash,
				Role:         models.RoleCustomer,
			}
			if err := tx.Create(&customer).Error; err != nil {
				return nil, nil, err
			}
		}
	}

	customer1, err := findByUsername(tx, "customer1")
	if err != nil {
		return nil, nil, err
	}
	customer2, err := findByUsername(tx, "customer2")
	if err != nil {
		return nil, nil, err
	}
	return customer1, customer2, nil
}

func seedCatalog(tx *gorm.DB, customer1, customer2 *models.User) error {
	var assetCount, designCount, sceneCount int64
	if err := tx.Model(&models.Asset{}).Count(&assetCount).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Design{}).Count(&designCount).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Scene{}).Count(&sceneCount).Error; err != nil {
		return err
	}
	if assetCount > 0 || designCount > 0 || sceneCount > 0 {
		return nil
	}
	if customer1 == nil || customer2 == nil {
		return nil
	}

	mug := models.Asset{
		Name:             "3D Mug",
		Description:      "Customizable 3D mug",
		GLBPath:          "/assets/3d/mug.glb",
		ThumbnailDefault: "/assets/img/mug-thumb.png",
		PartsConfigJSON:  `{"handle":true,"color":"white"}`,
	}
	if err := tx.Create(&mug).Error; err != nil {
		return err
	}
	tshirt := models.Asset{
		Name:             "3D T-Shirt",
		Description:      "Basic customizable t-shirt",
		GLBPath:          "/assets/3d/tshirt.glb",
		ThumbnailDefault: "/assets/img/tshirt-thumb.png",
		PartsConfigJSON:  `{"size":"M","color":"black"}`,
	}
	if err := tx.Create(&tshirt).Error; err != nil {
		return err
	}

	mugDesign := models.Design{
		Name:            "Modernist Mug",
		TextureMapURL:   "/textures/mug-modernist.png",
		MaterialsJSON:   `{"material":"ceramic"}`,
		PartsColorsJSON: `{"handle":"blue"}`,
		LogoConfigJSON:  `{"logo":"/logos/modern.png"}`,
		TextConfigJSON:  `{"text":"Hello Mug"}`,
		AssetID:         mug.ID,
		OwnerID:         customer1.ID,
	}
	if err := tx.Create(&mugDesign).Error; err != nil {
		return err
	}
	tshirtDesign := models.Design{
		Name:            "Urban T-Shirt",
		TextureMapURL:   "/textures/tshirt-urban.png",
		MaterialsJSON:   `{"material":"cotton"}`,
		PartsColorsJSON: `{"sleeve":"black"}`,
		LogoConfigJSON:  `{"logo":"/logos/urban.png"}`,
		TextConfigJSON:  `{"text":"Urban Style"}`,
		AssetID:         tshirt.ID,
		OwnerID:         customer2.ID,
	}
	if err := tx.Create(&tshirtDesign).Error; err != nil {
		return err
	}

	now := time.Now().UTC()
	scenes := []models.Scene{
		{
			Name:               "Mug Scene",
			LightingConfigJSON: `{"type":"modern"}`,
			CameraConfigJSON:   `{"angle":45}`,
			Thumbnail:          "/scenes/mug-scene-thumb.png",
			CreatedAt:          now,
			UpdatedAt:          now,
			OwnerID:            customer1.ID,
			DesignID:           mugDesign.ID,
		},
		{
			Name:               "T-Shirt Scene",
			LightingConfigJSON: `{"type":"shop"}`,
			CameraConfigJSON:   `{"angle":30}`,
			Thumbnail:          "/scenes/tshirt-scene-thumb.png",
			CreatedAt:          now,
			UpdatedAt:          now,
			OwnerID:            customer2.ID,
			DesignID:           tshirtDesign.ID,
		},
	}
	for i := range scenes {
		if err := tx.Create(&scenes[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func findByUsername(tx *gorm.DB, username string) (*models.User, error) {
	var user models.User
	err := tx.Where("username = ?", username).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
