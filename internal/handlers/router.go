package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sideforge/backend/internal/middleware"
	"github.com/sideforge/backend/internal/storage"
	"gorm.io/gorm"
)

// Register mounts every route on the app. Literal segments are registered
// ahead of the :id captures so /page and friends never parse as identifiers.
func Register(app *fiber.App, db *gorm.DB, store *storage.MinIOClient) {
	auth := middleware.NewAuthMiddleware(db)

	authHandler := NewAuthHandler(db)
	usersHandler := NewUsersHandler(db)
	adminsHandler := NewAdminsHandler(db)
	customersHandler := NewCustomersHandler(db)
	assetsHandler := NewAssetsHandler(db, store)
	designsHandler := NewDesignsHandler(db)
	scenesHandler := NewScenesHandler(db)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	api.Post("/auth/login", authHandler.Login)

	// The user surface is the only guarded group.
	users := api.Group("/users", middleware.SecurityLogger(), auth.RequireAuth)
	users.Get("/page/role/:role", usersHandler.PageByRole)
	users.Get("/page", usersHandler.Page)
	users.Get("/", usersHandler.List)
	users.Get("/:id", usersHandler.Get)
	users.Put("/:id", usersHandler.Update)
	users.Delete("/:id", usersHandler.Delete)

	admins := api.Group("/admins")
	admins.Get("/page", adminsHandler.Page)
	admins.Post("/", adminsHandler.Create)
	admins.Get("/", adminsHandler.List)
	admins.Get("/:id", adminsHandler.Get)
	admins.Put("/:id", adminsHandler.Update)
	admins.Delete("/:id", adminsHandler.Delete)

	customers := api.Group("/customers")
	customers.Get("/page", customersHandler.Page)
	customers.Post("/", customersHandler.Create)
	customers.Get("/", customersHandler.List)
	customers.Get("/:id", customersHandler.Get)
	customers.Put("/:id", customersHandler.Update)
	customers.Delete("/:id", customersHandler.Delete)

	assets := api.Group("/assets")
	assets.Get("/page", assetsHandler.Page)
	assets.Get("/search", assetsHandler.Search)
	assets.Post("/", assetsHandler.Create)
	assets.Get("/", assetsHandler.List)
	assets.Get("/:id/model-url", assetsHandler.ModelURL)
	assets.Post("/:id/model", assetsHandler.UploadModel)
	assets.Post("/:id/thumbnail", assetsHandler.UploadThumbnail)
	assets.Get("/:id", assetsHandler.Get)
	assets.Put("/:id", assetsHandler.Update)
	assets.Delete("/:id", assetsHandler.Delete)

	designs := api.Group("/designs")
	designs.Get("/by-asset/:assetId", designsHandler.ByAsset)
	designs.Get("/by-assets", designsHandler.ByAssets)
	designs.Get("/page", designsHandler.Page)
	designs.Post("/", designsHandler.Create)
	designs.Get("/", designsHandler.List)
	designs.Get("/:id", designsHandler.Get)
	designs.Put("/:id", designsHandler.Update)
	designs.Delete("/:id", designsHandler.Delete)

	scenes := api.Group("/scenes")
	scenes.Get("/by-owner", scenesHandler.ByOwner)
	scenes.Get("/by-name-and-owner", scenesHandler.ByNameAndOwner)
	scenes.Get("/created-between", scenesHandler.CreatedBetween)
	scenes.Get("/count-by-owner", scenesHandler.CountByOwner)
	scenes.Get("/page", scenesHandler.Page)
	scenes.Post("/", scenesHandler.Create)
	scenes.Get("/:id", scenesHandler.Get)
	scenes.Put("/:id", scenesHandler.Update)
	scenes.Delete("/:id", scenesHandler.Delete)
}
