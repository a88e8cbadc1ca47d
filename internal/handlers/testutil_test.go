package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sideforge/backend/internal/database"
	"github.com/sideforge/backend/internal/models"
	"github.com/sideforge/backend/pkg/logger"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
}

var testSetupOnce sync.Once

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	testSetupOnce.Do(func() {
		logger.Init()
		utils.ConfigureJWT("test-secret", 24)
	})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed opening in-memory sqlite database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed getting sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed automigrating models: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    100 * 1024 * 1024,
		ErrorHandler: ErrorHandler,
	})
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))

	Register(app, db, nil)

	return &testEnv{app: app, db: db}
}

func createTestAdmin(t *testing.T, db *gorm.DB, username, password string) (*models.User, string) {
	t.Helper()
	return createTestUser(t, db, models.KindAdmin, models.RoleAdmin, username, password)
}

func createTestCustomer(t *testing.T, db *gorm.DB, username, password string) (*models.User, string) {
	t.Helper()
	return createTestUser(t, db, models.KindCustomer, models.RoleCustomer, username, password)
}

func createTestUser(t *testing.T, db *gorm.DB, kind models.UserKind, role models.Role, username, password string) (*models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("failed hashing password: %v", err)
	}

	user := &models.User{
		Kind:         kind,
		Username:     username,
		Email:        username + "@test.com",
		PasswordHash: hash,
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed creating test user: %v", err)
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed generating auth token: %v", err)
	}

	return user, token
}

func createTestAsset(t *testing.T, db *gorm.DB, name string) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		Name:    name,
		GLBPath: fmt.Sprintf("/assets/3d/%s.glb", name),
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed creating test asset: %v", err)
	}
	return asset
}

func createTestDesign(t *testing.T, db *gorm.DB, name string, assetID, ownerID uint) *models.Design {
	t.Helper()

	design := &models.Design{
		Name:    name,
		AssetID: assetID,
		OwnerID: ownerID,
	}
	if err := db.Create(design).Error; err != nil {
		t.Fatalf("failed creating test design: %v", err)
	}
	return design
}

func createTestScene(t *testing.T, db *gorm.DB, name string, ownerID, designID uint, at time.Time) *models.Scene {
	t.Helper()

	scene := &models.Scene{
		Name:      name,
		CreatedAt: at,
		UpdatedAt: at,
		OwnerID:   ownerID,
		DesignID:  designID,
	}
	if err := db.Create(scene).Error; err != nil {
		t.Fatalf("failed creating test scene: %v", err)
	}
	return scene
}

func authHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func performRequest(t *testing.T, app *fiber.App, method, path string, body io.Reader, headers map[string]string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}

	return resp
}

func performJSONRequest(t *testing.T, app *fiber.App, method, path string, payload any, headers map[string]string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	requestHeaders := map[string]string{}
	for key, value := range headers {
		requestHeaders[key] = value
	}
	if payload != nil {
		requestHeaders["Content-Type"] = "application/json"
	}

	return performRequest(t, app, method, path, body, requestHeaders)
}

func decodeJSONMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed reading response body: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("failed decoding JSON response: %v body=%q", err, string(raw))
	}

	return payload
}

func decodeJSONSlice(t *testing.T, resp *http.Response) []any {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed reading response body: %v", err)
	}

	var payload []any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("failed decoding JSON response: %v body=%q", err, string(raw))
	}

	return payload
}

func assertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Fatalf("expected status %d, got %d", expected, resp.StatusCode)
	}
}

// assertErrorBody checks the structured error envelope: status echoes the
// HTTP code, message matches, path is present.
func assertErrorBody(t *testing.T, body map[string]any, status int, message string) {
	t.Helper()
	if got, _ := body["status"].(float64); int(got) != status {
		t.Fatalf("expected error status %d, got %v", status, body["status"])
	}
	if message != "" {
		if got, _ := body["message"].(string); got != message {
			t.Fatalf("expected message %q, got %q", message, body["message"])
		}
	}
	if _, ok := body["path"].(string); !ok {
		t.Fatalf("expected path in error body, got %+v", body)
	}
}

func pageContent(t *testing.T, body map[string]any) []any {
	t.Helper()
	content, ok := body["content"].([]any)
	if !ok {
		t.Fatalf("expected content array in page response, got %+v", body)
	}
	return content
}
