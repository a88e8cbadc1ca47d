package handlers

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAssetsEndpoints(t *testing.T) {
	env := setupTestEnv(t)

	var assetID float64

	t.Run("POST /api/assets creates an asset", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/assets/", map[string]any{
			"name":             "3D Mug",
			"description":      "Customizable 3D mug",
			"glbPath":          "/assets/3d/mug.glb",
			"thumbnailDefault": "/assets/img/mug-thumb.png",
			"partsConfigJson":  `{"handle":true}`,
		}, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusCreated)

		assetID = body["id"].(float64)
		if loc := resp.Header.Get("Location"); loc != fmt.Sprintf("/api/assets/%d", int(assetID)) {
			t.Fatalf("unexpected Location header %q", loc)
		}
		if body["name"] != "3D Mug" || body["glbPath"] != "/assets/3d/mug.glb" {
			t.Fatalf("created asset mismatch: %+v", body)
		}
	})

	t.Run("POST /api/assets requires name and glbPath", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/assets/", map[string]any{
			"description": "missing the essentials",
		}, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusBadRequest)
		details, _ := body["details"].([]any)
		if len(details) != 2 {
			t.Fatalf("expected 2 validation details, got %+v", details)
		}
	})

	t.Run("PUT /api/assets/:id replaces every field", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPut, fmt.Sprintf("/api/assets/%d", int(assetID)), map[string]any{
			"name":    "3D Mug v2",
			"glbPath": "/assets/3d/mug-v2.glb",
		}, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)
		if body["name"] != "3D Mug v2" {
			t.Fatalf("expected replaced name, got %v", body["name"])
		}
		// Full-replace semantics: omitted fields become empty, not retained.
		if body["description"] != "" || body["thumbnailDefault"] != "" || body["partsConfigJson"] != "" {
			t.Fatalf("expected omitted fields blanked, got %+v", body)
		}
	})

	t.Run("GET /api/assets/search matches case-insensitively", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/assets/", map[string]any{
			"name":    "3D T-Shirt",
			"glbPath": "/assets/3d/tshirt.glb",
		}, nil)
		assertStatus(t, resp, http.StatusCreated)
		resp.Body.Close()

		resp = performRequest(t, env.app, http.MethodGet, "/api/assets/search?name=mug", nil, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)
		if total, _ := body["totalElements"].(float64); int(total) != 1 {
			t.Fatalf("expected one match for mug, got %v", body["totalElements"])
		}
		content := pageContent(t, body)
		if content[0].(map[string]any)["name"] != "3D Mug v2" {
			t.Fatalf("expected the mug asset, got %+v", content[0])
		}
	})

	t.Run("GET /api/assets/page sorts by name descending", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/assets/page?sort=name,desc", nil, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)
		content := pageContent(t, body)
		if len(content) != 2 {
			t.Fatalf("expected 2 assets, got %d", len(content))
		}
		if content[0].(map[string]any)["name"] != "3D T-Shirt" {
			t.Fatalf("expected descending name order, got %+v", content)
		}
	})

	t.Run("GET /api/assets/page size zero yields no content but full count", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/assets/page?size=0", nil, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)
		if total, _ := body["totalElements"].(float64); int(total) != 2 {
			t.Fatalf("expected totalElements 2, got %v", body["totalElements"])
		}
		content := pageContent(t, body)
		if len(content) != 0 {
			t.Fatalf("expected empty content for size=0, got %d", len(content))
		}
	})

	t.Run("storage endpoints without a configured store are bad requests", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, fmt.Sprintf("/api/assets/%d/model-url", int(assetID)), nil, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusBadRequest)
		assertErrorBody(t, body, http.StatusBadRequest, "Object storage is not configured")
	})

	t.Run("DELETE /api/assets/:id removes the asset", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodDelete, fmt.Sprintf("/api/assets/%d", int(assetID)), nil, nil)
		assertStatus(t, resp, http.StatusNoContent)
		resp.Body.Close()

		resp = performRequest(t, env.app, http.MethodGet, fmt.Sprintf("/api/assets/%d", int(assetID)), nil, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusNotFound)
		assertErrorBody(t, body, http.StatusNotFound, fmt.Sprintf("Asset not found with id: %d", int(assetID)))
	})

	t.Run("PUT /api/assets/:id not found", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPut, "/api/assets/9999", map[string]any{
			"name":    "Ghost",
			"glbPath": "/assets/3d/ghost.glb",
		}, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusNotFound)
		assertErrorBody(t, body, http.StatusNotFound, "Asset not found with id: 9999")
	})
}
