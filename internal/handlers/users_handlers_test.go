package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestUsersEndpoints(t *testing.T) {
	env := setupTestEnv(t)
	admin, adminToken := createTestAdmin(t, env.db, "users-admin", "password123")
	customer, _ := createTestCustomer(t, env.db, "users-customer", "password123")

	t.Run("GET /api/users without a token is unauthorized", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/", nil, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusUnauthorized)
		assertErrorBody(t, body, http.StatusUnauthorized, "Missing authorization header")
	})

	t.Run("GET /api/users lists every user regardless of variant", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/", nil, authHeaders(adminToken))
		assertStatus(t, resp, http.StatusOK)
		users := decodeJSONSlice(t, resp)
		if len(users) != 2 {
			t.Fatalf("expected 2 users, got %d", len(users))
		}
	})

	t.Run("GET /api/users/:id returns the shared projection", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, fmt.Sprintf("/api/users/%d", customer.ID), nil, authHeaders(adminToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)
		if body["username"] != "users-customer" {
			t.Fatalf("expected username users-customer, got %v", body["username"])
		}
		if body["role"] != "CUSTOMER" {
			t.Fatalf("expected role CUSTOMER, got %v", body["role"])
		}
		if _, leaked := body["passwordHash"]; leaked {
			t.Fatalf("password hash must never leave the API")
		}
	})

	t.Run("GET /api/users/:id not found", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/9999", nil, authHeaders(adminToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusNotFound)
		assertErrorBody(t, body, http.StatusNotFound, "User not found with id: 9999")
	})

	t.Run("GET /api/users/:id non-numeric id fails validation", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/abc", nil, authHeaders(adminToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusBadRequest)
		assertErrorBody(t, body, http.StatusBadRequest, "Validation failed")
	})

	t.Run("PUT /api/users/:id overwrites credentials and keeps password when blank", func(t *testing.T) {
		before := customer.PasswordHash

		resp := performJSONRequest(t, env.app, http.MethodPut, fmt.Sprintf("/api/users/%d", customer.ID), map[string]any{
			"username": "users-renamed",
			"email":    "users-renamed@test.com",
			"role":     "CUSTOMER",
		}, authHeaders(adminToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)
		if body["username"] != "users-renamed" {
			t.Fatalf("expected renamed user, got %v", body["username"])
		}

		if err := env.db.First(customer, customer.ID).Error; err != nil {
			t.Fatalf("failed reloading customer: %v", err)
		}
		if customer.PasswordHash != before {
			t.Fatalf("password must be untouched when omitted")
		}
	})

	t.Run("PUT /api/users/:id rehashes a supplied password", func(t *testing.T) {
		before := customer.PasswordHash

		resp := performJSONRequest(t, env.app, http.MethodPut, fmt.Sprintf("/api/users/%d", customer.ID), map[string]any{
			"username": "users-renamed",
			"email":    "users-renamed@test.com",
			"password": "freshpassword",
			"role":     "CUSTOMER",
		}, authHeaders(adminToken))
		assertStatus(t, resp, http.StatusOK)
		resp.Body.Close()

		if err := env.db.First(customer, customer.ID).Error; err != nil {
			t.Fatalf("failed reloading customer: %v", err)
		}
		if customer.PasswordHash == before || customer.PasswordHash == "freshpassword" {
			t.Fatalf("expected a new password hash")
		}
	})

	t.Run("PUT /api/users/:id duplicate username conflicts", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPut, fmt.Sprintf("/api/users/%d", customer.ID), map[string]any{
			"username": "users-admin",
			"email":    "users-renamed@test.com",
			"role":     "CUSTOMER",
		}, authHeaders(adminToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusConflict)
		assertErrorBody(t, body, http.StatusConflict, "Username or email already in use")
	})

	t.Run("GET /api/users/page sorts and counts", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/page?page=0&size=10&sort=id,desc", nil, authHeaders(adminToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)
		if total, _ := body["totalElements"].(float64); int(total) != 2 {
			t.Fatalf("expected totalElements 2, got %v", body["totalElements"])
		}
		content := pageContent(t, body)
		if len(content) != 2 {
			t.Fatalf("expected 2 users in page, got %d", len(content))
		}
		first := content[0].(map[string]any)
		second := content[1].(map[string]any)
		if first["id"].(float64) < second["id"].(float64) {
			t.Fatalf("expected descending id order")
		}
	})

	t.Run("GET /api/users/page negative page fails validation", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/page?page=-1", nil, authHeaders(adminToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusBadRequest)
		details, _ := body["details"].([]any)
		if len(details) != 1 {
			t.Fatalf("expected one validation detail, got %+v", body)
		}
	})

	t.Run("GET /api/users/page malformed sort is a bad request", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/page?sort=id", nil, authHeaders(adminToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusBadRequest)
		assertErrorBody(t, body, http.StatusBadRequest, "sort must use the form field,direction")
	})

	t.Run("GET /api/users/page/role/:role filters by role", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/page/role/customer", nil, authHeaders(adminToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)
		content := pageContent(t, body)
		if len(content) != 1 {
			t.Fatalf("expected 1 customer, got %d", len(content))
		}
	})

	t.Run("GET /api/users/page/role/:role unknown role is a bad request", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/users/page/role/wizard", nil, authHeaders(adminToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusBadRequest)
		assertErrorBody(t, body, http.StatusBadRequest, "Invalid role: wizard")
	})

	t.Run("DELETE /api/users/:id cascades to owned scenes and their designs", func(t *testing.T) {
		owner, _ := createTestCustomer(t, env.db, "users-cascade", "password123")
		asset := createTestAsset(t, env.db, "cascade-mug")
		design := createTestDesign(t, env.db, "Cascade Design", asset.ID, owner.ID)
		scene := createTestScene(t, env.db, "Cascade Scene", owner.ID, design.ID, time.Now().UTC())

		resp := performRequest(t, env.app, http.MethodDelete, fmt.Sprintf("/api/users/%d", owner.ID), nil, authHeaders(adminToken))
		assertStatus(t, resp, http.StatusNoContent)
		resp.Body.Close()

		resp = performRequest(t, env.app, http.MethodGet, fmt.Sprintf("/api/scenes/%d", scene.ID), nil, nil)
		assertStatus(t, resp, http.StatusNotFound)
		resp.Body.Close()

		resp = performRequest(t, env.app, http.MethodGet, fmt.Sprintf("/api/designs/%d", design.ID), nil, nil)
		assertStatus(t, resp, http.StatusNotFound)
		resp.Body.Close()

		resp = performRequest(t, env.app, http.MethodGet, fmt.Sprintf("/api/assets/%d", asset.ID), nil, nil)
		assertStatus(t, resp, http.StatusOK)
		resp.Body.Close()
	})

	t.Run("DELETE /api/users/:id not found", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodDelete, "/api/users/9999", nil, authHeaders(adminToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusNotFound)
		assertErrorBody(t, body, http.StatusNotFound, "User not found with id: 9999")
	})

	if admin.ID == customer.ID {
		t.Fatalf("expected distinct users for users endpoint tests")
	}
}
