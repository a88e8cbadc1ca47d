package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sideforge/backend/internal/apperr"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func parsePageQueryForTest(t *testing.T, query string) (PageQuery, error) {
	t.Helper()

	var parsed PageQuery
	var parseErr error

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		parsed, parseErr = ParsePageQuery(c)
		return c.SendStatus(fiber.StatusOK)
	})

	path := "/"
	if query != "" {
		path = fmt.Sprintf("/?%s", query)
	}

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("page query request failed for query %q: %v", query, err)
	}
	resp.Body.Close()

	return parsed, parseErr
}

func TestParsePageQuery(t *testing.T) {
	testCases := []struct {
		name      string
		query     string
		wantPage  int
		wantSize  int
		wantField string
		wantDir   string
	}{
		{name: "defaults when no query params", query: "", wantPage: 0, wantSize: 10, wantField: "id", wantDir: "asc"},
		{name: "uses explicit page and size", query: "page=2&size=5", wantPage: 2, wantSize: 5, wantField: "id", wantDir: "asc"},
		{name: "accepts size zero", query: "size=0", wantPage: 0, wantSize: 0, wantField: "id", wantDir: "asc"},
		{name: "parses the sort pair", query: "sort=username,desc", wantPage: 0, wantSize: 10, wantField: "username", wantDir: "desc"},
		{name: "normalizes sort direction case", query: "sort=email,DESC", wantPage: 0, wantSize: 10, wantField: "email", wantDir: "desc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parsePageQueryForTest(t, tc.query)
			if err != nil {
				t.Fatalf("unexpected error for query %q: %v", tc.query, err)
			}

			if got.Page != tc.wantPage {
				t.Fatalf("expected page=%d, got %d", tc.wantPage, got.Page)
			}
			if got.Size != tc.wantSize {
				t.Fatalf("expected size=%d, got %d", tc.wantSize, got.Size)
			}
			if got.SortField != tc.wantField || got.SortDir != tc.wantDir {
				t.Fatalf("expected sort %s,%s, got %s,%s", tc.wantField, tc.wantDir, got.SortField, got.SortDir)
			}
		})
	}
}

func TestParsePageQueryFailures(t *testing.T) {
	testCases := []struct {
		name     string
		query    string
		wantKind apperr.Kind
	}{
		{name: "negative page", query: "page=-1", wantKind: apperr.KindValidation},
		{name: "negative size", query: "size=-5", wantKind: apperr.KindValidation},
		{name: "non-numeric page", query: "page=abc", wantKind: apperr.KindValidation},
		{name: "sort without direction", query: "sort=id", wantKind: apperr.KindBadRequest},
		{name: "unknown sort direction", query: "sort=id,sideways", wantKind: apperr.KindBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parsePageQueryForTest(t, tc.query)
			appErr, ok := apperr.As(err)
			if !ok {
				t.Fatalf("expected a typed error for query %q, got %v", tc.query, err)
			}
			if appErr.Kind != tc.wantKind {
				t.Fatalf("expected kind %v, got %v", tc.wantKind, appErr.Kind)
			}
		})
	}
}

func TestApplyPage(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 user=test password=test dbname=test port=5432 sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("failed to create dry-run gorm db: %v", err)
	}

	sortColumns := map[string]string{"id": "id", "username": "username"}

	t.Run("applies whitelisted sort column with limit and offset", func(t *testing.T) {
		q := PageQuery{Page: 2, Size: 15, SortField: "username", SortDir: "desc"}
		paged := ApplyPage(db.Session(&gorm.Session{NewDB: true}).Table("users"), q, sortColumns)

		limitClause, ok := paged.Statement.Clauses["LIMIT"]
		if !ok {
			t.Fatal("expected LIMIT clause to be set")
		}
		limitExpr, ok := limitClause.Expression.(clause.Limit)
		if !ok {
			t.Fatalf("expected clause.Limit, got %T", limitClause.Expression)
		}
		if limitExpr.Limit == nil || *limitExpr.Limit != 15 {
			t.Fatalf("expected limit 15, got %v", limitExpr.Limit)
		}
		if limitExpr.Offset != 30 {
			t.Fatalf("expected offset 30, got %d", limitExpr.Offset)
		}

		if _, ok := paged.Statement.Clauses["ORDER BY"]; !ok {
			t.Fatal("expected ORDER BY clause to be set")
		}
	})

	t.Run("falls back to id for unknown sort fields", func(t *testing.T) {
		q := PageQuery{Page: 0, Size: 10, SortField: "drop table users", SortDir: "asc"}
		paged := ApplyPage(db.Session(&gorm.Session{NewDB: true}).Table("users"), q, sortColumns)

		orderClause, ok := paged.Statement.Clauses["ORDER BY"]
		if !ok {
			t.Fatal("expected ORDER BY clause to be set")
		}
		orderExpr, ok := orderClause.Expression.(clause.OrderBy)
		if !ok {
			t.Fatalf("expected clause.OrderBy, got %T", orderClause.Expression)
		}
		if len(orderExpr.Columns) != 1 {
			t.Fatalf("expected one order column, got %d", len(orderExpr.Columns))
		}
	})
}

func TestNewPage(t *testing.T) {
	q := PageQuery{Page: 1, Size: 4, SortField: "id", SortDir: "asc"}
	page := NewPage([]int{1, 2, 3, 4}, q, 10)

	if page.TotalElements != 10 {
		t.Fatalf("expected totalElements 10, got %d", page.TotalElements)
	}
	if page.TotalPages != 3 {
		t.Fatalf("expected totalPages 3, got %d", page.TotalPages)
	}
	if page.Sort != "id,asc" {
		t.Fatalf("expected sort id,asc, got %q", page.Sort)
	}

	empty := NewPage([]int{}, PageQuery{Page: 0, Size: 0, SortField: "id", SortDir: "asc"}, 10)
	if empty.TotalPages != 0 {
		t.Fatalf("expected totalPages 0 for size=0, got %d", empty.TotalPages)
	}
}
