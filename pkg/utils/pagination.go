package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sideforge/backend/internal/apperr"
	"gorm.io/gorm"
)

// PageQuery carries the page/size/sort triple shared by every paginated
// endpoint. Sort arrives as "field,direction".
type PageQuery struct {
	Page      int
	Size      int
	SortField string
	SortDir   string
}

func ParsePageQuery(c *fiber.Ctx) (PageQuery, error) {
	q := PageQuery{Page: 0, Size: 10, SortField: "id", SortDir: "asc"}

	var details []string
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			details = append(details, "page must be a non-negative integer")
		} else {
			q.Page = parsed
		}
	}
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			details = append(details, "size must be a non-negative integer")
		} else {
			q.Size = parsed
		}
	}
	if len(details) > 0 {
		return q, apperr.Validation(details)
	}

	if raw := c.Query("sort"); raw != "" {
		parts := strings.SplitN(raw, ",", 2)
		if len(parts) != 2 {
			return q, apperr.BadRequest("sort must use the form field,direction")
		}
		dir := strings.ToLower(strings.TrimSpace(parts[1]))
		if dir != "asc" && dir != "desc" {
			return q, apperr.BadRequest("sort direction must be asc or desc")
		}
		q.SortField = strings.TrimSpace(parts[0])
		q.SortDir = dir
	}

	return q, nil
}

func (q PageQuery) Offset() int {
	return q.Page * q.Size
}

func (q PageQuery) SortSpec() string {
	return q.SortField + "," + q.SortDir
}

// ApplyPage adds ordering and windowing to a query. Sort fields resolve
// through the caller's whitelist so column names never come from input;
// unknown fields fall back to id.
func ApplyPage(db *gorm.DB, q PageQuery, sortColumns map[string]string) *gorm.DB {
	column, ok := sortColumns[q.SortField]
	if !ok {
		column = "id"
	}
	return db.Order(fmt.Sprintf("%s %s", column, strings.ToUpper(q.SortDir))).
		Offset(q.Offset()).
		Limit(q.Size)
}
