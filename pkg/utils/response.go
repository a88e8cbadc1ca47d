package utils

// PageResponse is the wrapper returned by every paginated listing.
type PageResponse struct {
	Content       interface{} `json:"content"`
	Page          int         `json:"page"`
	Size          int         `json:"size"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
	Sort          string      `json:"sort"`
}

func NewPage(content interface{}, q PageQuery, total int64) PageResponse {
	totalPages := 0
	if q.Size > 0 {
		totalPages = int((total + int64(q.Size) - 1) / int64(q.Size))
	}
	return PageResponse{
		Content:       content,
		Page:          q.Page,
		Size:          q.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		Sort:          q.SortSpec(),
	}
}
