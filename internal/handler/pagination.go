package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	maxPage         = 1_000_000 // bounds the row offset (page-1)*limit
)

// PageInfo describes where a page sits in the full result.
type PageInfo struct {
	Page       int   `json:"page" example:"1"`
	Limit      int   `json:"limit" example:"10"`
	Total      int64 `json:"total" example:"12"`
	TotalPages int   `json:"totalPages" example:"2"`
	HasNext    bool  `json:"hasNext" example:"true"`
}

// Page is one slice of a longer list.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageInfo `json:"meta"`
}

func newPage[T any](data []T, total int64, page, limit int) Page[T] {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Page[T]{
		Data: data,
		Meta: PageInfo{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	}
}

// pageParams reads ?page= and ?limit=. Bad values fall back to the first
// page of defaultPageSize; page is capped at maxPage and limit at maxPageSize.
func pageParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}
	return min(page, maxPage), min(limit, maxPageSize)
}
