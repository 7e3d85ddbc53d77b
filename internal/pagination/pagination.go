// Package pagination splits ledger listings into pages.
package pagination

import (
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// PageRequest is bound from the page and page_size query parameters.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=200"`
}

// Defaults fills in missing values and caps oversized pages.
func (p *PageRequest) Defaults() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

func (p PageRequest) offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse is one page of items plus the numbers a client needs to
// fetch the rest.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// NewPageResponse builds the envelope for data, which holds the items of
// page req out of totalItems overall.
func NewPageResponse[T any](data []T, req PageRequest, totalItems int64) PageResponse[T] {
	req.Defaults()
	if data == nil {
		data = []T{}
	}

	size := int64(req.PageSize)
	totalPages := int((totalItems + size - 1) / size)
	return PageResponse[T]{
		Data:       data,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
	}
}

// Paginate is a gorm scope limiting a query to the requested page.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	req.Defaults()
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.offset()).Limit(req.PageSize)
	}
}
