package helpers

import (
	"net/http"
	"strconv"

	"devevents/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the request query string and
// clamps them to valid ranges. When neither parameter is present it returns the
// zero PaginationParams, which callers treat as "everything".
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	if !q.Has("page") && !q.Has("page_size") {
		return domain.PaginationParams{}
	}
	page := DefaultPage
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v >= 1 {
		page = v
	}
	pageSize := DefaultPageSize
	if v, err := strconv.Atoi(q.Get("page_size")); err == nil && v >= 1 {
		pageSize = min(v, MaxPageSize)
	}
	return domain.PaginationParams{Page: page, PageSize: pageSize}
}

// SetTotalCountHeader exposes the unpaginated total so list payloads stay plain arrays.
func SetTotalCountHeader(w http.ResponseWriter, total int) {
	w.Header().Set("X-Total-Count", strconv.Itoa(total))
}
