package helpers

import (
	"fmt"
	"net/http"
	"strconv"

	"techevents/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParsePagination reads page and limit from the request query string.
// Missing values fall back to defaults; values that are not positive
// integers are an error, and limit is capped at MaxLimit.
func ParsePagination(r *http.Request) (domain.PaginationParams, error) {
	page := DefaultPage
	if s := r.URL.Query().Get("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return domain.PaginationParams{}, fmt.Errorf("page must be a positive integer")
		}
		page = v
	}
	limit := DefaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return domain.PaginationParams{}, fmt.Errorf("limit must be a positive integer")
		}
		if v > MaxLimit {
			v = MaxLimit
		}
		limit = v
	}
	return domain.PaginationParams{Page: page, Limit: limit}, nil
}
