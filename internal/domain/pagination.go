package domain

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page  int
	Limit int
}

// Skip returns the document offset for the current page (0-based).
// Formula: (Page - 1) * Limit.
func (p PaginationParams) Skip() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}
