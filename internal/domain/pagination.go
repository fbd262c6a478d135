package domain

// PaginationParams holds offset-based pagination parameters for list queries.
// A zero PageSize means no limit.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Unbounded reports whether the params request the whole collection.
func (p PaginationParams) Unbounded() bool {
	return p.PageSize <= 0
}
