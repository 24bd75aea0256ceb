package models

// PageRequest describes the requested slice of a listing along with its
// ordering. Page is 1-based; SortBy must be whitelisted by the repository.
type PageRequest struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
}

// Offset returns the row offset for the requested page.
func (p PageRequest) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.Size
}

// Page is one page of results plus the total match count across all pages.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalCount int64 `json:"total_count"`
}
