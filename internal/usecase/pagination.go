package usecase

// Pagination defaults shared by the product listing path.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// NormalizePage clamps page/pageSize to sane values: non-positive or missing
// parameters fall back to the defaults, and pageSize is capped.
func NormalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// PageWindow computes the skip/limit window for a 1-based page.
func PageWindow(page, pageSize int) (skip, limit int64) {
	return int64(page-1) * int64(pageSize), int64(pageSize)
}

// TotalPages computes ceil(totalCount / pageSize).
func TotalPages(totalCount int64, pageSize int) int64 {
	if pageSize <= 0 {
		return 0
	}
	return (totalCount + int64(pageSize) - 1) / int64(pageSize)
}
