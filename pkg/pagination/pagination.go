package pagination

// DefaultPageSize is the standard page size when one is not provided.
const DefaultPageSize = 12

// WindowSize is how many page numbers the storefront pager renders.
const WindowSize = 4

// Meta mirrors the pagination block returned alongside catalog listings.
type Meta struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// NormalizePage coerces a page number to be 1-based.
func NormalizePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// NormalizePageSize enforces the default page size.
func NormalizePageSize(pageSize int) int {
	if pageSize <= 0 {
		return DefaultPageSize
	}
	return pageSize
}

// NewMeta computes the pagination block for a filtered total.
func NewMeta(page, pageSize, total int) Meta {
	page = NormalizePage(page)
	pageSize = NormalizePageSize(pageSize)
	pageCount := total / pageSize
	if total%pageSize != 0 {
		pageCount++
	}
	return Meta{
		Page:      page,
		PageSize:  pageSize,
		PageCount: pageCount,
		Total:     total,
	}
}

// Paginate returns the 1-based page slice of items. Pages beyond the end
// yield an empty slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	page = NormalizePage(page)
	pageSize = NormalizePageSize(pageSize)

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Window picks which page numbers the pager renders. The window is a fixed
// four pages and is deliberately not centered on the current page: near the
// start it pins to [1..4], near the end to the last four, and in the middle
// it shows [current-1 .. current+2].
func Window(current, total int) []int {
	if total <= 0 {
		return nil
	}
	current = NormalizePage(current)

	if total <= WindowSize {
		pages := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	switch {
	case current <= 3:
		return []int{1, 2, 3, 4}
	case current >= total-2:
		return []int{total - 3, total - 2, total - 1, total}
	default:
		return []int{current - 1, current, current + 1, current + 2}
	}
}
