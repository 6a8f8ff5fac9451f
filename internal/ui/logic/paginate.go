package logic

import "gamegrid/internal/domain"

// Page is one slice of a filtered collection plus its position metadata.
// StartIndex and EndIndex are 1-based and inclusive; both are 0 when there are no items.
type Page struct {
	Items      []domain.GameEntry
	StartIndex int
	EndIndex   int
	TotalPages int
}

// TotalPages returns max(1, ceil(n/pageSize))
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// ClampPage constrains page to [1, totalPages]
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate slices filtered for the given page. The page is not clamped:
// a page past the end yields no items with StartIndex greater than EndIndex.
func Paginate(filtered []domain.GameEntry, page, pageSize int) Page {
	n := len(filtered)
	p := Page{TotalPages: TotalPages(n, pageSize)}
	if n == 0 || pageSize <= 0 {
		return p
	}

	start := (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	end := min(page*pageSize, n)

	p.StartIndex = start + 1
	p.EndIndex = end
	if start < end {
		p.Items = filtered[start:end:end]
	}
	return p
}
