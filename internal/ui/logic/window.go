package logic

// DefaultMaxVisiblePages is the number of page buttons shown by default
const DefaultMaxVisiblePages = 5

// Window describes the pagination controls
type Window struct {
	Pages       []int `json:"pages"`
	PrevEnabled bool  `json:"prevEnabled"`
	NextEnabled bool  `json:"nextEnabled"`
}

// PageWindow returns up to maxVisible contiguous page numbers around current,
// keeping up to two pages before it and sliding to stay within [1, total].
func PageWindow(current, total, maxVisible int) Window {
	if total < 1 {
		total = 1
	}
	if maxVisible < 1 {
		maxVisible = DefaultMaxVisiblePages
	}

	start := max(1, current-2)
	end := min(total, start+maxVisible-1)
	if end-start+1 < maxVisible {
		start = max(1, end-maxVisible+1)
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}

	return Window{
		Pages:       pages,
		PrevEnabled: current > 1,
		NextEnabled: current < total,
	}
}
