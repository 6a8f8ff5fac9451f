package state

import (
	"fmt"

	"gamegrid/internal/domain"
	"gamegrid/internal/ui/logic"
)

// Frame is everything a render adapter needs to draw one view
type Frame struct {
	FilteredCount int                `json:"filteredCount"`
	Items         []domain.GameEntry `json:"items"`
	StartIndex    int                `json:"startIndex"`
	EndIndex      int                `json:"endIndex"`
	TotalItems    int                `json:"totalItems"` // catalog size before filtering; see FilteredCount
	CurrentPage   int                `json:"currentPage"`
	TotalPages    int                `json:"totalPages"`
	PageSize      int                `json:"pageSize"`
	Query         string             `json:"query"`
	Genre         string             `json:"genre"`
	Window        logic.Window       `json:"window"`
	Empty         bool               `json:"empty"` // no entry matched; adapters show a no-results state
}

// Frame computes the current page and pagination controls
func (s ViewState) Frame() Frame {
	page := logic.Paginate(s.filtered, s.page, s.pageSize)
	items := page.Items
	if items == nil {
		items = []domain.GameEntry{}
	}

	return Frame{
		FilteredCount: len(s.filtered),
		Items:         items,
		StartIndex:    page.StartIndex,
		EndIndex:      page.EndIndex,
		TotalItems:    len(s.games),
		CurrentPage:   s.page,
		TotalPages:    page.TotalPages,
		PageSize:      s.pageSize,
		Query:         s.query,
		Genre:         s.genre,
		Window:        logic.PageWindow(s.page, page.TotalPages, s.opts.MaxVisiblePages),
		Empty:         len(s.filtered) == 0,
	}
}

// Summary renders the "Showing S-E of T" line
func (f Frame) Summary() string {
	if f.Empty {
		return "No matching games"
	}
	return fmt.Sprintf("Showing %d-%d of %d games", f.StartIndex, f.EndIndex, f.FilteredCount)
}
