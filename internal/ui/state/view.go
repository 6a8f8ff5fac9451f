package state

import (
	"errors"
	"fmt"
	"slices"

	"gamegrid/internal/domain"
	"gamegrid/internal/ui/logic"
)

// ErrInvalidPageSize is returned when a page size outside the allowed set is requested
var ErrInvalidPageSize = errors.New("page size not allowed")

// Options configures a ViewState
type Options struct {
	PageSizes       []int
	DefaultPageSize int
	MaxVisiblePages int
}

// DefaultOptions returns the stock page size set {6, 12, 24, 48} with 12 selected
func DefaultOptions() Options {
	return Options{
		PageSizes:       []int{6, 12, 24, 48},
		DefaultPageSize: 12,
		MaxVisiblePages: logic.DefaultMaxVisiblePages,
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	sizes := make([]int, 0, len(o.PageSizes))
	for _, size := range o.PageSizes {
		if size > 0 && !slices.Contains(sizes, size) {
			sizes = append(sizes, size)
		}
	}
	if len(sizes) == 0 {
		sizes = def.PageSizes
	}
	o.PageSizes = sizes
	if !slices.Contains(o.PageSizes, o.DefaultPageSize) {
		o.DefaultPageSize = o.PageSizes[0]
		if slices.Contains(o.PageSizes, def.DefaultPageSize) {
			o.DefaultPageSize = def.DefaultPageSize
		}
	}
	if o.MaxVisiblePages < 1 {
		o.MaxVisiblePages = def.MaxVisiblePages
	}
	return o
}

// ViewState holds the query, genre, page and page size of one browsing session
// together with the filtered collection derived from them.
// Transitions return a new value and leave the receiver untouched.
type ViewState struct {
	games    []domain.GameEntry
	opts     Options
	query    string
	genre    string
	page     int
	pageSize int
	filtered []domain.GameEntry
}

// New creates the initial state: empty query, all genres, page 1, default page size
func New(games []domain.GameEntry, opts Options) ViewState {
	opts = opts.normalized()
	s := ViewState{
		games:    games,
		opts:     opts,
		genre:    domain.AllGenres,
		page:     1,
		pageSize: opts.DefaultPageSize,
	}
	return s.recompute()
}

// Query returns the lower-cased search query
func (s ViewState) Query() string { return s.query }

// Genre returns the selected genre label
func (s ViewState) Genre() string { return s.genre }

// Page returns the current page
func (s ViewState) Page() int { return s.page }

// PageSize returns the current page size
func (s ViewState) PageSize() int { return s.pageSize }

// PageSizes returns the allowed page sizes
func (s ViewState) PageSizes() []int { return slices.Clone(s.opts.PageSizes) }

// Filtered returns the entries matching the query and genre
func (s ViewState) Filtered() []domain.GameEntry { return s.filtered }

// TotalPages returns the page count of the filtered collection
func (s ViewState) TotalPages() int { return logic.TotalPages(len(s.filtered), s.pageSize) }

// AllowsPageSize reports whether n is one of the allowed page sizes
func (s ViewState) AllowsPageSize(n int) bool {
	return slices.Contains(s.opts.PageSizes, n)
}

// SetQuery lower-cases q, stores it and goes back to page 1
func (s ViewState) SetQuery(q string) ViewState {
	s.query = logic.Lower(q)
	s.page = 1
	return s.recompute()
}

// SetGenre stores g and goes back to page 1.
// A label no entry carries is kept and simply matches nothing.
func (s ViewState) SetGenre(g string) ViewState {
	s.genre = g
	s.page = 1
	return s.recompute()
}

// SetPageSize switches to n and goes back to page 1.
// Sizes outside the allowed set are rejected and the receiver is returned unchanged.
func (s ViewState) SetPageSize(n int) (ViewState, error) {
	if !s.AllowsPageSize(n) {
		return s, fmt.Errorf("%w: %d (allowed %v)", ErrInvalidPageSize, n, s.opts.PageSizes)
	}
	s.pageSize = n
	s.page = 1
	return s.recompute(), nil
}

// GoToPage jumps to p, clamped to [1, TotalPages]
func (s ViewState) GoToPage(p int) ViewState {
	s.page = logic.ClampPage(p, s.TotalPages())
	return s
}

// PrevPage moves back one page, or does nothing on the first page
func (s ViewState) PrevPage() ViewState {
	if s.page > 1 {
		return s.GoToPage(s.page - 1)
	}
	return s
}

// NextPage moves forward one page, or does nothing on the last page
func (s ViewState) NextPage() ViewState {
	if s.page < s.TotalPages() {
		return s.GoToPage(s.page + 1)
	}
	return s
}

func (s ViewState) recompute() ViewState {
	s.filtered = logic.Filter(s.games, s.query, s.genre)
	s.page = logic.ClampPage(s.page, s.TotalPages())
	return s
}
