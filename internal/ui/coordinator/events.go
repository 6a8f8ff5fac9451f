package coordinator

// Event is a user interaction mapped 1:1 onto a ViewState transition
type Event interface {
	Name() string
}

// QueryChanged replaces the search text
type QueryChanged struct{ Text string }

// GenreSelected switches the genre filter
type GenreSelected struct{ Label string }

// PageSizeChanged switches the page size
type PageSizeChanged struct{ Size int }

// PrevPage moves back one page
type PrevPage struct{}

// NextPage moves forward one page
type NextPage struct{}

// PageSelected jumps to a page
type PageSelected struct{ Page int }

func (QueryChanged) Name() string    { return "query" }
func (GenreSelected) Name() string   { return "genre" }
func (PageSizeChanged) Name() string { return "page_size" }
func (PrevPage) Name() string        { return "prev" }
func (NextPage) Name() string        { return "next" }
func (PageSelected) Name() string    { return "page" }
