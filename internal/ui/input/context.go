package input

import (
	"gamegrid/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// CurrentIndex returns the card under the cursor
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of cards on the current page
func (c *ModelContext) TotalItems() int {
	return len(c.State.Frame.Items)
}

// Query returns the active search text
func (c *ModelContext) Query() string {
	return c.State.View.Query()
}

// Genres returns the genre labels offered by the picker
func (c *ModelContext) Genres() []string {
	return c.State.Genres
}

// CurrentGenre returns the selected genre
func (c *ModelContext) CurrentGenre() string {
	return c.State.View.Genre()
}

// PageSizes returns the allowed page sizes
func (c *ModelContext) PageSizes() []int {
	return c.State.View.PageSizes()
}

// CurrentPageSize returns the page size in effect
func (c *ModelContext) CurrentPageSize() int {
	return c.State.View.PageSize()
}

// WindowPages returns the page numbers shown in the pagination bar
func (c *ModelContext) WindowPages() []int {
	return c.State.Frame.Window.Pages
}
