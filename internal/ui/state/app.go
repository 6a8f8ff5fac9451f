package state

import (
	"slices"

	"gamegrid/internal/domain"
)

// AppState contains the terminal session state around the ViewState
type AppState struct {
	// Catalog data
	View   ViewState
	Genres []string // known genre labels, sentinel first
	Frame  Frame    // last frame handed to the renderer

	// Selection state
	SelectedIndex int // card cursor within the current page

	// Picker state
	GenreOptionIndex    int // highlighted entry in the genre picker
	PageSizeOptionIndex int // highlighted entry in the page size picker

	// UI state
	ViewportOffset   int // first visible card row
	ViewportHeight   int // available rows for the card grid
	Width            int
	ShowHelp         bool
	HelpScrollOffset int    // scroll offset for help popup
	StatusMessage    string // status bar message
	StatusIsError    bool
}

// NewAppState creates a new application state
func NewAppState(view ViewState, genres []string) *AppState {
	if len(genres) == 0 || genres[0] != domain.AllGenres {
		genres = append([]string{domain.AllGenres}, genres...)
	}
	return &AppState{
		View:           view,
		Genres:         genres,
		Frame:          view.Frame(),
		ViewportHeight: 20, // Default
	}
}

// SelectedGame returns the entry under the card cursor
func (s *AppState) SelectedGame() (domain.GameEntry, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Frame.Items) {
		return domain.GameEntry{}, false
	}
	return s.Frame.Items[s.SelectedIndex], true
}

// SyncPickers points both pickers at the values currently in effect
func (s *AppState) SyncPickers() {
	s.GenreOptionIndex = max(0, slices.Index(s.Genres, s.View.Genre()))
	s.PageSizeOptionIndex = max(0, slices.Index(s.View.PageSizes(), s.View.PageSize()))
}

// GenreOption returns the genre highlighted in the picker
func (s *AppState) GenreOption() string {
	if s.GenreOptionIndex < 0 || s.GenreOptionIndex >= len(s.Genres) {
		return domain.AllGenres
	}
	return s.Genres[s.GenreOptionIndex]
}

// PageSizeOption returns the page size highlighted in the picker
func (s *AppState) PageSizeOption() int {
	sizes := s.View.PageSizes()
	if s.PageSizeOptionIndex < 0 || s.PageSizeOptionIndex >= len(sizes) {
		return s.View.PageSize()
	}
	return sizes[s.PageSizeOptionIndex]
}

// MoveGenreOption moves the genre picker highlight by delta, wrapping around
func (s *AppState) MoveGenreOption(delta int) {
	s.GenreOptionIndex = wrap(s.GenreOptionIndex+delta, len(s.Genres))
}

// MovePageSizeOption moves the page size picker highlight by delta, wrapping around
func (s *AppState) MovePageSizeOption(delta int) {
	s.PageSizeOptionIndex = wrap(s.PageSizeOptionIndex+delta, len(s.View.PageSizes()))
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
