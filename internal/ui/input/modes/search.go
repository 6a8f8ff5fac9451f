package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"gamegrid/internal/ui/input/types"
)

// SearchMode edits the query live; every keystroke re-filters the grid
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

// Enter resumes editing the active query
func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.SetValue(ctx.Query())
		m.textInput.CursorEnd()
	}
	return nil
}
