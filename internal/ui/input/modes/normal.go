package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"gamegrid/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyTab:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyLeft, tea.KeyPgUp:
		return []types.Action{types.PrevPageAction{}}, true

	case tea.KeyRight, tea.KeyPgDown:
		return []types.Action{types.NextPageAction{}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if ctx.TotalItems() > 0 {
			return []types.Action{types.OpenDetailAction{}}, true
		}
		return nil, false

	case tea.KeyEsc:
		// Esc drops an active search, otherwise does nothing
		if ctx.Query() != "" {
			return []types.Action{types.ClearQueryAction{}}, true
		}
		return nil, true
	}

	// Handle string keys
	switch key := msg.String(); key {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h", "[":
		return []types.Action{types.PrevPageAction{}}, true

	case "l", "]":
		return []types.Action{types.NextPageAction{}}, true

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		// Digits pick the n-th page number shown in the pagination bar
		pages := ctx.WindowPages()
		n := int(key[0] - '0')
		if n <= len(pages) {
			return []types.Action{types.GoToPageAction{Page: pages[n-1]}}, true
		}
		return nil, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "g":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGenreSelect}}, true

	case "s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModePageSizeSelect}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "H":
		return []types.Action{types.OpenHelpPagerAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
