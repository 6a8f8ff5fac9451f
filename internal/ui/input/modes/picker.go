package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"gamegrid/internal/ui/input/types"
)

// pickerMode is a vertical option list that applies the highlighted option immediately.
// Esc restores the option that was active on entry.
type pickerMode struct {
	name          string
	index         int
	originalIndex int // Remember the original option when entering
	count         func(ctx types.Context) int
	current       func(ctx types.Context) int
	apply         func(ctx types.Context, index int) types.Action
}

func (m *pickerMode) Name() string {
	return m.name
}

func (m *pickerMode) Enter(ctx types.Context) []types.Action {
	m.index = max(0, m.current(ctx))
	m.originalIndex = m.index
	return []types.Action{types.UpdatePickerIndexAction{Index: m.index}}
}

func (m *pickerMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

// HandleKey processes key messages for option selection
func (m *pickerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		// Cancel and restore original option
		actions := []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}
		if m.index != m.originalIndex {
			actions = append([]types.Action{m.apply(ctx, m.originalIndex)}, actions...)
		}
		return actions, true

	case "enter":
		// Accept current option and return to normal mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "up", "k":
		return m.move(ctx, -1), true

	case "down", "j":
		return m.move(ctx, 1), true

	case "home":
		return m.move(ctx, -m.index), true

	case "end":
		return m.move(ctx, m.count(ctx)-1-m.index), true
	}

	return nil, true
}

func (m *pickerMode) move(ctx types.Context, delta int) []types.Action {
	n := m.count(ctx)
	if n == 0 || delta == 0 {
		return nil
	}
	m.index = ((m.index+delta)%n + n) % n
	// Update the UI and apply immediately
	return []types.Action{
		types.UpdatePickerIndexAction{Index: m.index},
		m.apply(ctx, m.index),
	}
}

// GetCurrentIndex returns the highlighted option index
func (m *pickerMode) GetCurrentIndex() int {
	return m.index
}
