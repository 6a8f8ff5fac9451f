package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"gamegrid/internal/config"
	"gamegrid/internal/ui/state"
	"gamegrid/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	config           *config.Config
	width            int
	height           int
	help             help.Model
	keys             views.KeyMap
	columns          int
	rowFrom, rowTo   int
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		config:           cfg,
		help:             help.New(),
		keys:             views.DefaultKeyMap(),
		columns:          1,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = max(width-4, 0)
}

// SetGrid sets the grid geometry and the visible row range
func (vm *ViewModel) SetGrid(columns, rowFrom, rowTo int) {
	vm.columns = columns
	vm.rowFrom = rowFrom
	vm.rowTo = rowTo
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// Keys returns the key bindings shown in help
func (vm *ViewModel) Keys() views.KeyMap {
	return vm.keys
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	pickerIndex := 0
	switch vm.inputTransformer.mode {
	case InputModeGenreSelect:
		pickerIndex = vm.state.GenreOptionIndex
	case InputModePageSizeSelect:
		pickerIndex = vm.state.PageSizeOptionIndex
	}

	return views.ViewState{
		Width:            vm.width,
		Height:           vm.height,
		Frame:            vm.state.Frame,
		Genres:           vm.state.Genres,
		PageSizes:        vm.state.View.PageSizes(),
		SelectedIndex:    vm.state.SelectedIndex,
		Columns:          vm.columns,
		RowFrom:          vm.rowFrom,
		RowTo:            vm.rowTo,
		ShowDescriptions: vm.config.UISettings.ShowDescriptions,
		InputMode:        vm.inputTransformer.GetInputModeString(),
		TextInput:        vm.inputTransformer.GetInputText(),
		PickerIndex:      pickerIndex,
		StatusMessage:    vm.state.StatusMessage,
		StatusIsError:    vm.state.StatusIsError,
		ShowHelp:         vm.state.ShowHelp,
		HelpScrollOffset: vm.state.HelpScrollOffset,
		HelpLine:         vm.help.View(vm.keys),
		Keys:             vm.keys,
	}
}
