package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"gamegrid/internal/ui/views"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeSearch
	InputModeGenreSelect
	InputModePageSizeSelect
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      InputMode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode InputMode) {
	it.mode = mode
}

// GetInputText returns the current text input string for the view
func (it *InputTransformer) GetInputText() string {
	if it.mode != InputModeSearch {
		return ""
	}
	return it.textInput.View()
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case InputModeSearch:
		return views.InputModeSearch
	case InputModeGenreSelect:
		return views.InputModeGenre
	case InputModePageSizeSelect:
		return views.InputModePageSize
	default:
		return views.InputModeNone
	}
}
