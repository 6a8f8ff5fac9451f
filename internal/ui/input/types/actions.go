package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Page actions
type PrevPageAction struct{}

func (a PrevPageAction) Type() string { return "prev_page" }

type NextPageAction struct{}

func (a NextPageAction) Type() string { return "next_page" }

type GoToPageAction struct {
	Page int
}

func (a GoToPageAction) Type() string { return "go_to_page" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// ClearQueryAction drops the search text from normal mode
type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// Picker actions
type SelectGenreAction struct {
	Label string
}

func (a SelectGenreAction) Type() string { return "select_genre" }

type SetPageSizeAction struct {
	Size int
}

func (a SetPageSizeAction) Type() string { return "set_page_size" }

type UpdatePickerIndexAction struct {
	Index int
}

func (a UpdatePickerIndexAction) Type() string { return "update_picker_index" }

// Command actions
type OpenDetailAction struct{}

func (a OpenDetailAction) Type() string { return "open_detail" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
