package ui

import (
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gamegrid/internal/config"
	"gamegrid/internal/eventbus"
	"gamegrid/internal/ui/coordinator"
	"gamegrid/internal/ui/handlers"
	"gamegrid/internal/ui/input"
	inputtypes "gamegrid/internal/ui/input/types"
	"gamegrid/internal/ui/logic"
	"gamegrid/internal/ui/state"
	"gamegrid/internal/ui/viewmodels"
	"gamegrid/internal/ui/views"
)

const statusTimeout = 4 * time.Second

// Model represents the terminal catalog browser
type Model struct {
	coord        *coordinator.Coordinator
	bus          eventbus.EventBus
	config       *config.Config
	state        *state.AppState
	width        int
	height       int
	navigator    *logic.Navigator
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	eventHandler *handlers.EventHandler
	pager        *Pager
	program      *tea.Program
	inPagerMode  bool
	statusSeq    int
}

// NewModel creates a model bound to the coordinator. The model registers itself as
// the coordinator's renderer.
func NewModel(coord *coordinator.Coordinator, bus eventbus.EventBus, cfg *config.Config) *Model {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	appState := state.NewAppState(coord.State(), coord.Genres())
	inputHandler := input.New()

	m := &Model{
		coord:        coord,
		bus:          bus,
		config:       cfg,
		state:        appState,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowDescriptions),
		viewModel:    viewmodels.NewViewModel(appState, cfg, *inputHandler.GetTextInput()),
		inputHandler: inputHandler,
		eventHandler: handlers.NewEventHandler(appState),
		pager:        NewPager(),
	}

	coord.SetRenderer(m)
	m.syncNavigatorState()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Render implements coordinator.Renderer. It runs inside Update, so it only records the frame.
func (m *Model) Render(frame state.Frame) {
	prev := m.state.Frame
	m.state.Frame = frame
	m.state.View = m.coord.State()

	if frame.CurrentPage != prev.CurrentPage || frame.PageSize != prev.PageSize ||
		frame.Query != prev.Query || frame.Genre != prev.Genre {
		// New page: back to the first card
		m.navigator.Reset()
	}
	m.syncNavigatorState()
}

// syncNavigatorState updates the navigator with the current grid geometry
func (m *Model) syncNavigatorState() {
	columns := views.Columns(m.width)
	rows := views.GridRows(m.height, m.config.UISettings.ShowDescriptions)
	m.navigator.UpdateState(len(m.state.Frame.Items), columns, rows)

	m.state.Width = m.width
	m.state.ViewportHeight = rows
	m.state.SelectedIndex = m.navigator.GetSelectedIndex()
	m.state.ViewportOffset = m.navigator.GetViewportOffset()

	from, to := m.navigator.VisibleRows()
	m.viewModel.SetGrid(columns, from, to)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.coord.Render()
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.syncNavigatorState()
		return m, nil

	case tea.KeyMsg:
		if m.state.ShowHelp {
			return m, m.handleHelpKey(msg)
		}

		ctx := &input.ModelContext{State: m.state}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		m.viewModel.UpdateTextInput(*m.inputHandler.GetTextInput())
		return m, tea.Batch(cmds...)

	default:
		// Cursor blink and other text input messages
		textCmd := m.inputHandler.Update(msg)
		m.viewModel.UpdateTextInput(*m.inputHandler.GetTextInput())
		_, cmd := m.handleNonKeyboardMsg(msg)
		return m, tea.Batch(textCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	var mode viewmodels.InputMode
	switch m.inputHandler.GetMode() {
	case inputtypes.ModeSearch:
		mode = viewmodels.InputModeSearch
	case inputtypes.ModeGenreSelect:
		mode = viewmodels.InputModeGenreSelect
	case inputtypes.ModePageSizeSelect:
		mode = viewmodels.InputModePageSizeSelect
	default:
		mode = viewmodels.InputModeNormal
	}
	m.viewModel.SetInputMode(mode)

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// handleHelpKey scrolls or closes the help popup
func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "?", "q":
		m.state.ShowHelp = false
		m.state.HelpScrollOffset = 0
	case "down", "j":
		m.state.HelpScrollOffset++
	case "up", "k":
		if m.state.HelpScrollOffset > 0 {
			m.state.HelpScrollOffset--
		}
	case "H":
		m.state.ShowHelp = false
		return m.fetchHelpPager(views.HelpText(m.viewModel.Keys()))
	}
	return nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	slog.Debug("processAction", "type", action.Type())

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.navigator.MoveUp()
		case "down":
			m.navigator.MoveDown()
		case "left":
			m.navigator.MoveLeft()
		case "right":
			m.navigator.MoveRight()
		case "home":
			m.navigator.MoveToTop()
		case "end":
			m.navigator.MoveToBottom()
		}
		m.syncNavigatorState()

	case inputtypes.PrevPageAction:
		return m.dispatch(coordinator.PrevPage{})

	case inputtypes.NextPageAction:
		return m.dispatch(coordinator.NextPage{})

	case inputtypes.GoToPageAction:
		return m.dispatch(coordinator.PageSelected{Page: a.Page})

	case inputtypes.UpdateTextAction:
		// Live search on every keystroke
		return m.dispatch(coordinator.QueryChanged{Text: a.Text})

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			return m.dispatch(coordinator.QueryChanged{Text: a.Text})
		}

	case inputtypes.CancelTextAction, inputtypes.ClearQueryAction:
		return m.dispatch(coordinator.QueryChanged{Text: ""})

	case inputtypes.SelectGenreAction:
		return m.dispatch(coordinator.GenreSelected{Label: a.Label})

	case inputtypes.SetPageSizeAction:
		return m.dispatch(coordinator.PageSizeChanged{Size: a.Size})

	case inputtypes.UpdatePickerIndexAction:
		switch m.inputHandler.GetMode() {
		case inputtypes.ModeGenreSelect:
			m.state.GenreOptionIndex = a.Index
		case inputtypes.ModePageSizeSelect:
			m.state.PageSizeOptionIndex = a.Index
		}

	case inputtypes.ChangeModeAction:
		if a.Mode == inputtypes.ModeGenreSelect || a.Mode == inputtypes.ModePageSizeSelect {
			m.state.SyncPickers()
		}

	case inputtypes.OpenDetailAction:
		if game, ok := m.state.SelectedGame(); ok {
			return m.fetchDetailPager(game.Title, views.DetailText(game, m.width))
		}

	case inputtypes.OpenHelpPagerAction:
		return m.fetchHelpPager(views.HelpText(m.viewModel.Keys()))

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.HelpScrollOffset = 0

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// dispatch applies an interaction event; a rejected event shows in the status line
func (m *Model) dispatch(e coordinator.Event) tea.Cmd {
	if _, err := m.coord.Dispatch(e); err != nil {
		slog.Warn("interaction rejected", "event", e.Name(), "error", err)
		msg := err.Error()
		if errors.Is(err, state.ErrInvalidPageSize) {
			msg = "Page size not allowed: " + msg
		}
		return m.setStatus(msg, true)
	}
	return nil
}

// setStatus shows msg in the status line and clears it after statusTimeout
func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.state.StatusMessage = msg
	m.state.StatusIsError = isError
	return m.clearStatusLater()
}

func (m *Model) clearStatusLater() tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	program := m.program
	return func() tea.Msg {
		if program == nil {
			return helpPagerMsg{err: errNoProgram}
		}
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})
		err := m.pager.ShowHelpInPager(helpContent)
		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// fetchDetailPager returns a command that shows one entry using ov pager
func (m *Model) fetchDetailPager(title, detail string) tea.Cmd {
	program := m.program
	return func() tea.Msg {
		if program == nil {
			return detailPagerMsg{title: title, err: errNoProgram}
		}
		program.Send(pauseRenderingMsg{})
		err := m.pager.ShowDetailInPager(detail)
		program.Send(resumeRenderingMsg{})
		return detailPagerMsg{title: title, err: err}
	}
}

// handleNonKeyboardMsg processes non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		if m.eventHandler.HandleEvent(msg.Event) {
			return m, m.clearStatusLater()
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: fall back to the popup
			slog.Warn("help pager failed", "error", msg.err)
			m.state.ShowHelp = true
			m.state.HelpScrollOffset = 0
		}
		return m, nil

	case detailPagerMsg:
		if msg.err != nil {
			slog.Warn("detail pager failed", "title", msg.title, "error", msg.err)
			return m, m.setStatus("Could not open details for "+msg.title, true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		// Only the latest status clears itself
		if msg.seq == m.statusSeq {
			m.state.StatusMessage = ""
			m.state.StatusIsError = false
		}
		return m, nil

	default:
		return m, nil
	}
}

// State exposes the session state for tests and the CLI
func (m *Model) State() *state.AppState {
	return m.state
}
