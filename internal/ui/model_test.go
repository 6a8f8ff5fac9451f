package ui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamegrid/internal/catalog"
	"gamegrid/internal/config"
	"gamegrid/internal/domain"
	"gamegrid/internal/eventbus"
	"gamegrid/internal/logic"
	"gamegrid/internal/ui/coordinator"
	inputtypes "gamegrid/internal/ui/input/types"
	"gamegrid/internal/ui/state"
)

func newTestModel(t *testing.T, n int) *Model {
	t.Helper()
	games := make([]domain.GameEntry, n)
	for i := range games {
		genre := "Action"
		if i%5 == 0 {
			genre = "Puzzle"
		}
		games[i] = domain.GameEntry{
			ID:              fmt.Sprintf("g-%02d", i+1),
			Title:           fmt.Sprintf("Game %02d", i+1),
			Description:     "Something to play",
			Genre:           []string{genre},
			Rating:          8,
			ReleaseYear:     2020,
			Developer:       "Studio",
			OfficialWebsite: "https://example.com",
		}
	}
	store := logic.NewMemoryCatalogStore(&catalog.Catalog{Games: games, Genres: []string{"Action", "Puzzle"}})
	coord := coordinator.New(store, state.DefaultOptions(), nil)

	m := NewModel(coord, nil, config.DefaultConfig())
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

// runCmd executes cmd, unwrapping a single-command batch
func runCmd(cmd tea.Cmd) tea.Msg {
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok && len(batch) == 1 {
		return batch[0]()
	}
	return msg
}

func TestInitialView(t *testing.T) {
	m := newTestModel(t, 25)

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Showing 1-12 of 25 games")
	assert.Contains(t, out, "Game 01")
	assert.Equal(t, 12, len(m.State().Frame.Items))
}

func TestViewBeforeWindowSize(t *testing.T) {
	store := logic.NewMemoryCatalogStore(&catalog.Catalog{})
	m := NewModel(coordinator.New(store, state.DefaultOptions(), nil), nil, nil)
	assert.Equal(t, "Loading...", m.View())
}

func TestPageKeys(t *testing.T) {
	m := newTestModel(t, 25)

	press(m, "l")
	assert.Equal(t, 2, m.State().Frame.CurrentPage)

	press(m, "right", "right")
	assert.Equal(t, 3, m.State().Frame.CurrentPage)
	assert.Len(t, m.State().Frame.Items, 1)

	press(m, "h")
	assert.Equal(t, 2, m.State().Frame.CurrentPage)

	press(m, "1")
	assert.Equal(t, 1, m.State().Frame.CurrentPage)

	press(m, "3")
	assert.Equal(t, 3, m.State().Frame.CurrentPage)
}

func TestPageChangeResetsCursor(t *testing.T) {
	m := newTestModel(t, 25)

	press(m, "j")
	assert.Equal(t, 3, m.State().SelectedIndex)
	game, ok := m.State().SelectedGame()
	require.True(t, ok)
	assert.Equal(t, "Game 04", game.Title)

	press(m, "l")
	assert.Equal(t, 0, m.State().SelectedIndex)
	game, _ = m.State().SelectedGame()
	assert.Equal(t, "Game 13", game.Title)
}

func TestLiveSearch(t *testing.T) {
	m := newTestModel(t, 25)
	press(m, "l")

	press(m, "/", "2")
	assert.Equal(t, "2", m.State().Frame.Query)
	assert.Equal(t, 1, m.State().Frame.CurrentPage)
	assert.Equal(t, 8, m.State().Frame.FilteredCount)

	press(m, "0")
	assert.Equal(t, 1, m.State().Frame.FilteredCount)
	assert.Contains(t, ansi.Strip(m.View()), "Search: 20")

	press(m, "enter")
	assert.Equal(t, "20", m.State().Frame.Query)

	press(m, "esc")
	assert.Equal(t, "", m.State().Frame.Query)
	assert.Equal(t, 25, m.State().Frame.FilteredCount)
}

func TestSearchEscClearsQuery(t *testing.T) {
	m := newTestModel(t, 25)

	press(m, "/", "x", "y", "z")
	assert.True(t, m.State().Frame.Empty)
	assert.Contains(t, ansi.Strip(m.View()), "No matching games")

	press(m, "esc")
	assert.Equal(t, "", m.State().Frame.Query)
	assert.False(t, m.State().Frame.Empty)
}

func TestGenrePicker(t *testing.T) {
	m := newTestModel(t, 25)

	press(m, "g")
	assert.Equal(t, 0, m.State().GenreOptionIndex)

	press(m, "j", "j")
	assert.Equal(t, "Puzzle", m.State().Frame.Genre)
	assert.Equal(t, 5, m.State().Frame.FilteredCount)
	assert.Contains(t, ansi.Strip(m.View()), "› Puzzle")

	press(m, "esc")
	assert.Equal(t, domain.AllGenres, m.State().Frame.Genre)

	press(m, "g", "j", "enter")
	assert.Equal(t, "Action", m.State().Frame.Genre)
	assert.Equal(t, 20, m.State().Frame.FilteredCount)
}

func TestPageSizePicker(t *testing.T) {
	m := newTestModel(t, 25)

	press(m, "s")
	assert.Equal(t, 1, m.State().PageSizeOptionIndex)

	press(m, "j", "enter")
	assert.Equal(t, 24, m.State().Frame.PageSize)
	assert.Equal(t, 2, m.State().Frame.TotalPages)
}

func TestInvalidPageSizeShowsStatus(t *testing.T) {
	m := newTestModel(t, 25)
	press(m, "l")

	cmd := m.processAction(inputtypes.SetPageSizeAction{Size: 7})
	assert.NotNil(t, cmd)
	assert.True(t, m.State().StatusIsError)
	assert.Contains(t, m.State().StatusMessage, "Page size not allowed")
	assert.Equal(t, 2, m.State().Frame.CurrentPage)
	assert.Equal(t, 12, m.State().Frame.PageSize)
}

func TestHelpPopup(t *testing.T) {
	m := newTestModel(t, 25)

	press(m, "?")
	assert.True(t, m.State().ShowHelp)
	assert.Contains(t, ansi.Strip(m.View()), "gamegrid Help")

	press(m, "j", "j")
	assert.Equal(t, 2, m.State().HelpScrollOffset)

	// Keys don't reach the grid while help is open
	press(m, "l")
	assert.Equal(t, 1, m.State().Frame.CurrentPage)

	press(m, "esc")
	assert.False(t, m.State().ShowHelp)
	assert.Equal(t, 0, m.State().HelpScrollOffset)
}

func TestDetailWithoutProgramReportsError(t *testing.T) {
	m := newTestModel(t, 25)

	cmd := press(m, "enter")
	require.NotNil(t, cmd)
	msg := runCmd(cmd)
	detail, ok := msg.(detailPagerMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, "Game 01", detail.title)
	assert.Error(t, detail.err)

	m.Update(msg)
	assert.True(t, m.State().StatusIsError)
	assert.Contains(t, m.State().StatusMessage, "Game 01")
}

func TestHelpPagerFallsBackToPopup(t *testing.T) {
	m := newTestModel(t, 25)

	cmd := press(m, "H")
	require.NotNil(t, cmd)
	m.Update(runCmd(cmd))
	assert.True(t, m.State().ShowHelp)
}

func TestStatusClearsOnlyLatest(t *testing.T) {
	m := newTestModel(t, 25)

	m.setStatus("first", false)
	m.setStatus("second", false)

	m.Update(clearStatusMsg{seq: 1})
	assert.Equal(t, "second", m.State().StatusMessage)

	m.Update(clearStatusMsg{seq: 2})
	assert.Empty(t, m.State().StatusMessage)
}

func TestEventMsgUpdatesStatus(t *testing.T) {
	m := newTestModel(t, 25)

	m.Update(EventMsg{Event: eventbus.CatalogLoadedEvent{Source: "embedded", Games: 25, Genres: 2}})
	assert.Equal(t, "Loaded 25 games in 2 genres from embedded", m.State().StatusMessage)

	m.Update(EventMsg{Event: eventbus.ErrorEvent{Message: "boom"}})
	assert.True(t, m.State().StatusIsError)
	assert.Equal(t, "Error: boom", m.State().StatusMessage)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, 25)

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, runCmd(cmd))

	cmd = press(m, "ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, runCmd(cmd))
}

func TestPagerModeBlanksView(t *testing.T) {
	m := newTestModel(t, 25)

	m.Update(pauseRenderingMsg{})
	assert.Empty(t, m.View())

	m.Update(resumeRenderingMsg{})
	assert.NotEmpty(t, m.View())
}
