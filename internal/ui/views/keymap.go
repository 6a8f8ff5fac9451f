package views

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap documents the normal mode bindings. Input modes match on key strings;
// these bindings feed the help line, the help popup and the help pager.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Top        key.Binding
	Bottom     key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	JumpPage   key.Binding
	Search     key.Binding
	ClearQuery key.Binding
	Genre      key.Binding
	PageSize   key.Binding
	Detail     key.Binding
	Help       key.Binding
	HelpPager  key.Binding
	Quit       key.Binding
}

// HelpSection is a titled group of bindings in the full help
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// DefaultKeyMap returns the bindings of the card browser
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "card up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "card down")),
		Left:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous card")),
		Right:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next card")),
		Top:        key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first card")),
		Bottom:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last card")),
		PrevPage:   key.NewBinding(key.WithKeys("left", "h", "pgup", "["), key.WithHelp("←/h", "prev page")),
		NextPage:   key.NewBinding(key.WithKeys("right", "l", "pgdown", "]"), key.WithHelp("→/l", "next page")),
		JumpPage:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "n-th page shown")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearQuery: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Genre:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "genre")),
		PageSize:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "page size")),
		Detail:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		HelpPager:  key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help in pager")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Genre, k.PageSize, k.PrevPage, k.NextPage, k.Detail, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	sections := k.Sections()
	out := make([][]key.Binding, len(sections))
	for i, s := range sections {
		out[i] = s.Bindings
	}
	return out
}

// Sections groups the bindings for the help popup and pager
func (k KeyMap) Sections() []HelpSection {
	return []HelpSection{
		{Title: "Cards", Bindings: []key.Binding{k.Up, k.Down, k.Right, k.Left, k.Top, k.Bottom, k.Detail}},
		{Title: "Pages", Bindings: []key.Binding{k.PrevPage, k.NextPage, k.JumpPage, k.PageSize}},
		{Title: "Search & Filter", Bindings: []key.Binding{k.Search, k.ClearQuery, k.Genre}},
		{Title: "Other", Bindings: []key.Binding{k.Help, k.HelpPager, k.Quit}},
	}
}
