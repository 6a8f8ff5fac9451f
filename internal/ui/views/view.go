package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gamegrid/internal/ui/state"
)

// chromeLines is the height taken by everything except the card grid:
// container padding, title, genre bar, summary, input line, pagination and help
const chromeLines = 12

// GridRows returns how many card rows fit in a terminal of the given height
func GridRows(height int, showDescriptions bool) int {
	return max((height-chromeLines)/CardHeight(showDescriptions), 1)
}

// Input modes as shown by the renderer
const (
	InputModeNone     = ""
	InputModeSearch   = "search"
	InputModeGenre    = "genre"
	InputModePageSize = "page size"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Frame            state.Frame
	Genres           []string // sentinel first
	PageSizes        []int
	SelectedIndex    int // card cursor within Frame.Items
	Columns          int
	RowFrom          int // first visible card row
	RowTo            int // end of visible card rows, exclusive
	ShowDescriptions bool
	InputMode        string
	TextInput        string // rendered text input in search mode
	PickerIndex      int
	StatusMessage    string
	StatusIsError    bool
	ShowHelp         bool
	HelpScrollOffset int
	HelpLine         string // short help rendered by the help model
	Keys             KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cardRender  *CardRenderer
	pageRender  *PaginationRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showDescriptions bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cardRender:  NewCardRenderer(styles, showDescriptions),
		pageRender:  NewPaginationRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}

	termWidth := vs.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding

	content.WriteString(r.renderTitleLine(vs, availableWidth))
	content.WriteString("\n\n")
	content.WriteString(r.renderGenreBar(vs, availableWidth))
	content.WriteString("\n")

	// Search prompt while typing, summary otherwise
	if vs.InputMode == InputModeSearch {
		content.WriteString(r.styles.Search.Render("Search: ") + vs.TextInput)
	} else {
		content.WriteString(r.renderSummary(vs))
	}
	content.WriteString("\n\n")

	if vs.Frame.Empty {
		content.WriteString(r.renderEmpty(availableWidth))
	} else {
		content.WriteString(r.renderGrid(vs, availableWidth))
	}
	content.WriteString("\n\n")

	content.WriteString(r.pageRender.RenderBar(vs.Frame.CurrentPage, vs.Frame.Window))
	if dots := r.pageRender.RenderDots(vs.Frame.CurrentPage, vs.Frame.TotalPages); dots != "" {
		content.WriteString("   ")
		content.WriteString(dots)
	}

	// Short help at the bottom when no popup is visible
	if !vs.ShowHelp && vs.InputMode != InputModeGenre && vs.InputMode != InputModePageSize {
		helpText := vs.HelpLine
		if helpText == "" {
			helpText = "Press ? for help"
		}
		helpText = r.styles.Help.Render(helpText)

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := vs.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}
		currentLines := strings.Count(content.String(), "\n") + 1
		if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(helpText)
	}

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	finalContent := mainStyle.Render(content.String())

	// Overlay popups on top of main content
	switch {
	case vs.ShowHelp:
		helpContent := r.renderHelpContent(vs.Keys, vs.Height, vs.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, vs.Height, termWidth, r.styles.InfoBox)
	case vs.InputMode == InputModeGenre:
		picker := r.renderPicker("Genre", vs.Genres, vs.PickerIndex)
		return r.popupRender.RenderPopupOverlay(finalContent, picker, vs.Height, termWidth, r.styles.InfoBox)
	case vs.InputMode == InputModePageSize:
		options := make([]string, len(vs.PageSizes))
		for i, n := range vs.PageSizes {
			options[i] = strconv.Itoa(n) + " per page"
		}
		picker := r.renderPicker("Page size", options, vs.PickerIndex)
		return r.popupRender.RenderPopupOverlay(finalContent, picker, vs.Height, termWidth, r.styles.InfoBox)
	}

	return finalContent
}

// renderTitleLine renders the logo with the catalog size right-aligned
func (r *Renderer) renderTitleLine(vs ViewState, availableWidth int) string {
	logo := r.styles.Title.Render("gamegrid")

	right := r.styles.Dim.Render(fmt.Sprintf("%d games", vs.Frame.TotalItems))
	if vs.Frame.Query != "" && vs.InputMode != InputModeSearch {
		right = r.styles.Search.Render(fmt.Sprintf("[Search: %s]", vs.Frame.Query)) + "  " + right
	}

	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(right)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + right
	}
	// If not enough space, just show with minimal spacing
	return logo + "  " + right
}

// renderGenreBar renders every genre label with the active one highlighted
func (r *Renderer) renderGenreBar(vs ViewState, availableWidth int) string {
	parts := make([]string, len(vs.Genres))
	for i, g := range vs.Genres {
		if g == vs.Frame.Genre {
			parts[i] = r.styles.GenreActive.Render(g)
		} else {
			parts[i] = r.styles.Genre.Render(g)
		}
	}
	return lipgloss.NewStyle().MaxWidth(availableWidth).Render(strings.Join(parts, " "))
}

func (r *Renderer) renderSummary(vs ViewState) string {
	summary := r.styles.Status.Render(fmt.Sprintf("%s · %d per page", vs.Frame.Summary(), vs.Frame.PageSize))
	if vs.StatusMessage == "" {
		return summary
	}
	style := r.styles.Status
	if vs.StatusIsError {
		style = r.styles.StatusError
	}
	return summary + "  " + style.Render(vs.StatusMessage)
}

// renderEmpty renders the distinct no-results state
func (r *Renderer) renderEmpty(availableWidth int) string {
	box := r.styles.EmptyBox.Render(
		lipgloss.NewStyle().Bold(true).Render("No matching games") + "\n" +
			r.styles.Dim.Render("try another search term or genre"),
	)
	return lipgloss.PlaceHorizontal(availableWidth, lipgloss.Center, box)
}

// renderGrid renders the visible rows of cards with scroll indicators
func (r *Renderer) renderGrid(vs ViewState, availableWidth int) string {
	cols := max(vs.Columns, 1)
	cardWidth := (availableWidth - (cols-1)*cardGap) / cols

	items := vs.Frame.Items
	totalRows := (len(items) + cols - 1) / cols
	rowFrom := min(max(vs.RowFrom, 0), totalRows)
	rowTo := min(max(vs.RowTo, rowFrom), totalRows)

	var lines []string
	if rowFrom > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more rows above ↑", rowFrom)))
	}

	for row := rowFrom; row < rowTo; row++ {
		start := row * cols
		end := min(start+cols, len(items))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, r.cardRender.RenderCard(items[i], i == vs.SelectedIndex, cardWidth, vs.Frame.Query))
		}
		lines = append(lines, r.cardRender.RenderRow(cards))
	}

	if rowTo < totalRows {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more rows below ↓", totalRows-rowTo)))
	}

	return strings.Join(lines, "\n")
}
