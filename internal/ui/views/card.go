package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gamegrid/internal/domain"
)

const (
	// MinCardWidth is the narrowest card the grid lays out
	MinCardWidth = 32
	// MaxColumns caps the cards per row on wide terminals
	MaxColumns = 4
	cardGap    = 1
)

// CardHeight returns the rendered height of a card including its border
func CardHeight(showDescriptions bool) int {
	h := 2 + 5 // border + title, rating, tags, developer, website
	if showDescriptions {
		h += 2
	}
	return h
}

// Columns returns how many cards fit side by side in width
func Columns(width int) int {
	avail := width - 4 // main container padding
	cols := (avail + cardGap) / (MinCardWidth + cardGap)
	return min(max(cols, 1), MaxColumns)
}

// CardRenderer handles rendering of game cards
type CardRenderer struct {
	styles           *Styles
	showDescriptions bool
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles, showDescriptions bool) *CardRenderer {
	return &CardRenderer{
		styles:           styles,
		showDescriptions: showDescriptions,
	}
}

// RenderCard renders one entry as a bordered card of the given outer width
func (r *CardRenderer) RenderCard(game domain.GameEntry, isSelected bool, width int, query string) string {
	inner := max(width-4, 8) // border + padding

	title := ansi.Truncate(game.Title, inner, "…")
	titleStyle := r.styles.CardTitle
	if isSelected {
		titleStyle = titleStyle.Foreground(lipgloss.Color("99"))
	}
	titleLine := highlightMatch(title, query, r.styles.Highlight.Bold(true), titleStyle)

	meta := r.styles.Rating.Render(fmt.Sprintf("★ %.1f", game.Rating))
	if game.ReleaseYear > 0 {
		meta += r.styles.Dim.Render(fmt.Sprintf("  ·  %d", game.ReleaseYear))
	}

	tags := make([]string, len(game.Genre))
	for i, g := range game.Genre {
		tags[i] = "#" + g
	}
	tagLine := r.styles.Tag.Render(ansi.Truncate(strings.Join(tags, " "), inner, "…"))

	lines := []string{titleLine, meta, tagLine}

	if r.showDescriptions {
		lines = append(lines, r.descriptionLines(game.Description, inner, query)...)
	}

	developer := game.Developer
	if developer == "" {
		developer = "unknown developer"
	}
	lines = append(lines,
		r.styles.Dim.Render(ansi.Truncate(developer, inner, "…")),
		r.styles.Link.Render(ansi.Truncate(game.OfficialWebsite, inner, "…")),
	)

	style := r.styles.Card
	if isSelected {
		style = r.styles.CardSelected
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// descriptionLines wraps the description into exactly two lines
func (r *CardRenderer) descriptionLines(desc string, width int, query string) []string {
	wrapped := strings.Split(ansi.Wordwrap(desc, width, ""), "\n")
	out := make([]string, 2)
	for i := range out {
		if i >= len(wrapped) {
			break
		}
		line := wrapped[i]
		if i == len(out)-1 && len(wrapped) > len(out) {
			line = ansi.Truncate(line, width-1, "") + "…"
		}
		out[i] = highlightMatch(ansi.Truncate(line, width, "…"), query, r.styles.Highlight, lipgloss.NewStyle().Foreground(lipgloss.Color("250")))
	}
	return out
}

// RenderRow joins cards horizontally with the grid gap
func (r *CardRenderer) RenderRow(cards []string) string {
	parts := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", cardGap))
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// highlightMatch highlights the first occurrence of query within text
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	if query == "" {
		return normalStyle.Render(text)
	}

	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// Case folding may change byte lengths; fall back to plain rendering then
	if index == -1 || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	// Split the text into parts
	before := text[:index]
	match := text[index : index+len(lowerQuery)]
	after := text[index+len(lowerQuery):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
