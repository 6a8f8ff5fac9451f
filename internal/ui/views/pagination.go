package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"

	"gamegrid/internal/ui/logic"
)

// PaginationRenderer draws the page bar and the page dots under the grid
type PaginationRenderer struct {
	styles *Styles
	dots   paginator.Model
}

// NewPaginationRenderer creates a new pagination renderer
func NewPaginationRenderer(styles *Styles) *PaginationRenderer {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = styles.PickerCursor.Render("•")
	p.InactiveDot = styles.PageDisabled.Render("•")
	return &PaginationRenderer{styles: styles, dots: p}
}

// RenderBar renders "‹ Prev  1 2 [3] 4 5  Next ›" with disabled arrows dimmed
func (p *PaginationRenderer) RenderBar(current int, window logic.Window) string {
	var b strings.Builder

	prev := "‹ Prev"
	if window.PrevEnabled {
		b.WriteString(p.styles.PageArrow.Render(prev))
	} else {
		b.WriteString(p.styles.PageDisabled.Render(prev))
	}
	b.WriteString("  ")

	for _, n := range window.Pages {
		label := strconv.Itoa(n)
		if n == current {
			b.WriteString(p.styles.PageActive.Render(label))
		} else {
			b.WriteString(p.styles.PageNumber.Render(label))
		}
	}

	b.WriteString("  ")
	next := "Next ›"
	if window.NextEnabled {
		b.WriteString(p.styles.PageArrow.Render(next))
	} else {
		b.WriteString(p.styles.PageDisabled.Render(next))
	}
	return b.String()
}

// RenderDots renders one dot per page with the current page lit
func (p *PaginationRenderer) RenderDots(current, total int) string {
	if total <= 1 {
		return ""
	}
	dots := p.dots
	dots.TotalPages = total
	dots.Page = current - 1
	return dots.View()
}
