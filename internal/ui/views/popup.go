package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers the styled popup over a greyed copy of the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := max((width-modalW)/2, 0)
	y := max((height-modalH)/2, 0)

	base := strings.Split(desaturate(mainContent), "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}

	for i, line := range strings.Split(styledPopup, "\n") {
		base[y+i] = overlayLine(base[y+i], line, x, modalW)
	}
	return strings.Join(base, "\n")
}

// overlayLine writes top over base starting at column x
func overlayLine(base, top string, x, topWidth int) string {
	left := ansi.Truncate(base, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	if w := ansi.StringWidth(top); w < topWidth {
		top += strings.Repeat(" ", topWidth-w)
	}
	right := ansi.TruncateLeft(base, x+topWidth, "")
	return left + top + right
}

var greyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// desaturate strips ANSI color/style codes and recolors every line dim gray
func desaturate(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = greyStyle.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}
