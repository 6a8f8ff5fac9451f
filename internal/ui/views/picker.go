package views

import (
	"strings"
)

// renderPicker renders a titled option list with the highlighted option marked
func (r *Renderer) renderPicker(title string, options []string, cursor int) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(title))
	b.WriteString("\n\n")

	for i, opt := range options {
		prefix := "  "
		line := opt
		if i == cursor {
			prefix = r.styles.PickerCursor.Render("› ")
			line = r.styles.PickerCursor.Render(opt)
		}
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("↑/↓ or j/k to change • Enter to accept • Esc to restore"))
	return b.String()
}
