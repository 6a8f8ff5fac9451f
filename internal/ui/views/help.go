package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpText renders the full key reference. The popup scrolls it, the pager shows it whole.
func HelpText(keys KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("gamegrid Help"))
	help.WriteString("\n")

	sections := keys.Sections()
	for i, section := range sections {
		help.WriteString(sectionStyle.Render(section.Title))
		help.WriteString("\n")
		for _, b := range section.Bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
		if i < len(sections)-1 {
			help.WriteString("\n")
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  In pickers: ↑/↓ to change • Enter to accept • Esc to restore"))

	return help.String()
}

// renderHelpContent cuts the help text to the popup height
func (r *Renderer) renderHelpContent(keys KeyMap, height int, scrollOffset int) string {
	lines := strings.Split(HelpText(keys), "\n")
	totalLines := len(lines)

	// Calculate visible window (account for popup border and padding)
	visibleHeight := height - 6
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	if totalLines <= visibleHeight {
		return strings.Join(lines, "\n")
	}

	maxOffset := totalLines - visibleHeight
	scrollOffset = min(max(scrollOffset, 0), maxOffset)

	endLine := scrollOffset + visibleHeight
	visible := lines[scrollOffset:endLine]

	// Add scroll indicators
	if scrollOffset > 0 {
		visible[0] = r.styles.Scroll.Render("↑ (more above)")
	}
	if endLine < totalLines {
		visible[len(visible)-1] = r.styles.Scroll.Render("↓ (more below)")
	}

	return strings.Join(visible, "\n")
}
