package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gamegrid/internal/domain"
)

// DetailText renders the full record of one entry for the pager
func DetailText(game domain.GameEntry, width int) string {
	if width <= 0 {
		width = 80
	}
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(10)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1)

	var b strings.Builder
	b.WriteString(titleStyle.Render(game.Title))
	b.WriteString("\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(label), value))
	}
	field("Rating", lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Render(fmt.Sprintf("★ %.1f", game.Rating)))
	if game.ReleaseYear > 0 {
		field("Released", fmt.Sprint(game.ReleaseYear))
	}
	field("Developer", game.Developer)
	field("Genres", strings.Join(game.Genre, ", "))
	field("Website", game.OfficialWebsite)
	field("Image", game.Image)

	if game.Description != "" {
		b.WriteString("\n")
		b.WriteString(ansi.Wordwrap(game.Description, min(width, 100), ""))
		b.WriteString("\n")
	}
	return b.String()
}
