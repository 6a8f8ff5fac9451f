package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Search       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
	Highlight    lipgloss.Style
	StatusError  lipgloss.Style
	InfoBox      lipgloss.Style
	EmptyBox     lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	Rating       lipgloss.Style
	Tag          lipgloss.Style
	Link         lipgloss.Style
	Genre        lipgloss.Style
	GenreActive  lipgloss.Style
	PageNumber   lipgloss.Style
	PageActive   lipgloss.Style
	PageArrow    lipgloss.Style
	PageDisabled lipgloss.Style
	PickerCursor lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Search: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		EmptyBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 4).
			Align(lipgloss.Center),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		CardTitle:    lipgloss.NewStyle().Bold(true),
		Rating:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Tag:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Link:         lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		Genre:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		GenreActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("99")).Bold(true).Padding(0, 1),
		PageNumber:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		PageActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("99")).Bold(true).Padding(0, 1),
		PageArrow:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PageDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		PickerCursor: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
}
