package views

import (
	"github.com/charmbracelet/lipgloss"

	"selectauto/internal/widget"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Label        lipgloss.Style
	Placeholder  lipgloss.Style
	Trigger      lipgloss.Style
	Dim          lipgloss.Style
	SearchBox    lipgloss.Style
	ClearIcon    lipgloss.Style
	Checkbox     lipgloss.Style
	Option       lipgloss.Style
	OptionCursor lipgloss.Style
	OptionOff    lipgloss.Style
	Highlight    lipgloss.Style
	Hint         lipgloss.Style
	Scroll       lipgloss.Style
	Help         lipgloss.Style

	// Field decoration per appearance
	Standard lipgloss.Style
	Fill     lipgloss.Style
	Outline  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Trigger:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:          lipgloss.NewStyle().Faint(true),
		SearchBox:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("241")).Padding(0, 1),
		ClearIcon:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Checkbox:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Option:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		OptionCursor: lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		OptionOff:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Hint:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:         lipgloss.NewStyle().Faint(true),

		Standard: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("241")),
		Fill: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		Outline: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
	}
}

// Field returns the decoration for an appearance
func (s *Styles) Field(a widget.Appearance) lipgloss.Style {
	switch a {
	case widget.AppearanceFill:
		return s.Fill
	case widget.AppearanceOutline:
		return s.Outline
	default:
		return s.Standard
	}
}
