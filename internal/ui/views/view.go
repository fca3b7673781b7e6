package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"selectauto/internal/widget"
)

// OptionRow is one visible option in the open dropdown
type OptionRow struct {
	Label    string
	Selected bool
	Disabled bool
	Cursor   bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	FieldLabel   string
	Display      string
	Placeholder  string
	Appearance   widget.Appearance
	Disabled     bool
	Open         bool
	Multiple     bool
	SelectAll    bool
	SearchInput  string // rendered search text input
	Rows         []OptionRow
	RowsAbove    int // visible options scrolled out above
	RowsBelow    int // visible options scrolled out below
	ShowErrorMsg bool
	ErrorMsg     string
	HelpView     string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles { return r.styles }

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	if state.FieldLabel != "" {
		content.WriteString(r.styles.Label.Render(state.FieldLabel))
		content.WriteString("\n")
	}

	content.WriteString(r.renderTrigger(state))
	content.WriteString("\n")

	if state.Open {
		content.WriteString(r.renderSearchRow(state))
		content.WriteString("\n")
		content.WriteString(r.renderRows(state))
	}

	if state.ShowErrorMsg && state.ErrorMsg != "" {
		content.WriteString(r.styles.Hint.Render(state.ErrorMsg))
		content.WriteString("\n")
	}

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(state.HelpView)
	}

	return content.String()
}

func (r *Renderer) renderTrigger(state ViewState) string {
	text := r.styles.Trigger.Render(state.Display)
	if state.Display == "" {
		text = r.styles.Placeholder.Render(state.Placeholder)
	}

	arrow := "▾"
	if state.Open {
		arrow = "▴"
	}

	width := state.Width - 6
	if width < 20 {
		width = 20
	}
	gap := width - lipgloss.Width(text) - lipgloss.Width(arrow)
	if gap < 1 {
		gap = 1
	}
	line := text + strings.Repeat(" ", gap) + arrow

	field := r.styles.Field(state.Appearance).Render(line)
	if state.Disabled {
		return r.styles.Dim.Render(field)
	}
	return field
}

func (r *Renderer) renderSearchRow(state ViewState) string {
	var parts []string
	if state.Multiple {
		parts = append(parts, r.styles.Checkbox.Render(checkbox(state.SelectAll)))
	}
	parts = append(parts, state.SearchInput, r.styles.ClearIcon.Render("✕"))
	return r.styles.SearchBox.Render(strings.Join(parts, " "))
}

func (r *Renderer) renderRows(state ViewState) string {
	var b strings.Builder

	if state.RowsAbove > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", state.RowsAbove)))
		b.WriteString("\n")
	}
	if len(state.Rows) == 0 {
		b.WriteString(r.styles.Dim.Render("  no options"))
		b.WriteString("\n")
	}
	for _, row := range state.Rows {
		b.WriteString(r.renderRow(row, state.Multiple))
		b.WriteString("\n")
	}
	if state.RowsBelow > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", state.RowsBelow)))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderRow(row OptionRow, multiple bool) string {
	prefix := "  "
	if row.Cursor {
		prefix = "> "
	}

	var mark string
	switch {
	case multiple:
		mark = checkbox(row.Selected) + " "
	case row.Selected:
		mark = "● "
	default:
		mark = "  "
	}

	style := r.styles.Option
	if row.Selected {
		style = r.styles.Highlight
	}
	if row.Disabled {
		style = r.styles.OptionOff
	}
	line := prefix + mark + style.Render(row.Label)
	if row.Cursor {
		return r.styles.OptionCursor.Render(line)
	}
	return line
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
