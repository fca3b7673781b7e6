package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

var errNoProgram = errors.New("program not set")

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent generates the full key reference with colors for the pager
func (r *HelpRenderer) RenderHelpContent(multiple bool) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(keys, desc string) string {
		return fmt.Sprintf("  %s %s\n", keyStyle.Width(12).Render(keys), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("selectauto Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Field"))
	help.WriteString("\n")
	help.WriteString(line("enter/space", "Open the dropdown"))
	help.WriteString(line("?", "Show this help"))
	help.WriteString(line("q/esc", "Finish and print the selection"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Dropdown"))
	help.WriteString("\n")
	help.WriteString(line("type", "Search options"))
	help.WriteString(line("↑/↓", "Move between visible options"))
	if multiple {
		help.WriteString(line("enter/tab", "Select or unselect the option"))
		help.WriteString(line("ctrl+a", "Select or unselect every visible option"))
	} else {
		help.WriteString(line("enter", "Pick the option and close"))
		help.WriteString(line("tab", "Pick the option"))
	}
	help.WriteString(line("ctrl+x", "Clear the search"))
	help.WriteString(line("esc", "Close the dropdown"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("ctrl+c", "Quit without waiting"))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Let ov fully exit before taking the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Don't write the help back to the screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
