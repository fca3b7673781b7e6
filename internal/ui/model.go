package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"selectauto/internal/domain"
	"selectauto/internal/ui/views"
	"selectauto/internal/widget"
)

// maxRows is how many options the open dropdown shows at once
const maxRows = 10

// Model is the Bubble Tea front end of a widget
type Model struct {
	widget   *widget.Widget
	keys     KeyMap
	help     help.Model
	search   textinput.Model
	renderer *views.Renderer
	helpText *HelpRenderer
	helpOps  *HelpOps

	open     bool
	cursor   int // index into the visible options
	offset   int // first visible option shown
	width    int
	quitting bool
}

// NewModel creates a model driving w
func NewModel(w *widget.Widget) *Model {
	in := w.Inputs()

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = in.SelectPlaceholder
	ti.CharLimit = 256
	ti.Width = 30

	keys := DefaultKeyMap()
	return &Model{
		widget:   w,
		keys:     keys,
		help:     help.New(),
		search:   ti,
		renderer: views.NewRenderer(),
		helpText: NewHelpRenderer(keys),
		width:    60,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

// Init starts the widget
func (m *Model) Init() tea.Cmd {
	m.widget.Init()
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case OptionsMsg:
		m.widget.ReceiveBatch(msg.Batch)
		m.clampCursor()

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Failed to show help: %v", msg.err)
		}

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.open {
			return m.updateOpen(msg)
		}
		return m.updateClosed(msg)
	}

	return m, nil
}

func (m *Model) updateClosed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		return m, m.showHelp()
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		return m, m.ToggleDropdown()
	}
	return m, nil
}

func (m *Model) updateOpen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	multiple := m.widget.Inputs().Multiple

	switch {
	case key.Matches(msg, m.keys.Close):
		return m, m.ToggleDropdown()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Toggle):
		m.toggleCursor()
	case key.Matches(msg, m.keys.Pick):
		if m.toggleCursor() && !multiple {
			m.syncSearch()
			return m, m.ToggleDropdown()
		}
	case key.Matches(msg, m.keys.SelectAll):
		if multiple && !m.widget.Disabled() {
			m.widget.ToggleSelectAll(!m.widget.SelectAll())
		}
	case key.Matches(msg, m.keys.Clear):
		m.widget.ClearFilter()
		m.resetCursor()
	default:
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if value := m.search.Value(); value != before {
			m.widget.FilterItem(value)
			m.resetCursor()
		}
		return m, cmd
	}

	m.syncSearch()
	return m, nil
}

// ToggleDropdown opens or closes the option list. A disabled field does not open.
func (m *Model) ToggleDropdown() tea.Cmd {
	if m.open {
		m.open = false
		m.search.Blur()
		return nil
	}
	if m.widget.Disabled() {
		return nil
	}
	m.open = true
	m.resetCursor()
	return m.search.Focus()
}

// IsOpen reports whether the dropdown is open
func (m *Model) IsOpen() bool { return m.open }

// Result returns the selection at the time the program ended
func (m *Model) Result() domain.Selection {
	return m.widget.Selection()
}

// toggleCursor picks the option under the cursor and keeps the cursor on it
// when the visible list changes afterwards
func (m *Model) toggleCursor() bool {
	visible := m.widget.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return false
	}
	picked := visible[m.cursor]
	if !m.widget.Toggle(picked) {
		return false
	}
	for i, opt := range m.widget.Visible() {
		if opt == picked {
			m.cursor = i
			break
		}
	}
	return true
}

// syncSearch mirrors the widget's search text, which selection changes reset
func (m *Model) syncSearch() {
	if m.search.Value() != m.widget.SearchText() {
		m.search.SetValue(m.widget.SearchText())
	}
	m.clampCursor()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) resetCursor() {
	m.cursor = 0
	m.offset = 0
}

func (m *Model) clampCursor() {
	n := len(m.widget.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+maxRows {
		m.offset = m.cursor - maxRows + 1
	}
}

func (m *Model) showHelp() tea.Cmd {
	content := m.helpText.RenderHelpContent(m.widget.Inputs().Multiple)
	ops := m.helpOps
	return func() tea.Msg {
		if ops == nil {
			return helpPagerMsg{err: errNoProgram}
		}
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}

// View renders the field, and the option list when open
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	in := m.widget.Inputs()
	state := views.ViewState{
		Width:        m.width,
		FieldLabel:   in.FieldLabel,
		Display:      m.widget.DisplayString(),
		Placeholder:  in.Placeholder,
		Appearance:   in.Appearance,
		Disabled:     m.widget.Disabled(),
		Open:         m.open,
		Multiple:     in.Multiple,
		SelectAll:    m.widget.SelectAll(),
		SearchInput:  m.search.View(),
		ShowErrorMsg: in.ShowErrorMsg,
		ErrorMsg:     in.ErrorMsg,
	}

	if m.open {
		visible := m.widget.Visible()
		end := m.offset + maxRows
		if end > len(visible) {
			end = len(visible)
		}
		sel := m.widget.Selection()
		for i := m.offset; i < end; i++ {
			opt := visible[i]
			state.Rows = append(state.Rows, views.OptionRow{
				Label:    opt.Display(in.Fields),
				Selected: sel.Contains(opt.Value(in.Fields)),
				Disabled: opt.Disabled(),
				Cursor:   i == m.cursor,
			})
		}
		state.RowsAbove = m.offset
		state.RowsBelow = len(visible) - end
		state.HelpView = m.help.View(openKeys{k: m.keys, multiple: in.Multiple})
	} else {
		state.HelpView = m.help.View(closedKeys{k: m.keys})
	}

	return m.renderer.Render(state)
}
