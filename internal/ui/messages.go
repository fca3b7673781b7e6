package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectauto/internal/domain"
)

// OptionsMsg carries an option batch from the stream subscription into the
// program's goroutine
type OptionsMsg struct {
	Batch []*domain.Option
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// Deliver returns the function a widget subscription uses to hand batches to p
func Deliver(p *tea.Program) func([]*domain.Option) {
	return func(batch []*domain.Option) {
		p.Send(OptionsMsg{Batch: batch})
	}
}
