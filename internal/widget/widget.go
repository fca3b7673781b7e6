// Package widget implements the state machine behind a searchable,
// optionally multi-select dropdown: it holds the option list, the visible
// subset, the selection and the select-all flag, and reports searches and
// selection changes to its owner through Outputs.
//
// A Widget is not safe for concurrent use. Every method must run on the
// goroutine that owns it; option batches arriving from another goroutine are
// handed over through the deliver function given to Subscribe.
package widget

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"selectauto/internal/domain"
	"selectauto/internal/form"
)

// Appearance selects the field decoration
type Appearance string

const (
	AppearanceStandard Appearance = "standard"
	AppearanceFill     Appearance = "fill"
	AppearanceOutline  Appearance = "outline"
)

// FieldsSelectors are the identifiers UI automation uses to address the
// select field, the search input and the clear icon
type FieldsSelectors struct {
	SelectField    string
	InputField     string
	ClearFieldIcon string
}

// Inputs is the widget configuration. Every field can be changed with SetInputs.
type Inputs struct {
	SelectPlaceholder string
	Placeholder       string
	Disabled          bool
	Fields            domain.Fields
	ErrorMsg          string
	ShowErrorMsg      bool
	SelectedOptions   *domain.Selection
	Multiple          bool
	FieldLabel        string
	LabelCount        int
	Appearance        Appearance
	FieldsSelectors   FieldsSelectors
	Filter            FilterStrategy
}

// DefaultInputs returns the defaults: multi-select, one label, standard
// appearance and caller-side filtering
func DefaultInputs() Inputs {
	return Inputs{
		SelectPlaceholder: "search...",
		Fields:            domain.DefaultFields(),
		ErrorMsg:          "Field is required",
		Multiple:          true,
		LabelCount:        1,
		Appearance:        AppearanceStandard,
		Filter:            Delegate{},
	}
}

// Outputs receives the widget's events. Nil callbacks are skipped.
type Outputs struct {
	OnSearch          func(text string)
	OnSelectionChange func(sel domain.Selection)
}

// Widget is the SelectAutocomplete state holder
type Widget struct {
	inputs  Inputs
	outputs Outputs
	control *form.Control

	options    []*domain.Option
	filtered   []*domain.Option
	selection  domain.Selection
	selectAll  bool
	searchText string
	display    string

	mu         sync.Mutex // guards subscription bookkeeping only
	subscribed bool
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// New creates a widget bound to ctrl. A nil control gets a private one.
func New(inputs Inputs, outputs Outputs, ctrl *form.Control) *Widget {
	if ctrl == nil {
		ctrl = form.New()
	}
	w := &Widget{
		inputs:  normalizeInputs(inputs),
		outputs: outputs,
		control: ctrl,
	}
	w.selection = domain.EmptySelection(w.inputs.Multiple)
	return w
}

func normalizeInputs(in Inputs) Inputs {
	in.Fields = in.Fields.WithDefaults()
	if in.Filter == nil {
		in.Filter = Delegate{}
	}
	if in.Appearance == "" {
		in.Appearance = AppearanceStandard
	}
	sel := &in.FieldsSelectors
	if sel.SelectField == "" || sel.InputField == "" || sel.ClearFieldIcon == "" {
		id := uuid.NewString()[:8]
		if sel.SelectField == "" {
			sel.SelectField = "select-" + id
		}
		if sel.InputField == "" {
			sel.InputField = "search-" + id
		}
		if sel.ClearFieldIcon == "" {
			sel.ClearFieldIcon = "clear-" + id
		}
	}
	return in
}

// Init runs the first consistency pass, asks the owner for an initial batch
// with an empty search and reports an empty starting selection.
func (w *Widget) Init() {
	w.applyInputs()
	w.recomputeSelectAll()
	w.emitSearch("")
	w.emitIfEmpty()
}

// SetInputs replaces the configuration and runs the consistency pass
func (w *Widget) SetInputs(inputs Inputs) {
	prevSelectors := w.inputs.FieldsSelectors
	inputs = normalizeInputsKeeping(inputs, prevSelectors)
	if inputs.Multiple != w.inputs.Multiple {
		w.selection = coerce(w.selection, inputs.Multiple)
	}
	w.inputs = inputs
	w.Sync()
}

func normalizeInputsKeeping(in Inputs, prev FieldsSelectors) Inputs {
	if in.FieldsSelectors == (FieldsSelectors{}) {
		in.FieldsSelectors = prev
	}
	return normalizeInputs(in)
}

// Destroy cancels the option stream subscription and waits for its reader
func (w *Widget) Destroy() {
	w.mu.Lock()
	cancel := w.cancel
	w.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Inputs returns the current configuration
func (w *Widget) Inputs() Inputs { return w.inputs }

// Control returns the bound form control
func (w *Widget) Control() *form.Control { return w.control }

// Options returns the full option list
func (w *Widget) Options() []*domain.Option {
	return append([]*domain.Option(nil), w.options...)
}

// Filtered returns the visible subset
func (w *Widget) Filtered() []*domain.Option {
	return append([]*domain.Option(nil), w.filtered...)
}

// Selection returns a copy of the current selection
func (w *Widget) Selection() domain.Selection { return w.selection.Clone() }

// SelectAll returns the select-all checkbox state
func (w *Widget) SelectAll() bool { return w.selectAll }

// SearchText returns the text currently shown in the search box
func (w *Widget) SearchText() string { return w.searchText }

// Disabled reports whether the field is disabled
func (w *Widget) Disabled() bool {
	return w.inputs.Disabled || !w.control.Enabled()
}

// TrackKey returns the key identifying opt in rendered lists
func (w *Widget) TrackKey(opt *domain.Option) any {
	return opt.Value(w.inputs.Fields)
}

func (w *Widget) emitSearch(text string) {
	if w.outputs.OnSearch != nil {
		w.outputs.OnSearch(text)
	}
}

func (w *Widget) emitSelection() {
	if w.outputs.OnSelectionChange != nil {
		w.outputs.OnSelectionChange(w.selection.Clone())
	}
}
