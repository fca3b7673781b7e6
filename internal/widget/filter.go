package widget

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"selectauto/internal/domain"
)

// ErrUnknownFilter is returned by StrategyFor for unrecognised names
var ErrUnknownFilter = errors.New("unknown filter strategy")

// FilterStrategy decides how search text narrows the visible options.
// Filter returns ok=false when the owner performs filtering itself; the
// visible subset is then left to the next option batch.
type FilterStrategy interface {
	Name() string
	Filter(text string, options []*domain.Option, fields domain.Fields) (visible []*domain.Option, ok bool)
}

// Delegate leaves filtering to whoever supplies the option stream
type Delegate struct{}

func (Delegate) Name() string { return "delegate" }

func (Delegate) Filter(string, []*domain.Option, domain.Fields) ([]*domain.Option, bool) {
	return nil, false
}

// Local keeps options whose label contains the text, ignoring case
type Local struct{}

func (Local) Name() string { return "local" }

func (Local) Filter(text string, options []*domain.Option, fields domain.Fields) ([]*domain.Option, bool) {
	query := strings.ToLower(text)
	visible := make([]*domain.Option, 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Display(fields)), query) {
			visible = append(visible, opt)
		}
	}
	return visible, true
}

// Fuzzy keeps options whose label fuzzily matches the text. Matches keep the
// option list order rather than score order.
type Fuzzy struct{}

func (Fuzzy) Name() string { return "fuzzy" }

func (Fuzzy) Filter(text string, options []*domain.Option, fields domain.Fields) ([]*domain.Option, bool) {
	if text == "" {
		return append([]*domain.Option(nil), options...), true
	}
	matches := fuzzy.FindFrom(text, labelSource{options: options, fields: fields})
	indexes := make([]int, 0, len(matches))
	for _, m := range matches {
		indexes = append(indexes, m.Index)
	}
	sort.Ints(indexes)

	visible := make([]*domain.Option, 0, len(indexes))
	for _, i := range indexes {
		visible = append(visible, options[i])
	}
	return visible, true
}

type labelSource struct {
	options []*domain.Option
	fields  domain.Fields
}

func (s labelSource) String(i int) string { return s.options[i].Display(s.fields) }
func (s labelSource) Len() int            { return len(s.options) }

// StrategyFor maps a configuration name to a strategy. The empty name is delegate.
func StrategyFor(name string) (FilterStrategy, error) {
	switch strings.ToLower(name) {
	case "", "delegate":
		return Delegate{}, nil
	case "local":
		return Local{}, nil
	case "fuzzy":
		return Fuzzy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
}

// FilterItem handles a keystroke in the search box. The text is always
// reported through OnSearch; a local strategy also narrows the visible subset.
func (w *Widget) FilterItem(text string) {
	w.searchText = text
	if visible, ok := w.inputs.Filter.Filter(text, w.options, w.inputs.Fields); ok {
		w.filtered = visible
		w.recomputeSelectAll()
	}
	w.emitSearch(text)
}

// ClearFilter is the clear icon: it empties the search box and reports the
// empty search
func (w *Widget) ClearFilter() {
	w.FilterItem("")
}

// HideOption reports whether opt is outside the visible subset. Membership is
// by identity, so an equal option from an older batch can still be hidden.
func (w *Widget) HideOption(opt *domain.Option) bool {
	for _, f := range w.filtered {
		if f == opt {
			return false
		}
	}
	return true
}

// Visible returns the options that are not hidden, in option list order
func (w *Widget) Visible() []*domain.Option {
	visible := make([]*domain.Option, 0, len(w.filtered))
	for _, opt := range w.options {
		if !w.HideOption(opt) {
			visible = append(visible, opt)
		}
	}
	return visible
}

// filteredValues returns the values of the visible subset, in order
func (w *Widget) filteredValues() []any {
	values := make([]any, 0, len(w.filtered))
	for _, opt := range w.filtered {
		values = append(values, opt.Value(w.inputs.Fields))
	}
	return values
}
