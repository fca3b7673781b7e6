package widget

import (
	"fmt"
	"strings"

	"selectauto/internal/domain"
)

// ComputeDisplayString renders the selection as the closed field's label.
//
// Multi mode labels the first labelCount selected values that have an option,
// comma-joined, and appends " (+N others)" when more than one value is
// selected and the selection is longer than labelCount. Single mode returns
// the selected option's label. Values without an option contribute nothing.
func ComputeDisplayString(sel domain.Selection, options []*domain.Option, fields domain.Fields, labelCount int, multiple bool) string {
	if sel.IsEmpty() {
		return ""
	}
	fields = fields.WithDefaults()
	values := sel.Items()

	if !multiple {
		if opt := findOption(options, fields, values[0]); opt != nil {
			return opt.Display(fields)
		}
		return ""
	}

	labels := make([]string, 0, max(labelCount, 0))
	for i := 0; i < labelCount && i < len(values); i++ {
		opt := findOption(options, fields, values[i])
		if opt == nil {
			continue
		}
		if label := opt.Display(fields); label != "" {
			labels = append(labels, label)
		}
	}

	out := strings.Join(labels, ",")
	if len(values) > 1 && len(values) > labelCount {
		out += fmt.Sprintf(" (+%d others)", len(values)-labelCount)
	}
	return out
}

// DisplayString recomputes and caches the label for the current state
func (w *Widget) DisplayString() string {
	w.display = ComputeDisplayString(w.selection, w.options, w.inputs.Fields, w.inputs.LabelCount, w.inputs.Multiple)
	return w.display
}

func findOption(options []*domain.Option, fields domain.Fields, v any) *domain.Option {
	for _, opt := range options {
		if domain.ValuesEqual(opt.Value(fields), v) {
			return opt
		}
	}
	return nil
}
