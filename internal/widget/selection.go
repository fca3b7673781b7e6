package widget

import (
	"log"

	"github.com/emirpasic/gods/lists/arraylist"

	"selectauto/internal/domain"
)

// ToggleSelectAll selects (checked) or deselects every visible option.
// Selecting appends the missing visible values after the existing ones;
// deselecting drops every visible value. The result is reported once.
func (w *Widget) ToggleSelectAll(checked bool) {
	if !w.inputs.Multiple {
		log.Printf("widget %s: select-all ignored in single-select mode", w.inputs.FieldsSelectors.SelectField)
		return
	}

	current := arraylist.New(w.selection.Values...)
	visible := w.filteredValues()
	if checked {
		for _, v := range visible {
			if !containsValue(current, v) {
				current.Add(v)
			}
		}
	} else {
		current = current.Select(func(_ int, item interface{}) bool {
			return !contains(visible, item)
		})
	}

	w.commit(domain.Multi(current.Values()...))
	w.recomputeSelectAll()
	w.emitSelection()
}

// OnSelectionChange commits the value produced by the list after the user
// picked or unpicked an option: the whole new sequence in multi mode, the new
// scalar in single mode. The change is reported, then the search box is
// cleared and an empty search is reported so the full list comes back.
func (w *Widget) OnSelectionChange(newValue domain.Selection) {
	w.commit(coerce(newValue, w.inputs.Multiple))
	w.recomputeSelectAll()
	w.emitSelection()
	w.FilterItem("")
}

// Toggle is what a pick on opt means for the current mode: in multi mode the
// option's value is added or removed, in single mode it replaces the
// selection. Disabled options and a disabled field are ignored.
func (w *Widget) Toggle(opt *domain.Option) bool {
	if opt == nil || opt.Disabled() || w.Disabled() {
		return false
	}
	v := opt.Value(w.inputs.Fields)
	if !w.inputs.Multiple {
		w.OnSelectionChange(domain.Single(v))
		return true
	}

	values := arraylist.New(w.selection.Values...)
	if idx, _ := values.Find(func(_ int, item interface{}) bool {
		return domain.ValuesEqual(item, v)
	}); idx >= 0 {
		values.Remove(idx)
	} else {
		values.Add(v)
	}
	w.OnSelectionChange(domain.Multi(values.Values()...))
	return true
}

// Sync is the consistency pass run whenever inputs change: a preset selection
// wins over the bound control's value, and the control follows the disabled
// flag. Observers are told if the selection ends up empty.
func (w *Widget) Sync() {
	w.applyInputs()
	w.recomputeSelectAll()
	w.emitIfEmpty()
}

func (w *Widget) applyInputs() {
	if w.inputs.Disabled {
		w.control.Disable()
	} else {
		w.control.Enable()
	}

	switch {
	case w.inputs.SelectedOptions != nil:
		w.selection = coerce(w.inputs.SelectedOptions.Clone(), w.inputs.Multiple)
	case w.control.HasValue():
		w.selection = coerce(*w.control.Value(), w.inputs.Multiple)
	}
}

// emitIfEmpty reports an empty selection. Operations that already report
// their result do not call it, so each mutation is reported exactly once.
func (w *Widget) emitIfEmpty() {
	if w.selection.IsEmpty() {
		w.emitSelection()
	}
}

func (w *Widget) commit(sel domain.Selection) {
	w.selection = sel
	w.control.SetValue(sel)
}

// recomputeSelectAll keeps the checkbox true only while the visible subset is
// non-empty and fully selected
func (w *Widget) recomputeSelectAll() {
	if !w.inputs.Multiple || len(w.filtered) == 0 {
		w.selectAll = false
		return
	}
	for _, v := range w.filteredValues() {
		if !w.selection.Contains(v) {
			w.selectAll = false
			return
		}
	}
	w.selectAll = true
}

// coerce reshapes sel for the given mode
func coerce(sel domain.Selection, multiple bool) domain.Selection {
	if sel.Multiple == multiple {
		if multiple && sel.Values == nil {
			sel.Values = []any{}
		}
		return sel
	}
	items := sel.Items()
	if multiple {
		if items == nil {
			items = []any{}
		}
		return domain.Selection{Multiple: true, Values: items}
	}
	if len(items) == 0 {
		return domain.EmptySelection(false)
	}
	return domain.Single(items[0])
}

func containsValue(list *arraylist.List, v any) bool {
	return list.Any(func(_ int, item interface{}) bool {
		return domain.ValuesEqual(item, v)
	})
}

func contains(values []any, v any) bool {
	for _, item := range values {
		if domain.ValuesEqual(item, v) {
			return true
		}
	}
	return false
}
