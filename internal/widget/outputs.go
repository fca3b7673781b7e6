package widget

import (
	"selectauto/internal/domain"
	"selectauto/internal/eventbus"
)

// BusOutputs publishes the widget's events on bus
func BusOutputs(bus eventbus.EventBus) Outputs {
	return Outputs{
		OnSearch: func(text string) {
			bus.Publish(eventbus.SearchRequestedEvent{Text: text})
		},
		OnSelectionChange: func(sel domain.Selection) {
			bus.Publish(eventbus.SelectionChangedEvent{Selection: sel})
		},
	}
}

// Chain returns Outputs calling every non-nil callback of outs in order
func Chain(outs ...Outputs) Outputs {
	return Outputs{
		OnSearch: func(text string) {
			for _, o := range outs {
				if o.OnSearch != nil {
					o.OnSearch(text)
				}
			}
		},
		OnSelectionChange: func(sel domain.Selection) {
			for _, o := range outs {
				if o.OnSelectionChange != nil {
					o.OnSelectionChange(sel.Clone())
				}
			}
		},
	}
}
