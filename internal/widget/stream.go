package widget

import (
	"context"
	"log"

	"selectauto/internal/domain"
)

// Subscribe starts reading option batches from src. Each batch is passed to
// deliver, which must arrange for ReceiveBatch to run on the goroutine owning
// the widget. A nil deliver is refused.
//
// A widget holds one subscription for its lifetime. The reader stops when src
// is closed, ctx is done, the returned function is called or Destroy runs.
// Errors are the source's business: a source that fails should close src.
func (w *Widget) Subscribe(ctx context.Context, src <-chan []*domain.Option, deliver func([]*domain.Option)) func() {
	if deliver == nil {
		log.Printf("widget %s: option stream needs a deliver function, ignoring", w.inputs.FieldsSelectors.SelectField)
		return func() {}
	}

	w.mu.Lock()
	if w.subscribed {
		w.mu.Unlock()
		log.Printf("widget %s: already subscribed to an option stream, ignoring", w.inputs.FieldsSelectors.SelectField)
		return func() {}
	}
	w.subscribed = true
	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		log.Printf("widget %s: option stream subscribed", w.inputs.FieldsSelectors.SelectField)
		defer log.Printf("widget %s: option stream closed", w.inputs.FieldsSelectors.SelectField)

		for {
			select {
			case <-ctx.Done():
				return
			case batch, ok := <-src:
				if !ok {
					return
				}
				// Never hand over a batch after teardown started
				select {
				case <-ctx.Done():
					return
				default:
				}
				deliver(batch)
			}
		}
	}()

	return cancel
}

// ReceiveBatch merges a batch: it becomes the visible subset and is put in
// front of the existing option list. Options already held are not
// deduplicated.
func (w *Widget) ReceiveBatch(batch []*domain.Option) {
	w.filtered = append([]*domain.Option(nil), batch...)
	merged := make([]*domain.Option, 0, len(batch)+len(w.options))
	merged = append(merged, batch...)
	merged = append(merged, w.options...)
	w.options = merged
	w.recomputeSelectAll()
}
