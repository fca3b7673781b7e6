package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Default field names used to read an option's identity and label
const (
	DefaultValueField   = "value"
	DefaultDisplayField = "display"
)

// Fields names the option keys holding the value and the display label
type Fields struct {
	Value   string
	Display string
}

// DefaultFields returns the "value"/"display" field selectors
func DefaultFields() Fields {
	return Fields{Value: DefaultValueField, Display: DefaultDisplayField}
}

// WithDefaults fills empty field names with the defaults
func (f Fields) WithDefaults() Fields {
	if f.Value == "" {
		f.Value = DefaultValueField
	}
	if f.Display == "" {
		f.Display = DefaultDisplayField
	}
	return f
}

// Option is one selectable item. It is an opaque record; the widget only reads
// the fields named by Fields and treats the record as immutable.
type Option struct {
	data map[string]any
}

// NewOption wraps a record. The map is copied.
func NewOption(data map[string]any) *Option {
	cp := make(map[string]any, len(data))
	for k, v := range data {
		cp[k] = v
	}
	return &Option{data: cp}
}

// OptionFromStruct decodes a struct (honouring `mapstructure` tags) into an Option
func OptionFromStruct(v any) (*Option, error) {
	data := make(map[string]any)
	if err := mapstructure.Decode(v, &data); err != nil {
		return nil, fmt.Errorf("failed to decode option: %w", err)
	}
	return &Option{data: data}, nil
}

// OptionsFromMaps builds a batch from plain records
func OptionsFromMaps(records []map[string]any) []*Option {
	batch := make([]*Option, 0, len(records))
	for _, r := range records {
		batch = append(batch, NewOption(r))
	}
	return batch
}

// Get returns the named field, or nil when it is missing
func (o *Option) Get(field string) any {
	if o == nil {
		return nil
	}
	return o.data[field]
}

// Value returns the option's identity
func (o *Option) Value(f Fields) any {
	return o.Get(f.Value)
}

// Display returns the option's label as text. Missing labels are empty.
func (o *Option) Display(f Fields) string {
	v := o.Get(f.Display)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Disabled reports the optional per-option "disabled" flag
func (o *Option) Disabled() bool {
	b, _ := o.Get("disabled").(bool)
	return b
}
