package domain

import "reflect"

// Selection is the current choice. In multi mode Values holds the ordered
// sequence of selected option values; in single mode Value holds the scalar.
type Selection struct {
	Multiple bool
	Values   []any
	Value    any
}

// Multi returns a multi-select selection holding values in order
func Multi(values ...any) Selection {
	return Selection{Multiple: true, Values: append([]any(nil), values...)}
}

// Single returns a single-select selection
func Single(v any) Selection {
	return Selection{Value: v}
}

// EmptySelection returns the empty selection for the given mode
func EmptySelection(multiple bool) Selection {
	if multiple {
		return Selection{Multiple: true, Values: []any{}}
	}
	return Selection{}
}

// IsEmpty reports whether nothing is selected. A single selection holding nil
// or the empty string counts as empty.
func (s Selection) IsEmpty() bool {
	if s.Multiple {
		return len(s.Values) == 0
	}
	if s.Value == nil {
		return true
	}
	str, ok := s.Value.(string)
	return ok && str == ""
}

// Len returns the number of selected values
func (s Selection) Len() int {
	if s.Multiple {
		return len(s.Values)
	}
	if s.IsEmpty() {
		return 0
	}
	return 1
}

// Items returns the selected values as a sequence regardless of mode
func (s Selection) Items() []any {
	if s.Multiple {
		return append([]any(nil), s.Values...)
	}
	if s.IsEmpty() {
		return nil
	}
	return []any{s.Value}
}

// Contains reports whether v is selected
func (s Selection) Contains(v any) bool {
	for _, item := range s.Items() {
		if ValuesEqual(item, v) {
			return true
		}
	}
	return false
}

// Payload returns what observers receive: the sequence in multi mode, the
// scalar in single mode.
func (s Selection) Payload() any {
	if s.Multiple {
		if s.Values == nil {
			return []any{}
		}
		return append([]any(nil), s.Values...)
	}
	return s.Value
}

// Clone returns a copy that does not share the Values backing array
func (s Selection) Clone() Selection {
	c := s
	if s.Values != nil {
		c.Values = append([]any(nil), s.Values...)
	}
	return c
}

// ValuesEqual compares two option values. Numbers compare by value whatever
// their Go type, since config and option files decode them differently.
// Comparable values use ==, anything else falls back to deep equality so a
// stray slice value cannot panic.
func ValuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if na, ok := asNumber(a); ok {
		nb, ok := asNumber(b)
		return ok && na.equal(nb)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

type numKind int

const (
	numInt numKind = iota
	numUint
	numFloat
)

type number struct {
	kind numKind
	i    int64
	u    uint64
	f    float64
}

func asNumber(v any) (number, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: numInt, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: numUint, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: numFloat, f: rv.Float()}, true
	}
	return number{}, false
}

// equal compares integers exactly and goes through float64 only when one
// side is a float
func (n number) equal(o number) bool {
	switch {
	case n.kind == numFloat || o.kind == numFloat:
		return n.float() == o.float()
	case n.kind == o.kind:
		return n.i == o.i && n.u == o.u
	case n.kind == numInt:
		return n.i >= 0 && uint64(n.i) == o.u
	default:
		return o.i >= 0 && uint64(o.i) == n.u
	}
}

func (n number) float() float64 {
	switch n.kind {
	case numInt:
		return float64(n.i)
	case numUint:
		return float64(n.u)
	}
	return n.f
}
