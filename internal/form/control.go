// Package form provides the externally owned value holder a widget binds to.
// The owner creates the Control; the widget reads its initial value once,
// writes every committed selection back, and toggles its enabled state.
package form

import (
	"errors"
	"fmt"

	"selectauto/internal/domain"
)

// ErrRequired is returned by the Required validator on an empty selection
var ErrRequired = errors.New("value is required")

// Validator checks a control value
type Validator func(value *domain.Selection) error

// Required fails when nothing is selected
func Required(value *domain.Selection) error {
	if value == nil || value.IsEmpty() {
		return ErrRequired
	}
	return nil
}

// Option configures a Control
type Option func(*Control)

// WithValue sets the initial value
func WithValue(sel domain.Selection) Option {
	return func(c *Control) {
		v := sel.Clone()
		c.value = &v
	}
}

// WithValidators adds validators run by Validate
func WithValidators(validators ...Validator) Option {
	return func(c *Control) {
		c.validators = append(c.validators, validators...)
	}
}

// Control holds a bindable value and its enabled/validity state
type Control struct {
	value      *domain.Selection
	disabled   bool
	validators []Validator
}

// New creates an enabled control
func New(opts ...Option) *Control {
	c := &Control{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Value returns the current value, or nil when none was set
func (c *Control) Value() *domain.Selection {
	if c.value == nil {
		return nil
	}
	v := c.value.Clone()
	return &v
}

// HasValue reports whether a non-empty value is present
func (c *Control) HasValue() bool {
	return c.value != nil && !c.value.IsEmpty()
}

// SetValue replaces the value
func (c *Control) SetValue(sel domain.Selection) {
	v := sel.Clone()
	c.value = &v
}

// Enable enables the control
func (c *Control) Enable() { c.disabled = false }

// Disable disables the control
func (c *Control) Disable() { c.disabled = true }

// Enabled reports whether the control accepts changes
func (c *Control) Enabled() bool { return !c.disabled }

// Validate runs every validator and returns the first failure.
// Disabled controls are always valid.
func (c *Control) Validate() error {
	if c.disabled {
		return nil
	}
	for _, v := range c.validators {
		if err := v(c.value); err != nil {
			return fmt.Errorf("invalid value: %w", err)
		}
	}
	return nil
}

// Valid reports whether Validate succeeds
func (c *Control) Valid() bool {
	return c.Validate() == nil
}
