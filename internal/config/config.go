package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"selectauto/internal/domain"
	"selectauto/internal/eventbus"
	"selectauto/internal/widget"
)

// ErrInvalidAppearance is returned for an appearance other than standard, fill or outline
var ErrInvalidAppearance = errors.New("invalid appearance")

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Widget  WidgetSettings `toml:"widget"`
	Source  SourceSettings `toml:"source"`
}

// WidgetSettings mirrors the widget inputs
type WidgetSettings struct {
	SelectPlaceholder string            `toml:"select_placeholder"`
	Placeholder       string            `toml:"placeholder"`
	Disabled          bool              `toml:"disabled"`
	ValueField        string            `toml:"value_field"`
	DisplayField      string            `toml:"display_field"`
	ErrorMsg          string            `toml:"error_msg"`
	ShowErrorMsg      bool              `toml:"show_error_msg"`
	Required          bool              `toml:"required"`
	SelectedOptions   []any             `toml:"selected_options,omitempty"`
	Multiple          bool              `toml:"multiple"`
	FieldLabel        string            `toml:"field_label"`
	LabelCount        int               `toml:"label_count"`
	Appearance        string            `toml:"appearance"`
	Filter            string            `toml:"filter"` // delegate, local or fuzzy
	Selectors         SelectorsSettings `toml:"selectors"`
}

// SelectorsSettings are the automation identifiers
type SelectorsSettings struct {
	SelectField    string `toml:"select_field,omitempty"`
	InputField     string `toml:"input_field,omitempty"`
	ClearFieldIcon string `toml:"clear_field_icon,omitempty"`
}

// SourceSettings describes where option batches come from
type SourceSettings struct {
	OptionsFile string `toml:"options_file"`
	Watch       bool   `toml:"watch"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted in the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "selectauto", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default location. A missing file
// yields the defaults.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publish(eventbus.ConfigLoadedEvent{})
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the default location
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from the
// file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cs.publish(eventbus.ConfigLoadedEvent{Path: path})
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cs.publish(eventbus.ConfigSavedEvent{Path: path})
	return nil
}

func (cs *configService) publish(e eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(e)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	in := widget.DefaultInputs()
	return &Config{
		Version: 1,
		Widget: WidgetSettings{
			SelectPlaceholder: in.SelectPlaceholder,
			ValueField:        in.Fields.Value,
			DisplayField:      in.Fields.Display,
			ErrorMsg:          in.ErrorMsg,
			Multiple:          in.Multiple,
			LabelCount:        in.LabelCount,
			Appearance:        string(in.Appearance),
			Filter:            in.Filter.Name(),
		},
	}
}

// Inputs converts the widget settings into widget inputs
func (c *Config) Inputs() (widget.Inputs, error) {
	s := c.Widget

	filter, err := widget.StrategyFor(s.Filter)
	if err != nil {
		return widget.Inputs{}, err
	}

	appearance := widget.Appearance(s.Appearance)
	switch appearance {
	case "", widget.AppearanceStandard, widget.AppearanceFill, widget.AppearanceOutline:
	default:
		return widget.Inputs{}, fmt.Errorf("%w: %q", ErrInvalidAppearance, s.Appearance)
	}

	in := widget.Inputs{
		SelectPlaceholder: s.SelectPlaceholder,
		Placeholder:       s.Placeholder,
		Disabled:          s.Disabled,
		Fields:            domain.Fields{Value: s.ValueField, Display: s.DisplayField},
		ErrorMsg:          s.ErrorMsg,
		ShowErrorMsg:      s.ShowErrorMsg,
		Multiple:          s.Multiple,
		FieldLabel:        s.FieldLabel,
		LabelCount:        s.LabelCount,
		Appearance:        appearance,
		Filter:            filter,
		FieldsSelectors: widget.FieldsSelectors{
			SelectField:    s.Selectors.SelectField,
			InputField:     s.Selectors.InputField,
			ClearFieldIcon: s.Selectors.ClearFieldIcon,
		},
	}
	if len(s.SelectedOptions) > 0 {
		var preset domain.Selection
		if s.Multiple {
			preset = domain.Multi(s.SelectedOptions...)
		} else {
			preset = domain.Single(s.SelectedOptions[0])
		}
		in.SelectedOptions = &preset
	}
	return in, nil
}
