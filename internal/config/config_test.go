package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectauto/internal/eventbus"
	"selectauto/internal/widget"
)

func TestDefaultConfigMatchesWidgetDefaults(t *testing.T) {
	cfg := DefaultConfig()

	in, err := cfg.Inputs()
	require.NoError(t, err)
	assert.Equal(t, "search...", in.SelectPlaceholder)
	assert.True(t, in.Multiple)
	assert.Equal(t, 1, in.LabelCount)
	assert.Equal(t, widget.AppearanceStandard, in.Appearance)
	assert.Equal(t, "delegate", in.Filter.Name())
	assert.Nil(t, in.SelectedOptions)
}

func TestLoadFromPathKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "selectauto.toml")
	content := `
[widget]
field_label = "Countries"
label_count = 2
filter = "local"
selected_options = ["NL", "BE"]

[source]
options_file = "countries.yaml"
watch = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "Countries", cfg.Widget.FieldLabel)
	assert.Equal(t, 2, cfg.Widget.LabelCount)
	assert.True(t, cfg.Widget.Multiple, "multiple defaults to true")
	assert.Equal(t, "search...", cfg.Widget.SelectPlaceholder)
	assert.Equal(t, "countries.yaml", cfg.Source.OptionsFile)
	assert.True(t, cfg.Source.Watch)

	in, err := cfg.Inputs()
	require.NoError(t, err)
	assert.Equal(t, "local", in.Filter.Name())
	require.NotNil(t, in.SelectedOptions)
	assert.Equal(t, []any{"NL", "BE"}, in.SelectedOptions.Values)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService()

	cfg := DefaultConfig()
	cfg.Widget.Multiple = false
	cfg.Widget.Appearance = "outline"
	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.False(t, loaded.Widget.Multiple)
	assert.Equal(t, "outline", loaded.Widget.Appearance)
}

func TestLoadFromPathErrors(t *testing.T) {
	svc := NewConfigService()

	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[widget\n"), 0644))
	_, err = svc.LoadFromPath(bad)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestInputsValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Widget.Filter = "regex"
	_, err := cfg.Inputs()
	assert.ErrorIs(t, err, widget.ErrUnknownFilter)

	cfg = DefaultConfig()
	cfg.Widget.Appearance = "shiny"
	_, err = cfg.Inputs()
	assert.ErrorIs(t, err, ErrInvalidAppearance)
}

func TestSinglePresetUsesFirstValue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Widget.Multiple = false
	cfg.Widget.SelectedOptions = []any{"x", "y"}

	in, err := cfg.Inputs()
	require.NoError(t, err)
	require.NotNil(t, in.SelectedOptions)
	assert.Equal(t, "x", in.SelectedOptions.Value)
}

func TestSaveToPathPublishesEvent(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	saved := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) { saved <- e })

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, NewConfigServiceWithBus(bus).SaveToPath(DefaultConfig(), path))

	select {
	case e := <-saved:
		assert.Equal(t, eventbus.ConfigSavedEvent{Path: path}, e)
	case <-time.After(2 * time.Second):
		t.Fatal("config saved event not published")
	}
}
