// Package source produces option batches for a widget's option stream.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"selectauto/internal/domain"
)

// ErrUnsupportedFormat is returned for option files that are neither YAML nor JSON
var ErrUnsupportedFormat = errors.New("unsupported options file format")

// File reads options from a YAML or JSON file. The file holds either a list of
// records or a document with an "options" list.
type File struct {
	Path  string
	Watch bool // emit a fresh batch whenever the file is rewritten
}

type document struct {
	Options []map[string]any `mapstructure:"options"`
}

// Load reads the file once
func (f File) Load() ([]*domain.Option, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	var raw any
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse options file: %w", err)
	}

	var records []map[string]any
	switch v := raw.(type) {
	case nil:
	case []any:
		if err := mapstructure.Decode(v, &records); err != nil {
			return nil, fmt.Errorf("failed to decode options: %w", err)
		}
	default:
		var doc document
		if err := mapstructure.Decode(v, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode options: %w", err)
		}
		records = doc.Options
	}

	return domain.OptionsFromMaps(records), nil
}

// Run sends the file's options to out, then keeps sending a new batch after
// every rewrite while Watch is set. It returns when ctx is done. Run never
// closes out. Reload failures are logged and skipped so a half-written file
// does not end the stream.
func (f File) Run(ctx context.Context, out chan<- []*domain.Option) error {
	batch, err := f.Load()
	if err != nil {
		return err
	}
	if !send(ctx, out, batch) || !f.Watch {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of writing it
	if err := watcher.Add(filepath.Dir(f.Path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", f.Path, err)
	}
	target := filepath.Clean(f.Path)
	log.Printf("Watching options file %s", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			batch, err := f.Load()
			if err != nil {
				log.Printf("Failed to reload options file: %v", err)
				continue
			}
			log.Printf("Reloaded %d options from %s", len(batch), target)
			if !send(ctx, out, batch) {
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Options file watcher error: %v", err)
		}
	}
}

// Static returns a closed stream pre-filled with batches
func Static(batches ...[]*domain.Option) <-chan []*domain.Option {
	ch := make(chan []*domain.Option, len(batches))
	for _, b := range batches {
		ch <- b
	}
	close(ch)
	return ch
}

func send(ctx context.Context, out chan<- []*domain.Option, batch []*domain.Option) bool {
	select {
	case out <- batch:
		return true
	case <-ctx.Done():
		return false
	}
}
