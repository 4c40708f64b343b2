// Package jsondoc persists each store as a single JSON document read
// and written wholesale. The design assumes a single local writer; the
// mutex only guards against overlapping handler goroutines in one
// process.
package jsondoc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Document is a blob store for one JSON document of type T. A missing
// file loads as the zero value; an unparsable file is treated as a
// recoverable condition and degrades to the zero value with a warning,
// never an error.
type Document[T any] struct {
	path string
	mu   sync.Mutex
}

func NewDocument[T any](path string) (*Document[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Document[T]{path: path}, nil
}

func (d *Document[T]) Load(ctx context.Context) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var value T

	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return value, nil
		}
		return value, fmt.Errorf("failed to read %s: %w", d.path, err)
	}

	if err := json.Unmarshal(data, &value); err != nil {
		// Corrupt document: reset to empty rather than crash.
		slog.Warn("document unparsable, resetting to empty store",
			"path", d.path, "error", err)
		var zero T
		return zero, nil
	}

	return value, nil
}

func (d *Document[T]) Save(ctx context.Context, value T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.path, err)
	}

	// Write to a temp file in the same directory, then rename, so a
	// crash mid-write never leaves a half-written document behind.
	tmp, err := os.CreateTemp(filepath.Dir(d.path), filepath.Base(d.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", d.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), d.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", d.path, err)
	}

	return nil
}
