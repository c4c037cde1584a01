// Package store persists entity collections as pretty-printed JSON array
// documents on local disk, one file per collection. Every access goes
// through a per-collection mutex so two requests can never interleave a
// read-modify-write sequence (lost updates, duplicate IDs).
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Record is any entity stored in a Collection.
type Record interface {
	RecordID() int
}

// Collection is a JSON-array document bound to one file path.
type Collection[T Record] struct {
	path string
	mu   sync.Mutex
}

// NewCollection binds a collection to its backing file. The file is not
// created until the first Save; Load treats an absent file as empty.
func NewCollection[T Record](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Path returns the backing file path.
func (c *Collection[T]) Path() string {
	return c.path
}

// Load reads all records in insertion order. An absent backing file means
// an empty collection, not an error.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked()
}

func (c *Collection[T]) loadLocked() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}
	records := []T{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.path, err)
	}
	return records, nil
}

// Save overwrites the collection. The document is written to a temporary
// file in the same directory and renamed over the target, so a crash
// mid-write never leaves a partial file behind.
func (c *Collection[T]) Save(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked(records)
}

func (c *Collection[T]) saveLocked(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", c.path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", c.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", c.path, err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", c.path, err)
	}
	return nil
}

// EnsureFile initializes the backing file to an empty array when it does
// not exist yet, so a fresh install starts with readable documents.
func (c *Collection[T]) EnsureFile() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := os.Stat(c.path); err == nil {
		return nil
	}
	return c.saveLocked(nil)
}

// Update runs a read-modify-write cycle under the collection mutex. The
// callback receives the current records and returns the replacement set;
// returning an error aborts without touching the file.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := c.loadLocked()
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return c.saveLocked(updated)
}

// NextID returns max(existing ids) + 1, or 1 for an empty collection.
func NextID[T Record](records []T) int {
	max := 0
	for _, r := range records {
		if id := r.RecordID(); id > max {
			max = id
		}
	}
	return max + 1
}
