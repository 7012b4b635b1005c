// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package docstore persists a record collection as a single flat JSON
// document. A document is the unit of read and write: Load parses the whole
// array, Save overwrites the whole array. Writes go through a temp file and
// rename so a crash never leaves a half-written document, and an advisory
// file lock (flock) guards against a second process touching the same file.
//
// There is no journaling across documents; callers that mutate two
// documents in one logical operation own that ordering themselves.
package docstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Document manages one JSON-backed collection of records of type T.
// All access to the backing file is expected to go through this type.
type Document[T any] struct {
	path string
	lock *flock.Flock
}

// New creates a document handle for the given file path. The file itself is
// created lazily on first Load or Save.
func New[T any](path string) *Document[T] {
	return &Document[T]{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path returns the backing file path.
func (d *Document[T]) Path() string {
	return d.path
}

// Load reads and parses the whole collection. A missing file is initialized
// to an empty JSON array first (creating parent directories as needed), so
// Load never fails just because the document does not exist yet. A document
// that exists but does not parse is a fatal condition — malformed persisted
// state is surfaced, not auto-repaired.
func (d *Document[T]) Load() ([]T, error) {
	if err := d.lock.Lock(); err != nil {
		return nil, fmt.Errorf("lock %s: %w", d.path, err)
	}
	defer d.lock.Unlock()

	if err := d.ensure(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(d.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", d.path, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", d.path, err)
	}
	return records, nil
}

// Save overwrites the whole collection. The new document is written to a
// temp file in the same directory and renamed over the target, so readers
// never observe a partial write. Passing nil persists an empty array.
func (d *Document[T]) Save(records []T) error {
	if records == nil {
		records = []T{}
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.path, err)
	}

	if err := d.lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", d.path, err)
	}
	defer d.lock.Unlock()

	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(d.path)+".*")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", d.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", d.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", d.path, err)
	}
	if err := os.Rename(tmpName, d.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", d.path, err)
	}
	return nil
}

// ensure initializes the document to an empty JSON array if it is absent.
// Must be called with the advisory lock held.
func (d *Document[T]) ensure() error {
	if _, err := os.Stat(d.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", d.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(d.path), err)
	}
	if err := os.WriteFile(d.path, []byte("[]"), 0o644); err != nil {
		return fmt.Errorf("init %s: %w", d.path, err)
	}
	return nil
}
