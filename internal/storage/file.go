package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// File is a KV persisted as a single JSON document on disk.
// Writes go to a temp file in the same directory and are renamed into place,
// so a crash never leaves a half-written document. A corrupt document reads
// as ErrCorrupt; the next Put moves it to path+".corrupt" and starts over.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile returns a KV backed by the JSON document at path.
// The file does not have to exist yet.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("storage path is empty")
	}
	return &File{path: path}, nil
}

// Path returns the backing file path
func (f *File) Path() string {
	return f.path
}

// BackupPath is where a corrupt document is kept once it gets replaced
func (f *File) BackupPath() string {
	return f.path + ".corrupt"
}

func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := doc[key]
	return v, ok, nil
}

func (f *File) Put(ctx context.Context, entries map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if errors.Is(err, ErrCorrupt) {
		if err := os.Rename(f.path, f.BackupPath()); err != nil {
			return fmt.Errorf("failed to move corrupt storage file aside: %w", err)
		}
		doc = map[string]string{}
	} else if err != nil {
		return err
	}
	for k, v := range entries {
		doc[k] = v
	}
	return f.write(doc)
}

// read loads the document; a missing or empty file is an empty document
func (f *File) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Skip UTF-8 BOM if present
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]string{}, nil
	}

	doc := map[string]string{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return doc, nil
}

func (f *File) write(doc map[string]string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage file: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}
