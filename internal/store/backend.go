package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoDocument is returned by a backend when no document has been
// persisted yet.
var ErrNoDocument = errors.New("no document persisted")

// Backend reads and writes the whole document against one storage tier.
type Backend interface {
	ReadDocument() (*Document, error)
	WriteDocument(doc *Document) error
}

// FileBackend persists the document as a single pretty-printed JSON file.
type FileBackend struct {
	Path string
}

// ReadDocument loads and decodes the backing file.
func (b *FileBackend) ReadDocument() (*Document, error) {
	data, err := os.ReadFile(b.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("read %s: %w", b.Path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", b.Path, err)
	}
	return &doc, nil
}

// WriteDocument writes the document to a temp file in the same directory
// and renames it over the target, so a crash mid-write never leaves a
// truncated file behind.
func (b *FileBackend) WriteDocument(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	dir := filepath.Dir(b.Path)
	tmp, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", b.Path, err)
	}
	return nil
}

// Writable probes whether the backend's directory accepts writes. Used
// once at startup to pick the storage tier instead of discovering a
// read-only filesystem on the first save.
func (b *FileBackend) Writable() bool {
	dir := filepath.Dir(b.Path)
	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return false
	}
	probe.Close()
	os.Remove(probe.Name())
	return true
}

// MemoryBackend keeps the document for the process lifetime only. It is
// the fallback tier for read-only filesystems; data is lost on exit.
type MemoryBackend struct {
	doc *Document
}

func (b *MemoryBackend) ReadDocument() (*Document, error) {
	if b.doc == nil {
		return nil, ErrNoDocument
	}
	return b.doc.Clone(), nil
}

func (b *MemoryBackend) WriteDocument(doc *Document) error {
	b.doc = doc.Clone()
	return nil
}
