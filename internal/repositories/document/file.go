package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileConfig holds configuration for the file document store
type FileConfig struct {
	// Dir is the directory documents are written to, created if missing
	Dir string
}

// fileStore implements the Store interface with one JSON file per document
type fileStore struct {
	dir string
}

// NewFile creates a new file-backed document store
func NewFile(cfg *FileConfig) (*fileStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Dir == "" {
		return nil, errors.New("directory cannot be empty")
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &fileStore{
		dir: cfg.Dir,
	}, nil
}

func (f *fileStore) path(name string) string {
	return filepath.Join(f.dir, name+".json")
}

// Load reads a document from disk
func (f *fileStore) Load(ctx context.Context, input *LoadInput) error {
	if input == nil || input.Target == nil {
		return errors.New("input and target cannot be nil")
	}
	if err := validateName(input.Name); err != nil {
		return err
	}

	documentJSON, err := os.ReadFile(f.path(input.Name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to read document %s: %w", input.Name, err)
	}

	if err := json.Unmarshal(documentJSON, input.Target); err != nil {
		return fmt.Errorf("failed to unmarshal document %s: %w", input.Name, err)
	}

	return nil
}

// Save writes the document to a temp file in the same directory and renames
// it over the old one so a crash mid-write leaves the previous document intact.
func (f *fileStore) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Document == nil {
		return errors.New("input and document cannot be nil")
	}
	if err := validateName(input.Name); err != nil {
		return err
	}

	documentJSON, err := json.MarshalIndent(input.Document, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", input.Name, err)
	}

	tmp, err := os.CreateTemp(f.dir, input.Name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", input.Name, err)
	}
	tmpName := tmp.Name()
	// No-op once the rename succeeds
	defer os.Remove(tmpName)

	if _, err := tmp.Write(documentJSON); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write document %s: %w", input.Name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync document %s: %w", input.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close document %s: %w", input.Name, err)
	}

	if err := os.Rename(tmpName, f.path(input.Name)); err != nil {
		return fmt.Errorf("failed to replace document %s: %w", input.Name, err)
	}

	return nil
}
