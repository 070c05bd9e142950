package document

import (
	"errors"
	"regexp"
)

// ErrDocumentNotFound is returned by Load when nothing has been saved under the name yet
var ErrDocumentNotFound = errors.New("document not found")

var documentNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// LoadInput contains parameters for loading a document
type LoadInput struct {
	// Name identifies the document (e.g. "players")
	Name string

	// Target is a pointer the JSON document is decoded into
	Target any
}

// SaveInput contains parameters for saving a document
type SaveInput struct {
	// Name identifies the document (e.g. "players")
	Name string

	// Document is encoded to JSON and stored
	Document any
}

func validateName(name string) error {
	if name == "" {
		return errors.New("document name cannot be empty")
	}
	if !documentNamePattern.MatchString(name) {
		return errors.New("document name must be lowercase alphanumeric, '-' or '_'")
	}
	return nil
}
