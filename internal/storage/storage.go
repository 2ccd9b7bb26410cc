package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/cp4-practice/internal/book"
)

// DocumentFileName is the fixed name of the problem document inside the
// data directory.
const DocumentFileName = "problems.json"

// Storage handles persistence of the problem document
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// DocumentPath returns the path of the problem document.
func (s *Storage) DocumentPath() string {
	return filepath.Join(s.dataDir, DocumentFileName)
}

// SaveDocument writes the formatted problem document to disk.
func (s *Storage) SaveDocument(doc book.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	if err := os.WriteFile(s.DocumentPath(), data, 0644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	return nil
}

// LoadDocument reads the problem document back. A missing file is an error
// here, not an empty default: the setup commands cannot do anything useful
// without a prior scrape.
func (s *Storage) LoadDocument() (book.Document, error) {
	path := s.DocumentPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no problem document at %s (run the scrape command first)", path)
		}
		return nil, fmt.Errorf("reading document: %w", err)
	}

	var doc book.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	return doc, nil
}
