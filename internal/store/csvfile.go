package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tallybook-dev/tallybook/internal/journal"
	"github.com/tallybook-dev/tallybook/internal/model"
)

// CSVFile stores the journal in a single journal.csv under the books root.
// The header is written when the file is first created; entries are only
// ever appended.
type CSVFile struct {
	path string
}

// NewCSVFile creates a CSV store rooted at booksRoot.
func NewCSVFile(booksRoot string) *CSVFile {
	return &CSVFile{path: filepath.Join(booksRoot, "journal.csv")}
}

// Path returns the journal file path.
func (s *CSVFile) Path() string {
	return s.path
}

// Append writes one entry to journal.csv, creating the file and header if
// needed.
func (s *CSVFile) Append(e model.Entry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, journal.Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := journal.AppendEntries(f, []model.Entry{e}); err != nil {
		return fmt.Errorf("appending entry: %w", err)
	}
	return nil
}

// All reads the full journal in file order. A missing file is an empty
// journal, not an error.
func (s *CSVFile) All() ([]model.Entry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", s.path, err)
	}
	defer f.Close()

	entries, err := journal.ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", s.path, err)
	}
	return entries, nil
}
