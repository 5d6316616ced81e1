package filesystem

import (
	"encoding/json"
	"fmt"
	"os"

	sent "github.com/revelaction/zenkou/sentence"
	"github.com/revelaction/zenkou/storage"
)

// JSONStore keeps the entries of a run in a single JSON file.
type JSONStore struct {
	path string
}

var _ storage.EntryRepository = (*JSONStore)(nil)

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Write(entries []sent.Entry) error {
	if entries == nil {
		entries = []sent.Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", s.path, err)
	}
	return nil
}

func (s *JSONStore) ReadAll() ([]sent.Entry, error) {
	f, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	var entries []sent.Entry
	if err := json.Unmarshal(f, &entries); err != nil {
		return nil, fmt.Errorf("JSON decoding error: %w", err)
	}

	return entries, nil
}
