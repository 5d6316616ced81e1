package filesystem

import (
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/revelaction/zenkou/batch"
	"github.com/revelaction/zenkou/index"
	"github.com/revelaction/zenkou/storage"
)

// SentenceFile reads sentences from a text file, one per line, or from a
// column of a CSV/TSV file with a header row.
type SentenceFile struct {
	path     string
	encoding string

	// Column is the header of the sentence column, the first column if
	// empty.
	Column string

	// VerbColumn is the header of an optional column with the known
	// pre-verb of each sentence.
	VerbColumn string
}

var _ storage.SentenceReader = (*SentenceFile)(nil)

// NewSentenceFile returns a reader for path. encoding is the declared
// encoding of the file, empty to detect it.
func NewSentenceFile(path, encoding string) *SentenceFile {
	return &SentenceFile{path: path, encoding: encoding}
}

func (s *SentenceFile) Read() ([]batch.Item, error) {
	text, err := index.ReadText(s.path, s.encoding)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".csv":
		return s.readTable(text, ',')
	case ".tsv":
		return s.readTable(text, '\t')
	}

	if s.VerbColumn != "" {
		return nil, fmt.Errorf("%s: a verb column needs a csv or tsv file", s.path)
	}

	var items []batch.Item
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, batch.Item{Text: line})
	}

	return items, nil
}

func (s *SentenceFile) readTable(text string, comma rune) ([]batch.Item, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	col, verbCol := 0, -1
	header := records[0]

	if s.Column != "" {
		if col = indexOf(header, s.Column); col < 0 {
			return nil, fmt.Errorf("%s: column %q not found", s.path, s.Column)
		}
	}

	if s.VerbColumn != "" {
		if verbCol = indexOf(header, s.VerbColumn); verbCol < 0 {
			return nil, fmt.Errorf("%s: column %q not found", s.path, s.VerbColumn)
		}
	}

	var items []batch.Item
	for _, rec := range records[1:] {
		if col >= len(rec) {
			continue
		}

		text := strings.TrimSpace(rec[col])
		if text == "" {
			continue
		}

		it := batch.Item{Text: text}
		if verbCol >= 0 && verbCol < len(rec) {
			it.Verb = strings.TrimSpace(rec[verbCol])
		}
		items = append(items, it)
	}

	return items, nil
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}
