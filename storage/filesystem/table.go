package filesystem

import (
	"encoding/csv"
	"fmt"
	"os"

	sent "github.com/revelaction/zenkou/sentence"
	"github.com/revelaction/zenkou/storage"
)

// TableWriter exports entries as a CSV or TSV file with a header row.
type TableWriter struct {
	path  string
	comma rune
}

var _ storage.EntryWriter = (*TableWriter)(nil)

func NewCSVWriter(path string) *TableWriter {
	return &TableWriter{path: path, comma: ','}
}

func NewTSVWriter(path string) *TableWriter {
	return &TableWriter{path: path, comma: '\t'}
}

func (w *TableWriter) Write(entries []sent.Entry) (err error) {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", w.path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	cw := csv.NewWriter(f)
	cw.Comma = w.comma

	if err := cw.Write(storage.Columns()); err != nil {
		return err
	}

	for _, e := range entries {
		if err := cw.Write(storage.Row(e)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
