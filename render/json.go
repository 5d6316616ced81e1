package render

import (
	"encoding/json"
	"io"

	sent "github.com/revelaction/zenkou/sentence"
)

// JSONRenderer writes batch entries as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the entries as a JSON array.
func (r *JSONRenderer) Render(entries []sent.Entry) error {
	if entries == nil {
		entries = []sent.Entry{}
	}
	return json.NewEncoder(r.W).Encode(entries)
}
