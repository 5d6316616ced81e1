// Package index reads the classification vocabulary index: the verb to code
// table and the indented code hierarchy whose terms gloss each code.
package index

import (
	"errors"
	"fmt"
	"sort"

	sent "github.com/revelaction/zenkou/sentence"
)

// ErrNoIndex is returned by Load when no file is given.
var ErrNoIndex = errors.New("no index files given")

// Index resolves verbs to classification codes and codes to glosses. It is
// read only after construction.
type Index struct {
	verbs   map[string]string
	glosses map[string]sent.Gloss
}

// New returns an Index over already parsed tables. Either map may be nil.
func New(verbs map[string]string, terms map[string]string) *Index {
	if verbs == nil {
		verbs = map[string]string{}
	}
	return &Index{verbs: verbs, glosses: BuildGlosses(terms)}
}

// Load reads the verb table and the hierarchy. An empty path skips that
// file. encoding is the declared encoding of both files, empty to detect it.
func Load(verbPath, hierarchyPath, encoding string) (*Index, error) {
	if verbPath == "" && hierarchyPath == "" {
		return nil, ErrNoIndex
	}

	var verbs, terms map[string]string

	if verbPath != "" {
		text, err := ReadText(verbPath, encoding)
		if err != nil {
			return nil, fmt.Errorf("reading verb index: %w", err)
		}
		verbs = ParseVerbTable(text)
	}

	if hierarchyPath != "" {
		text, err := ReadText(hierarchyPath, encoding)
		if err != nil {
			return nil, fmt.Errorf("reading code hierarchy: %w", err)
		}
		terms = ParseHierarchy(text)
	}

	return New(verbs, terms), nil
}

// Code returns the classification code of verb.
func (ix *Index) Code(verb string) (string, bool) {
	code, ok := ix.verbs[verb]
	return code, ok
}

// Classify returns the code of verb or the not found sentinel.
func (ix *Index) Classify(verb string) string {
	if code, ok := ix.verbs[verb]; ok {
		return code
	}
	return sent.ClassNotFound
}

// Gloss returns the gloss of code. Codes absent from the hierarchy still get
// the classes derived from the code itself, with an empty term, and false.
func (ix *Index) Gloss(code string) (sent.Gloss, bool) {
	if g, ok := ix.glosses[code]; ok {
		return g, true
	}
	return GlossOf(code, ""), false
}

// Lookup returns code and gloss of verb. It is false if the verb is not in
// the table.
func (ix *Index) Lookup(verb string) (string, sent.Gloss, bool) {
	code, ok := ix.verbs[verb]
	if !ok {
		return sent.ClassNotFound, sent.Gloss{}, false
	}

	g, _ := ix.Gloss(code)
	return code, g, true
}

// Verbs returns the indexed verbs, sorted.
func (ix *Index) Verbs() []string {
	return sortedKeys(ix.verbs)
}

// Codes returns the codes of the hierarchy, sorted.
func (ix *Index) Codes() []string {
	codes := make([]string, 0, len(ix.glosses))
	for c := range ix.glosses {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
