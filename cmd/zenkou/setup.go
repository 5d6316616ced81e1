package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/zenkou/analyze"
	"github.com/revelaction/zenkou/index"
	"github.com/revelaction/zenkou/llm"
	"github.com/revelaction/zenkou/render"
	"github.com/revelaction/zenkou/rules"
	"github.com/revelaction/zenkou/storage"
	"github.com/revelaction/zenkou/storage/filesystem"
	"github.com/revelaction/zenkou/storage/sqlite/zombiezen"
	"github.com/revelaction/zenkou/tagger"
)

const apiKeyEnv = "ZENKOU_API_KEY"

func newTagger(c *cli.Context) (tagger.Tagger, error) {
	return tagger.New(c.String("tagger"), tagger.Options{MeCabPath: c.String("mecab-path")})
}

func newRules(c *cli.Context) (*rules.Rules, error) {
	path := c.String("rules")
	if path == "" {
		return rules.Default()
	}
	return rules.LoadFile(path)
}

// newIndex returns nil, and no error, if no index file is configured.
func newIndex(c *cli.Context) (*index.Index, error) {
	verbs, hierarchy := c.String("verbs"), c.String("hierarchy")
	if verbs == "" && hierarchy == "" {
		return nil, nil
	}
	return index.Load(verbs, hierarchy, c.String("encoding"))
}

func requireIndex(c *cli.Context) (*index.Index, error) {
	ix, err := newIndex(c)
	if err != nil {
		return nil, err
	}
	if ix == nil {
		return nil, fmt.Errorf("%w: set --verbs or --hierarchy", index.ErrNoIndex)
	}
	return ix, nil
}

type setup struct {
	analyzer *analyze.Analyzer
	rules    *rules.Rules
	index    *index.Index
}

func newSetup(c *cli.Context) (*setup, error) {
	t, err := newTagger(c)
	if err != nil {
		return nil, err
	}

	rs, err := newRules(c)
	if err != nil {
		return nil, err
	}

	ix, err := newIndex(c)
	if err != nil {
		return nil, err
	}

	// a nil *Index must not become a non nil Classifier
	var classifier analyze.Classifier
	if ix != nil {
		classifier = ix
	}

	return &setup{
		analyzer: analyze.NewAnalyzer(t, rs, classifier),
		rules:    rs,
		index:    ix,
	}, nil
}

func newLLMClient(c *cli.Context) (llm.Client, error) {
	client, err := llm.NewHTTPClient(llm.Config{
		BaseURL:     c.String("llm-url"),
		Model:       c.String("llm-model"),
		APIKey:      os.Getenv(apiKeyEnv),
		Temperature: c.Float64("temperature"),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: set %s", err, apiKeyEnv)
	}
	return client, nil
}

func newRenderer(c *cli.Context, ui UI) *render.Renderer {
	r := render.NewRenderer(ui.Out)
	r.HasColor = !c.Bool("no-color")
	return r
}

func isDatabase(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// NewEntryWriter returns the exporter for the extension of path.
func NewEntryWriter(p *Pool, path string) (storage.EntryWriter, error) {
	if isDatabase(path) {
		pool, err := p.Open(path)
		if err != nil {
			return nil, err
		}
		return zombiezen.NewEntryStore(pool), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return filesystem.NewCSVWriter(path), nil
	case ".tsv":
		return filesystem.NewTSVWriter(path), nil
	case ".json":
		return filesystem.NewJSONStore(path), nil
	}

	return nil, fmt.Errorf("unsupported output format: %s (use .csv, .tsv, .json or .db)", path)
}

// NewEntryReader returns the reader of a previous export, false if path is
// not an export.
func NewEntryReader(p *Pool, path string) (storage.EntryReader, bool, error) {
	if isDatabase(path) {
		if _, err := os.Stat(path); err != nil {
			return nil, true, fmt.Errorf("export not found: %s", path)
		}

		pool, err := p.Open(path)
		if err != nil {
			return nil, true, err
		}
		return zombiezen.NewEntryStore(pool), true, nil
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return filesystem.NewJSONStore(path), true, nil
	}

	return nil, false, nil
}
