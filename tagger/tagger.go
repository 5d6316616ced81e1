// Package tagger turns raw Japanese text into IPA-dictionary tokens.
package tagger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sent "github.com/revelaction/zenkou/sentence"
)

// ErrTagger is matched by every failure of the tagging process itself, as
// opposed to the soft outcome of an empty token sequence.
var ErrTagger = errors.New("tagger failed")

// Tagger produces the token sequence of a single sentence.
//
// Empty or whitespace-only text yields an empty sequence and a nil error.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]sent.Token, error)
}

// Error describes a failed tagger invocation.
type Error struct {
	Name   string
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", e.Name, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *Error) Unwrap() []error { return []error{ErrTagger, e.Err} }

// Options configures the tagger returned by New.
type Options struct {
	// MeCabPath is the mecab executable, looked up in PATH if not absolute.
	MeCabPath string

	// MeCabArgs replaces the default output format arguments.
	MeCabArgs []string
}

// Names returns the supported tagger names.
func Names() []string {
	return []string{"kagome", "mecab"}
}

// New returns the tagger registered under name.
func New(name string, opts Options) (Tagger, error) {
	switch name {
	case "", "kagome":
		return NewKagome()
	case "mecab":
		return NewMeCab(opts.MeCabPath, opts.MeCabArgs...), nil
	}

	return nil, fmt.Errorf("unknown tagger %q (supported: %s)", name, strings.Join(Names(), ", "))
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
