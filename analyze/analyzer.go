// Package analyze extracts the predicate of a tagged Japanese sentence, its
// transitivity and the function of its case particles.
package analyze

import (
	"context"
	"fmt"

	"github.com/revelaction/zenkou/rules"
	sent "github.com/revelaction/zenkou/sentence"
	"github.com/revelaction/zenkou/tagger"
)

// Classifier resolves a verb to its classification code and gloss.
type Classifier interface {
	Lookup(verb string) (string, sent.Gloss, bool)
}

// Analyzer builds Analysis records. It keeps no state between calls.
type Analyzer struct {
	tagger     tagger.Tagger
	rules      *rules.Rules
	classifier Classifier

	// KeepTokens stores the token sequence in the record.
	KeepTokens bool
}

// NewAnalyzer returns an Analyzer. classifier may be nil, in which case
// every record carries the not found class code.
func NewAnalyzer(t tagger.Tagger, rs *rules.Rules, classifier Classifier) *Analyzer {
	return &Analyzer{tagger: t, rules: rs, classifier: classifier}
}

// Analyze tags text and builds its record. On tagger failure it returns the
// not found record together with the error.
func (a *Analyzer) Analyze(ctx context.Context, text string) (sent.Analysis, error) {
	tokens, err := a.tagger.Tag(ctx, text)
	if err != nil {
		return sent.FailedRecord(text), fmt.Errorf("tagging %q: %w", text, err)
	}

	return a.Record(text, tokens), nil
}

// Record builds the analysis of an already tagged sentence.
func (a *Analyzer) Record(text string, tokens []sent.Token) sent.Analysis {
	rec := sent.NotFound(text)
	if a.KeepTokens {
		rec.Tokens = tokens
	}

	var base string
	if p, ok := Predicate(tokens, a.rules); ok {
		base = p.BaseForm
		rec.PredicateSurface = p.Surface
		rec.PredicateBase = p.BaseForm
		rec.Category = Category(p)
		rec.Transitivity = Transitivity(p.BaseForm, a.rules)
	}

	rec.Findings, rec.Unused = Particles(tokens, base, a.rules)

	if a.classifier != nil {
		if code, gloss, ok := a.classifier.Lookup(rec.PredicateBase); ok {
			rec.ClassCode = code
			rec.Gloss = gloss
		}
	}

	return rec
}
