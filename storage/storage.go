package storage

import (
	"strings"

	"github.com/revelaction/zenkou/batch"
	sent "github.com/revelaction/zenkou/sentence"
)

// SentenceReader reads the input sentences of a batch
type SentenceReader interface {
	// Read returns the sentences in input order, skipping empty ones.
	Read() ([]batch.Item, error)
}

// EntryWriter defines write operations for batch results
type EntryWriter interface {
	// Write persists the entries of one batch run
	Write(entries []sent.Entry) error
}

// EntryReader defines read operations for batch results
type EntryReader interface {
	// ReadAll returns the entries of the last written run
	ReadAll() ([]sent.Entry, error)
}

// EntryRepository combines read and write operations
type EntryRepository interface {
	EntryReader
	EntryWriter
}

// Columns is the header of the flat tabular export.
func Columns() []string {
	return []string{
		"sentence",
		"predicate_surface",
		"predicate",
		"transitivity",
		"category",
		"class_code",
		"class_high",
		"class_mid",
		"class_term",
		"particles",
		"unused",
		"llm_predicate",
		"llm_predicate_reason",
		"llm_transitivity",
		"llm_transitivity_reason",
		"llm_classification",
		"llm_classification_reason",
		"llm_particles",
		"llm_particles_reason",
		"translation",
		"error",
	}
}

// Row flattens an entry in the order of Columns.
func Row(e sent.Entry) []string {
	a := e.Analysis
	row := []string{
		a.Sentence,
		a.PredicateSurface,
		a.PredicateBase,
		a.Transitivity,
		a.Category,
		a.ClassCode,
		a.Gloss.High,
		a.Gloss.Mid,
		a.Gloss.Term,
		a.FindingsString(),
		strings.Join(a.Unused, ","),
	}

	var j sent.Judgment
	if e.Judgment != nil {
		j = *e.Judgment
	}

	for _, v := range []sent.Verdict{j.Predicate, j.Transitivity, j.Classification, j.CaseParticles} {
		row = append(row, v.Result, v.Reason)
	}

	return append(row, e.Translation, e.Err)
}
