// Package rules holds the lookup tables of the analyzer. A Rules value is
// built once and only read afterwards, so it can be shared by any number of
// analyzer calls.
package rules

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/coregx/ahocorasick"

	sent "github.com/revelaction/zenkou/sentence"
)

//go:embed default.json
var defaultRules []byte

// Rule assigns Function to a particle when the dependent noun contains one of
// the Dependent keywords or the predicate contains one of the Predicate
// keywords.
type Rule struct {
	Dependent []string `json:"dependent,omitempty"`
	Predicate []string `json:"predicate,omitempty"`
	Function  string   `json:"function"`

	dep  *ahocorasick.Automaton
	pred *ahocorasick.Automaton
}

// Table is the ordered rule list of one particle. The first matching rule
// wins; Default applies when none matches.
type Table struct {
	Rules   []Rule `json:"rules,omitempty"`
	Default string `json:"default"`
}

type predicateFilter struct {
	POS     string   `json:"pos"`
	POSSub1 string   `json:"pos1"`
	Forms   []string `json:"forms"`
}

type file struct {
	Predicate    predicateFilter     `json:"predicate"`
	Transitivity map[string][]string `json:"transitivity"`
	Particles    map[string]Table    `json:"particles"`
}

// Rules is the immutable analyzer configuration.
type Rules struct {
	predicate    predicateFilter
	transitivity map[string]string
	particles    map[string]*Table
}

// Default returns the built in tables.
func Default() (*Rules, error) {
	return Load(bytes.NewReader(defaultRules))
}

// LoadFile reads tables from a JSON file with the layout of the built in
// default.
func LoadFile(path string) (*Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Load decodes and compiles the tables.
func Load(r io.Reader) (*Rules, error) {
	var f file
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("JSON decoding error: %w", err)
	}

	if f.Predicate.POS == "" || len(f.Predicate.Forms) == 0 {
		return nil, fmt.Errorf("predicate filter needs pos and forms")
	}

	rs := &Rules{
		predicate:    f.Predicate,
		transitivity: map[string]string{},
		particles:    map[string]*Table{},
	}

	for class, verbs := range f.Transitivity {
		for _, v := range verbs {
			if prev, ok := rs.transitivity[v]; ok && prev != class {
				return nil, fmt.Errorf("verb %s listed as %s and %s", v, prev, class)
			}
			rs.transitivity[v] = class
		}
	}

	for _, p := range sent.Particles {
		tb, ok := f.Particles[p]
		if !ok || tb.Default == "" {
			return nil, fmt.Errorf("particle %s has no default function", p)
		}

		for i := range tb.Rules {
			if err := tb.Rules[i].compile(); err != nil {
				return nil, fmt.Errorf("particle %s rule %d: %w", p, i, err)
			}
		}

		rs.particles[p] = &tb
	}

	return rs, nil
}

func (r *Rule) compile() error {
	if r.Function == "" {
		return fmt.Errorf("empty function")
	}

	if len(r.Dependent) == 0 && len(r.Predicate) == 0 {
		return fmt.Errorf("no keywords")
	}

	var err error
	if r.dep, err = automaton(r.Dependent); err != nil {
		return err
	}

	r.pred, err = automaton(r.Predicate)
	return err
}

func automaton(keywords []string) (*ahocorasick.Automaton, error) {
	if len(keywords) == 0 {
		return nil, nil
	}

	return ahocorasick.NewBuilder().
		AddStrings(keywords).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
}

func contains(a *ahocorasick.Automaton, s string) bool {
	if a == nil || s == "" {
		return false
	}
	return len(a.FindAllOverlapping([]byte(s))) > 0
}

// Matches reports whether the rule fires for the dependent noun and the
// predicate base form.
func (r *Rule) Matches(dependent, predicate string) bool {
	return contains(r.dep, dependent) || contains(r.pred, predicate)
}

// IsPredicate reports whether the token can be the predicate of a sentence.
func (rs *Rules) IsPredicate(t sent.Token) bool {
	if t.POS != rs.predicate.POS {
		return false
	}

	if rs.predicate.POSSub1 != "" && t.POSSub1 != rs.predicate.POSSub1 {
		return false
	}

	for _, f := range rs.predicate.Forms {
		if t.InflectionForm == f {
			return true
		}
	}

	return false
}

// Transitivity returns the class of the base form. The second value is false
// if the verb is not in the table.
func (rs *Rules) Transitivity(base string) (string, bool) {
	class, ok := rs.transitivity[base]
	return class, ok
}

// Verbs returns the verbs of the transitivity table, sorted.
func (rs *Rules) Verbs() []string {
	verbs := make([]string, 0, len(rs.transitivity))
	for v := range rs.transitivity {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	return verbs
}

// Function returns the grammatical function of particle given its dependent
// noun and the predicate. dependent and predicate may be empty.
func (rs *Rules) Function(particle, dependent, predicate string) string {
	tb, ok := rs.particles[particle]
	if !ok {
		return ""
	}

	for i := range tb.Rules {
		if tb.Rules[i].Matches(dependent, predicate) {
			return tb.Rules[i].Function
		}
	}

	return tb.Default
}
