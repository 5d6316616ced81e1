package analyze

import (
	"strings"

	"github.com/revelaction/zenkou/rules"
	sent "github.com/revelaction/zenkou/sentence"
)

const (
	posParticle     = "助詞"
	posCaseParticle = "格助詞"
	posNounPrefix   = "名詞"
)

// Particles returns one Finding per case particle of the sentence, in token
// order, and the analyzed particles that do not occur. predicate is the base
// form of the sentence predicate, empty if none was found.
func Particles(tokens []sent.Token, predicate string, rs *rules.Rules) ([]sent.Finding, []string) {
	findings := []sent.Finding{}
	used := map[string]bool{}

	verb := predicate
	if verb == "" {
		verb = sent.MainVerbNotFound
	}

	for i, t := range tokens {
		if t.POS != posParticle || t.POSSub1 != posCaseParticle || !sent.IsTarget(t.Surface) {
			continue
		}

		noun, ok := precedingNoun(tokens, i)

		dependent := noun
		if !ok {
			dependent = sent.DependentNotFound
		}

		findings = append(findings, sent.Finding{
			Index:     t.Index,
			Particle:  t.Surface,
			Dependent: dependent,
			Predicate: verb,
			Function:  rs.Function(t.Surface, noun, predicate),
		})
		used[t.Surface] = true
	}

	unused := []string{}
	for _, p := range sent.Particles {
		if !used[p] {
			unused = append(unused, p)
		}
	}

	return findings, unused
}

// precedingNoun scans backwards from position i for the nearest noun.
func precedingNoun(tokens []sent.Token, i int) (string, bool) {
	for j := i - 1; j >= 0; j-- {
		if strings.HasPrefix(tokens[j].POS, posNounPrefix) {
			return tokens[j].Surface, true
		}
	}
	return "", false
}
