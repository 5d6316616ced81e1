package analyze

import (
	"strings"

	"github.com/revelaction/zenkou/rules"
	sent "github.com/revelaction/zenkou/sentence"
)

// Predicate returns the last token that qualifies as the sentence predicate.
// The second value is false when there is none.
func Predicate(tokens []sent.Token, rs *rules.Rules) (sent.Token, bool) {
	for i := len(tokens) - 1; i >= 0; i-- {
		if rs.IsPredicate(tokens[i]) {
			return tokens[i], true
		}
	}

	return sent.Token{}, false
}

// Category returns the IPA category path of the token,
// pos|pos1|pos2|inflection type.
func Category(t sent.Token) string {
	return strings.Join([]string{t.POS, t.POSSub1, t.POSSub2, t.InflectionType}, sent.CategorySeparator)
}

// Transitivity classifies the base form. Verbs absent from the table need a
// manual review.
func Transitivity(base string, rs *rules.Rules) string {
	if class, ok := rs.Transitivity(base); ok {
		return class
	}
	return sent.NeedsReview
}
