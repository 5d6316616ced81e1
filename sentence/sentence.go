package sentence

import "strings"

// Sentinels stored in an Analysis when a lookup misses. They are plain
// strings so that exported tables can be filtered for manual review.
const (
	PredicateNotFound = "未识别前项动词"
	NeedsReview       = "需手动确认"
	DependentNotFound = "未识别名词"
	MainVerbNotFound  = "未识别核心动词"
	ClassNotFound     = "404NotFound"
	Failed            = "Failed."
	JudgmentFailed    = Failed
	TranslationFailed = "Failed to Translate."
)

const (
	CategorySeparator = "|"
	findingSeparator  = ";"
)

// Transitivity classes
const (
	Transitive             = "他动词"
	IntransitiveVolitional = "自动词（意志）"
	IntransitiveNonVol     = "自动词（无意志）"
)

// Particles is the closed set of case particles under analysis, in the order
// used for unused-particle lists.
var Particles = []string{"が", "を", "に", "へ", "から", "と", "で"}

// IsTarget reports whether surface is one of the analyzed case particles.
func IsTarget(surface string) bool {
	for _, p := range Particles {
		if p == surface {
			return true
		}
	}
	return false
}

// Token represents a morpheme of the sentence, as produced by a tagger.
type Token struct {
	// The index of the token in the sentence, starting at 0.
	Index int `json:"index"`

	// The unmodified word
	Surface string `json:"surface"`

	Reading       string `json:"reading"`
	Pronunciation string `json:"pronunciation"`

	// IPA part of speech and its three subcategories
	POS     string `json:"pos"`
	POSSub1 string `json:"pos1"`
	POSSub2 string `json:"pos2"`
	POSSub3 string `json:"pos3"`

	InflectionType string `json:"ctype"`
	InflectionForm string `json:"cform"`

	// The dictionary form of the word
	BaseForm string `json:"base"`
}

// Finding is one case particle found in a sentence.
type Finding struct {
	Index     int    `json:"index"`
	Particle  string `json:"particle"`
	Dependent string `json:"dependent"`
	Predicate string `json:"predicate"`
	Function  string `json:"function"`
}

// Gloss is the three level description of a classification code.
type Gloss struct {
	High string `json:"high"`
	Mid  string `json:"mid"`
	Term string `json:"term"`
}

// Analysis is the per-sentence result of the rule analyzer. It is built once
// and never modified.
type Analysis struct {
	Sentence string  `json:"sentence"`
	Tokens   []Token `json:"tokens,omitempty"`

	PredicateSurface string `json:"predicate_surface"`
	PredicateBase    string `json:"predicate"`
	Category         string `json:"category"`
	Transitivity     string `json:"transitivity"`

	Findings []Finding `json:"findings"`
	Unused   []string  `json:"unused"`

	ClassCode string `json:"class_code"`
	Gloss     Gloss  `json:"gloss"`
}

// HasPredicate reports whether a predicate was identified.
func (a Analysis) HasPredicate() bool {
	switch a.PredicateBase {
	case "", PredicateNotFound, Failed:
		return false
	}
	return true
}

// Failed reports whether the record stands for a collaborator failure.
func (a Analysis) Failed() bool {
	return a.PredicateBase == Failed
}

// FindingsString flattens the findings as particle:dependent:function items.
func (a Analysis) FindingsString() string {
	items := make([]string, 0, len(a.Findings))
	for _, f := range a.Findings {
		items = append(items, f.Particle+":"+f.Dependent+":"+f.Function)
	}
	return strings.Join(items, findingSeparator)
}

// NotFound returns the record of a sentence for which nothing was identified.
func NotFound(text string) Analysis {
	return Analysis{
		Sentence:      text,
		PredicateBase: PredicateNotFound,
		Category:      PredicateNotFound,
		Transitivity:  NeedsReview,
		Findings:      []Finding{},
		Unused:        append([]string(nil), Particles...),
		ClassCode:     ClassNotFound,
	}
}

// FailedRecord returns the record of a sentence that could not be tagged.
func FailedRecord(text string) Analysis {
	return Analysis{
		Sentence:      text,
		PredicateBase: Failed,
		Category:      Failed,
		Transitivity:  Failed,
		Findings:      []Finding{},
		Unused:        []string{},
		ClassCode:     Failed,
	}
}

// Verdict is a single judged field of a language model answer.
type Verdict struct {
	Result string `json:"result"`
	Reason string `json:"reason"`
}

// Judgment is the structured answer of the language model for one sentence.
type Judgment struct {
	Predicate      Verdict `json:"前项动词"`
	Transitivity   Verdict `json:"自他性判断"`
	Classification Verdict `json:"IPA辞书官方语义分类"`
	CaseParticles  Verdict `json:"格助词判断"`
}

// FailedJudgment is the uniform record used when the model answer is
// unusable.
func FailedJudgment() Judgment {
	f := Verdict{Result: JudgmentFailed, Reason: JudgmentFailed}
	return Judgment{Predicate: f, Transitivity: f, Classification: f, CaseParticles: f}
}

// Entry is one row of a batch run.
type Entry struct {
	Analysis    Analysis  `json:"analysis"`
	Judgment    *Judgment `json:"judgment,omitempty"`
	Translation string    `json:"translation,omitempty"`

	// Err holds the collaborator failure, empty on success.
	Err string `json:"error,omitempty"`
}
