package render

import (
	"fmt"
	"io"
	"strings"

	sent "github.com/revelaction/zenkou/sentence"
	"github.com/revelaction/zenkou/stat"
)

const (
	Defaultformat = "all"

	// number of rows shown in each stat table
	statRows = 15
)

var (
	Red       = "\033[1;31m"
	Teal      = "\033[1;36m"
	White     = "\033[1;37m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"all", "brief", "tokens"}
}

type Renderer struct {
	W io.Writer

	HasColor bool

	HasPrefix bool

	// Format determines how an analysis is printed
	//
	// all: the sentence with predicate and particles highlighted, followed
	// by one line per field and finding.
	// brief: one line per sentence.
	// tokens: the token table of the sentence.
	Format string
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w, Format: Defaultformat}
}

// Analysis writes one analysis record. n is the position of the sentence,
// shown when HasPrefix is set.
func (r *Renderer) Analysis(a sent.Analysis, n int) {
	prefix := ""
	if r.HasPrefix {
		prefix = fmt.Sprintf("[%4d] ✍  ", n)
	}

	switch r.Format {
	case "brief":
		fmt.Fprintf(r.W, "%s%s\n", prefix, r.brief(a))
	case "tokens":
		fmt.Fprintf(r.W, "%s%s\n", prefix, r.sentence(a))
		r.Tokens(a.Tokens)
	default:
		fmt.Fprintf(r.W, "%s%s\n", prefix, r.sentence(a))
		r.detail(a)
	}
}

// Entry writes an analysis followed by the model judgment and translation,
// if any.
func (r *Renderer) Entry(e sent.Entry, n int) {
	r.Analysis(e.Analysis, n)

	if e.Judgment != nil {
		j := e.Judgment
		r.verdict("前项动词", j.Predicate)
		r.verdict("自他性判断", j.Transitivity)
		r.verdict("IPA辞书官方语义分类", j.Classification)
		r.verdict("格助词判断", j.CaseParticles)
	}

	if e.Translation != "" {
		r.field("翻译", e.Translation)
	}

	if e.Err != "" {
		r.field("error", r.color(Red, e.Err))
	}
}

// Tokens writes one row per token with its tagger features.
func (r *Renderer) Tokens(tokens []sent.Token) {
	for _, t := range tokens {
		fmt.Fprintf(r.W, "  %3d %s\t%s\t%s\t%s\t%s\n",
			t.Index,
			r.color(White, t.Surface),
			t.BaseForm,
			strings.Join([]string{t.POS, t.POSSub1, t.POSSub2, t.POSSub3}, ","),
			strings.Join([]string{t.InflectionType, t.InflectionForm}, ","),
			t.Reading,
		)
	}
}

// Gloss writes the classification of a verb.
func (r *Renderer) Gloss(verb, code string, g sent.Gloss) {
	fmt.Fprintf(r.W, "%s\t%s\t%s\n", r.color(Yellow256, verb), code, glossString(g))
}

// Code writes the gloss of a classification code.
func (r *Renderer) Code(code string, g sent.Gloss) {
	fmt.Fprintf(r.W, "%s\t%s\n", code, glossString(g))
}

// Stats writes the aggregated counts of a batch run.
func (r *Renderer) Stats(s stat.Stats) {
	fmt.Fprintf(r.W, "sentences:          %d\n", s.NumSentences)
	fmt.Fprintf(r.W, "with predicate:     %d\n", s.NumWithPredicate)
	fmt.Fprintf(r.W, "failed:             %d\n", s.NumFailed)
	fmt.Fprintf(r.W, "particles:          %d\n", s.NumFindings)
	fmt.Fprintf(r.W, "particles/sentence: %.2f\n", s.FindingsPerSentenceMean)

	r.counts("predicates", s.PredicateFreq)
	r.counts("transitivity", s.TransitivityDis)
	r.counts("particles", s.ParticleFreq)
	r.counts("functions", s.FunctionFreq)
	r.counts("unclassified", s.Unresolved)
}

func (r *Renderer) counts(title string, m map[string]int) {
	if len(m) == 0 {
		return
	}

	fmt.Fprintf(r.W, "\n%s\n", r.color(Grey256, title))
	for _, c := range stat.Sorted(m, statRows) {
		fmt.Fprintf(r.W, "  %5d %s\n", c.N, c.Value)
	}
}

// sentence returns the text of a, with the predicate and the case particles
// highlighted when the tokens are known.
func (r *Renderer) sentence(a sent.Analysis) string {
	if !r.HasColor || len(a.Tokens) == 0 {
		return strings.ReplaceAll(a.Sentence, "\n", " ")
	}

	particles := map[int]bool{}
	for _, f := range a.Findings {
		particles[f.Index] = true
	}

	// the predicate is the last token with its surface
	predicate := -1
	if a.HasPredicate() {
		for i := len(a.Tokens) - 1; i >= 0; i-- {
			if a.Tokens[i].Surface == a.PredicateSurface && a.Tokens[i].BaseForm == a.PredicateBase {
				predicate = a.Tokens[i].Index
				break
			}
		}
	}

	var str strings.Builder
	for _, t := range a.Tokens {
		switch {
		case t.Index == predicate:
			str.WriteString(Yellow256 + t.Surface + Off)
		case particles[t.Index]:
			str.WriteString(Green256 + t.Surface + Off)
		default:
			str.WriteString(t.Surface)
		}
	}

	return str.String()
}

func (r *Renderer) detail(a sent.Analysis) {
	predicate := a.PredicateBase
	if a.HasPredicate() && a.PredicateSurface != a.PredicateBase {
		predicate = fmt.Sprintf("%s (%s)", a.PredicateBase, a.PredicateSurface)
	}

	r.field("前项动词", r.color(Yellow256, predicate))
	r.field("词性", a.Category)
	r.field("自他性", a.Transitivity)
	r.field("分类", strings.TrimSpace(a.ClassCode+" "+glossString(a.Gloss)))

	for _, f := range a.Findings {
		fmt.Fprintf(r.W, "  %s %s → %s: %s\n", r.color(Green256, f.Particle), f.Dependent, f.Predicate, f.Function)
	}

	if len(a.Unused) > 0 {
		r.field("未使用", strings.Join(a.Unused, " "))
	}
}

func (r *Renderer) brief(a sent.Analysis) string {
	return strings.Join([]string{
		strings.ReplaceAll(a.Sentence, "\n", " "),
		r.color(Yellow256, a.PredicateBase),
		a.Transitivity,
		a.ClassCode,
		a.FindingsString(),
	}, "\t")
}

func (r *Renderer) verdict(name string, v sent.Verdict) {
	r.field(name, fmt.Sprintf("%s %s", r.color(Teal, v.Result), r.color(Grey256, v.Reason)))
}

func (r *Renderer) field(name, value string) {
	fmt.Fprintf(r.W, "  %s: %s\n", name, value)
}

func (r *Renderer) color(c, text string) string {
	if !r.HasColor || text == "" {
		return text
	}
	return c + text + Off
}

func glossString(g sent.Gloss) string {
	parts := []string{}
	for _, p := range []string{g.High, g.Mid, g.Term} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " / ")
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {

	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}
