package stat

import (
	"sort"

	sent "github.com/revelaction/zenkou/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences     int
	NumWithPredicate int
	NumFailed        int
	NumFindings      int

	FindingsPerSentenceMean float64

	// base form of the predicate, as found in the corpus
	PredicateFreq   map[string]int
	TransitivityDis map[string]int
	ParticleFreq    map[string]int
	FunctionFreq    map[string]int

	// predicates without classification code
	Unresolved map[string]int
}

// Count is a value and its number of occurrences.
type Count struct {
	Value string
	N     int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		PredicateFreq:   map[string]int{},
		TransitivityDis: map[string]int{},
		ParticleFreq:    map[string]int{},
		FunctionFreq:    map[string]int{},
		Unresolved:      map[string]int{},
	}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the entries of a batch run. It can be called once per run.
func (h *Handler) Aggregate(entries []sent.Entry) {
	for _, e := range entries {
		a := e.Analysis
		h.stats.NumSentences++

		if e.Err != "" || a.Failed() {
			h.stats.NumFailed++
		}

		h.stats.TransitivityDis[a.Transitivity]++

		if a.HasPredicate() {
			h.stats.NumWithPredicate++
			h.stats.PredicateFreq[a.PredicateBase]++

			if a.ClassCode == sent.ClassNotFound {
				h.stats.Unresolved[a.PredicateBase]++
			}
		}

		for _, f := range a.Findings {
			h.stats.NumFindings++
			h.stats.ParticleFreq[f.Particle]++
			h.stats.FunctionFreq[f.Function]++
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.FindingsPerSentenceMean = float64(h.stats.NumFindings) / float64(h.stats.NumSentences)
	}
}

// Sorted returns the counts of m by decreasing number, then by value. n
// limits the result if positive.
func Sorted(m map[string]int, n int) []Count {
	counts := make([]Count, 0, len(m))
	for v, c := range m {
		counts = append(counts, Count{Value: v, N: c})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Value < counts[j].Value
	})

	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
