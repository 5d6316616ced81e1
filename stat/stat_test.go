package stat

import (
	"testing"

	sent "github.com/revelaction/zenkou/sentence"
)

func entry(base, transitivity, code string, particles ...string) sent.Entry {
	a := sent.NotFound("s")
	if base != "" {
		a.PredicateBase = base
		a.Transitivity = transitivity
		a.ClassCode = code
	}
	for _, p := range particles {
		a.Findings = append(a.Findings, sent.Finding{Particle: p, Function: "f" + p})
	}
	return sent.Entry{Analysis: a}
}

func TestAggregate(t *testing.T) {
	failed := sent.Entry{Analysis: sent.FailedRecord("s")}

	entries := []sent.Entry{
		entry("読む", sent.Transitive, "2.3150", "を", "が"),
		entry("読む", sent.Transitive, "2.3150", "を"),
		entry("泳ぐ", sent.NeedsReview, sent.ClassNotFound, "で"),
		failed,
	}

	h := NewHandler()
	h.Aggregate(entries)
	s := h.Get()

	if s.NumSentences != 4 || s.NumWithPredicate != 3 || s.NumFailed != 1 {
		t.Errorf("unexpected counts %+v", s)
	}
	if s.NumFindings != 4 || s.FindingsPerSentenceMean != 1 {
		t.Errorf("expected 4 findings, mean 1, got %d, %.2f", s.NumFindings, s.FindingsPerSentenceMean)
	}
	if s.PredicateFreq["読む"] != 2 {
		t.Errorf("expected 読む twice, got %d", s.PredicateFreq["読む"])
	}
	if s.TransitivityDis[sent.NeedsReview] != 1 || s.TransitivityDis[sent.Failed] != 1 {
		t.Errorf("unexpected transitivity distribution %v", s.TransitivityDis)
	}
	if s.ParticleFreq["を"] != 2 || s.FunctionFreq["fで"] != 1 {
		t.Errorf("unexpected particle counts %v %v", s.ParticleFreq, s.FunctionFreq)
	}
	if len(s.Unresolved) != 1 || s.Unresolved["泳ぐ"] != 1 {
		t.Errorf("unexpected unresolved %v", s.Unresolved)
	}
}

func TestAggregateFractionalMean(t *testing.T) {
	entries := []sent.Entry{
		entry("読む", sent.Transitive, "2.3150", "を", "が"),
		entry("泳ぐ", sent.NeedsReview, sent.ClassNotFound, "で"),
	}

	h := NewHandler()
	h.Aggregate(entries)

	if m := h.Get().FindingsPerSentenceMean; m != 1.5 {
		t.Errorf("expected mean 1.5, got %v", m)
	}
}

func TestAggregateErrEntry(t *testing.T) {
	e := entry("読む", sent.Transitive, "2.3150", "を")
	e.Err = "model unavailable"

	h := NewHandler()
	h.Aggregate([]sent.Entry{e})

	if s := h.Get(); s.NumFailed != 1 || s.NumWithPredicate != 1 {
		t.Errorf("unexpected counts %+v", s)
	}
}

func TestAggregateEmpty(t *testing.T) {
	h := NewHandler()
	h.Aggregate(nil)
	if s := h.Get(); s.NumSentences != 0 || s.FindingsPerSentenceMean != 0 {
		t.Errorf("unexpected stats %+v", s)
	}
}

func TestSorted(t *testing.T) {
	got := Sorted(map[string]int{"行く": 2, "読む": 5, "来る": 2, "見る": 1}, 3)

	want := []Count{{"読む", 5}, {"来る", 2}, {"行く", 2}}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("at %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
