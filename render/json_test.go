package render

import (
	"bytes"
	"encoding/json"
	"testing"

	sent "github.com/revelaction/zenkou/sentence"
)

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := bytes.TrimSpace(buf.Bytes()); string(got) != "[]" {
		t.Fatalf("expected empty array, got %s", got)
	}
}

func TestJSONRendererRenderOneEntry(t *testing.T) {
	a := sent.NotFound("彼は本を読んだ。")
	a.PredicateSurface = "読ん"
	a.PredicateBase = "読む"
	a.Transitivity = sent.Transitive
	a.Findings = []sent.Finding{{Index: 3, Particle: "を", Dependent: "本", Predicate: "読む", Function: "宾格"}}

	j := sent.FailedJudgment()
	e := sent.Entry{Analysis: a, Judgment: &j, Translation: "He read a book."}

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render([]sent.Entry{e}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var results []sent.Entry
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	got := results[0]
	if got.Analysis.PredicateBase != "読む" {
		t.Errorf("expected predicate 読む, got %q", got.Analysis.PredicateBase)
	}

	if len(got.Analysis.Findings) != 1 || got.Analysis.Findings[0].Function != "宾格" {
		t.Errorf("unexpected findings %+v", got.Analysis.Findings)
	}

	if got.Judgment == nil || got.Judgment.CaseParticles.Result != sent.JudgmentFailed {
		t.Errorf("expected failed judgment, got %+v", got.Judgment)
	}

	if !bytes.Contains(buf.Bytes(), []byte(`"格助词判断"`)) {
		t.Errorf("expected judgment keys in output, got %s", buf.String())
	}
}
