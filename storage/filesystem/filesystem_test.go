package filesystem

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sent "github.com/revelaction/zenkou/sentence"
	"github.com/revelaction/zenkou/storage"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestSentenceFileText(t *testing.T) {
	path := writeFile(t, "sentences.txt", "彼は本を読んだ。\n\n  雨が降る。\r\n")

	items, err := NewSentenceFile(path, "").Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(items))
	}
	if items[1].Text != "雨が降る。" {
		t.Errorf("unexpected sentence %q", items[1].Text)
	}
}

func TestSentenceFileCSV(t *testing.T) {
	path := writeFile(t, "corpus.csv", "番号,合并内容,所使用的前项动词\n1,彼は本を読んだ。,読む\n2,,\n3,\"友達と、遊ぶ。\",遊ぶ\n")

	sf := NewSentenceFile(path, "")
	sf.Column = "合并内容"
	sf.VerbColumn = "所使用的前项动词"

	items, err := sf.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(items))
	}
	if items[1].Text != "友達と、遊ぶ。" || items[1].Verb != "遊ぶ" {
		t.Errorf("unexpected item %+v", items[1])
	}

	sf.Column = "missing"
	if _, err := sf.Read(); err == nil {
		t.Errorf("expected error for missing column")
	}
}

func TestSentenceFileVerbColumnNeedsTable(t *testing.T) {
	path := writeFile(t, "sentences.txt", "本を読む。\n")
	sf := NewSentenceFile(path, "")
	sf.VerbColumn = "verb"
	if _, err := sf.Read(); err == nil {
		t.Fatalf("expected error")
	}
}

func entries() []sent.Entry {
	a := sent.NotFound("彼は本を読んだ。")
	a.PredicateBase = "読む"
	a.Findings = []sent.Finding{{Particle: "を", Dependent: "本", Predicate: "読む", Function: "宾格"}}
	j := sent.FailedJudgment()
	return []sent.Entry{
		{Analysis: a, Judgment: &j, Translation: "他读了书。"},
		{Analysis: sent.FailedRecord(""), Err: "tagger failed"},
	}
}

func TestTableWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := NewCSVWriter(path).Write(entries()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to read csv: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	if len(records[0]) != len(storage.Columns()) {
		t.Fatalf("expected %d columns, got %d", len(storage.Columns()), len(records[0]))
	}

	row := records[1]
	if row[2] != "読む" || row[9] != "を:本:宾格" || row[11] != sent.JudgmentFailed || row[19] != "他读了书。" {
		t.Errorf("unexpected row %v", row)
	}

	if records[2][20] != "tagger failed" || records[2][11] != "" {
		t.Errorf("unexpected row %v", records[2])
	}
}

func TestTSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	if err := NewTSVWriter(path).Write(entries()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "sentence\tpredicate_surface\t") {
		t.Errorf("unexpected header %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestJSONStore(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "out.json"))
	if err := s.Write(entries()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.ReadAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Analysis.Findings[0].Dependent != "本" || got[0].Judgment == nil {
		t.Errorf("unexpected entry %+v", got[0])
	}
	if got[1].Judgment != nil || got[1].Err != "tagger failed" {
		t.Errorf("unexpected entry %+v", got[1])
	}
}
