package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	sent "github.com/revelaction/zenkou/sentence"
)

func mustDefault(t *testing.T) *Rules {
	t.Helper()
	rs, err := Default()
	if err != nil {
		t.Fatalf("failed to load default rules: %v", err)
	}
	return rs
}

func TestDefaultTransitivity(t *testing.T) {
	rs := mustDefault(t)

	cases := map[string]string{
		"読む":   sent.Transitive,
		"閉める":  sent.Transitive,
		"行く":   sent.IntransitiveVolitional,
		"降る":   sent.IntransitiveNonVol,
		"雨が降る": sent.IntransitiveNonVol,
	}

	for verb, want := range cases {
		got, ok := rs.Transitivity(verb)
		if !ok || got != want {
			t.Errorf("%s: expected %s, got %s (%t)", verb, want, got, ok)
		}
	}

	if _, ok := rs.Transitivity("泳ぐ"); ok {
		t.Errorf("expected 泳ぐ to be missing from the table")
	}
}

func TestDefaultFixedFunctions(t *testing.T) {
	rs := mustDefault(t)

	cases := map[string]string{
		"が":  "主格（动作主体，如「誰が～する」）",
		"を":  "宾格（动作对象，如「何を～する」）",
		"へ":  "方向格（目的地，如「どこへ～行く」）",
		"から": "起点格（时间/地点起点，如「何時から～する」）",
	}

	for p, want := range cases {
		if got := rs.Function(p, "学校", "行く"); got != want {
			t.Errorf("%s: expected %s, got %s", p, want, got)
		}
	}
}

func TestFunctionRuleOrder(t *testing.T) {
	rs := mustDefault(t)

	cases := []struct {
		particle, dependent, predicate, prefix string
	}{
		// motion verb wins over the temporal noun
		{"に", "明日", "行く", "方向格"},
		{"に", "友達", "会う", "对象格（"},
		{"に", "3時", "始まる", "时间格"},
		{"に", "本", "書く", "对象格/时间格"},
		{"に", "", "書く", "对象格/时间格"},
		{"と", "友達", "言う", "共同格（"},
		{"と", "「こんにちは」", "思う", "引用格"},
		{"と", "こんにちは", "言う", "引用格"},
		{"と", "猫", "遊ぶ", "共同格/引用格"},
		{"で", "公園", "遊ぶ", "场所格（"},
		{"で", "バス", "行く", "工具格"},
		{"で", "家", "食べる", "场所格/工具格"},
	}

	for _, c := range cases {
		got := rs.Function(c.particle, c.dependent, c.predicate)
		if !strings.HasPrefix(got, c.prefix) {
			t.Errorf("%s %s %s: expected prefix %s, got %s", c.dependent, c.particle, c.predicate, c.prefix, got)
		}
	}
}

func TestIsPredicate(t *testing.T) {
	rs := mustDefault(t)

	cases := []struct {
		tk   sent.Token
		want bool
	}{
		{sent.Token{POS: "動詞", POSSub1: "自立", InflectionForm: "基本形"}, true},
		{sent.Token{POS: "動詞", POSSub1: "自立", InflectionForm: "連用タ接続"}, true},
		{sent.Token{POS: "動詞", POSSub1: "非自立", InflectionForm: "基本形"}, false},
		{sent.Token{POS: "動詞", POSSub1: "自立", InflectionForm: "未然形"}, false},
		{sent.Token{POS: "助動詞", POSSub1: "*", InflectionForm: "基本形"}, false},
	}

	for i, c := range cases {
		if got := rs.IsPredicate(c.tk); got != c.want {
			t.Errorf("case %d: expected %t, got %t", i, c.want, got)
		}
	}
}

func TestLoadFile(t *testing.T) {
	doc := `{
  "predicate": {"pos": "動詞", "pos1": "自立", "forms": ["基本形"]},
  "transitivity": {"他动词": ["読む"]},
  "particles": {
    "が": {"default": "a"}, "を": {"default": "b"}, "へ": {"default": "c"},
    "から": {"default": "d"}, "と": {"default": "e"}, "で": {"default": "f"},
    "に": {"rules": [{"dependent": ["駅"], "function": "place"}], "default": "g"}
  }
}`
	path := filepath.Join(t.TempDir(), "rules.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write rules: %v", err)
	}

	rs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("failed to load rules: %v", err)
	}

	if got := rs.Function("に", "駅前", "行く"); got != "place" {
		t.Errorf("expected place, got %s", got)
	}

	if got := rs.Function("に", "家", "行く"); got != "g" {
		t.Errorf("expected g, got %s", got)
	}

	if verbs := rs.Verbs(); len(verbs) != 1 || verbs[0] != "読む" {
		t.Errorf("expected [読む], got %v", verbs)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"not json":        `{`,
		"missing default": `{"predicate": {"pos": "動詞", "forms": ["基本形"]}, "particles": {}}`,
		"duplicate verb": `{"predicate": {"pos": "動詞", "forms": ["基本形"]},
			"transitivity": {"他动词": ["読む"], "自动词（意志）": ["読む"]}}`,
		"no forms": `{"predicate": {"pos": "動詞"}}`,
	}

	for name, doc := range cases {
		if _, err := Load(strings.NewReader(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
