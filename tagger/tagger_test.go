package tagger

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const yondaOutput = "彼\tカレ\tカレ\t名詞\t代名詞\t一般\t*\t*\t*\t彼\n" +
	"は\tハ\tワ\t助詞\t係助詞\t*\t*\t*\t*\tは\n" +
	"本\tホン\tホン\t名詞\t一般\t*\t*\t*\t*\t本\n" +
	"を\tヲ\tヲ\t助詞\t格助詞\t一般\t*\t*\t*\tを\n" +
	"読ん\tヨン\tヨン\t動詞\t自立\t*\t*\t五段・マ行\t連用タ接続\t読む\n" +
	"だ\tダ\tダ\t助動詞\t*\t*\t*\t特殊・タ\t基本形\tだ\n" +
	"。\t。\t。\t記号\t句点\t*\t*\t*\t*\t。\n" +
	"EOS\n"

func TestParseOutput(t *testing.T) {
	tokens := ParseOutput(strings.NewReader(yondaOutput))
	if len(tokens) != 7 {
		t.Fatalf("expected 7 tokens, got %d", len(tokens))
	}

	v := tokens[4]
	if v.Surface != "読ん" || v.BaseForm != "読む" {
		t.Errorf("expected 読ん/読む, got %s/%s", v.Surface, v.BaseForm)
	}
	if v.POS != "動詞" || v.POSSub1 != "自立" || v.InflectionForm != "連用タ接続" || v.InflectionType != "五段・マ行" {
		t.Errorf("unexpected verb fields: %+v", v)
	}
	if v.Index != 4 {
		t.Errorf("expected index 4, got %d", v.Index)
	}
}

func TestParseOutputSkipsShortLines(t *testing.T) {
	out := "壊れた行\tだけ\n\n" +
		"本\tホン\tホン\t名詞\t一般\t*\t*\t*\t*\t本\n" +
		"EOS\n"

	tokens := ParseOutput(strings.NewReader(out))
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if tokens[0].Index != 0 {
		t.Errorf("expected index 0, got %d", tokens[0].Index)
	}
}

func TestParseOutputEmpty(t *testing.T) {
	tokens := ParseOutput(strings.NewReader("EOS\n"))
	if tokens == nil || len(tokens) != 0 {
		t.Fatalf("expected empty non nil slice, got %#v", tokens)
	}
}

func TestMeCabBlankInput(t *testing.T) {
	// the binary does not exist: blank input must not start a process
	m := NewMeCab("/nonexistent/mecab")
	for _, text := range []string{"", "   ", "　\n"} {
		tokens, err := m.Tag(context.Background(), text)
		if err != nil {
			t.Fatalf("expected no error for %q, got %v", text, err)
		}
		if len(tokens) != 0 {
			t.Errorf("expected no tokens for %q, got %d", text, len(tokens))
		}
	}
}

func TestMeCabMissingBinary(t *testing.T) {
	m := NewMeCab("/nonexistent/mecab")
	_, err := m.Tag(context.Background(), "本を読む")
	if err == nil {
		t.Fatalf("expected error")
	}

	if !errors.Is(err, ErrTagger) {
		t.Errorf("expected ErrTagger, got %v", err)
	}

	var te *Error
	if !errors.As(err, &te) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if te.Name != "mecab" {
		t.Errorf("expected name mecab, got %s", te.Name)
	}
}

func TestNewUnknown(t *testing.T) {
	if _, err := New("juman", Options{}); err == nil {
		t.Fatalf("expected error for unknown tagger")
	}
}

func TestKagomeTag(t *testing.T) {
	k, err := NewKagome()
	if err != nil {
		t.Fatalf("failed to create kagome tagger: %v", err)
	}

	tokens, err := k.Tag(context.Background(), "彼は本を読んだ。")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var found bool
	for _, tk := range tokens {
		if tk.Surface == "読ん" {
			found = true
			if tk.BaseForm != "読む" {
				t.Errorf("expected base 読む, got %s", tk.BaseForm)
			}
			if tk.POS != "動詞" || tk.POSSub1 != "自立" {
				t.Errorf("expected 動詞/自立, got %s/%s", tk.POS, tk.POSSub1)
			}
		}
	}

	if !found {
		t.Fatalf("expected token 読ん in %+v", tokens)
	}

	for i, tk := range tokens {
		if tk.Index != i {
			t.Errorf("expected index %d, got %d", i, tk.Index)
		}
	}
}

func TestKagomeBlankInput(t *testing.T) {
	k, err := NewKagome()
	if err != nil {
		t.Fatalf("failed to create kagome tagger: %v", err)
	}

	tokens, err := k.Tag(context.Background(), "  ")
	if err != nil || len(tokens) != 0 {
		t.Fatalf("expected empty result, got %d tokens, err %v", len(tokens), err)
	}
}
