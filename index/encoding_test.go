package index

import (
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestDecodeTextUTF8(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("1.100 抽象")...)

	s, err := DecodeText(raw, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "1.100 抽象" {
		t.Errorf("expected BOM stripped text, got %q", s)
	}
}

func TestDecodeTextDeclared(t *testing.T) {
	raw, err := japanese.EUCJP.NewEncoder().Bytes([]byte("読む,2.3000"))
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"euc-jp", "EUC_JP", "eucjp"} {
		s, err := DecodeText(raw, name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if s != "読む,2.3000" {
			t.Errorf("%s: got %q", name, s)
		}
	}
}

func TestDecodeTextUnknownDeclared(t *testing.T) {
	if _, err := DecodeText([]byte("a"), "klingon"); err == nil {
		t.Fatalf("expected error for unknown encoding")
	}
}

func TestDecodeStrict(t *testing.T) {
	gbk, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("分类词汇表"))
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := decodeStrict("utf-8", gbk); ok {
		t.Errorf("expected gbk bytes to fail as utf-8")
	}

	s, ok := decodeStrict("gbk", gbk)
	if !ok || s != "分类词汇表" {
		t.Errorf("expected 分类词汇表, got %q (%t)", s, ok)
	}

	// a lone lead byte cannot be decoded
	if _, ok := decodeStrict("euc-jp", []byte{0xA4}); ok {
		t.Errorf("expected truncated euc-jp to fail")
	}
}

func TestLookupEncodingAliases(t *testing.T) {
	for _, name := range append(trialEncodings, "Shift_JIS", "GB-18030", "windows-1252", "big5-hkscs") {
		if _, err := lookupEncoding(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestDecodeTextUndeclared(t *testing.T) {
	tests := []struct {
		name string
		enc  encoding.Encoding
		text string
	}{
		{"shift_jis", japanese.ShiftJIS, "読む,2.3100\n書く,2.3150\n"},
		{"euc-jp", japanese.EUCJP, "読む,2.3100\n書く,2.3150\n"},
		{"iso2022-jp", japanese.ISO2022JP, "読む,2.3100\n書く,2.3150\n"},
		{"gbk", simplifiedchinese.GBK, "1.100 抽象\n"},
		{"gbk hierarchy", simplifiedchinese.GBK, "1.1000 抽象的关系\n1.1010 类与例\n"},
	}

	for _, tt := range tests {
		raw, err := tt.enc.NewEncoder().Bytes([]byte(tt.text))
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}

		s, err := DecodeText(raw, "")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if s != tt.text {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.text, s)
		}
	}
}

func TestPlausibility(t *testing.T) {
	if plausibility("読む") <= plausibility("撉傓") {
		t.Errorf("expected kana to outscore han only text")
	}
	if plausibility("ﾆﾉ") >= 0 {
		t.Errorf("expected halfwidth katakana to score negative")
	}
	if plausibility("コード") != 5 {
		t.Errorf("expected prolonged sound mark to count, got %d", plausibility("コード"))
	}
	if plausibility("abc") != 0 {
		t.Errorf("expected ascii to be neutral")
	}
}
