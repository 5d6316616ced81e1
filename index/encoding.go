package index

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	xunicode "golang.org/x/text/encoding/unicode"
)

var (
	utf8BOM       = []byte{0xEF, 0xBB, 0xBF}
	iso2022Escape = []byte{0x1B, '$'}
)

// trialEncodings are the candidates for undeclared input that is not UTF-8.
// Japanese encodings come first and win ties.
var trialEncodings = []string{
	"shift_jis",
	"euc-jp",
	"iso2022-jp",
	"gbk",
	"gb18030",
	"big5",
	"euc-kr",
}

// Statistical detection is unreliable on short input, which is the common
// case for index files.
const (
	minDetectLen        = 1024
	minDetectConfidence = 50
)

// detectable are the normalized chardet charsets trusted for long input.
var detectable = map[string]bool{
	"utf8":      true,
	"shiftjis":  true,
	"eucjp":     true,
	"iso2022jp": true,
	"gb18030":   true,
	"gbk":       true,
	"big5":      true,
	"euckr":     true,
}

// ReadText reads a hand maintained CJK text file. See DecodeText.
func ReadText(path, declared string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	s, err := DecodeText(raw, declared)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// DecodeText converts raw to UTF-8.
//
// A declared encoding is used as is, dropping undecodable bytes. Otherwise
// ISO-2022-JP escapes or valid UTF-8 are recognized. Long input with a
// confident CJK detection is decoded with the detected charset. Short input
// is decoded with the trial encoding whose output reads most like Japanese
// or Chinese text. As a last resort undecodable bytes are dropped from a
// UTF-8 reading. It only fails for an unknown declared encoding.
func DecodeText(raw []byte, declared string) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if declared != "" {
		enc, err := lookupEncoding(declared)
		if err != nil {
			return "", err
		}
		return decodeLenient(enc, raw), nil
	}

	// ISO-2022-JP is 7 bit and would pass as UTF-8
	if bytes.Contains(raw, iso2022Escape) {
		if s, ok := decodeStrict("iso2022-jp", raw); ok {
			return s, nil
		}
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	if name := detect(raw); name != "" {
		if s, ok := decodeStrict(name, raw); ok {
			return s, nil
		}
	}

	best, bestScore, found := "", 0, false
	for _, name := range trialEncodings {
		s, ok := decodeStrict(name, raw)
		if !ok {
			continue
		}
		if sc := plausibility(s); !found || sc > bestScore {
			best, bestScore, found = s, sc, true
		}
	}
	if found {
		return best, nil
	}

	return strings.ToValidUTF8(string(raw), ""), nil
}

// detect returns the chardet charset of raw when it can be trusted, or "".
func detect(raw []byte) string {
	if len(raw) < minDetectLen {
		return ""
	}

	res, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil || res.Confidence < minDetectConfidence {
		return ""
	}

	if !detectable[normalizeEncoding(res.Charset)] {
		return ""
	}
	return res.Charset
}

// plausibility scores decoded text. Kana is the strongest signal, han and
// CJK punctuation count less, and anything outside ASCII and CJK counts
// against. Halfwidth katakana is rare in index files but is what stray lead
// bytes decode to under Shift-JIS.
func plausibility(s string) int {
	score := 0
	for _, r := range s {
		switch {
		case r < utf8.RuneSelf:
		case r >= 0xFF61 && r <= 0xFF9F:
			score -= 2
		case unicode.In(r, unicode.Hiragana, unicode.Katakana):
			score += 2
		case unicode.Is(unicode.Han, r):
			score++
		case r >= 0x3000 && r <= 0x303F, r == 0x30FB, r == 0x30FC, r >= 0xFF01 && r <= 0xFF5E:
			score++
		case unicode.Is(unicode.Hangul, r):
		default:
			score -= 2
		}
	}
	return score
}

func normalizeEncoding(name string) string {
	return strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch normalizeEncoding(name) {
	case "utf8":
		return xunicode.UTF8, nil
	case "gbk", "cp936", "gb2312":
		return simplifiedchinese.GBK, nil
	case "gb18030":
		return simplifiedchinese.GB18030, nil
	case "big5":
		return traditionalchinese.Big5, nil
	case "shiftjis", "sjis", "cp932", "windows31j":
		return japanese.ShiftJIS, nil
	case "eucjp":
		return japanese.EUCJP, nil
	case "euckr", "cp949":
		return korean.EUCKR, nil
	case "iso2022jp":
		return japanese.ISO2022JP, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return enc, nil
}

var replacementChar = []byte(string(utf8.RuneError))

func decodeStrict(name string, raw []byte) (string, bool) {
	if name == "utf-8" {
		if !utf8.Valid(raw) {
			return "", false
		}
		return string(raw), true
	}

	enc, err := lookupEncoding(name)
	if err != nil {
		return "", false
	}

	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}

	// decoders substitute invalid input
	if bytes.Contains(out, replacementChar) && !bytes.Contains(raw, replacementChar) {
		return "", false
	}

	return string(out), true
}

func decodeLenient(enc encoding.Encoding, raw []byte) string {
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "")
	}

	return strings.ReplaceAll(string(out), string(utf8.RuneError), "")
}
