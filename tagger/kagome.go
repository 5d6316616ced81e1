package tagger

import (
	"context"
	"fmt"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	sent "github.com/revelaction/zenkou/sentence"
)

// kagome ipa feature positions
const (
	featPOS = iota
	featPOSSub1
	featPOSSub2
	featPOSSub3
	featInflType
	featInflForm
	featBase
	featReading
	featPronunciation
)

// Kagome tags in process with the kagome IPA dictionary.
type Kagome struct {
	t *tokenizer.Tokenizer
}

var _ Tagger = (*Kagome)(nil)

func NewKagome() (*Kagome, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("kagome: %w", err)
	}
	return &Kagome{t: t}, nil
}

func (k *Kagome) Tag(ctx context.Context, text string) ([]sent.Token, error) {
	if isBlank(text) {
		return []sent.Token{}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, &Error{Name: "kagome", Err: err}
	}

	tokens := []sent.Token{}
	for _, tk := range k.t.Tokenize(text) {
		if tk.Class == tokenizer.DUMMY {
			continue
		}

		f := tk.Features()
		base := feature(f, featBase)
		if base == "" || base == "*" {
			base = tk.Surface
		}

		tokens = append(tokens, sent.Token{
			Index:          len(tokens),
			Surface:        tk.Surface,
			Reading:        feature(f, featReading),
			Pronunciation:  feature(f, featPronunciation),
			POS:            feature(f, featPOS),
			POSSub1:        feature(f, featPOSSub1),
			POSSub2:        feature(f, featPOSSub2),
			POSSub3:        feature(f, featPOSSub3),
			InflectionType: feature(f, featInflType),
			InflectionForm: feature(f, featInflForm),
			BaseForm:       base,
		})
	}

	return tokens, nil
}

func feature(f []string, i int) string {
	if i < len(f) {
		return f[i]
	}
	return "*"
}
