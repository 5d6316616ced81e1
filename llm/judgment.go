package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sent "github.com/revelaction/zenkou/sentence"
)

// ErrMalformed is matched by answers that are not a JSON object.
var ErrMalformed = errors.New("llm: malformed judgment")

// accepted keys of each judged field, the first is canonical
var (
	predicateKeys      = []string{"前项动词", "前項動詞"}
	transitivityKeys   = []string{"自他性判断"}
	classificationKeys = []string{"IPA辞书官方语义分类", "IPA辞書官方語義分類"}
	caseParticleKeys   = []string{"格助词判断", "格助詞判断"}
)

// Judge asks the model to judge sentence. If verb is not empty it is given
// to the model as the known pre-verb. A malformed answer returns the failed
// judgment together with the error.
func Judge(ctx context.Context, c Client, sentence, verb string) (sent.Judgment, error) {
	system, user := AnalysisPrompt, sentence
	if verb != "" {
		system, user = AnalysisWithVerbPrompt, WithVerb(sentence, verb)
	}

	raw, err := c.Complete(ctx, system, user)
	if err != nil {
		return sent.FailedJudgment(), err
	}

	return ParseJudgment(raw)
}

// Translate asks the model for the Chinese translation of sentence.
func Translate(ctx context.Context, c Client, sentence string) (string, error) {
	raw, err := c.Complete(ctx, TranslationPrompt, sentence)
	if err != nil {
		return sent.TranslationFailed, err
	}

	tr := strings.TrimSpace(raw)
	if tr == "" {
		return sent.TranslationFailed, fmt.Errorf("llm: empty translation")
	}
	return tr, nil
}

// ParseJudgment decodes the JSON answer of the model. Markdown code fences
// are ignored. Missing fields, or missing result and reason of a field, are
// set to the failed marker. An answer that is not a JSON object yields the
// failed judgment and an error.
func ParseJudgment(raw string) (sent.Judgment, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(strings.TrimSpace(raw))), &obj); err != nil {
		return sent.FailedJudgment(), fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return sent.Judgment{
		Predicate:      verdict(obj, predicateKeys),
		Transitivity:   verdict(obj, transitivityKeys),
		Classification: verdict(obj, classificationKeys),
		CaseParticles:  verdict(obj, caseParticleKeys),
	}, nil
}

func verdict(obj map[string]json.RawMessage, keys []string) sent.Verdict {
	v := sent.Verdict{Result: sent.JudgmentFailed, Reason: sent.JudgmentFailed}

	for _, k := range keys {
		data, ok := obj[k]
		if !ok {
			continue
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return v
		}

		if s, ok := text(fields["result"]); ok {
			v.Result = s
		}
		if s, ok := text(fields["reason"]); ok {
			v.Reason = s
		}
		return v
	}

	return v
}

// text renders a JSON value as text: strings as is, anything else compact.
func text(data json.RawMessage) (string, bool) {
	if len(data) == 0 || string(data) == "null" {
		return "", false
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s, true
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return string(data), true
	}
	return buf.String(), true
}

// stripCodeFence removes markdown code block wrappers (```json ... ```).
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
