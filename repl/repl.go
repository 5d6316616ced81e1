// Package repl runs the interactive analysis prompt.
package repl

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/zenkou/analyze"
	"github.com/revelaction/zenkou/index"
	"github.com/revelaction/zenkou/render"
)

const (
	// commandPrefix is the character in the prompt that prefixes a command
	commandPrefix = ":"

	cmdVerb = ":verb"
	cmdCode = ":code"
)

type Handler struct {
	Analyzer *analyze.Analyzer
	Index    *index.Index
	Renderer *render.Renderer

	// completion candidates
	verbs []string

	out io.Writer
	n   int
}

// NewHandler returns a Handler. ix may be nil, in which case the lookup
// commands report a missing index. verbs are the completion candidates.
func NewHandler(a *analyze.Analyzer, ix *index.Index, r *render.Renderer, verbs []string, out io.Writer) *Handler {
	seen := map[string]bool{}
	sorted := []string{}
	for _, v := range verbs {
		if !seen[v] {
			seen[v] = true
			sorted = append(sorted, v)
		}
	}
	sort.Strings(sorted)

	return &Handler{
		Analyzer: a,
		Index:    ix,
		Renderer: r,
		verbs:    sorted,
		out:      out,
	}
}

func (h *Handler) Run(ctx context.Context) error {

	fmt.Fprintln(h.out, "🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, :verb <verb>, :code <code>, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer,
			prompt.OptionTitle("zenkou repl"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.out, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintln(h.out, "Prefix set to "+fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		if in == "quit" {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if strings.TrimSpace(in) == "" {
			continue
		}

		history = append(history, in)
		if err := h.Execute(ctx, in); err != nil {
			fmt.Fprintf(h.out, "✍  %v\n", err)
		}
	}
}

// Execute runs one prompt line: a lookup command or a sentence to analyze.
func (h *Handler) Execute(ctx context.Context, in string) error {
	in = strings.TrimSpace(in)

	if strings.HasPrefix(in, commandPrefix) {
		fields := strings.Fields(in)
		if len(fields) < 2 {
			return fmt.Errorf("%s needs an argument", fields[0])
		}

		if h.Index == nil {
			return index.ErrNoIndex
		}

		switch fields[0] {
		case cmdVerb:
			for _, verb := range fields[1:] {
				code, gloss, _ := h.Index.Lookup(verb)
				h.Renderer.Gloss(verb, code, gloss)
			}
		case cmdCode:
			for _, code := range fields[1:] {
				gloss, _ := h.Index.Gloss(code)
				h.Renderer.Code(code, gloss)
			}
		default:
			return fmt.Errorf("unknown command %s", fields[0])
		}

		return nil
	}

	h.n++
	a, err := h.Analyzer.Analyze(ctx, in)
	if err != nil {
		return err
	}

	h.Renderer.Analysis(a, h.n)
	return nil
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	return h.suggest(in.TextBeforeCursor())
}

func (h *Handler) suggest(befCursor string) []prompt.Suggest {
	s := []prompt.Suggest{}

	// Only one character in line
	if befCursor == "" || !strings.HasPrefix(befCursor, commandPrefix) {
		return s
	}

	tokens := strings.Split(befCursor, " ")

	if len(tokens) == 1 {
		for _, c := range []string{cmdVerb, cmdCode} {
			if strings.HasPrefix(c, tokens[0]) {
				s = append(s, prompt.Suggest{Text: c, Description: "🔖 lookup"})
			}
		}
		return s
	}

	if tokens[0] != cmdVerb {
		return s
	}

	last := tokens[len(tokens)-1]
	if last == "" {
		return s
	}

	for _, v := range h.verbs {
		if strings.HasPrefix(v, last) {
			s = append(s, prompt.Suggest{Text: v, Description: h.describe(v)})
		}
	}

	return s
}

func (h *Handler) describe(verb string) string {
	if h.Index == nil {
		return ""
	}

	code, ok := h.Index.Code(verb)
	if !ok {
		return ""
	}
	return code
}
