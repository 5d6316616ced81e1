// Package batch analyzes a list of sentences one after the other. A failing
// collaborator only spoils the entry of the sentence it failed on.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/revelaction/zenkou/analyze"
	"github.com/revelaction/zenkou/llm"
	sent "github.com/revelaction/zenkou/sentence"
)

// ErrUnavailable is returned when a collaborator failed for every sentence.
var ErrUnavailable = errors.New("collaborator unavailable")

// Item is one input sentence. Verb, if known, is passed to the language
// model as the pre-verb of the sentence.
type Item struct {
	Text string
	Verb string
}

// Options selects the language model steps.
type Options struct {
	Judge     bool
	Translate bool

	// Delay is waited between sentences that called the language model.
	Delay time.Duration
}

// Runner runs the batch.
type Runner struct {
	analyzer *analyze.Analyzer
	client   llm.Client
	opts     Options
	logger   *slog.Logger

	// Progress, if set, is called after every sentence.
	Progress func(done, total int)
}

// NewRunner returns a Runner. client may be nil if opts enables no language
// model step.
func NewRunner(a *analyze.Analyzer, client llm.Client, opts Options, logger *slog.Logger) (*Runner, error) {
	if client == nil && (opts.Judge || opts.Translate) {
		return nil, fmt.Errorf("batch: language model steps need a client")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Runner{analyzer: a, client: client, opts: opts, logger: logger}, nil
}

type tally struct {
	tagger, model, modelCalls int
}

// Run returns one entry per item, in order. The error is ErrUnavailable if
// the tagger, or the language model, failed for every item, and the context
// error if the run was cancelled, in which case only the finished entries
// are returned.
func (r *Runner) Run(ctx context.Context, items []Item) ([]sent.Entry, error) {
	entries := make([]sent.Entry, 0, len(items))
	var failed tally

	for i, it := range items {
		if err := ctx.Err(); err != nil {
			return entries, err
		}

		e := r.entry(ctx, i, it, &failed)
		entries = append(entries, e)

		if r.Progress != nil {
			r.Progress(i+1, len(items))
		}

		if r.usesModel() && r.opts.Delay > 0 && i < len(items)-1 {
			select {
			case <-ctx.Done():
				return entries, ctx.Err()
			case <-time.After(r.opts.Delay):
			}
		}
	}

	n := len(items)
	if n > 0 && failed.tagger == n {
		return entries, fmt.Errorf("%w: tagger failed for all %d sentences", ErrUnavailable, n)
	}

	if failed.modelCalls > 0 && failed.model == failed.modelCalls {
		return entries, fmt.Errorf("%w: language model failed for all %d calls", ErrUnavailable, failed.modelCalls)
	}

	return entries, nil
}

func (r *Runner) usesModel() bool {
	return r.opts.Judge || r.opts.Translate
}

func (r *Runner) entry(ctx context.Context, i int, it Item, failed *tally) sent.Entry {
	var errs []string

	rec, err := r.analyzer.Analyze(ctx, it.Text)
	if err != nil {
		failed.tagger++
		errs = append(errs, err.Error())
		r.logger.Warn("analysis failed", "sentence", i, "err", err)
	}

	e := sent.Entry{Analysis: rec}

	if r.opts.Judge {
		failed.modelCalls++
		j, err := llm.Judge(ctx, r.client, it.Text, it.Verb)
		if err != nil {
			// a malformed answer still reached the model
			if !errors.Is(err, llm.ErrMalformed) {
				failed.model++
			}
			errs = append(errs, err.Error())
			r.logger.Warn("judgment failed", "sentence", i, "err", err)
		}
		e.Judgment = &j
	}

	if r.opts.Translate {
		failed.modelCalls++
		tr, err := llm.Translate(ctx, r.client, it.Text)
		if err != nil {
			failed.model++
			errs = append(errs, err.Error())
			r.logger.Warn("translation failed", "sentence", i, "err", err)
		}
		e.Translation = tr
	}

	if len(errs) > 0 {
		e.Err = strings.Join(errs, "; ")
	}

	return e
}
