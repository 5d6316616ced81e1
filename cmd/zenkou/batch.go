package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/zenkou/batch"
	"github.com/revelaction/zenkou/llm"
	"github.com/revelaction/zenkou/storage"
	"github.com/revelaction/zenkou/storage/filesystem"
)

// waited between language model calls unless --delay is given
const defaultDelay = 300 * time.Millisecond

func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Aliases:  []string{"i"},
			Usage:    "sentences: a text file, one per line, or a CSV/TSV file with a header",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "column",
			Aliases: []string{"c"},
			Usage:   "header of the sentence column of a CSV/TSV input, the first column if empty",
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "read at most this number of sentences",
		},
	}
}

func batchCommand(ui UI) *cli.Command {
	flags := append(inputFlags(),
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "export file: .csv, .tsv, .json or .db; printed if empty",
		},
		&cli.StringFlag{
			Name:    "verb-column",
			Aliases: []string{"with-verb-column"},
			Usage:   "header of a column with the known pre-verb, given to the language model",
		},
		&cli.BoolFlag{
			Name:  "llm",
			Usage: "ask the language model to judge each sentence",
		},
		&cli.BoolFlag{
			Name:  "translate",
			Usage: "ask the language model to translate each sentence",
		},
		&cli.DurationFlag{
			Name:  "delay",
			Value: defaultDelay,
			Usage: "pause between language model calls",
		},
		&cli.StringFlag{
			Name:    "llm-url",
			Value:   llm.DefaultBaseURL,
			Usage:   "base URL of the OpenAI compatible service",
			EnvVars: []string{"ZENKOU_LLM_URL"},
		},
		&cli.StringFlag{
			Name:    "llm-model",
			Value:   llm.DefaultModel,
			Usage:   "model name",
			EnvVars: []string{"ZENKOU_LLM_MODEL"},
		},
		&cli.Float64Flag{
			Name:  "temperature",
			Value: 0.3,
			Usage: "sampling temperature of the language model",
		},
		&cli.BoolFlag{
			Name:  "no-progress",
			Usage: "do not show the progress bar",
		},
	)

	return &cli.Command{
		Name:   "batch",
		Usage:  "Analyze a file of sentences and export the results",
		Flags:  flags,
		Action: func(c *cli.Context) error { return runBatch(c, ui) },
	}
}

func runBatch(c *cli.Context, ui UI) error {
	logger := newLogger(c, ui)

	in := filesystem.NewSentenceFile(c.String("input"), c.String("encoding"))
	in.Column = c.String("column")
	in.VerbColumn = c.String("verb-column")

	items, err := in.Read()
	if err != nil {
		return err
	}

	if n := c.Int("limit"); n > 0 && len(items) > n {
		items = items[:n]
	}

	if len(items) == 0 {
		return fmt.Errorf("no sentences in %s", c.String("input"))
	}

	s, err := newSetup(c)
	if err != nil {
		return err
	}

	opts := batch.Options{
		Judge:     c.Bool("llm"),
		Translate: c.Bool("translate"),
		Delay:     c.Duration("delay"),
	}

	var client llm.Client
	if opts.Judge || opts.Translate {
		client, err = newLLMClient(c)
		if err != nil {
			return err
		}
	}

	runner, err := batch.NewRunner(s.analyzer, client, opts, logger)
	if err != nil {
		return err
	}

	// the output is checked before the run
	var pool Pool
	defer pool.Close()

	output := c.String("output")

	var writer storage.EntryWriter
	if output != "" {
		writer, err = NewEntryWriter(&pool, output)
		if err != nil {
			return err
		}
	}

	if !c.Bool("no-progress") {
		uiprogress.Start()
		bar := uiprogress.AddBar(len(items))
		bar.AppendCompleted()
		bar.PrependElapsed()
		runner.Progress = func(done, total int) {
			bar.Set(done)
		}
	}

	logger.Debug("batch started", "sentences", len(items), "llm", opts.Judge, "translate", opts.Translate)

	entries, runErr := runner.Run(c.Context, items)

	if !c.Bool("no-progress") {
		uiprogress.Stop()
	}

	if writer == nil {
		r := newRenderer(c, ui)
		for i, e := range entries {
			r.Entry(e, i+1)
		}
		return runErr
	}

	if err := writer.Write(entries); err != nil {
		return errors.Join(runErr, err)
	}

	fmt.Fprintf(ui.Out, "✍  %d entries written to %s\n", len(entries), output)
	return runErr
}
