package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/zenkou/batch"
	sent "github.com/revelaction/zenkou/sentence"
	"github.com/revelaction/zenkou/stat"
	"github.com/revelaction/zenkou/storage/filesystem"
)

func statCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:   "stat",
		Usage:  "Show predicate, transitivity and particle counts of a corpus or of a previous export (.json, .db)",
		Flags:  inputFlags(),
		Action: func(c *cli.Context) error { return runStat(c, ui) },
	}
}

func runStat(c *cli.Context, ui UI) error {
	path := c.String("input")

	var pool Pool
	defer pool.Close()

	reader, isExport, err := NewEntryReader(&pool, path)
	if err != nil {
		return err
	}

	var entries []sent.Entry
	if isExport {
		entries, err = reader.ReadAll()
		if err != nil {
			return err
		}
	} else {
		entries, err = analyzeFile(c, ui, path)
		if err != nil {
			return err
		}
	}

	if n := c.Int("limit"); n > 0 && len(entries) > n {
		entries = entries[:n]
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(entries)

	newRenderer(c, ui).Stats(hdl.Get())
	return nil
}

// analyzeFile runs the rule analysis, without language model, over a file
// of sentences.
func analyzeFile(c *cli.Context, ui UI, path string) ([]sent.Entry, error) {
	in := filesystem.NewSentenceFile(path, c.String("encoding"))
	in.Column = c.String("column")

	items, err := in.Read()
	if err != nil {
		return nil, err
	}

	s, err := newSetup(c)
	if err != nil {
		return nil, err
	}

	runner, err := batch.NewRunner(s.analyzer, nil, batch.Options{}, newLogger(c, ui))
	if err != nil {
		return nil, err
	}

	return runner.Run(c.Context, items)
}
