package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/zenkou/render"
	sent "github.com/revelaction/zenkou/sentence"
)

const formatJSON = "json"

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   render.Defaultformat,
		Usage:   fmt.Sprintf("output format: %s or %s", strings.Join(render.SupportedFormats(), ", "), formatJSON),
	}
}

func checkFormat(v string) error {
	if v == formatJSON {
		return nil
	}
	for _, f := range render.SupportedFormats() {
		if f == v {
			return nil
		}
	}
	return fmt.Errorf("allowed formats are %s, %s", strings.Join(render.SupportedFormats(), ", "), formatJSON)
}

func analyzeCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Analyze the pre-verb and case particles of each sentence",
		ArgsUsage: "<sentence> ...",
		Flags: []cli.Flag{
			formatFlag(),
			&cli.BoolFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "prefix each sentence with its position",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("analyze needs at least one sentence")
			}

			if err := checkFormat(c.String("format")); err != nil {
				return err
			}

			s, err := newSetup(c)
			if err != nil {
				return err
			}
			s.analyzer.KeepTokens = true

			entries := make([]sent.Entry, 0, c.NArg())
			for _, text := range c.Args().Slice() {
				a, err := s.analyzer.Analyze(c.Context, text)
				if err != nil {
					return err
				}
				entries = append(entries, sent.Entry{Analysis: a})
			}

			if c.String("format") == formatJSON {
				return render.NewJSONRenderer(ui.Out).Render(entries)
			}

			r := newRenderer(c, ui)
			r.Format = c.String("format")
			r.HasPrefix = c.Bool("prefix")
			for i, e := range entries {
				r.Entry(e, i+1)
			}
			return nil
		},
	}
}
