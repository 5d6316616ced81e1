package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	sent "github.com/revelaction/zenkou/sentence"
	"github.com/revelaction/zenkou/storage/filesystem"
)

func classifyCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Usage:     "Look up the classification code of verbs",
		ArgsUsage: "[verb] ...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "file with one verb per line, or a CSV/TSV file with a header",
			},
			&cli.StringFlag{
				Name:    "column",
				Aliases: []string{"c"},
				Usage:   "header of the verb column of a CSV/TSV input, the first column if empty",
			},
		},
		Action: func(c *cli.Context) error {
			verbs := c.Args().Slice()

			if path := c.String("input"); path != "" {
				in := filesystem.NewSentenceFile(path, c.String("encoding"))
				in.Column = c.String("column")

				items, err := in.Read()
				if err != nil {
					return err
				}
				for _, it := range items {
					verbs = append(verbs, it.Text)
				}
			}

			if len(verbs) == 0 {
				return fmt.Errorf("classify needs verbs or --input")
			}

			ix, err := requireIndex(c)
			if err != nil {
				return err
			}

			r := newRenderer(c, ui)
			misses := 0
			for _, verb := range verbs {
				code, gloss, ok := ix.Lookup(verb)
				if !ok {
					misses++
				}
				r.Gloss(verb, code, gloss)
			}

			fmt.Fprintf(ui.Out, "✍  %d verbs, %d %s\n", len(verbs), misses, sent.ClassNotFound)
			return nil
		},
	}
}
