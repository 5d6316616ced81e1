package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/zenkou/repl"
)

func replCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Analyze sentences interactively",
		Action: func(c *cli.Context) error {
			s, err := newSetup(c)
			if err != nil {
				return err
			}
			s.analyzer.KeepTokens = true

			verbs := s.rules.Verbs()
			if s.index != nil {
				verbs = append(verbs, s.index.Verbs()...)
			}

			r := newRenderer(c, ui)
			r.HasPrefix = true

			h := repl.NewHandler(s.analyzer, s.index, r, verbs, ui.Out)
			return h.Run(c.Context)
		},
	}
}
