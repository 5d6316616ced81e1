package main

import (
	"github.com/urfave/cli/v2"
)

func glossCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "gloss",
		Usage:     "Show the classes and term of classification codes, all codes if none given",
		ArgsUsage: "[code] ...",
		Action: func(c *cli.Context) error {
			ix, err := requireIndex(c)
			if err != nil {
				return err
			}

			codes := c.Args().Slice()
			if len(codes) == 0 {
				codes = ix.Codes()
			}

			r := newRenderer(c, ui)
			for _, code := range codes {
				g, _ := ix.Gloss(code)
				r.Code(code, g)
			}

			return nil
		},
	}
}
