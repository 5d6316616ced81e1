package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

func tokensCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Show the tokens of a sentence as the analyzer sees them",
		ArgsUsage: "<sentence>",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("tokens needs a sentence")
			}

			t, err := newTagger(c)
			if err != nil {
				return err
			}

			text := strings.Join(c.Args().Slice(), " ")
			tokens, err := t.Tag(c.Context, text)
			if err != nil {
				return err
			}

			fmt.Fprintf(ui.Out, "✍  %s\n", text)
			newRenderer(c, ui).Tokens(tokens)
			return nil
		},
	}
}
