package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/zenkou/tagger"
)

// set at build time with -ldflags
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, os.Args, ui)
	stop()

	if err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "zenkou: %v\n", err)
}

func run(ctx context.Context, args []string, ui UI) error {
	return newApp(ui).RunContext(ctx, args)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "zenkou",
		Usage:     "find the pre-verb of Japanese sentences and the function of their case particles",
		Version:   BuildTag,
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Flags:     globalFlags(),
		Commands: []*cli.Command{
			analyzeCommand(ui),
			tokensCommand(ui),
			batchCommand(ui),
			classifyCommand(ui),
			glossCommand(ui),
			statCommand(ui),
			replCommand(ui),
			versionCommand(ui),
		},
		// errors are printed once by main
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "tagger",
			Aliases: []string{"t"},
			Value:   "kagome",
			Usage:   "morphological tagger: kagome or mecab",
			EnvVars: []string{"ZENKOU_TAGGER"},
			Action: func(c *cli.Context, v string) error {
				for _, name := range tagger.Names() {
					if name == v {
						return nil
					}
				}
				return fmt.Errorf("unknown tagger %q", v)
			},
		},
		&cli.StringFlag{
			Name:    "mecab-path",
			Value:   "mecab",
			Usage:   "mecab executable",
			EnvVars: []string{"ZENKOU_MECAB_PATH"},
		},
		&cli.StringFlag{
			Name:    "rules",
			Aliases: []string{"r"},
			Usage:   "JSON file replacing the built-in transitivity and particle rules",
			EnvVars: []string{"ZENKOU_RULES"},
		},
		&cli.StringFlag{
			Name:    "verbs",
			Usage:   "verb to classification code table (SAKUIN)",
			EnvVars: []string{"ZENKOU_VERBS"},
		},
		&cli.StringFlag{
			Name:    "hierarchy",
			Usage:   "indented classification code hierarchy",
			EnvVars: []string{"ZENKOU_HIERARCHY"},
		},
		&cli.StringFlag{
			Name:    "encoding",
			Usage:   "encoding of the input files, detected if empty",
			EnvVars: []string{"ZENKOU_ENCODING"},
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "print without colors",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log debug messages",
		},
	}
}

func newLogger(c *cli.Context, ui UI) *slog.Logger {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(ui.Err, &slog.HandlerOptions{Level: level}))
}
