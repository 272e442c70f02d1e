package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/wordtree/wordtree/glossary"

	"github.com/urfave/cli/v2"
)

const previewLength = 100

// maxDelaySeconds bounds the interactive delay answer.
const maxDelaySeconds = 24 * 60 * 60

var cmdTranslate = &cli.Command{
	Name:      "translate",
	Usage:     "translate a text file word by word, fetching missing words online",
	ArgsUsage: "<input-file>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "file to write the translated text to",
			Value:   "Translated.txt",
		},
		&cli.BoolFlag{
			Name:  "offline",
			Usage: "only use cached translations",
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "fetch missing words without asking first",
		},
		&cli.IntFlag{
			Name:  "fetch",
			Usage: "how many missing words to request (0 for all); asked interactively when unset",
		},
		&cli.DurationFlag{
			Name:  "delay",
			Usage: "time between lookups; a too low delay can get you rate limited; asked interactively when unset",
		},
		&cli.DurationFlag{
			Name:  "progress-interval",
			Usage: "how often to log fetch progress",
			Value: 10 * time.Second,
		},
	},
	Action: runTranslate,
}

func runTranslate(cctx *cli.Context) error {
	if cctx.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one input file")
	}
	out := cctx.App.Writer
	p := newPrompter(cctx.App.Reader, out)

	source, err := os.ReadFile(cctx.Args().First())
	if err != nil {
		return fmt.Errorf("reading source text: %w", err)
	}
	text := string(source)

	g, path, err := loadGlossary(cctx)
	if err != nil {
		return err
	}

	missing := glossary.Missing(glossary.Words(text), g)
	fmt.Fprintf(out, "Dictionary now contains %d entries (%d missing to completely translate text)\n", g.Len(), len(missing))

	if !cctx.Bool("offline") && len(missing) > 0 {
		if err := fetchMissing(cctx, p, g, path, missing); err != nil {
			return err
		}
	}

	translated := glossary.Render(text, g)
	fmt.Fprintln(out, "Translated text:")
	fmt.Fprintln(out, glossary.Truncate(translated, previewLength))

	output := cctx.String("output")
	if err := os.WriteFile(output, []byte(translated), 0644); err != nil {
		return fmt.Errorf("writing translated text: %w", err)
	}
	fmt.Fprintf(out, "Dumped translated text to %s\n", output)
	return nil
}

// fetchMissing asks how much to fetch and fetches it. Input closing before
// every question is answered means nothing is fetched.
func fetchMissing(cctx *cli.Context, p *prompter, g *glossary.Glossary, path string, missing []string) error {
	err := fetchWithPrompts(cctx, p, g, path, missing)
	if errors.Is(err, errInputClosed) {
		slog.Info("input closed, not fetching")
		return nil
	}
	return err
}

func fetchWithPrompts(cctx *cli.Context, p *prompter, g *glossary.Glossary, path string, missing []string) error {
	if !cctx.Bool("yes") {
		ok, err := p.Bool("Do you want to retrieve more translations from the internet")
		if err != nil || !ok {
			return err
		}
	}

	count := cctx.Int("fetch")
	if !cctx.IsSet("fetch") {
		n, err := p.Int("How many translations do you want to request? 0 for all words or")
		if err != nil {
			return err
		}
		count = n
	}
	if count <= 0 || count > len(missing) {
		count = len(missing)
	}

	delay := cctx.Duration("delay")
	if delay < 0 {
		return fmt.Errorf("delay must not be negative: %s", delay)
	}
	if !cctx.IsSet("delay") {
		secs := maxDelaySeconds + 1
		for secs > maxDelaySeconds {
			n, err := p.Int("How many seconds do you want to wait between individual requests? Setting a too low delay can result in an IP block. 1 (recommendation) or")
			if err != nil {
				return err
			}
			secs = n
		}
		delay = time.Duration(secs) * time.Second
	}

	minutes := int(math.Ceil(float64(count) * delay.Seconds() / 60))
	fmt.Fprintf(cctx.App.Writer, "Translating/Defining over the internet - This will take around %d minute(s)\n", minutes)

	cache, err := glossary.OpenCache(path)
	if err != nil {
		return err
	}
	defer cache.Close()

	f := &fetcher{
		svc:           newService(cctx, delay),
		g:             g,
		cache:         cache,
		logger:        slog.Default(),
		progressEvery: cctx.Duration("progress-interval"),
	}

	ctx, stop := signal.NotifyContext(cctx.Context, os.Interrupt)
	defer stop()

	return withMetrics(ctx, cctx.String("metrics-listen"), func(ctx context.Context) error {
		n, err := f.fetch(ctx, missing[:count])
		switch {
		case errors.Is(err, context.Canceled):
			slog.Warn("fetch interrupted, continuing with what is cached", "fetched", n)
		case err != nil:
			// everything fetched so far is cached; render what we have
			slog.Warn("fetch failed, continuing with what is cached", "fetched", n, "err", err)
		}
		return nil
	})
}
