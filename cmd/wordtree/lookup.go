package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/wordtree/wordtree/glossary"

	"github.com/urfave/cli/v2"
)

var cmdLookup = &cli.Command{
	Name:      "lookup",
	Usage:     "look up translations and definitions of single words",
	ArgsUsage: "[word...]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "fetch words missing from the cache without asking first",
		},
		&cli.BoolFlag{
			Name:  "offline",
			Usage: "only use cached translations",
		},
	},
	Action: runLookup,
}

// lookupSession answers queries from the glossary, fetching misses when asked.
type lookupSession struct {
	out     io.Writer
	p       *prompter
	g       *glossary.Glossary
	path    string
	svc     lookupService
	yes     bool
	offline bool
}

func runLookup(cctx *cli.Context) error {
	g, path, err := loadGlossary(cctx)
	if err != nil {
		return err
	}
	ls := &lookupSession{
		out:     cctx.App.Writer,
		p:       newPrompter(cctx.App.Reader, cctx.App.Writer),
		g:       g,
		path:    path,
		svc:     newService(cctx, 0),
		yes:     cctx.Bool("yes"),
		offline: cctx.Bool("offline"),
	}

	ctx := cctx.Context
	if cctx.Args().Present() {
		for _, w := range cctx.Args().Slice() {
			if err := ls.query(ctx, w); err != nil {
				return err
			}
		}
		return nil
	}

	for {
		more, err := ls.p.Bool("Do you want to search the dictionary for an english word")
		if errors.Is(err, errInputClosed) || (err == nil && !more) {
			break
		}
		if err != nil {
			return err
		}

		word, err := ls.p.String("Enter search query")
		if err != nil {
			return err
		}
		if word == "" {
			continue
		}
		if err := ls.query(ctx, word); err != nil {
			return err
		}
	}
	fmt.Fprintln(ls.out, "Ok, goodbye!")
	return nil
}

func (ls *lookupSession) query(ctx context.Context, word string) error {
	fmt.Fprintf(ls.out, "Query: %q\n", word)

	e, ok := ls.g.Lookup(word)
	if !ok || !e.HasTranslation(word) {
		fetched, err := ls.fetch(ctx, word)
		if err != nil {
			return err
		}
		if fetched != nil {
			e, ok = *fetched, true
		}
	}

	if ok && e.HasTranslation(word) {
		fmt.Fprintf(ls.out, "Found translation: %q!\n", e.Translation)
	} else {
		fmt.Fprintln(ls.out, "No translation found")
	}
	if ok && e.HasDefinition(word) {
		fmt.Fprintf(ls.out, "Found definition: %q\n", e.Definition)
	} else {
		fmt.Fprintln(ls.out, "No definition found")
	}
	return nil
}

// fetch requests word online and records it. A nil entry means nothing was
// requested.
func (ls *lookupSession) fetch(ctx context.Context, word string) (*glossary.Entry, error) {
	if ls.offline {
		return nil, nil
	}
	if !ls.yes {
		ok, err := ls.p.Bool("Do you want to retrieve the data from the internet")
		if err != nil || !ok {
			return nil, err
		}
	}

	e, err := ls.svc.Lookup(ctx, word)
	if err != nil {
		return nil, err
	}

	// a word already in the glossary keeps its first entry, so only new words
	// are worth caching
	if !ls.g.Has(word) {
		ls.g.Add(word, e)
		cache, err := glossary.OpenCache(ls.path)
		if err != nil {
			return nil, err
		}
		defer cache.Close()
		if err := cache.Append(word, e); err != nil {
			return nil, err
		}
	}
	return &e, nil
}
