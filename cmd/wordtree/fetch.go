package main

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/wordtree/wordtree/glossary"
	"github.com/wordtree/wordtree/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

type lookupService interface {
	Lookup(ctx context.Context, word string) (glossary.Entry, error)
}

// fetcher fills a glossary from the network and records every result in the
// cache as soon as it arrives.
type fetcher struct {
	svc           lookupService
	g             *glossary.Glossary
	cache         *glossary.CacheWriter
	logger        *slog.Logger
	progressEvery time.Duration
}

// fetch looks up words one after another and returns how many completed,
// counting words the glossary already has. Progress is logged every
// progressEvery while it runs; zero or less disables it. Only the lookup
// goroutine touches the glossary.
func (f *fetcher) fetch(ctx context.Context, words []string) (int, error) {
	var done atomic.Int64
	finished := make(chan struct{})

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(finished)
		for _, w := range words {
			// words differing only in case share an entry
			if f.g.Has(w) {
				done.Add(1)
				continue
			}
			e, err := f.svc.Lookup(ctx, w)
			if err != nil {
				return err
			}
			f.g.Add(w, e)
			if err := f.cache.Append(w, e); err != nil {
				return err
			}
			done.Add(1)
			f.logger.Debug("fetched word", "word", w, "translation", e.Translation)
		}
		return nil
	})
	if f.progressEvery > 0 {
		eg.Go(func() error {
			ticker := time.NewTicker(f.progressEvery)
			defer ticker.Stop()
			for {
				select {
				case <-finished:
					return nil
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					f.logger.Info("fetching translations", "done", done.Load(), "total", len(words))
				}
			}
		})
	}

	err := eg.Wait()
	return int(done.Load()), err
}

// withMetrics runs action, serving prometheus metrics on addr until it
// returns. An empty addr runs action alone.
func withMetrics(ctx context.Context, addr string, action func(ctx context.Context) error) error {
	if addr == "" {
		return action(ctx)
	}

	eg, ctx := errgroup.WithContext(ctx)
	serveCtx, stopServing := context.WithCancel(ctx)
	eg.Go(func() error {
		return metrics.RunServer(serveCtx, addr)
	})
	eg.Go(func() error {
		defer stopServing()
		return action(ctx)
	})
	return eg.Wait()
}
