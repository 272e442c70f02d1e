package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wordtree/wordtree/glossary"

	"golang.org/x/time/rate"
)

type Translator interface {
	Translate(ctx context.Context, word string) (string, error)
}

type Definer interface {
	Define(ctx context.Context, word string) (string, error)
}

type Config struct {
	Translator Translator
	// Definer is optional; without one every definition falls back to the word.
	Definer Definer
	// Limiter paces lookups when set. Each Lookup takes one token before its
	// translation request; the definition request follows without waiting.
	Limiter *rate.Limiter
	Logger  *slog.Logger
}

// Service builds glossary entries for words the glossary is missing.
type Service struct {
	translator Translator
	definer    Definer
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func NewService(cfg Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		translator: cfg.Translator,
		definer:    cfg.Definer,
		limiter:    cfg.Limiter,
		logger:     logger.With("subsystem", "translate"),
	}
}

func (s *Service) wait(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}
	return s.limiter.Wait(ctx)
}

// Lookup translates and defines word. When a service has nothing for the
// word, that half of the entry is the word itself, so a cached miss is not
// requested again. Transport and API failures are returned as errors.
func (s *Service) Lookup(ctx context.Context, word string) (glossary.Entry, error) {
	e := glossary.Entry{Translation: word, Definition: word}

	if err := s.wait(ctx); err != nil {
		return glossary.Entry{}, err
	}
	tr, err := s.translator.Translate(ctx, word)
	switch {
	case errors.Is(err, ErrNoResult):
		s.logger.Debug("no translation found", "word", word)
	case err != nil:
		return glossary.Entry{}, fmt.Errorf("translating %q: %w", word, err)
	default:
		e.Translation = tr
	}

	if s.definer == nil {
		return e, nil
	}
	def, err := s.definer.Define(ctx, word)
	switch {
	case errors.Is(err, ErrNoResult):
		s.logger.Debug("no definition found", "word", word)
	case err != nil:
		return glossary.Entry{}, fmt.Errorf("defining %q: %w", word, err)
	default:
		e.Definition = def
	}

	return e, nil
}
