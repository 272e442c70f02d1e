package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/wordtree/wordtree/glossary"
	"github.com/wordtree/wordtree/pkg/robusthttp"
	"github.com/wordtree/wordtree/translate"

	"github.com/adrg/xdg"
	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "wordtree",
		Usage:   "word-by-word English text translator with a cached tree dictionary",
		Version: versioninfo.Short(),
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			Value:   "warn",
			EnvVars: []string{"WORDTREE_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "cache-file",
			Usage:   "path of the translation cache (default: $XDG_CACHE_HOME/wordtree/cache.txt)",
			EnvVars: []string{"WORDTREE_CACHE_FILE"},
		},
		&cli.StringFlag{
			Name:    "translate-host",
			Usage:   "method, hostname, and port of LibreTranslate instance",
			Value:   "https://libretranslate.com",
			EnvVars: []string{"WORDTREE_TRANSLATE_HOST"},
		},
		&cli.StringFlag{
			Name:    "translate-api-key",
			Usage:   "API key for the LibreTranslate instance, if it requires one",
			EnvVars: []string{"WORDTREE_TRANSLATE_API_KEY", "LIBRETRANSLATE_API_KEY"},
		},
		&cli.StringFlag{
			Name:    "dictionary-host",
			Usage:   "method, hostname, and port of Free Dictionary API",
			Value:   "https://api.dictionaryapi.dev",
			EnvVars: []string{"WORDTREE_DICTIONARY_HOST"},
		},
		&cli.StringFlag{
			Name:    "source-lang",
			Usage:   "language code of the source text",
			Value:   "en",
			EnvVars: []string{"WORDTREE_SOURCE_LANG"},
		},
		&cli.StringFlag{
			Name:    "target-lang",
			Usage:   "language code to translate into",
			Value:   "de",
			EnvVars: []string{"WORDTREE_TARGET_LANG"},
		},
		&cli.StringFlag{
			Name:    "dictionary-lang",
			Usage:   "Free Dictionary API language for definitions",
			Value:   "en_US",
			EnvVars: []string{"WORDTREE_DICTIONARY_LANG"},
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "IP or address, and port, to serve prometheus metrics on while running (off when empty)",
			EnvVars: []string{"WORDTREE_METRICS_LISTEN"},
		},
	}

	app.Before = func(cctx *cli.Context) error {
		configLogger(cctx, cctx.App.ErrWriter)
		return nil
	}

	app.Commands = []*cli.Command{
		cmdDemo,
		cmdTranslate,
		cmdLookup,
		cmdDump,
	}
	return app
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

func cachePath(cctx *cli.Context) (string, error) {
	if p := cctx.String("cache-file"); p != "" {
		return p, nil
	}
	return xdg.CacheFile("wordtree/cache.txt")
}

// loadGlossary reads the cache file into a fresh glossary.
func loadGlossary(cctx *cli.Context) (*glossary.Glossary, string, error) {
	path, err := cachePath(cctx)
	if err != nil {
		return nil, "", fmt.Errorf("locating cache file: %w", err)
	}

	g := glossary.New()
	n, err := glossary.LoadFile(path, g)
	if err != nil {
		return nil, "", err
	}
	slog.Info("loaded cache", "path", path, "records", n, "entries", g.Len())
	return g, path, nil
}

// newService wires the lookup clients from the global flags. Consecutive
// lookups are spaced at least delay apart.
func newService(cctx *cli.Context, delay time.Duration) *translate.Service {
	client := robusthttp.NewClient(
		robusthttp.WithUserAgent(translate.UserAgent()),
		robusthttp.WithLogger(slog.Default().With("subsystem", "http")),
	)

	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}

	return translate.NewService(translate.Config{
		Translator: &translate.LibreClient{
			Client: client,
			Host:   cctx.String("translate-host"),
			APIKey: cctx.String("translate-api-key"),
			Source: cctx.String("source-lang"),
			Target: cctx.String("target-lang"),
		},
		Definer: &translate.DictionaryClient{
			Client: client,
			Host:   cctx.String("dictionary-host"),
			Lang:   cctx.String("dictionary-lang"),
		},
		Limiter: rate.NewLimiter(limit, 1),
		Logger:  slog.Default(),
	})
}
