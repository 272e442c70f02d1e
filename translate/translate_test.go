package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wordtree/wordtree/glossary"
	"github.com/wordtree/wordtree/pkg/metrics"
	"github.com/wordtree/wordtree/pkg/robusthttp"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func testClient() *http.Client {
	return robusthttp.NewClient(
		robusthttp.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		robusthttp.WithTransport(http.DefaultTransport),
		robusthttp.WithMaxRetries(0),
	)
}

var translations = map[string]string{
	"house": "Haus",
	"tree":  "Baum",
}

func libreHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/translate", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "en", r.PostForm.Get("source"))
		assert.Equal(t, "de", r.PostForm.Get("target"))
		w.Header().Set("Content-Type", "application/json")

		if r.PostForm.Get("api_key") == "bad" {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprintln(w, `{"error":"Invalid API key"}`)
			return
		}
		q := r.PostForm.Get("q")
		json.NewEncoder(w).Encode(map[string]string{"translatedText": translations[q]})
	}
}

func dictionaryHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/api/v2/entries/en_US/house":
		fmt.Fprintln(w, `[{"word":"house","meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"A structure serving as an abode."},{"definition":"second"}]}]}]`)
	case "/api/v2/entries/en_US/tree":
		fmt.Fprintln(w, `[{"word":"tree","meanings":[{"partOfSpeech":"noun","definitions":[]},{"partOfSpeech":"verb","definitions":[{"definition":"To chase up a tree."}]}]}]`)
	case "/api/v2/entries/en_US/broken":
		w.WriteHeader(http.StatusInternalServerError)
	case "/api/v2/entries/en_US/garbled":
		fmt.Fprintln(w, `{not json`)
	default:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintln(w, `{"title":"No Definitions Found","message":"Sorry pal"}`)
	}
}

func TestLibreTranslate(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	srv := httptest.NewServer(libreHandler(t))
	defer srv.Close()

	lc := &LibreClient{Client: testClient(), Host: srv.URL + "/", Source: "en", Target: "de"}

	tr, err := lc.Translate(ctx, "house")
	assert.NoError(err)
	assert.Equal("Haus", tr)

	_, err = lc.Translate(ctx, "xyzzy")
	assert.ErrorIs(err, ErrNoResult)

	lc.APIKey = "bad"
	_, err = lc.Translate(ctx, "house")
	var apiErr *APIError
	if assert.ErrorAs(err, &apiErr) {
		assert.Equal(http.StatusForbidden, apiErr.StatusCode)
		assert.Equal("Invalid API key", apiErr.Message)
		assert.Equal(LibreService, apiErr.Service)
	}
}

func TestDictionaryDefine(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(dictionaryHandler))
	defer srv.Close()

	dc := &DictionaryClient{Client: testClient(), Host: srv.URL, Lang: "en_US"}

	def, err := dc.Define(ctx, "house")
	assert.NoError(err)
	assert.Equal("A structure serving as an abode.", def)

	def, err = dc.Define(ctx, "tree")
	assert.NoError(err)
	assert.Equal("To chase up a tree.", def)

	_, err = dc.Define(ctx, "xyzzy")
	assert.ErrorIs(err, ErrNoResult)

	_, err = dc.Define(ctx, "broken")
	var apiErr *APIError
	assert.ErrorAs(err, &apiErr)
	assert.NotErrorIs(err, ErrNoResult)

	_, err = dc.Define(ctx, "garbled")
	assert.ErrorContains(err, "parse")
}

func TestRequestMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(dictionaryHandler))
	defer srv.Close()
	dc := &DictionaryClient{Client: testClient(), Host: srv.URL, Lang: "en_US"}

	ok := requestsTotal.WithLabelValues(DictionaryService, metrics.StatusOK)
	notFound := requestsTotal.WithLabelValues(DictionaryService, metrics.StatusNotFound)
	okBefore, nfBefore := testutil.ToFloat64(ok), testutil.ToFloat64(notFound)

	dc.Define(context.Background(), "house")
	dc.Define(context.Background(), "xyzzy")

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, nfBefore+1, testutil.ToFloat64(notFound))
}

func TestServiceLookup(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	libre := httptest.NewServer(libreHandler(t))
	defer libre.Close()
	dict := httptest.NewServer(http.HandlerFunc(dictionaryHandler))
	defer dict.Close()

	svc := NewService(Config{
		Translator: &LibreClient{Client: testClient(), Host: libre.URL, Source: "en", Target: "de"},
		Definer:    &DictionaryClient{Client: testClient(), Host: dict.URL, Lang: "en_US"},
	})

	e, err := svc.Lookup(ctx, "house")
	assert.NoError(err)
	assert.Equal(glossary.Entry{Translation: "Haus", Definition: "A structure serving as an abode."}, e)

	// misses fall back to the word itself
	e, err = svc.Lookup(ctx, "xyzzy")
	assert.NoError(err)
	assert.Equal(glossary.Entry{Translation: "xyzzy", Definition: "xyzzy"}, e)

	_, err = svc.Lookup(ctx, "broken")
	assert.ErrorContains(err, `defining "broken"`)
}

type fakeTranslator struct {
	calls int
	err   error
}

func (f *fakeTranslator) Translate(ctx context.Context, word string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return strings.ToUpper(word), nil
}

func TestServiceWithoutDefiner(t *testing.T) {
	svc := NewService(Config{Translator: &fakeTranslator{}})

	e, err := svc.Lookup(context.Background(), "tree")
	assert.NoError(t, err)
	assert.Equal(t, glossary.Entry{Translation: "TREE", Definition: "tree"}, e)
}

func TestServiceTranslatorError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(Config{Translator: &fakeTranslator{err: boom}})

	_, err := svc.Lookup(context.Background(), "tree")
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, `translating "tree"`)
}

func TestServiceLimiterHonorsContext(t *testing.T) {
	ft := &fakeTranslator{}
	svc := NewService(Config{
		Translator: ft,
		Limiter:    rate.NewLimiter(rate.Every(time.Hour), 1),
	})
	ctx := context.Background()

	_, err := svc.Lookup(ctx, "first")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = svc.Lookup(ctx, "second")
	assert.Error(t, err)
	assert.Equal(t, 1, ft.calls)
}

type fakeDefiner struct {
	calls int
}

func (f *fakeDefiner) Define(ctx context.Context, word string) (string, error) {
	f.calls++
	return "a " + word, nil
}

func TestServiceTakesOneTokenPerWord(t *testing.T) {
	assert := assert.New(t)
	ft, fd := &fakeTranslator{}, &fakeDefiner{}
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	svc := NewService(Config{Translator: ft, Definer: fd, Limiter: limiter})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	e, err := svc.Lookup(ctx, "tree")
	require.NoError(t, err)
	assert.Equal(glossary.Entry{Translation: "TREE", Definition: "a tree"}, e)
	assert.Equal(1, ft.calls)
	assert.Equal(1, fd.calls)

	// the single token is spent, so the next word has to wait
	_, err = svc.Lookup(ctx, "house")
	assert.Error(err)
	assert.Equal(1, ft.calls)
}
