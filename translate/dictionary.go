package translate

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

const DictionaryService = "dictionaryapi"

// DictionaryClient defines words through the Free Dictionary API
// (dictionaryapi.dev).
type DictionaryClient struct {
	Client *http.Client
	Host   string
	// Lang is the entries path segment, eg "en_US".
	Lang string
}

type dictionaryEntry struct {
	Word     string `json:"word"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// Define returns the first definition listed for word.
func (dc *DictionaryClient) Define(ctx context.Context, word string) (string, error) {
	u := strings.TrimSuffix(dc.Host, "/") + "/api/v2/entries/" + url.PathEscape(dc.Lang) + "/" + url.PathEscape(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}

	var entries []dictionaryEntry
	err = doJSON(clientOrDefault(dc.Client), DictionaryService, req, &entries)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return "", ErrNoResult
	}
	if err != nil {
		return "", err
	}

	for _, e := range entries {
		for _, m := range e.Meanings {
			for _, d := range m.Definitions {
				if d.Definition != "" {
					return d.Definition, nil
				}
			}
		}
	}
	return "", ErrNoResult
}
