package translate

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

const LibreService = "libretranslate"

// LibreClient translates through a LibreTranslate instance.
type LibreClient struct {
	// Client defaults to a robusthttp client when nil.
	Client *http.Client
	Host   string
	APIKey string
	Source string
	Target string
}

type libreResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (lc *LibreClient) Translate(ctx context.Context, word string) (string, error) {
	form := url.Values{}
	form.Set("q", word)
	form.Set("source", lc.Source)
	form.Set("target", lc.Target)
	form.Set("format", "text")
	if lc.APIKey != "" {
		form.Set("api_key", lc.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimSuffix(lc.Host, "/")+"/translate", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")

	var out libreResponse
	if err := doJSON(clientOrDefault(lc.Client), LibreService, req, &out); err != nil {
		return "", err
	}
	if out.TranslatedText == "" {
		return "", ErrNoResult
	}
	return out.TranslatedText, nil
}
