// Package translate looks up translations and definitions of single words
// from public web services, for words the local glossary doesn't know yet.
package translate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wordtree/wordtree/pkg/metrics"
	"github.com/wordtree/wordtree/pkg/robusthttp"

	"github.com/carlmjohnson/versioninfo"
)

// ErrNoResult means the service answered, but knows nothing about the word.
var ErrNoResult = errors.New("no result")

// APIError is a non-success HTTP response from a lookup service.
type APIError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s request failed (HTTP %d): %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s request failed (HTTP %d)", e.Service, e.StatusCode)
}

func UserAgent() string {
	return "wordtree/" + versioninfo.Short()
}

var defaultClient = robusthttp.NewClient(robusthttp.WithUserAgent(UserAgent()))

func clientOrDefault(c *http.Client) *http.Client {
	if c != nil {
		return c
	}
	return defaultClient
}

// maxBody caps how much of a response is read.
const maxBody = 1 << 20

// errorBody covers the error shapes of the services used here.
type errorBody struct {
	Error   string `json:"error"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (eb errorBody) text() string {
	switch {
	case eb.Error != "":
		return eb.Error
	case eb.Message != "":
		return eb.Message
	}
	return eb.Title
}

// doJSON sends req and decodes a 2xx JSON body into out. Other statuses come
// back as *APIError, with any error message the service provided.
func doJSON(c *http.Client, service string, req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(service).Observe(time.Since(start).Seconds())
	}()

	resp, err := c.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(service, metrics.StatusError).Inc()
		return fmt.Errorf("%s request failed: %w", service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		requestsTotal.WithLabelValues(service, metrics.StatusError).Inc()
		return fmt.Errorf("failed to read %s response body: %w", service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		if resp.StatusCode == http.StatusNotFound {
			requestsTotal.WithLabelValues(service, metrics.StatusNotFound).Inc()
		} else {
			requestsTotal.WithLabelValues(service, metrics.StatusError).Inc()
		}
		return &APIError{Service: service, StatusCode: resp.StatusCode, Message: eb.text()}
	}

	if err := json.Unmarshal(body, out); err != nil {
		requestsTotal.WithLabelValues(service, metrics.StatusError).Inc()
		return fmt.Errorf("failed to parse %s response JSON: %w", service, err)
	}
	requestsTotal.WithLabelValues(service, metrics.StatusOK).Inc()
	return nil
}
