package robusthttp

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type LeveledSlog struct {
	inner *slog.Logger
}

// re-writes HTTP client ERROR to WARN level (because of retries)
func (l LeveledSlog) Error(msg string, keysAndValues ...any) {
	l.inner.Warn(msg, keysAndValues...)
}

func (l LeveledSlog) Warn(msg string, keysAndValues ...any) {
	l.inner.Warn(msg, keysAndValues...)
}

func (l LeveledSlog) Info(msg string, keysAndValues ...any) {
	l.inner.Info(msg, keysAndValues...)
}

func (l LeveledSlog) Debug(msg string, keysAndValues ...any) {
	l.inner.Debug(msg, keysAndValues...)
}

type settings struct {
	retry     *retryablehttp.Client
	transport http.RoundTripper
	timeout   time.Duration
	userAgent string
}

type Option func(*settings)

// WithMaxRetries sets the maximum number of retries. Zero disables retrying.
func WithMaxRetries(maxRetries int) Option {
	return func(s *settings) {
		s.retry.RetryMax = maxRetries
	}
}

// WithRetryWaitMin sets the minimum wait time between retries.
func WithRetryWaitMin(waitMin time.Duration) Option {
	return func(s *settings) {
		s.retry.RetryWaitMin = waitMin
	}
}

// WithRetryWaitMax sets the maximum wait time between retries.
func WithRetryWaitMax(waitMax time.Duration) Option {
	return func(s *settings) {
		s.retry.RetryWaitMax = waitMax
	}
}

// WithTimeout bounds each request, including all of its retries.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.retry.Logger = retryablehttp.LeveledLogger(LeveledSlog{inner: logger})
	}
}

// WithTransport replaces the pooled, instrumented default transport.
func WithTransport(transport http.RoundTripper) Option {
	return func(s *settings) {
		s.transport = transport
	}
}

// WithUserAgent sets the User-Agent header on requests that don't carry one.
func WithUserAgent(ua string) Option {
	return func(s *settings) {
		s.userAgent = ua
	}
}

func WithRetryPolicy(policy retryablehttp.CheckRetry) Option {
	return func(s *settings) {
		s.retry.CheckRetry = policy
	}
}

// NewClient builds an HTTP client for talking to free public web APIs from a
// command line tool. The returned client has the stdlib http.Client interface,
// with Hashicorp retryablehttp logic internally.
//
// It retries connection errors, 5xx responses (except 501) and 429
// responses, honoring Retry-After. Intermediate failures are logged at WARN.
// Once retries run out the last response is returned as-is, so callers see
// the final status and body instead of a generic "giving up" error.
func NewClient(options ...Option) *http.Client {
	logger := LeveledSlog{inner: slog.Default().With("subsystem", "RobustHTTPClient")}
	s := settings{
		retry:     retryablehttp.NewClient(),
		transport: otelhttp.NewTransport(cleanhttp.DefaultPooledTransport()),
		timeout:   30 * time.Second,
	}
	s.retry.RetryMax = 3
	s.retry.RetryWaitMin = 1 * time.Second
	s.retry.RetryWaitMax = 10 * time.Second
	s.retry.Logger = retryablehttp.LeveledLogger(logger)
	s.retry.CheckRetry = retryablehttp.DefaultRetryPolicy
	s.retry.ErrorHandler = retryablehttp.PassthroughErrorHandler

	for _, option := range options {
		option(&s)
	}

	s.retry.HTTPClient.Transport = s.transport
	if s.userAgent != "" {
		s.retry.HTTPClient.Transport = &userAgentTransport{base: s.transport, ua: s.userAgent}
	}

	client := s.retry.StandardClient()
	client.Timeout = s.timeout
	return client
}

type userAgentTransport struct {
	base http.RoundTripper
	ua   string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.ua)
	}
	return t.base.RoundTrip(req)
}
