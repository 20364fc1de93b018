package apifootball

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-data/internal/platform/logging"
	"github.com/riskibarqy/football-data/internal/platform/resilience"
	"github.com/riskibarqy/football-data/internal/usecase"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL         = "https://v3.football.api-sports.io"
	defaultTimeout         = 20 * time.Second
	defaultMaxResponseSize = 8 << 20
	apiKeyHeader           = "x-apisports-key"
)

var errTransient = crerr.New("api-football transient failure")

type ClientConfig struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to an API-Football v3 compatible endpoint. Identical
// in-flight requests are collapsed, distinct ones run one at a time and a
// circuit breaker guards the provider quota.
type Client struct {
	http    *fasthttp.Client
	baseURL string
	apiKey  string
	timeout time.Duration
	logger  *logging.Logger
	breaker *resilience.CircuitBreaker
	flight  singleflight.Group
	gate    *semaphore.Weighted
	now     func() time.Time
}

var _ usecase.FootballDataProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	c := &Client{
		http: &fasthttp.Client{
			Name:                     "football-data",
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			MaxResponseBodySize:      defaultMaxResponseSize,
			NoDefaultUserAgentHeader: true,
		},
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(cfg.APIKey),
		timeout: timeout,
		logger:  logger.Named("apifootball"),
		breaker: resilience.NewCircuitBreaker(resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)),
		gate:    semaphore.NewWeighted(1),
		now:     time.Now,
	}
	c.breaker.OnStateChange(func(from, to resilience.CircuitState) {
		c.logger.Warn("api-football circuit breaker transition", "from", from, "to", to)
	})
	return c
}

// get performs a GET and decodes the response list of the standard
// API-Football envelope into T.
func get[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	encoded := query.Encode()
	fullURL := c.baseURL + path
	if encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(path+"?"+encoded, func() (any, error) {
		if err := c.gate.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer c.gate.Release(1)

		var raw []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			raw, reqErr = c.execute(ctx, fullURL)
			return reqErr
		}, isTransient)
		return raw, execErr
	})
	if err != nil {
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: football data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected response payload type %T", usecase.ErrUpstream, out)
	}

	var payload envelope[T]
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode provider payload for %s: %v", usecase.ErrUpstream, path, err)
	}
	if msg := payload.errorMessage(); msg != "" {
		err := fmt.Errorf("%w: provider rejected %s: %s", usecase.ErrUpstream, path, msg)
		if payload.isQuotaError() {
			err = crerr.Mark(err, errTransient)
		}
		c.logger.WarnContext(ctx, "api-football returned errors", "path", path, "error", msg)
		return nil, err
	}

	return payload.Response, nil
}

func (c *Client) execute(ctx context.Context, fullURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	// Deadlines use the wall clock; c.now only picks the current round.
	started := time.Now()
	deadline := started.Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		c.logger.WarnContext(ctx, "api-football request failed", "url", redactURL(fullURL), "error", err)
		return nil, crerr.Mark(
			fmt.Errorf("%w: send request: %s", usecase.ErrUpstream, c.sanitize(err.Error())),
			errTransient,
		)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	c.logger.DebugContext(ctx, "api-football request",
		"url", redactURL(fullURL),
		"status", status,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	if status >= 200 && status < 300 {
		return body, nil
	}

	err := fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrUpstream, status, abbreviateBody(body))
	if isRetryableStatus(status) {
		err = crerr.Mark(err, errTransient)
	}
	c.logger.WarnContext(ctx, "api-football request rejected", "url", redactURL(fullURL), "status", status)
	return nil, err
}

func (c *Client) sanitize(value string) string {
	if c.apiKey == "" {
		return value
	}
	return strings.ReplaceAll(value, c.apiKey, "REDACTED")
}

func isTransient(err error) bool {
	return err != nil && crerr.Is(err, errTransient)
}

func isRetryableStatus(code int) bool {
	return code == fasthttp.StatusTooManyRequests || code >= fasthttp.StatusInternalServerError
}

// redactURL strips query values that could carry credentials.
func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	for _, key := range []string{"key", "api_key", "apikey", "token"} {
		if query.Has(key) {
			query.Set(key, "REDACTED")
		}
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
