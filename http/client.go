package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// DefaultMaxRetries is the default number of attempts per request.
const DefaultMaxRetries = 3

// DefaultRetryWait is the default initial wait between retries.
const DefaultRetryWait = 200 * time.Millisecond

// maxErrorBody caps how much of an error response is kept in APIError.
const maxErrorBody = 4096

// Client is a read-only HTTP client for remote configuration stores.
// Transient failures (network errors, 429 and 5xx) are retried with
// exponential backoff until the attempt budget or the context runs out.
type Client struct {
	client      *http.Client
	baseURL     string
	serviceName string
	maxRetries  int
	retryWait   time.Duration
	logger      *slog.Logger
	limiter     *rate.Limiter

	// beforeRequest is called before each request (auth headers, etc.)
	beforeRequest func(req *http.Request)
}

// ClientConfig holds configuration for Client.
type ClientConfig struct {
	Client        *http.Client
	BaseURL       string
	ServiceName   string
	MaxRetries    int
	RetryWait     time.Duration
	BeforeRequest func(req *http.Request)

	// Logger receives retry diagnostics. Nil uses slog.Default().
	Logger *slog.Logger

	// RateLimit caps outgoing requests per second, retries included.
	// Zero means unlimited.
	RateLimit float64

	// Burst is the number of requests allowed at once under RateLimit.
	// Defaults to 1.
	Burst int
}

// NewClient creates a new Client with the given configuration.
func NewClient(cfg ClientConfig) *Client {
	c := &Client{
		client:        cfg.Client,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		serviceName:   cfg.ServiceName,
		maxRetries:    cfg.MaxRetries,
		retryWait:     cfg.RetryWait,
		beforeRequest: cfg.BeforeRequest,
		logger:        cfg.Logger,
	}

	if c.client == nil {
		c.client = &http.Client{Timeout: DefaultTimeout}
	}
	if c.maxRetries <= 0 {
		c.maxRetries = DefaultMaxRetries
	}
	if c.retryWait <= 0 {
		c.retryWait = DefaultRetryWait
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.Burst, 1))
	}

	return c
}

// Do executes a GET for path (which may carry a query string) and returns
// the response after retries. The caller closes the body.
func (c *Client) Do(ctx context.Context, path string) (*http.Response, error) {
	url := c.baseURL + path

	var lastErr error
	for attempt := range c.maxRetries {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%s rate limit: %w", c.serviceName, err)
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.beforeRequest != nil {
			c.beforeRequest(req)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%s request failed: %w", c.serviceName, err)
			if ctx.Err() != nil || attempt == c.maxRetries-1 {
				return nil, lastErr
			}
			if werr := c.wait(ctx, path, attempt, c.backoff(attempt), err.Error()); werr != nil {
				return nil, werr
			}
			continue
		}

		if retryable(resp.StatusCode) && attempt < c.maxRetries-1 {
			wait := c.retryAfter(resp, attempt)
			resp.Body.Close()
			if err := c.wait(ctx, path, attempt, wait, resp.Status); err != nil {
				return nil, err
			}
			continue
		}

		return resp, nil
	}

	return nil, lastErr
}

func (c *Client) wait(ctx context.Context, path string, attempt int, d time.Duration, reason string) error {
	c.logger.Debug("retrying request",
		"service", c.serviceName,
		"path", path,
		"attempt", attempt+1,
		"wait", d,
		"reason", reason,
	)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Get performs a GET request and decodes the JSON response into result.
// A nil result discards the body.
func (c *Client) Get(ctx context.Context, path string, result any) error {
	resp, err := c.Do(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.parseError(resp, path)
	}
	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode %s response: %w", c.serviceName, err)
	}
	return nil
}

// GetRaw performs a GET request and returns the raw response body.
func (c *Client) GetRaw(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.Do(ctx, path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, c.parseError(resp, path)
	}
	return io.ReadAll(resp.Body)
}

// parseError turns an error response into an APIError. JSON bodies with a
// "message" or "error" field use that field; anything else uses the body text.
func (c *Client) parseError(resp *http.Response, path string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	apiErr := &APIError{
		Service:    c.serviceName,
		StatusCode: resp.StatusCode,
		Endpoint:   path,
	}

	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		if errResp.Message != "" {
			apiErr.Message = errResp.Message
		} else if errResp.Error != "" {
			apiErr.Message = errResp.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

func (c *Client) backoff(attempt int) time.Duration {
	return c.retryWait * time.Duration(1<<attempt)
}

// retryAfter honors a Retry-After header in seconds, else backs off.
func (c *Client) retryAfter(resp *http.Response, attempt int) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return c.backoff(attempt)
}

func retryable(status int) bool {
	return IsTransient(statusError(status))
}
