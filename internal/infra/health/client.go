package health

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/stratmaster/desktopd/internal/domain"
)

const (
	healthzPath     = "/healthz"
	applicationJSON = "application/json"

	// DefaultTimeout bounds a single probe or primary health request.
	DefaultTimeout = 5 * time.Second
)

// Client implements impls.HealthClient. Every call is a single attempt;
// retry policy belongs to the caller.
type Client struct {
	http *retryablehttp.Client
}

func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := retryablehttp.NewClient()
	c.RetryMax = 0
	c.CheckRetry = noRetry
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	c.HTTPClient.Timeout = timeout
	c.Logger = nil
	if logger != nil {
		c.Logger = logger
	}

	return &Client{http: c}
}

// HealthzURL returns the primary health URL for a base URL.
func HealthzURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + healthzPath
}

// Probe reports whether url answered with a 2xx status. Transport errors,
// timeouts and any other status all collapse to false.
func (c *Client) Probe(ctx context.Context, url string) bool {
	resp, err := c.get(ctx, url)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return isSuccess(resp.StatusCode)
}

// Primary fetches and decodes {baseURL}/healthz.
func (c *Client) Primary(ctx context.Context, baseURL string) (domain.PrimaryHealthReport, error) {
	url := HealthzURL(baseURL)

	resp, err := c.get(ctx, url)
	if err != nil {
		return domain.PrimaryHealthReport{}, domain.ErrConnection{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.PrimaryHealthReport{}, domain.ErrConnection{URL: url, Status: resp.StatusCode}
	}

	body, err := decodeJSON[healthBody](resp.Body)
	if err != nil {
		return domain.PrimaryHealthReport{}, domain.ErrParse{URL: url, Err: err}
	}
	if body.Status == nil {
		return domain.PrimaryHealthReport{}, domain.ErrParse{URL: url, Err: errors.New("missing field `status`")}
	}

	return domain.PrimaryHealthReport{Status: *body.Status, Services: body.Services}, nil
}

type healthBody struct {
	Status   *string           `json:"status"`
	Services map[string]string `json:"services"`
}

func decodeJSON[T any](body io.Reader) (T, error) {
	var v T
	data, err := io.ReadAll(body)
	if err != nil {
		return v, err
	}
	err = json.Unmarshal(data, &v)
	return v, err
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", applicationJSON)

	resp, err := c.http.Do(req)
	if err != nil && resp != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, err
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func noRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	return false, ctx.Err()
}
