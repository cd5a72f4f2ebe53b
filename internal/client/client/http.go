package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxBodyBytes = 1 << 20

// errServerStatus marks a 5xx response as a breaker failure while still
// handing the response back for mapping.
var errServerStatus = errors.New("server status")

type Options struct {
	BaseURL  string
	Timeout  time.Duration
	RetryMax int
	Logger   logging.Logger
	Auth     Authenticator
	// Transport replaces the pooled default transport. It is still wrapped
	// with otelhttp.
	Transport http.RoundTripper
}

type HTTPClient struct {
	baseURL  string
	retrying *retryablehttp.Client
	plain    *retryablehttp.Client
	breaker  *gobreaker.CircuitBreaker[*http.Response]
	auth     Authenticator
	log      logging.Logger
}

func NewHTTPClient(opts Options) *HTTPClient {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	base := opts.Transport
	if base == nil {
		base = cleanhttp.DefaultPooledTransport()
	}
	hc := &http.Client{
		Timeout:   opts.Timeout,
		Transport: otelhttp.NewTransport(base),
	}

	c := &HTTPClient{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		retrying: newRetryClient(hc, opts.RetryMax, log),
		plain:    newRetryClient(hc, 0, log),
		auth:     opts.Auth,
		log:      log,
	}
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        "storefront-api",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn(context.Background(), "circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
	return c
}

func newRetryClient(hc *http.Client, retryMax int, log logging.Logger) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = hc
	rc.RetryMax = retryMax
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.Logger = leveledLogger{log: log}
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return rc
}

type call struct {
	method  string
	path    string
	query   url.Values
	body    any
	out     any
	authed  bool
	timeout time.Duration
}

func (c *HTTPClient) do(ctx context.Context, cl call) error {
	var token string
	if cl.authed {
		if c.auth == nil {
			return common.ErrNotAuthenticated
		}
		t, err := c.auth.Token()
		if err != nil {
			return err
		}
		token = t
	}

	var payload []byte
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = b
	}

	reqID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, reqID)
	if cl.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cl.timeout)
		defer cancel()
	}

	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	var body any
	if payload != nil {
		body = payload
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, reqID)
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	// Only reads are safe to replay.
	rc := c.plain
	if cl.method == http.MethodGet {
		rc = c.retrying
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		resp, err := rc.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerStatus
		}
		return resp, nil
	})
	if err != nil && !errors.Is(err, errServerStatus) {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Warn(ctx, "request short-circuited", "method", cl.method, "path", cl.path)
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		c.log.Warn(ctx, "request failed", "method", cl.method, "path", cl.path, "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request completed", "method", cl.method, "path", cl.path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := mapStatus(resp.StatusCode, raw)
		if errors.Is(apiErr, ErrUnauthorized) && cl.authed {
			c.log.Warn(ctx, "token rejected by server", "path", cl.path)
			c.auth.Rejected(ctx)
		}
		return apiErr
	}

	if cl.out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, cl.out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func mapStatus(status int, raw []byte) *APIError {
	e := &APIError{Status: status, Message: extractMessage(raw)}
	switch {
	case status == http.StatusUnauthorized:
		e.Err = ErrUnauthorized
	case status == http.StatusForbidden:
		e.Err = common.ErrForbidden
	case status == http.StatusNotFound:
		e.Err = ErrNotFound
	case status >= http.StatusInternalServerError:
		e.Err = ErrServer
	default:
		e.Err = ErrBadRequest
	}
	return e
}

// extractMessage pulls "message" (or "error") out of a JSON error body, or
// returns a short plain-text body as is.
func extractMessage(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		return body.Error
	}
	if len(raw) > 200 || bytes.HasPrefix(raw, []byte("<")) {
		return ""
	}
	return string(raw)
}
