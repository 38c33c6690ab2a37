// Package http provides the default castore.Transport, a single-attempt HTTP
// client built on go-retryablehttp.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/castore/internal/auth"
	"github.com/fivetwenty-io/castore/internal/constants"
	"github.com/fivetwenty-io/castore/pkg/castore"
)

// Logger interface for transport logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client implements castore.Transport over HTTP.
type Client struct {
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	origin       *url.URL
	userAgent    string
	logger       Logger
	debug        bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug and error output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTokenManager attaches a Bearer token to credentialed requests.
func WithTokenManager(tokenManager auth.TokenManager) Option {
	return func(c *Client) {
		c.tokenManager = tokenManager
	}
}

// WithOrigin sets the origin used to resolve relative URLs and sent as the
// Origin header on cors-mode requests. Invalid or relative origins are
// ignored; use ParseOrigin to validate beforehand.
func WithOrigin(origin string) Option {
	return func(c *Client) {
		parsed, err := ParseOrigin(origin)
		if err == nil {
			c.origin = parsed
		}
	}
}

// WithCookieJar sets the jar holding session cookies.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Jar = jar
	}
}

// WithTimeout bounds each round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// ParseOrigin parses an absolute origin URL.
func ParseOrigin(origin string) (*url.URL, error) {
	parsed, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidOrigin, err)
	}

	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", constants.ErrInvalidOrigin, origin)
	}

	return parsed, nil
}

// NewClient creates a new transport.
func NewClient(opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.CheckRetry = noRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.RequestLogHook = client.logRequest
	retryClient.ResponseLogHook = client.logResponse

	return client
}

// RoundTrip implements castore.Transport.
func (c *Client) RoundTrip(ctx context.Context, req *castore.Request) (*castore.Response, error) {
	if req == nil {
		return nil, constants.ErrNoRequest
	}

	target, err := c.resolve(req.URL)
	if err != nil {
		return nil, err
	}

	var body interface{}
	if req.Body != nil {
		body = req.Body
	}

	method := req.Method
	if method == "" {
		method = constants.MethodGet
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", constants.AcceptJSON)
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	if req.Mode == castore.ModeCORS && c.origin != nil {
		httpReq.Header.Set("Origin", c.origin.Scheme+"://"+c.origin.Host)
	}

	if req.Credentials == castore.CredentialsInclude && c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}

		if c.logger != nil {
			c.logger.Error("HTTP request failed", map[string]interface{}{
				"method": method,
				"url":    target,
				"error":  err.Error(),
			})
		}

		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	finalURL := target
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &castore.Response{
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
		URL:        finalURL,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// Get issues a credentialed cors-mode GET for rawURL.
func (c *Client) Get(ctx context.Context, rawURL string) (*castore.Response, error) {
	return c.RoundTrip(ctx, &castore.Request{
		Method:      constants.MethodGet,
		URL:         rawURL,
		Credentials: castore.CredentialsInclude,
		Mode:        castore.ModeCORS,
	})
}

func (c *Client) resolve(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing request URL: %w", err)
	}

	if parsed.IsAbs() {
		return rawURL, nil
	}

	if c.origin == nil {
		return "", fmt.Errorf("%w: %s", constants.ErrRelativeURL, rawURL)
	}

	return c.origin.ResolveReference(parsed).String(), nil
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, _ int) {
	if !c.debug || c.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	}

	if req.GetBody != nil {
		if body, err := req.GetBody(); err == nil {
			var buf bytes.Buffer

			_, _ = io.Copy(&buf, body)
			_ = body.Close()

			if buf.Len() > 0 {
				fields["body"] = buf.String()
			}
		}
	}

	c.logger.Debug("HTTP Request", fields)
}

func (c *Client) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status": resp.StatusCode,
		"url":    resp.Request.URL.String(),
	})
}

// noRetry never retries: every call makes exactly one attempt.
func noRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}

	return text
}
