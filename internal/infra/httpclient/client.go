// Package httpclient is the single pipeline every backend call goes through.
// It attaches the stored bearer token and turns 401 responses into either a
// forced logout or a soft-auth error depending on the endpoint.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"courtbook/internal/infra/credstore"
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/patch"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	HeaderRequestID      = "X-Request-ID"
	HeaderIdempotencyKey = "Idempotency-Key"

	maxErrorBody = 64 << 10
)

var ErrEndpointRequiresAuth = errs.New("endpoint requires authentication")

// SessionListener is told when the server rejected the stored session.
type SessionListener interface {
	Expire()
}

// Navigator moves the user to the login screen, remembering where they were.
type Navigator interface {
	RedirectToLogin(returnTo string)
}

type Client struct {
	baseURL   *url.URL
	http      *http.Client
	store     credstore.Store
	navigator Navigator
	softAuth  []string
	logger    *slog.Logger

	mu       sync.RWMutex
	listener SessionListener
}

func NewClient(cfg config.APIConfig, store credstore.Store, navigator Navigator, logger *slog.Logger) (*Client, error) {
	return NewClientWithTransport(cfg, store, navigator, logger, http.DefaultTransport)
}

func NewClientWithTransport(cfg config.APIConfig, store credstore.Store, navigator Navigator, logger *slog.Logger, rt http.RoundTripper) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errs.Wrap(err, "parse API base URL")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errs.New("API base URL must be absolute: " + cfg.BaseURL)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(rt),
		},
		store:     store,
		navigator: navigator,
		softAuth:  normalizePrefixes(cfg.SoftAuthPaths),
		logger:    logger,
	}, nil
}

// SetSessionListener breaks the construction cycle between the client and the session manager.
func (c *Client) SetSessionListener(l SessionListener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = l
}

type requestOptions struct {
	headers http.Header
}

type RequestOption func(*requestOptions)

func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.headers.Set(key, value)
	}
}

func WithIdempotencyKey(key string) RequestOption {
	return WithHeader(HeaderIdempotencyKey, key)
}

// Do sends one JSON request. body and out may be nil. The path is relative to
// the API base URL, e.g. "/courts/3/available".
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any, opts ...RequestOption) error {
	ro := requestOptions{headers: http.Header{}}
	for _, opt := range opts {
		opt(&ro)
	}

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	for k, v := range ro.headers {
		req.Header[k] = v
	}
	requestID := patch.OrDefault(req.Header.Get(HeaderRequestID), uuid.NewString())
	req.Header.Set(HeaderRequestID, requestID)
	if tok, ok := credstore.Token(c.store); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.Any("error", err))
		if ctx.Err() != nil {
			return errs.Transport("request cancelled", err)
		}
		return errs.Transport("cannot connect to server", err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", requestID))

	if resp.StatusCode == http.StatusUnauthorized {
		return c.handleUnauthorized(ctx, path, resp)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := readErrorMessage(resp)
		return errs.Server(resp.StatusCode, msg, nil)
	}

	return decodeBody(resp, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) handleUnauthorized(ctx context.Context, path string, resp *http.Response) error {
	msg := readErrorMessage(resp)
	route := normalizePath(path)

	if c.isSoftAuth(route) {
		c.logger.InfoContext(ctx, "public endpoint requires authentication", slog.String("path", route))
		return errs.Auth(http.StatusUnauthorized, msg, ErrEndpointRequiresAuth)
	}
	if isCredentialExchange(route) {
		return errs.Auth(http.StatusUnauthorized, msg, nil)
	}

	c.logger.WarnContext(ctx, "session rejected by server, logging out", slog.String("path", route))
	credstore.Clear(c.store)

	c.mu.RLock()
	listener := c.listener
	c.mu.RUnlock()
	if listener != nil {
		listener.Expire()
	}
	if c.navigator != nil {
		c.navigator.RedirectToLogin(locationFrom(ctx, route))
	}
	return errs.Auth(http.StatusUnauthorized, msg, nil)
}

func (c *Client) isSoftAuth(route string) bool {
	for _, p := range c.softAuth {
		if route == p || strings.HasPrefix(route, p+"/") {
			return true
		}
	}
	return false
}

// RequiresAuth reports whether err came from a public endpoint that wanted a session.
func RequiresAuth(err error) bool {
	return errs.Is(err, ErrEndpointRequiresAuth)
}

func isCredentialExchange(route string) bool {
	return route == "/auth/login" || route == "/auth/register"
}

func normalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = "/" + strings.Trim(p, "/")
	return p
}

func normalizePrefixes(prefixes []string) []string {
	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, normalizePath(p))
	}
	return out
}

type locationKey struct{}

// WithLocation records the user-facing location a request is made from, so a
// forced logout can send the user back there after logging in again.
func WithLocation(ctx context.Context, location string) context.Context {
	return context.WithValue(ctx, locationKey{}, location)
}

func locationFrom(ctx context.Context, fallback string) string {
	if loc, ok := ctx.Value(locationKey{}).(string); ok && loc != "" {
		return loc
	}
	return fallback
}
