package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"
	"golang.org/x/time/rate"
)

// Defaults for a client built without options.
const (
	// DefaultUserAgent mimics Firefox on Linux. The dictionary sites serve
	// reduced or blocked pages to clients that identify as scripts.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0"

	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 15 * time.Second

	// DefaultMaxBodySize caps response bodies. Dictionary pages run well
	// under 1MB; the cap guards against misbehaving mirrors.
	DefaultMaxBodySize = 5 * 1024 * 1024

	// DefaultRequestsPerSecond keeps lookups polite toward the sites.
	DefaultRequestsPerSecond = 1.0

	// DefaultBurst allows a small initial burst before the limiter paces
	// requests.
	DefaultBurst = 2
)

// Client fetches pages with rate limiting, an optional SOCKS5 proxy, and
// an ordered mirror fallback chain. Construct it with NewClient; the zero
// value is not usable.
type Client struct {
	httpClient  *http.Client
	limiter     *rate.Limiter
	userAgent   string
	headers     map[string]string
	mirrors     []string
	maxBodySize int64
	timeout     time.Duration
	proxyAddr   string
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHeaders sets extra headers sent with every request. The map is
// copied; later changes by the caller do not reach the client.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = make(map[string]string, len(headers))
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMaxBodySize caps the number of response bytes read per request.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		if size > 0 {
			c.maxBodySize = size
		}
	}
}

// WithMirrors sets the relay mirrors tried, in order, after a direct
// request fails. A mirror containing %s receives the query-escaped target
// URL there; any other mirror has the escaped URL appended. The slice is
// copied.
func WithMirrors(mirrors []string) Option {
	return func(c *Client) {
		c.mirrors = make([]string, len(mirrors))
		copy(c.mirrors, mirrors)
	}
}

// WithProxyAddress routes all requests through a SOCKS5 proxy at the given
// "host:port" address.
func WithProxyAddress(address string) Option {
	return func(c *Client) {
		c.proxyAddr = address
	}
}

// WithRateLimit paces requests at rps with the given burst. An rps of zero
// or less disables pacing.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		limit := rate.Limit(rps)
		if rps <= 0 {
			limit = rate.Inf
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithHTTPClient replaces the underlying HTTP client. Useful in tests and
// when the caller needs transport control beyond the proxy option; it
// overrides WithProxyAddress and WithTimeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a fetch client. Without options it paces requests at
// one per second, identifies as a desktop browser, and talks directly to
// the sites with a 15 second timeout.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
		timeout:     DefaultTimeout,
		limiter:     rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), DefaultBurst),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		httpClient, err := newHTTPClient(c.proxyAddr, c.timeout)
		if err != nil {
			return nil, err
		}
		c.httpClient = httpClient
	}
	return c, nil
}

// newHTTPClient builds the transport, routing through a SOCKS5 dialer when
// a proxy address is set.
func newHTTPClient(proxyAddr string, timeout time.Duration) (*http.Client, error) {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     30 * time.Second,
	}

	if proxyAddr != "" {
		if !validProxyAddress(proxyAddr) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProxyAddress, proxyAddr)
		}
		dialer, err := proxy.SOCKS5("tcp", proxyAddr, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("create SOCKS5 dialer: %w", err)
		}
		transport.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
			return dialer.Dial(network, addr)
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}, nil
}

// validProxyAddress checks "host:port" form with a numeric port.
func validProxyAddress(address string) bool {
	host, port, err := net.SplitHostPort(address)
	if err != nil || host == "" || port == "" {
		return false
	}
	for _, c := range port {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Fetch retrieves the page at target and returns its body as text. The
// call waits on the rate limiter first, then tries the target directly
// and, on any failure, each mirror in configured order. The first success
// wins; when everything fails the returned error wraps the direct
// request's failure.
func (c *Client) Fetch(ctx context.Context, target string) (string, error) {
	if target == "" {
		return "", ErrNoURL
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	body, directErr := c.fetchOnce(ctx, target)
	if directErr == nil {
		return body, nil
	}

	for _, mirror := range c.mirrors {
		body, err := c.fetchOnce(ctx, mirrorURL(mirror, target))
		if err == nil {
			return body, nil
		}
		if ctx.Err() != nil {
			break
		}
	}
	if len(c.mirrors) > 0 {
		return "", fmt.Errorf("direct request and %d mirrors failed: %w", len(c.mirrors), directErr)
	}
	return "", directErr
}

// fetchOnce performs a single GET against one endpoint.
func (c *Client) fetchOnce(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", target, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request %s: %w", target, err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close error is not actionable

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %s answered %s", ErrBadStatus, target, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		return "", fmt.Errorf("read body from %s: %w", target, err)
	}
	return string(body), nil
}

// mirrorURL builds the relay URL for a target. Mirrors with a %s
// placeholder receive the escaped target there; others get it appended.
func mirrorURL(mirror, target string) string {
	escaped := url.QueryEscape(target)
	if strings.Contains(mirror, "%s") {
		return strings.Replace(mirror, "%s", escaped, 1)
	}
	return mirror + escaped
}
