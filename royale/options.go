package royale

import (
	"net/http"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "clashlens"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	devKey     string
	devKeySet  bool
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	transport  Transport
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
	}
}

// WithDeveloperKey sets the developer key sent as the auth header. The key
// is optional, but once supplied it must not be empty.
func WithDeveloperKey(key string) Option {
	return func(o *clientOptions) {
		o.devKey = key
		o.devKeySet = true
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithHTTPClient supplies a custom *http.Client, replacing the default one
// and its timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithTransport replaces the HTTP transport entirely. Used to inject test
// doubles or alternative backends; the remaining HTTP options are ignored.
func WithTransport(transport Transport) Option {
	return func(o *clientOptions) {
		o.transport = transport
	}
}
