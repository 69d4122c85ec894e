package github

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultAPIURL is the base URL of the public GitHub REST API.
	DefaultAPIURL = "https://api.github.com"

	// DefaultUserAgent identifies requests made by this application.
	DefaultUserAgent = "pv-checker-v0.1.0"

	// AcceptHeader selects the v3 JSON media type.
	AcceptHeader = "application/vnd.github.v3+json"
)

// Option defines a functional option for configuring a Remote.
type Option func(*Options) error

// Options contains optional configuration for a Remote.
// NewOptions should be used to create instances of Options.
type Options struct {
	// APIURL is the base URL of the GitHub REST API.
	APIURL string

	// UserAgent is sent with every request.
	UserAgent string

	// HTTPClient performs the requests.
	HTTPClient *http.Client

	// Logger is used for request level logging.
	Logger hclog.Logger
}

// NewOptions creates Options with optional configurations applied.
// Starts with default values, then applies options in order with later options overriding earlier ones.
func NewOptions(opt ...Option) (Options, error) {
	opts := Options{
		APIURL:     DefaultAPIURL,
		UserAgent:  DefaultUserAgent,
		HTTPClient: http.DefaultClient,
		Logger:     hclog.NewNullLogger(),
	}

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return Options{}, err
		}
	}

	return opts, nil
}

// WithAPIURL overrides the GitHub API base URL, e.g. for GitHub Enterprise Server.
func WithAPIURL(apiURL string) Option {
	return func(o *Options) error {
		apiURL = strings.TrimRight(strings.TrimSpace(apiURL), "/")
		u, err := url.Parse(apiURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid GitHub API URL: '%s'", apiURL)
		}
		o.APIURL = apiURL
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *Options) error {
		userAgent = strings.TrimSpace(userAgent)
		if userAgent == "" {
			return fmt.Errorf("user agent cannot be empty")
		}
		o.UserAgent = userAgent
		return nil
	}
}

// WithHTTPClient sets the client used to perform requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) error {
		if client == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		o.HTTPClient = client
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) Option {
	return func(o *Options) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		o.Logger = logger
		return nil
	}
}
