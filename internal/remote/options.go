package remote

import (
	"fmt"
	"net/http"

	"github.com/hashicorp/go-hclog"

	"github.com/pvchecker/pv-checker/internal/provider/github"
)

// Option defines a functional option for configuring the remotes built by New.
type Option func(*Options) error

// Options contains optional configuration shared by all remotes.
// NewOptions should be used to create instances of Options.
type Options struct {
	// HTTPClient performs provider requests (nil uses the provider default).
	HTTPClient *http.Client

	// Logger is handed to the provider (nil uses a null logger).
	Logger hclog.Logger

	// GitHubAPIURL overrides the GitHub API base URL (empty uses the public API).
	GitHubAPIURL string

	// UserAgent overrides the User-Agent header (empty uses the provider default).
	UserAgent string
}

// NewOptions creates Options with optional configurations applied.
func NewOptions(opt ...Option) (Options, error) {
	var opts Options

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

// WithHTTPClient sets the HTTP client used by remotes.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) error {
		if client == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		o.HTTPClient = client
		return nil
	}
}

// WithLogger sets the logger handed to remotes.
func WithLogger(logger hclog.Logger) Option {
	return func(o *Options) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		o.Logger = logger
		return nil
	}
}

// WithGitHubAPIURL overrides the GitHub API base URL.
func WithGitHubAPIURL(apiURL string) Option {
	return func(o *Options) error {
		o.GitHubAPIURL = apiURL
		return nil
	}
}

// WithUserAgent overrides the User-Agent header sent by remotes.
func WithUserAgent(userAgent string) Option {
	return func(o *Options) error {
		o.UserAgent = userAgent
		return nil
	}
}

// githubOptions translates the shared options into GitHub provider options.
func (o Options) githubOptions() []github.Option {
	var opts []github.Option

	if o.HTTPClient != nil {
		opts = append(opts, github.WithHTTPClient(o.HTTPClient))
	}
	if o.Logger != nil {
		opts = append(opts, github.WithLogger(o.Logger))
	}
	if o.GitHubAPIURL != "" {
		opts = append(opts, github.WithAPIURL(o.GitHubAPIURL))
	}
	if o.UserAgent != "" {
		opts = append(opts, github.WithUserAgent(o.UserAgent))
	}

	return opts
}
