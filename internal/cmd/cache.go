package cmd

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/pvchecker/pv-checker/internal/cache"
	"github.com/pvchecker/pv-checker/internal/remote"
)

const (
	FlagNameCache        = "cache"
	FlagNameCacheDir     = "cache-dir"
	FlagNameCacheTTL     = "cache-ttl"
	FlagNameRefreshCache = "refresh-cache"
)

// CacheFlags configures the optional response cache for commands that contact providers.
type CacheFlags struct {
	Enabled bool
	Dir     string
	TTL     time.Duration
	Refresh bool
}

// Register adds the cache flags to fs.
func (f *CacheFlags) Register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.Enabled, FlagNameCache, false, "cache successful provider responses on disk")
	fs.StringVar(&f.Dir, FlagNameCacheDir, "", "cache directory (defaults to the user cache directory)")
	fs.DurationVar(&f.TTL, FlagNameCacheTTL, cache.DefaultTTL, "how long cached responses are reused")
	fs.BoolVar(&f.Refresh, FlagNameRefreshCache, false, "ignore cached responses and overwrite them")
}

// Options converts the flags into cache options.
func (f *CacheFlags) Options() []cache.Option {
	opts := []cache.Option{
		cache.WithCaching(f.Enabled),
		cache.WithTTL(f.TTL),
		cache.WithRefreshCache(f.Refresh),
	}
	if f.Dir != "" {
		opts = append(opts, cache.WithDirectory(f.Dir))
	}
	return opts
}

// RemoteOptions returns the options used to build remotes, routing requests through the cache when enabled.
func (f *CacheFlags) RemoteOptions(logger hclog.Logger) ([]remote.Option, error) {
	c, err := cache.NewCache(logger, f.Options()...)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Transport: c.Transport(http.DefaultTransport)}

	return []remote.Option{
		remote.WithHTTPClient(client),
		remote.WithLogger(logger.Named("remote")),
	}, nil
}
