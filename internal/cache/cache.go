// Package cache provides an opt-in, on-disk cache for remote API responses.
package cache

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/pvchecker/pv-checker/internal/files"
)

// Cache stores successful GET responses on disk for a limited time.
// NewCache should be used to create instances of Cache.
type Cache struct {
	// dir is the directory where cache files are stored.
	dir string

	// ttl is the time-to-live for cached entries.
	ttl time.Duration

	// enabled determines if caching is enabled.
	enabled bool

	// refresh forces cache refresh when true.
	refresh bool

	// logger is used for logging cache operations.
	logger hclog.Logger
}

// transport is an http.RoundTripper backed by a Cache.
type transport struct {
	cache *Cache
	next  http.RoundTripper
}

var _ http.RoundTripper = (*transport)(nil)

// NewCache creates a new response cache.
func NewCache(logger hclog.Logger, opts ...Option) (*Cache, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	options, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	// Only resolve and create the cache directory if caching is enabled.
	if options.enabled {
		if options.dir == "" {
			dir, err := files.UserSpecificCacheDir()
			if err != nil {
				return nil, fmt.Errorf("failed to resolve cache directory: %w", err)
			}
			options.dir = dir
		}
		if err := files.EnsureAtLeastRegularDir(options.dir); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	return &Cache{
		dir:     options.dir,
		logger:  logger.Named("cache"),
		enabled: options.enabled,
		refresh: options.refreshCache,
		ttl:     options.ttl,
	}, nil
}

// Enabled reports whether responses are being cached.
func (c *Cache) Enabled() bool {
	return c.enabled
}

// Dir returns the directory cache entries are written to.
func (c *Cache) Dir() string {
	return c.dir
}

// Transport wraps next so that GET responses are served from, and written to, the cache.
// When caching is disabled next is returned unchanged. A nil next uses http.DefaultTransport.
func (c *Cache) Transport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	if !c.enabled {
		c.logger.Debug("Cache disabled, using network transport")
		return next
	}

	return &transport{cache: c, next: next}
}

// RoundTrip serves fresh cache entries, and writes through successful responses.
// Cache failures are logged and never fail the request.
func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.next.RoundTrip(req)
	}

	c := t.cache
	key := req.URL.String()
	cachePath := c.entryPath(key, req.Header.Get("Accept"))

	switch {
	case c.refresh:
		c.logger.Debug("Cache refresh requested", "url", key)
	case c.isExpired(cachePath):
		c.logger.Debug("Cache expired or missing", "url", key, "path", cachePath)
	default:
		resp, err := c.read(cachePath, req)
		if err == nil {
			c.logger.Debug("Using cached response", "url", key, "path", cachePath)
			return resp, nil
		}
		c.logger.Warn("Failed to read cache, using network", "url", key, "path", cachePath, "error", err)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}

	if err := c.write(cachePath, body); err != nil {
		c.logger.Warn("Failed to update cache", "url", key, "path", cachePath, "error", err)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))

	return resp, nil
}

// entryPath returns the cache file for a request URL and Accept header.
func (c *Cache) entryPath(url string, accept string) string {
	hash := sha256.Sum256([]byte(url + "\n" + accept))
	return filepath.Join(c.dir, fmt.Sprintf("%x.json", hash))
}

// read builds a response for req from the cache file at cachePath.
func (c *Cache) read(cachePath string, req *http.Request) (*http.Response, error) {
	body, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, err
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set("Content-Length", strconv.Itoa(len(body)))

	return &http.Response{
		Status:        "200 OK",
		StatusCode:    http.StatusOK,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}, nil
}

// write saves body to cachePath through a temporary file and rename.
func (c *Cache) write(cachePath string, body []byte) error {
	tmpFile, err := os.CreateTemp(c.dir, "tmp-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = os.Remove(tmpPath) // Clean up on any error.
	}()

	if _, err := tmpFile.Write(body); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	if err := os.Chmod(tmpPath, files.RegularFile); err != nil {
		return fmt.Errorf("failed to set cache file permissions: %w", err)
	}

	// Atomically rename to final location.
	if err := os.Rename(tmpPath, cachePath); err != nil {
		return fmt.Errorf("failed to rename cache file: %w", err)
	}

	c.logger.Debug("Successfully cached response", "path", cachePath)
	return nil
}

// isExpired checks if a cache file is expired based on modification time.
func (c *Cache) isExpired(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return true // Treat missing as expired.
	}
	return time.Since(info.ModTime()) > c.ttl
}
