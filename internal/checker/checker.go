// Package checker runs latest-version lookups for many packages with bounded concurrency.
package checker

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/pvchecker/pv-checker/internal/config"
	"github.com/pvchecker/pv-checker/internal/errors"
	"github.com/pvchecker/pv-checker/internal/remote"
	"github.com/pvchecker/pv-checker/internal/version"
)

// Checker resolves the latest version of each configured package.
// NewChecker should be used to create instances of Checker.
type Checker struct {
	logger      hclog.Logger
	concurrency int
	factory     Factory
}

// Result is the outcome of checking one package.
// Exactly one of Version and Err is set.
type Result struct {
	// Index is the position of Package in the input.
	Index int

	// Package is the declaration that was checked.
	Package config.Package

	// Version is the latest version, when the check succeeded.
	Version version.Info

	// Err describes why the check failed.
	Err error
}

// NewChecker creates a Checker.
func NewChecker(logger hclog.Logger, opt ...Option) (*Checker, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	opts, err := NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	factory := opts.Factory
	if factory == nil {
		remoteOpts := opts.RemoteOptions
		factory = func(rawURL string, packageType string, versionType string) (remote.Remote, error) {
			return remote.New(rawURL, packageType, versionType, remoteOpts...)
		}
	}

	return &Checker{
		logger:      logger.Named("checker"),
		concurrency: opts.Concurrency,
		factory:     factory,
	}, nil
}

// Validate builds the remote for p without performing any network I/O.
func (c *Checker) Validate(p config.Package) error {
	_, err := c.factory(p.URL, p.PackageType, p.VersionType)
	return err
}

// CheckOne builds the remote for p and fetches its latest version.
func (c *Checker) CheckOne(ctx context.Context, p config.Package) (version.Info, error) {
	r, err := c.factory(p.URL, p.PackageType, p.VersionType)
	if err != nil {
		return nil, err
	}

	return r.FetchLatestVersion(ctx)
}

// Run checks every package and returns one Result per package, in input order.
// Failures are recorded in the Result and never stop the other checks.
// When onResult is not nil, it is called once per package as each check completes.
// Calls to onResult are never concurrent.
func (c *Checker) Run(ctx context.Context, pkgs []config.Package, onResult func(Result)) []Result {
	results := make([]Result, len(pkgs))

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(c.concurrency)

	for i, p := range pkgs {
		g.Go(func() error {
			res := Result{Index: i, Package: p}
			res.Version, res.Err = c.CheckOne(ctx, p)

			switch {
			case errors.IsConfigError(res.Err):
				c.logger.Warn("Invalid package declaration", "package", p.Name, "error", res.Err)
			case res.Err != nil:
				c.logger.Debug("Check failed", "package", p.Name, "url", p.URL, "error", res.Err)
			default:
				c.logger.Debug("Check succeeded", "package", p.Name, "url", p.URL, "version", res.Version.String())
			}

			results[i] = res

			if onResult != nil {
				mu.Lock()
				defer mu.Unlock()
				onResult(res)
			}

			return nil
		})
	}

	_ = g.Wait() // Workers never return an error.

	return results
}

// OK reports whether the check succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Summary counts successful and failed results.
func Summary(results []Result) (succeeded int, failed int) {
	for _, r := range results {
		if r.OK() {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
