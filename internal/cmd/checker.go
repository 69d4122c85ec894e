package cmd

import (
	"github.com/hashicorp/go-hclog"

	"github.com/pvchecker/pv-checker/internal/checker"
)

// NewChecker builds the checker used by commands.
// When cacheFlags is not nil, remotes send their requests through the configured response cache.
// Options in opt are applied last.
func NewChecker(logger hclog.Logger, cacheFlags *CacheFlags, opt ...checker.Option) (*checker.Checker, error) {
	var opts []checker.Option

	if cacheFlags != nil {
		remoteOpts, err := cacheFlags.RemoteOptions(logger)
		if err != nil {
			return nil, err
		}
		opts = append(opts, checker.WithRemoteOptions(remoteOpts...))
	}

	return checker.NewChecker(logger, append(opts, opt...)...)
}
