// Package remote turns package declarations into provider-specific remotes that can resolve the latest version.
//
// New is the single extension point for providers: supporting a new host means adding a Provider constant,
// a branch in New, and an implementation of Remote.
package remote

import (
	"context"
	"net/url"
	"strings"

	"github.com/pvchecker/pv-checker/internal/errors"
	"github.com/pvchecker/pv-checker/internal/provider/github"
	"github.com/pvchecker/pv-checker/internal/version"
)

// Provider identifies a remote source-control provider.
type Provider string

const (
	// GitHub is the github.com (or GitHub Enterprise) provider.
	GitHub Provider = github.ProviderName
)

// Remote fetches the latest version of one package from its provider.
type Remote interface {
	// FetchLatestVersion performs the network round trip and returns the newest version.
	FetchLatestVersion(ctx context.Context) (version.Info, error)
}

// Ensure providers implement Remote.
var _ Remote = (*github.Remote)(nil)

// Providers returns all supported providers.
func Providers() []Provider {
	return []Provider{GitHub}
}

// New validates a package declaration and returns the Remote for its provider.
// Validation happens before any network I/O, in order: package type, URL, version type.
func New(rawURL string, packageType string, versionType string, opt ...Option) (Remote, error) {
	opts, err := NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	switch Provider(packageType) {
	case GitHub:
		owner, repo, err := ownerAndRepo(rawURL)
		if err != nil {
			return nil, err
		}

		scheme, err := version.ParseScheme(versionType)
		if err != nil {
			return nil, err
		}

		r, err := github.NewRemote(owner, repo, scheme, opts.githubOptions()...)
		if err != nil {
			return nil, err
		}

		return r, nil
	default:
		return nil, errors.NewErrUnsupportedProvider(packageType)
	}
}

// ownerAndRepo parses an absolute repository URL whose path is exactly "/{owner}/{repo}".
func ownerAndRepo(rawURL string) (string, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", errors.NewErrInvalidURL(rawURL, err.Error())
	}
	if !u.IsAbs() || u.Host == "" {
		return "", "", errors.NewErrInvalidURL(rawURL, "must be an absolute URL")
	}

	segments := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	if len(segments) != 2 || segments[0] == "" || segments[1] == "" {
		return "", "", errors.NewErrInvalidURL(rawURL, "path must be exactly '/{owner}/{repo}'")
	}
	for _, s := range segments {
		if s == "." || s == ".." {
			return "", "", errors.NewErrInvalidURL(rawURL, "owner and repo cannot be '.' or '..'")
		}
	}

	return segments[0], segments[1], nil
}
