// Package github resolves the latest version of a repository hosted on GitHub.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-hclog"

	"github.com/pvchecker/pv-checker/internal/errors"
	"github.com/pvchecker/pv-checker/internal/version"
)

// ProviderName is the package type handled by this provider, and the name used in logs and errors.
const ProviderName = "github"

// Remote fetches the latest version of a single GitHub repository.
// It is stateless after construction and safe for concurrent use.
// NewRemote should be used to create instances of Remote.
type Remote struct {
	owner     string
	repo      string
	scheme    version.Scheme
	apiURL    string
	userAgent string
	client    *http.Client
	logger    hclog.Logger
}

// NewRemote creates a Remote for owner/repo resolving versions with the given scheme.
func NewRemote(owner string, repo string, scheme version.Scheme, opt ...Option) (*Remote, error) {
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("owner and repo are required")
	}
	if _, err := version.ParseScheme(string(scheme)); err != nil {
		return nil, err
	}

	opts, err := NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	return &Remote{
		owner:     owner,
		repo:      repo,
		scheme:    scheme,
		apiURL:    opts.APIURL,
		userAgent: opts.UserAgent,
		client:    opts.HTTPClient,
		logger:    opts.Logger.Named(ProviderName),
	}, nil
}

// Owner returns the repository owner.
func (r *Remote) Owner() string { return r.owner }

// Repo returns the repository name.
func (r *Remote) Repo() string { return r.repo }

// Scheme returns the version scheme used to resolve the latest version.
func (r *Remote) Scheme() version.Scheme { return r.scheme }

// FetchLatestVersion requests the newest commit or tag of the repository.
// Exactly one HTTP request is made per call.
func (r *Remote) FetchLatestVersion(ctx context.Context) (version.Info, error) {
	switch r.scheme {
	case version.SchemeCommit:
		commits, err := fetchLatest[commitResponse](ctx, r, "commits")
		if err != nil {
			return nil, err
		}
		if len(commits) == 0 {
			return nil, &errors.NotFoundError{Resource: "commit"}
		}
		newest := commits[0]
		return version.NewCommit(newest.SHA, newest.Commit.Author.Date), nil
	case version.SchemeTag:
		tags, err := fetchLatest[tagResponse](ctx, r, "tags")
		if err != nil {
			return nil, err
		}
		if len(tags) == 0 {
			return nil, &errors.NotFoundError{Resource: "tag"}
		}
		return version.NewTag(tags[0].Name), nil
	default:
		return nil, &errors.VersionSchemeError{Value: string(r.scheme)}
	}
}

// endpoint returns the URL listing the newest item of the given repository resource.
func (r *Remote) endpoint(resource string) (string, error) {
	u, err := url.JoinPath(r.apiURL, "repos", r.owner, r.repo, resource)
	if err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("per_page", "1")
	q.Set("page", "1")

	return u + "?" + q.Encode(), nil
}

// fetchLatest performs the GET request for resource and decodes the JSON array response.
func fetchLatest[T any](ctx context.Context, r *Remote, resource string) ([]T, error) {
	endpoint, err := r.endpoint(resource)
	if err != nil {
		return nil, &errors.TransportError{Op: "build request url", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &errors.TransportError{Op: "create request", Err: err}
	}
	req.Header.Set("Accept", AcceptHeader)
	req.Header.Set("User-Agent", r.userAgent)

	r.logger.Debug("Requesting latest version", "owner", r.owner, "repo", r.repo, "url", endpoint)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &errors.TransportError{Op: "send request", Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.TransportError{Op: "read response", Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		r.logger.Debug(
			"Unexpected response status",
			"owner", r.owner,
			"repo", r.repo,
			"status", resp.StatusCode,
		)
		return nil, &errors.HTTPStatusError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &errors.TransportError{Op: "decode response", Err: err}
	}

	r.logger.Debug("Received items", "owner", r.owner, "repo", r.repo, "resource", resource, "count", len(items))

	return items, nil
}
