package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/pvchecker/pv-checker/internal/errors"
	"github.com/pvchecker/pv-checker/internal/provider/github"
	"github.com/pvchecker/pv-checker/internal/version"
)

func TestNew_ValidGitHubURLs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		url           string
		versionType   string
		expectedOwner string
		expectedRepo  string
		expected      version.Scheme
	}{
		{
			name:          "commit scheme",
			url:           "https://github.com/rust-lang/rust",
			versionType:   "commit",
			expectedOwner: "rust-lang",
			expectedRepo:  "rust",
			expected:      version.SchemeCommit,
		},
		{
			name:          "tag scheme",
			url:           "https://github.com/golang/go",
			versionType:   "tag",
			expectedOwner: "golang",
			expectedRepo:  "go",
			expected:      version.SchemeTag,
		},
		{
			name:          "segments are kept verbatim",
			url:           "https://github.com/Some.Owner/repo.git",
			versionType:   "tag",
			expectedOwner: "Some.Owner",
			expectedRepo:  "repo.git",
			expected:      version.SchemeTag,
		},
		{
			name:          "query string is ignored",
			url:           "http://github.example.com/owner/repo?tab=readme",
			versionType:   "commit",
			expectedOwner: "owner",
			expectedRepo:  "repo",
			expected:      version.SchemeCommit,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, err := New(tc.url, "github", tc.versionType)
			require.NoError(t, err)

			gh, ok := r.(*github.Remote)
			require.True(t, ok)
			require.Equal(t, tc.expectedOwner, gh.Owner())
			require.Equal(t, tc.expectedRepo, gh.Repo())
			require.Equal(t, tc.expected, gh.Scheme())
		})
	}
}

func TestNew_InvalidURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
	}{
		{name: "one segment", url: "https://github.com/golang"},
		{name: "three segments", url: "https://github.com/golang/go/tree"},
		{name: "trailing slash", url: "https://github.com/golang/go/"},
		{name: "no path", url: "https://github.com"},
		{name: "empty owner", url: "https://github.com//go"},
		{name: "relative", url: "golang/go"},
		{name: "missing scheme", url: "github.com/golang/go"},
		{name: "unparsable", url: "https://github.com/%zz/go"},
		{name: "empty", url: ""},
		{name: "parent owner", url: "https://github.com/../go"},
		{name: "current repo", url: "https://github.com/golang/."},
		{name: "parent repo", url: "https://github.com/golang/.."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, err := New(tc.url, "github", "tag")
			require.Nil(t, r)
			require.ErrorIs(t, err, errors.ErrInvalidURL)
			require.True(t, errors.IsConfigError(err))
		})
	}
}

func TestNew_InvalidVersionScheme(t *testing.T) {
	t.Parallel()

	for _, versionType := range []string{"", "release", "TAG", "commits", "semver"} {
		t.Run(versionType, func(t *testing.T) {
			t.Parallel()

			r, err := New("https://github.com/golang/go", "github", versionType)
			require.Nil(t, r)
			require.ErrorIs(t, err, errors.ErrInvalidVersionScheme)

			var schemeErr *errors.VersionSchemeError
			require.ErrorAs(t, err, &schemeErr)
			require.Equal(t, versionType, schemeErr.Value)
		})
	}
}

func TestNew_UnsupportedProvider(t *testing.T) {
	t.Parallel()

	for _, packageType := range []string{"", "gitlab", "GitHub", "npm", "gitea"} {
		t.Run(packageType, func(t *testing.T) {
			t.Parallel()

			// Provider is checked first, so an invalid URL and scheme still report the provider.
			r, err := New("not a url", packageType, "bogus")
			require.Nil(t, r)
			require.ErrorIs(t, err, errors.ErrUnsupportedProvider)
			require.NotErrorIs(t, err, errors.ErrInvalidURL)
			require.Contains(t, err.Error(), "'"+packageType+"'")
		})
	}
}

func TestNew_URLCheckedBeforeScheme(t *testing.T) {
	t.Parallel()

	_, err := New("https://github.com/golang", "github", "bogus")
	require.ErrorIs(t, err, errors.ErrInvalidURL)
	require.NotErrorIs(t, err, errors.ErrInvalidVersionScheme)
}

func TestNew_OptionsAreApplied(t *testing.T) {
	t.Parallel()

	var userAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`[{"name": "v1.0.0"}]`))
	}))
	t.Cleanup(ts.Close)

	r, err := New(
		"https://github.com/golang/go",
		"github",
		"tag",
		WithGitHubAPIURL(ts.URL),
		WithHTTPClient(ts.Client()),
		WithLogger(hclog.NewNullLogger()),
		WithUserAgent("custom-agent"),
	)
	require.NoError(t, err)

	info, err := r.FetchLatestVersion(context.Background())
	require.NoError(t, err)
	require.Equal(t, version.NewTag("v1.0.0"), info)
	require.Equal(t, "custom-agent", userAgent)
}

func TestNew_InvalidOption(t *testing.T) {
	t.Parallel()

	_, err := New("https://github.com/golang/go", "github", "tag", WithHTTPClient(nil))
	require.Error(t, err)

	_, err = New("https://github.com/golang/go", "github", "tag", WithGitHubAPIURL("not-a-url"))
	require.Error(t, err)
}
