package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDirName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "pv-checker", AppDirName())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "tilde only", path: "~", expected: home},
		{name: "tilde slash", path: "~/", expected: home},
		{name: "file in home", path: "~/.pv_checker.yaml", expected: filepath.Join(home, ".pv_checker.yaml")},
		{name: "nested", path: "~/configs/pv.toml", expected: filepath.Join(home, "configs", "pv.toml")},
		{name: "surrounding whitespace", path: "  ~/.pv_checker.yaml ", expected: filepath.Join(home, ".pv_checker.yaml")},
		{name: "absolute path unchanged", path: "/etc/pv.yaml", expected: "/etc/pv.yaml"},
		{name: "relative path unchanged", path: "pv.yaml", expected: "pv.yaml"},
		{name: "other user unchanged", path: "~bob/pv.yaml", expected: "~bob/pv.yaml"},
		{name: "tilde in middle unchanged", path: "/tmp/~/pv.yaml", expected: "/tmp/~/pv.yaml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExpandHome(tc.path)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestUserSpecificCacheDir(t *testing.T) {
	tests := []struct {
		name        string
		xdgValue    string
		expectedDir func(t *testing.T) string
		expectError bool
	}{
		{
			name:     "XDG_CACHE_HOME is set and used",
			xdgValue: "/custom/xdg/cache",
			expectedDir: func(t *testing.T) string {
				return filepath.Join("/custom/xdg/cache", AppDirName())
			},
		},
		{
			name:     "XDG_CACHE_HOME is set with whitespace and trimmed",
			xdgValue: "  /trimmed/xdg/cache  ",
			expectedDir: func(t *testing.T) string {
				return filepath.Join("/trimmed/xdg/cache", AppDirName())
			},
		},
		{
			name:     "XDG_CACHE_HOME is empty, fall back to default",
			xdgValue: "",
			expectedDir: func(t *testing.T) string {
				home, err := os.UserHomeDir()
				require.NoError(t, err)
				return filepath.Join(home, ".cache", AppDirName())
			},
		},
		{
			name:        "XDG_CACHE_HOME is relative",
			xdgValue:    "relative/cache",
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvVarXDGCacheHome, tc.xdgValue)

			got, err := UserSpecificCacheDir()
			if tc.expectError {
				require.Error(t, err)
				require.Contains(t, err.Error(), "must be an absolute path")
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expectedDir(t), got)
		})
	}
}

func TestEnsureAtLeastRegularDir(t *testing.T) {
	t.Parallel()

	t.Run("creates missing directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "a", "b")
		require.NoError(t, EnsureAtLeastRegularDir(dir))

		info, err := os.Stat(dir)
		require.NoError(t, err)
		require.True(t, info.IsDir())
	})

	t.Run("accepts more restrictive directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "private")
		require.NoError(t, os.Mkdir(dir, 0o700))
		require.NoError(t, EnsureAtLeastRegularDir(dir))
	})

	t.Run("rejects world writable directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "open")
		require.NoError(t, os.Mkdir(dir, 0o755))
		require.NoError(t, os.Chmod(dir, 0o777))

		err := EnsureAtLeastRegularDir(dir)
		require.Error(t, err)
		require.Contains(t, err.Error(), "incorrect permissions")
	})

	t.Run("rejects symlink", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		target := filepath.Join(base, "target")
		link := filepath.Join(base, "link")
		require.NoError(t, os.Mkdir(target, 0o755))
		require.NoError(t, os.Symlink(target, link))

		err := EnsureAtLeastRegularDir(link)
		require.Error(t, err)
		require.Contains(t, err.Error(), "symlink")
	})

	t.Run("rejects file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, []byte("x"), RegularFile))

		err := EnsureAtLeastRegularDir(path)
		require.Error(t, err)
	})
}
