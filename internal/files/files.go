// Package files resolves user-specific paths and prepares directories used by pv-checker.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvVarXDGCacheHome is the XDG Base Directory env var name for cache files.
	EnvVarXDGCacheHome = "XDG_CACHE_HOME"
)

// Permissions applied to files and directories written by pv-checker.
const (
	// RegularFile permissions for configuration and cache files (0644).
	RegularFile os.FileMode = 0o644

	// RegularDir permissions for cache directories (0755).
	RegularDir os.FileMode = 0o755
)

// AppDirName returns the name of the application directory for use in user-specific operations where data is being written.
func AppDirName() string {
	return "pv-checker"
}

// ExpandHome replaces a leading "~" in path with the current user's home directory.
// Paths of the form "~user/..." are returned unchanged.
func ExpandHome(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// EnsureAtLeastRegularDir creates a directory with standard permissions if it doesn't exist,
// and verifies that it has at least the required regular permissions if it already exists.
// It does not attempt to repair ownership or permissions: if they are wrong, it returns an error.
// Rejects symlinked directories.
func EnsureAtLeastRegularDir(path string) error {
	if err := os.MkdirAll(path, RegularDir); err != nil {
		return fmt.Errorf("could not ensure directory exists for '%s': %w", path, err)
	}

	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("could not stat directory '%s': %w", path, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("path '%s' is a symlink, not a directory", path)
	}

	if !info.IsDir() {
		return fmt.Errorf("path '%s' is not a directory", path)
	}

	if !isPermissionAcceptable(info.Mode().Perm(), RegularDir) {
		return fmt.Errorf(
			"incorrect permissions for directory '%s' (%#o, want %#o or more restrictive)",
			path,
			info.Mode().Perm(),
			RegularDir,
		)
	}

	return nil
}

// UserSpecificCacheDir returns the directory that should be used to store any user-specific cache files.
// It adheres to the XDG Base Directory Specification, respecting the XDG_CACHE_HOME environment variable.
// When XDG_CACHE_HOME is not set, it defaults to ~/.cache/pv-checker
// See: https://specifications.freedesktop.org/basedir-spec/latest/
func UserSpecificCacheDir() (string, error) {
	if ch, ok := os.LookupEnv(EnvVarXDGCacheHome); ok && strings.TrimSpace(ch) != "" {
		cacheHome := strings.TrimSpace(ch)
		if filepath.IsAbs(cacheHome) {
			return filepath.Join(cacheHome, AppDirName()), nil
		}

		return "", fmt.Errorf(
			"environment variable '%s' must be an absolute path, got: %s",
			EnvVarXDGCacheHome,
			cacheHome,
		)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".cache", AppDirName()), nil
}

// isPermissionAcceptable returns true if the actual permissions are equal to or more restrictive than required.
func isPermissionAcceptable(actual, required os.FileMode) bool {
	return (actual & ^required) == 0
}
