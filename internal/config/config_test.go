package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pvchecker/pv-checker/internal/files"
)

func writeConfig(t *testing.T, name string, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), files.RegularFile))

	return path
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected Format
	}{
		{path: "~/.pv_checker.yaml", expected: FormatYAML},
		{path: "packages.yml", expected: FormatYAML},
		{path: "packages.toml", expected: FormatTOML},
		{path: "PACKAGES.TOML", expected: FormatTOML},
		{path: "packages", expected: FormatYAML},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, FormatFromPath(tc.path))
		})
	}
}

func TestDefaultLoader_Load_YAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "packages.yaml", `
- name: go
  url: https://github.com/golang/go
  package_type: github
  version_type: tag
- name: neovim
  url: https://github.com/neovim/neovim
  package_type: github
  version_type: commit
`)

	loader := &DefaultLoader{}
	cfg, err := loader.Load(path)
	require.NoError(t, err)
	require.Equal(t, path, cfg.Path())
	require.Equal(t, []Package{
		{Name: "go", URL: "https://github.com/golang/go", PackageType: "github", VersionType: "tag"},
		{Name: "neovim", URL: "https://github.com/neovim/neovim", PackageType: "github", VersionType: "commit"},
	}, cfg.Packages())
}

func TestDefaultLoader_Load_TOML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "packages.toml", `
[[packages]]
name = "go"
url = "https://github.com/golang/go"
package_type = "github"
version_type = "tag"

[[packages]]
name = "neovim"
url = "https://github.com/neovim/neovim"
package_type = "github"
version_type = "commit"
`)

	loader := &DefaultLoader{}
	cfg, err := loader.Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Packages(), 2)
	require.Equal(t, "go", cfg.Packages()[0].Name)
	require.Equal(t, "commit", cfg.Packages()[1].VersionType)
}

func TestDefaultLoader_Load_KeepsUnsupportedValues(t *testing.T) {
	t.Parallel()

	// Provider and version values are validated per package when checking, not at load time.
	path := writeConfig(t, "packages.yaml", `
- name: thing
  url: https://gitlab.com/a/b
  package_type: gitlab
  version_type: release
`)

	loader := &DefaultLoader{}
	cfg, err := loader.Load(path)
	require.NoError(t, err)
	require.Equal(t, "gitlab", cfg.Packages()[0].PackageType)
	require.Equal(t, "release", cfg.Packages()[0].VersionType)
}

func TestDefaultLoader_Load_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	content := "- name: go\n  url: https://github.com/golang/go\n  package_type: github\n  version_type: tag\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".pv_checker.yaml"), []byte(content), files.RegularFile))

	loader := &DefaultLoader{}
	cfg, err := loader.Load("~/.pv_checker.yaml")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".pv_checker.yaml"), cfg.Path())
	require.Len(t, cfg.Packages(), 1)
}

func TestDefaultLoader_Load_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		file        string
		content     string
		errContains string
	}{
		{
			name:        "empty file",
			file:        "packages.yaml",
			content:     "  \n",
			errContains: "config file is empty",
		},
		{
			name:        "malformed yaml",
			file:        "packages.yaml",
			content:     "- name: [unterminated\n",
			errContains: "failed to decode yaml config",
		},
		{
			name:        "mapping instead of list",
			file:        "packages.yaml",
			content:     "name: go\nurl: https://github.com/golang/go\n",
			errContains: "Invalid type",
		},
		{
			name:        "missing field",
			file:        "packages.yaml",
			content:     "- name: go\n  url: https://github.com/golang/go\n  package_type: github\n",
			errContains: "version_type is required",
		},
		{
			name:        "blank field",
			file:        "packages.yaml",
			content:     "- name: go\n  url: '  '\n  package_type: github\n  version_type: tag\n",
			errContains: "url",
		},
		{
			name:        "non-string field",
			file:        "packages.yaml",
			content:     "- name: go\n  url: https://github.com/golang/go\n  package_type: github\n  version_type: 3\n",
			errContains: "Invalid type",
		},
		{
			name:        "toml without packages",
			file:        "packages.toml",
			content:     "name = \"go\"\n",
			errContains: "Invalid type",
		},
		{
			name:        "malformed toml",
			file:        "packages.toml",
			content:     "[[packages]\nname = \"go\"\n",
			errContains: "failed to decode toml config",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tc.file, tc.content)

			loader := &DefaultLoader{}
			cfg, err := loader.Load(path)
			require.Nil(t, cfg)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrConfigLoadFailed)
			require.ErrorContains(t, err, tc.errContains)
		})
	}
}

func TestDefaultLoader_Load_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.yaml")

	loader := &DefaultLoader{}
	_, err := loader.Load(path)
	require.ErrorIs(t, err, ErrConfigLoadFailed)
	require.ErrorContains(t, err, "pv-checker init")
	require.ErrorContains(t, err, path)
}

func TestDefaultLoader_Load_EmptyPath(t *testing.T) {
	t.Parallel()

	loader := &DefaultLoader{}
	_, err := loader.Load("   ")
	require.ErrorIs(t, err, ErrConfigLoadFailed)
}

func TestDefaultLoader_Init(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"packages.yaml", "packages.toml"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), name)
			loader := &DefaultLoader{}

			require.NoError(t, loader.Init(path))

			info, err := os.Stat(path)
			require.NoError(t, err)
			require.Equal(t, files.RegularFile, info.Mode().Perm())

			// The starter file must be loadable as-is.
			cfg, err := loader.Load(path)
			require.NoError(t, err)
			require.Equal(t, []Package{{
				Name:        "go",
				URL:         "https://github.com/golang/go",
				PackageType: "github",
				VersionType: "tag",
			}}, cfg.Packages())
		})
	}
}

func TestDefaultLoader_Init_RefusesOverwrite(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "packages.yaml", "# mine\n")

	loader := &DefaultLoader{}
	err := loader.Init(path)
	require.ErrorContains(t, err, "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "# mine\n", string(data))
}

func TestConfig_PackagesReturnsCopy(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(Package{Name: "go"}, Package{Name: "neovim"})

	pkgs := cfg.Packages()
	pkgs[0].Name = "changed"

	require.Equal(t, "go", cfg.Packages()[0].Name)
}

func TestConfig_Package(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(
		Package{Name: "go", URL: "https://github.com/golang/go"},
		Package{Name: "go", URL: "https://github.com/other/go"},
	)

	p, ok := cfg.Package("go")
	require.True(t, ok)
	require.Equal(t, "https://github.com/golang/go", p.URL)

	_, ok = cfg.Package("missing")
	require.False(t, ok)
}

func TestConfig_Select(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(
		Package{Name: "go", URL: "https://github.com/golang/go", PackageType: "github", VersionType: "tag"},
		Package{Name: "neovim", URL: "https://github.com/neovim/neovim", PackageType: "github", VersionType: "commit"},
		Package{Name: "vim", URL: "https://github.com/vim/vim", PackageType: "github", VersionType: "tag"},
	)

	names := func(pkgs []Package) []string {
		out := make([]string, 0, len(pkgs))
		for _, p := range pkgs {
			out = append(out, p.Name)
		}
		return out
	}

	tests := []struct {
		name     string
		filters  map[string]string
		expected []string
	}{
		{name: "no filters", filters: nil, expected: []string{"go", "neovim", "vim"}},
		{name: "name substring", filters: map[string]string{"name": "vim"}, expected: []string{"neovim", "vim"}},
		{name: "name alternatives", filters: map[string]string{"name": "go,neovim"}, expected: []string{"go", "neovim"}},
		{name: "version type", filters: map[string]string{"version_type": "TAG"}, expected: []string{"go", "vim"}},
		{name: "combined", filters: map[string]string{"name": "vim", "version_type": "tag"}, expected: []string{"vim"}},
		{name: "url", filters: map[string]string{"url": "golang"}, expected: []string{"go"}},
		{name: "nothing", filters: map[string]string{"package_type": "gitlab"}, expected: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pkgs, err := cfg.Select(tc.filters)
			require.NoError(t, err)
			require.Equal(t, tc.expected, names(pkgs))
		})
	}
}

func TestConfig_Select_UnsupportedKey(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Package{Name: "go"}).Select(map[string]string{"owner": "golang"})
	require.ErrorIs(t, err, ErrInvalidValue)
	require.ErrorContains(t, err, "unsupported filter key 'owner'")
}
