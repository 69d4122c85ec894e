package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/pvchecker/pv-checker/internal/files"
)

const starterYAML = `# pv-checker package configuration.
#
# Each entry declares a repository to check:
#   name:         display name
#   url:          repository URL, https://github.com/{owner}/{repo}
#   package_type: provider, currently "github"
#   version_type: "commit" (newest commit) or "tag" (newest tag)
- name: go
  url: https://github.com/golang/go
  package_type: github
  version_type: tag
`

const starterTOML = `# pv-checker package configuration.
#
# Each [[packages]] table declares a repository to check:
#   name:         display name
#   url:          repository URL, https://github.com/{owner}/{repo}
#   package_type: provider, currently "github"
#   version_type: "commit" (newest commit) or "tag" (newest tag)
[[packages]]
name = "go"
url = "https://github.com/golang/go"
package_type = "github"
version_type = "tag"
`

// DefaultLoader reads YAML or TOML configuration files from disk.
type DefaultLoader struct{}

var (
	_ Loader      = (*DefaultLoader)(nil)
	_ Initializer = (*DefaultLoader)(nil)
)

// FormatFromPath returns the configuration format implied by the file extension.
// Files ending in .toml are TOML, everything else is YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Init creates a starter configuration file at path, in the format implied by its extension.
func (d *DefaultLoader) Init(path string) error {
	path, err := files.ExpandHome(path)
	if err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	content := starterYAML
	if FormatFromPath(path) == FormatTOML {
		content = starterTOML
	}

	if err := os.WriteFile(path, []byte(content), files.RegularFile); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Load reads, validates and decodes the configuration file at path.
// A leading "~" in path is expanded to the user's home directory.
func (d *DefaultLoader) Load(path string) (*Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrConfigLoadFailed)
	}

	path, err := files.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoadFailed, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(
				"%w: config file cannot be found (%s), run: 'pv-checker init'",
				ErrConfigLoadFailed,
				path,
			)
		}
		return nil, fmt.Errorf("%w: failed to read config file (%s): %w", ErrConfigLoadFailed, path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: config file is empty (%s)", ErrConfigLoadFailed, path)
	}

	format := FormatFromPath(path)

	packages, err := decode(data, format)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: failed to decode %s config from file (%s): %w",
			ErrConfigLoadFailed,
			format,
			path,
			err,
		)
	}

	return &Config{
		packages:       packages,
		configFilePath: path,
	}, nil
}

// decode validates the shape of data and decodes it into packages.
func decode(data []byte, format Format) ([]Package, error) {
	switch format {
	case FormatTOML:
		var generic map[string]any
		if _, err := toml.Decode(string(data), &generic); err != nil {
			return nil, err
		}
		if err := validateShape(generic["packages"]); err != nil {
			return nil, err
		}

		var doc tomlDocument
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, err
		}
		return doc.Packages, nil
	case FormatYAML:
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, err
		}
		if err := validateShape(generic); err != nil {
			return nil, err
		}

		var packages []Package
		if err := yaml.Unmarshal(data, &packages); err != nil {
			return nil, err
		}
		return packages, nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}
}

// NewConfig returns a configuration holding the given packages, not backed by a file.
func NewConfig(packages ...Package) *Config {
	return &Config{packages: slices.Clone(packages)}
}

// Packages returns a copy of the configured packages, in file order.
func (c *Config) Packages() []Package {
	return slices.Clone(c.packages)
}

// Package returns the first configured package with the given name.
func (c *Config) Package(name string) (Package, bool) {
	for _, p := range c.packages {
		if p.Name == name {
			return p, true
		}
	}
	return Package{}, false
}

// Path returns the file the configuration was loaded from, if any.
func (c *Config) Path() string {
	return c.configFilePath
}
