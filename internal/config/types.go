package config

// Loader loads the package configuration from a file.
type Loader interface {
	Load(path string) (*Config, error)
}

// Initializer creates a starter configuration file.
type Initializer interface {
	Init(path string) error
}

// Format is a supported configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Package declares one package to check.
type Package struct {
	// Name is the display name of the package.
	Name string `json:"name" toml:"name" yaml:"name"`

	// URL is the repository URL, e.g. https://github.com/golang/go.
	URL string `json:"url" toml:"url" yaml:"url"`

	// PackageType selects the provider, e.g. "github".
	PackageType string `json:"package_type" toml:"package_type" yaml:"package_type"`

	// VersionType selects the version scheme: "commit" or "tag".
	VersionType string `json:"version_type" toml:"version_type" yaml:"version_type"`
}

// Config is the loaded package configuration.
type Config struct {
	packages       []Package
	configFilePath string
}

// tomlDocument is the on-disk layout of a TOML configuration file.
// TOML has no top-level arrays, so packages live under a 'packages' table array.
type tomlDocument struct {
	Packages []Package `toml:"packages"`
}
