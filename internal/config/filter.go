package config

import (
	"fmt"

	"github.com/pvchecker/pv-checker/internal/filter"
)

// Filter keys accepted by Config.Select.
const (
	FilterKeyName        = "name"
	FilterKeyURL         = "url"
	FilterKeyPackageType = "package_type"
	FilterKeyVersionType = "version_type"
)

func packageFilterOptions() []filter.Option[Package] {
	return []filter.Option[Package]{
		filter.WithMatcher(FilterKeyName, filter.AnyOf(filter.Partial(func(p Package) string { return p.Name }))),
		filter.WithMatcher(FilterKeyURL, filter.Partial(func(p Package) string { return p.URL })),
		filter.WithMatcher(FilterKeyPackageType, filter.AnyOf(filter.Equals(func(p Package) string { return p.PackageType }))),
		filter.WithMatcher(FilterKeyVersionType, filter.AnyOf(filter.Equals(func(p Package) string { return p.VersionType }))),
	}
}

// Select returns the packages matching every filter, in file order.
// Name and URL filters match substrings, type filters match exactly.
// Name and type filters accept comma-separated alternatives.
func (c *Config) Select(filters map[string]string) ([]Package, error) {
	pkgs, err := filter.Select(c.packages, filters, packageFilterOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return pkgs, nil
}
