package checker

import (
	"github.com/pvchecker/pv-checker/internal/version"
)

// Report is the serializable form of a Result.
type Report struct {
	// Name is the display name of the package.
	Name string `json:"name" yaml:"name"`

	// URL is the repository URL as configured.
	URL string `json:"url" yaml:"url"`

	// PackageType is the provider as configured.
	PackageType string `json:"package_type" yaml:"package_type"`

	// VersionType is the version scheme as configured.
	VersionType string `json:"version_type" yaml:"version_type"`

	// Summary is the human readable version, or the error text when the check failed.
	Summary string `json:"summary" yaml:"summary"`

	// Version holds the ordered version fields, when the check succeeded.
	Version version.Fields `json:"version,omitempty" yaml:"version,omitempty"`

	// Error is the failure description, when the check failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report converts the Result into its serializable form.
func (r Result) Report() Report {
	rep := Report{
		Name:        r.Package.Name,
		URL:         r.Package.URL,
		PackageType: r.Package.PackageType,
		VersionType: r.Package.VersionType,
	}

	if r.Err != nil {
		rep.Error = r.Err.Error()
		rep.Summary = rep.Error
		return rep
	}

	if r.Version != nil {
		rep.Summary = r.Version.String()
		rep.Version = r.Version.Fields()
	}

	return rep
}

// Reports converts results into reports, preserving order.
func Reports(results []Result) []Report {
	reports := make([]Report, 0, len(results))
	for _, r := range results {
		reports = append(reports, r.Report())
	}
	return reports
}
