// Package contracts declares the interfaces shared between the API layer and the services behind it.
package contracts

import (
	"context"

	"github.com/pvchecker/pv-checker/internal/checker"
)

// PackageChecker resolves the latest versions of the configured packages.
type PackageChecker interface {
	// CheckAll checks every configured package and returns one report per package, in configuration order.
	// Per-package failures are carried in the reports; an error means the configuration could not be read.
	CheckAll(ctx context.Context) ([]checker.Report, error)

	// Check checks the configured package with the given name.
	// It returns errors.ErrPackageNotFound when no such package is configured.
	Check(ctx context.Context, name string) (checker.Report, error)

	// Names returns the names of the configured packages, in configuration order.
	Names() ([]string, error)
}
