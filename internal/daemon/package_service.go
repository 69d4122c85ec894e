package daemon

import (
	"context"
	"fmt"
	"reflect"

	"github.com/hashicorp/go-hclog"

	"github.com/pvchecker/pv-checker/internal/checker"
	"github.com/pvchecker/pv-checker/internal/config"
	"github.com/pvchecker/pv-checker/internal/contracts"
	"github.com/pvchecker/pv-checker/internal/errors"
)

// PackageService checks the packages declared in a configuration file.
// The file is read on every request, so edits take effect without a restart.
// NewPackageService should be used to create instances of PackageService.
type PackageService struct {
	logger     hclog.Logger
	loader     config.Loader
	configPath string
	checker    *checker.Checker
}

var _ contracts.PackageChecker = (*PackageService)(nil)

// NewPackageService creates a PackageService reading configuration from configPath with loader.
func NewPackageService(
	logger hclog.Logger,
	loader config.Loader,
	configPath string,
	c *checker.Checker,
) (*PackageService, error) {
	if logger == nil || reflect.ValueOf(logger).IsNil() {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if loader == nil || reflect.ValueOf(loader).IsNil() {
		return nil, fmt.Errorf("config loader cannot be nil")
	}
	if c == nil {
		return nil, fmt.Errorf("checker cannot be nil")
	}

	return &PackageService{
		logger:     logger.Named("packages"),
		loader:     loader,
		configPath: configPath,
		checker:    c,
	}, nil
}

func (s *PackageService) CheckAll(ctx context.Context) ([]checker.Report, error) {
	cfg, err := s.loader.Load(s.configPath)
	if err != nil {
		return nil, err
	}

	pkgs := cfg.Packages()
	s.logger.Debug("Checking packages", "count", len(pkgs))

	return checker.Reports(s.checker.Run(ctx, pkgs, nil)), nil
}

func (s *PackageService) Check(ctx context.Context, name string) (checker.Report, error) {
	cfg, err := s.loader.Load(s.configPath)
	if err != nil {
		return checker.Report{}, err
	}

	p, ok := cfg.Package(name)
	if !ok {
		return checker.Report{}, fmt.Errorf("%w: '%s'", errors.ErrPackageNotFound, name)
	}

	s.logger.Debug("Checking package", "package", name)
	v, err := s.checker.CheckOne(ctx, p)

	return checker.Result{Package: p, Version: v, Err: err}.Report(), nil
}

func (s *PackageService) Names() ([]string, error) {
	cfg, err := s.loader.Load(s.configPath)
	if err != nil {
		return nil, err
	}

	pkgs := cfg.Packages()
	names := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		names = append(names, p.Name)
	}

	return names, nil
}
