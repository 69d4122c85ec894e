//go:build docsgen_api
// +build docsgen_api

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-hclog"

	"github.com/pvchecker/pv-checker/internal/api"
	"github.com/pvchecker/pv-checker/internal/checker"
	"github.com/pvchecker/pv-checker/internal/files"
)

// stubPackageChecker provides a stub implementation for documentation generation.
type stubPackageChecker struct{}

func (s *stubPackageChecker) CheckAll(context.Context) ([]checker.Report, error) { return nil, nil }
func (s *stubPackageChecker) Check(context.Context, string) (checker.Report, error) {
	return checker.Report{}, nil
}
func (s *stubPackageChecker) Names() ([]string, error) { return nil, nil }

// main generates the OpenAPI specification for the pv-checker API.
// It assumes it is run from the repository root.
func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "pv-checker.docsgen.api",
		Level:  hclog.Info,
		Output: os.Stderr,
	})

	// Output path for the OpenAPI document, relative to the repository root.
	outputPath := "./docs/api/openapi.yaml"

	// Same router setup as the daemon.
	mux := chi.NewMux()
	mux.Use(middleware.StripSlashes)

	config := huma.DefaultConfig("pv-checker API", api.APIVersion)
	router := humachi.New(mux, config)

	// Only the route definitions matter here, never the handlers.
	apiPathPrefix, err := api.RegisterRoutes(router, &stubPackageChecker{})
	if err != nil {
		logger.Error("failed to register API routes", "error", err)
		os.Exit(1)
	}

	logger.Info("Routes registered", "prefix", apiPathPrefix)

	yamlBytes, err := router.OpenAPI().YAML()
	if err != nil {
		logger.Error("failed to generate OpenAPI YAML", "error", err)
		os.Exit(1)
	}

	docsDir := filepath.Dir(outputPath)
	if err := files.EnsureAtLeastRegularDir(docsDir); err != nil {
		logger.Error("failed to create docs directory", "path", docsDir, "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, yamlBytes, files.RegularFile); err != nil {
		logger.Error("failed to write OpenAPI document", "path", outputPath, "error", err)
		os.Exit(1)
	}

	logger.Info("OpenAPI document generated", "path", outputPath, "size", fmt.Sprintf("%d bytes", len(yamlBytes)))
}
