package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pvchecker/pv-checker/internal/checker"
	"github.com/pvchecker/pv-checker/internal/contracts"
)

// PackagesResponse is the response for GET /packages.
type PackagesResponse struct {
	Body struct {
		Results []checker.Report `doc:"Latest version of every configured package, in configuration order" json:"results"`
	}
}

// PackageRequest represents the incoming request for checking one package.
type PackageRequest struct {
	Name string `doc:"Name of the configured package" example:"go" path:"name"`
}

// PackageResponse is the response for GET /packages/{name}.
type PackageResponse struct {
	Body checker.Report
}

// RegisterPackageRoutes sets up version check API endpoint routes under path.
func RegisterPackageRoutes(routerAPI huma.API, packageChecker contracts.PackageChecker, path string) {
	tags := []string{"Packages"}

	huma.Register(
		routerAPI,
		huma.Operation{
			OperationID: "checkPackages",
			Method:      http.MethodGet,
			Path:        path,
			Summary:     "Check the latest version of every configured package",
			Tags:        tags,
		},
		func(ctx context.Context, _ *struct{}) (*PackagesResponse, error) {
			return handleCheckPackages(ctx, packageChecker)
		},
	)

	huma.Register(
		routerAPI,
		huma.Operation{
			OperationID: "checkPackage",
			Method:      http.MethodGet,
			Path:        path + "/{name}",
			Summary:     "Check the latest version of a configured package",
			Tags:        tags,
		},
		func(ctx context.Context, input *PackageRequest) (*PackageResponse, error) {
			return handleCheckPackage(ctx, packageChecker, input.Name)
		},
	)
}

// handleCheckPackages is the handler for checking all configured packages.
func handleCheckPackages(ctx context.Context, packageChecker contracts.PackageChecker) (*PackagesResponse, error) {
	reports, err := packageChecker.CheckAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &PackagesResponse{}
	resp.Body.Results = reports

	return resp, nil
}

// handleCheckPackage is the handler for checking a single configured package.
func handleCheckPackage(
	ctx context.Context,
	packageChecker contracts.PackageChecker,
	name string,
) (*PackageResponse, error) {
	report, err := packageChecker.Check(ctx, name)
	if err != nil {
		return nil, err
	}

	return &PackageResponse{Body: report}, nil
}
