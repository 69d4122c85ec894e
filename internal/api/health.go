package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pvchecker/pv-checker/internal/contracts"
)

// HealthStatusOK is reported when the server is running and its configuration can be read.
const HealthStatusOK = "ok"

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Body struct {
		Status   string   `doc:"Server status"                    example:"ok" json:"status"`
		Packages []string `doc:"Names of the configured packages" json:"packages"`
	}
}

// RegisterHealthRoutes sets up health-related API endpoint routes.
// Health never contacts a provider.
func RegisterHealthRoutes(routerAPI huma.API, packageChecker contracts.PackageChecker, path string) {
	huma.Register(
		routerAPI,
		huma.Operation{
			OperationID: "getHealth",
			Method:      http.MethodGet,
			Path:        path,
			Summary:     "Report server health and the configured packages",
			Tags:        []string{"Health"},
		},
		func(ctx context.Context, _ *struct{}) (*HealthResponse, error) {
			names, err := packageChecker.Names()
			if err != nil {
				return nil, err
			}

			resp := &HealthResponse{}
			resp.Body.Status = HealthStatusOK
			resp.Body.Packages = names

			return resp, nil
		},
	)
}
