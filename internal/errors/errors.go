// Package errors defines domain-level errors used throughout the application.
// These errors describe why a package could not be checked and are mapped to appropriate HTTP status codes
// at the API boundary.
//
// Errors fall into two families:
//   - configuration errors, detected synchronously before any network call (ErrInvalidPackage).
//   - remote errors, produced while talking to a provider (ErrRemote).
//
// NOTE: Important for developers
// When adding a new error here, you MUST consider how it should be handled when returned from API endpoints.
//
// Unmapped errors will default to HTTP 500 Internal Server Error.
//
// Don't forget to:
// 1. Add your error to mapError (internal/daemon/api_server.go)
// 2. Add a test case to TestMapError (internal/daemon/api_server_test.go)
// 3. Update IsConfigError or IsRemoteError if the error belongs to one of the families
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPackage indicates that a package declaration cannot be turned into a remote.
	// Every configuration error matches this error.
	// Recommended to map to HTTP 400 Bad Request.
	ErrInvalidPackage = errors.New("invalid package configuration")

	// ErrUnsupportedProvider indicates that the declared package type has no provider implementation.
	ErrUnsupportedProvider = errors.New("unsupported package type")

	// ErrInvalidURL indicates that the package URL is unparsable or does not identify a repository.
	ErrInvalidURL = errors.New("invalid package url")

	// ErrInvalidVersionScheme indicates that the declared version type is not recognized.
	ErrInvalidVersionScheme = errors.New("invalid version type")

	// ErrRemote indicates that a provider could not produce a version.
	// Every remote error matches this error.
	// Recommended to map to HTTP 502 Bad Gateway.
	ErrRemote = errors.New("remote request failed")

	// ErrHTTPStatus indicates that the provider answered with a non-success HTTP status.
	ErrHTTPStatus = errors.New("unexpected http status")

	// ErrNotFound indicates that the provider answered successfully but had nothing to report,
	// e.g. a repository without any commit or tag.
	ErrNotFound = errors.New("version not found")

	// ErrTransport indicates a failure of the HTTP layer itself (connection, read or decode).
	ErrTransport = errors.New("transport failure")

	// ErrPackageNotFound indicates that the requested package is not present in the configuration.
	// Recommended to map to HTTP 404 Not Found.
	ErrPackageNotFound = errors.New("package not found")
)

// HTTPStatusError is returned when a provider answers with a non-success status code.
type HTTPStatusError struct {
	// Provider is the name of the provider that was requested (e.g. "github").
	Provider string

	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Body is the response body text.
	Body string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("failed to request %s, status code: %d response: %s", e.Provider, e.StatusCode, e.Body)
}

// Is reports whether the error matches ErrHTTPStatus or ErrRemote.
func (e *HTTPStatusError) Is(target error) bool {
	return target == ErrHTTPStatus || target == ErrRemote
}

// NotFoundError is returned when a provider has no item of the requested kind.
type NotFoundError struct {
	// Resource is the singular name of what was looked for (e.g. "commit", "tag").
	Resource string
}

func (e *NotFoundError) Error() string {
	return "repo has no " + e.Resource
}

// Is reports whether the error matches ErrNotFound or ErrRemote.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound || target == ErrRemote
}

// TransportError wraps a failure of the HTTP layer.
type TransportError struct {
	// Op describes the step that failed (e.g. "send request", "decode response").
	Op string

	// Err is the underlying cause.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether the error matches ErrTransport or ErrRemote.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport || target == ErrRemote
}

// VersionSchemeError is returned when a version type is not recognized.
type VersionSchemeError struct {
	// Value is the offending version type, exactly as supplied.
	Value string
}

func (e *VersionSchemeError) Error() string {
	return fmt.Sprintf("%s: '%s'", ErrInvalidVersionScheme, e.Value)
}

// Is reports whether the error matches ErrInvalidVersionScheme or ErrInvalidPackage.
func (e *VersionSchemeError) Is(target error) bool {
	return target == ErrInvalidVersionScheme || target == ErrInvalidPackage
}

// NewErrUnsupportedProvider returns a configuration error for an unknown package type.
func NewErrUnsupportedProvider(packageType string) error {
	return fmt.Errorf("%w: %w: '%s'", ErrInvalidPackage, ErrUnsupportedProvider, packageType)
}

// NewErrInvalidURL returns a configuration error describing why the URL was rejected.
func NewErrInvalidURL(rawURL string, reason string) error {
	return fmt.Errorf("%w: %w '%s': %s", ErrInvalidPackage, ErrInvalidURL, rawURL, reason)
}

// IsConfigError reports whether err was raised while validating a package declaration.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidPackage)
}

// IsRemoteError reports whether err was raised while fetching from a provider.
func IsRemoteError(err error) bool {
	return errors.Is(err, ErrRemote)
}
