package checker

import (
	"fmt"

	"github.com/pvchecker/pv-checker/internal/remote"
)

// DefaultConcurrency is the maximum number of packages checked at the same time.
const DefaultConcurrency = 4

// Factory builds the Remote for one package declaration.
// remote.New is used unless a Factory is supplied.
type Factory func(rawURL string, packageType string, versionType string) (remote.Remote, error)

// Option defines a functional option for configuring a Checker.
type Option func(*Options) error

// Options contains optional configuration for a Checker.
// NewOptions should be used to create instances of Options.
type Options struct {
	// Concurrency bounds the number of in-flight fetches.
	Concurrency int

	// Factory builds remotes from package declarations.
	Factory Factory

	// RemoteOptions are passed to remote.New when no Factory is supplied.
	RemoteOptions []remote.Option
}

// NewOptions creates Options with defaults, then applies the supplied options in order.
func NewOptions(opt ...Option) (Options, error) {
	opts := Options{
		Concurrency: DefaultConcurrency,
	}

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return Options{}, err
		}
	}

	return opts, nil
}

// WithConcurrency sets the maximum number of in-flight fetches.
func WithConcurrency(n int) Option {
	return func(o *Options) error {
		if n <= 0 {
			return fmt.Errorf("concurrency must be greater than zero, got %d", n)
		}
		o.Concurrency = n
		return nil
	}
}

// WithFactory replaces the function used to build remotes.
func WithFactory(f Factory) Option {
	return func(o *Options) error {
		if f == nil {
			return fmt.Errorf("factory cannot be nil")
		}
		o.Factory = f
		return nil
	}
}

// WithRemoteOptions sets options passed to remote.New.
func WithRemoteOptions(opt ...remote.Option) Option {
	return func(o *Options) error {
		o.RemoteOptions = append(o.RemoteOptions, opt...)
		return nil
	}
}
