package printer

// Options contains optional configuration for printers.
type Options struct {
	showSummary bool
}

// Option defines a functional option for configuring printers.
type Option func(*Options) error

// NewOptions returns Options with defaults, then applies the supplied options in order.
func NewOptions(opt ...Option) (Options, error) {
	opts := Options{
		showSummary: true,
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

// WithSummary configures whether the summary footer is printed.
func WithSummary(enabled bool) Option {
	return func(o *Options) error {
		o.showSummary = enabled
		return nil
	}
}
