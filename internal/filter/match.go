// Package filter selects items by matching key/value filters against their fields.
package filter

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Predicate defines a function that returns true if the given item matches a condition.
type Predicate[T any] func(item T, filterValue string) bool

// Options holds configuration for filtering behavior.
type Options[T any] struct {
	matchers map[string]Predicate[T]
}

// Option configures filter Options.
type Option[T any] func(*Options[T]) error

// StringValueProvider extracts a single string value from an item of type T.
type StringValueProvider[T any] func(T) string

// NormalizeString can be used to normalize a string value for filtering/comparison.
// The value is made lowercase and has any leading and/or trailing whitespace removed.
func NormalizeString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewOptions creates Options with defaults and applies given options.
func NewOptions[T any](opt ...Option[T]) (Options[T], error) {
	opts := Options[T]{matchers: make(map[string]Predicate[T])}

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return Options[T]{}, err
		}
	}
	return opts, nil
}

// Keys returns the supported filter keys, sorted.
func (o Options[T]) Keys() []string {
	keys := make([]string, 0, len(o.matchers))
	for k := range o.matchers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equals returns a Predicate that checks if the value extracted by the provider
// exactly matches the filter value (case-insensitive, normalized).
//
// Example:
//
// predicate := Equals(packageTypeProvider),
// result := predicate(pkg, "github") // true if pkg.PackageType equals "github"
func Equals[T any](provider StringValueProvider[T]) Predicate[T] {
	return func(item T, val string) bool {
		return NormalizeString(provider(item)) == NormalizeString(val)
	}
}

// Partial returns a Predicate that checks if the value extracted by the provider
// contains the filter value as a substring (case-insensitive, normalized).
func Partial[T any](provider StringValueProvider[T]) Predicate[T] {
	return func(item T, val string) bool {
		return strings.Contains(NormalizeString(provider(item)), NormalizeString(val))
	}
}

// AnyOf returns a Predicate that treats the filter value as a comma-separated list
// and matches when pred matches at least one element.
func AnyOf[T any](pred Predicate[T]) Predicate[T] {
	return func(item T, val string) bool {
		return slices.ContainsFunc(strings.Split(val, ","), func(v string) bool {
			return pred(item, v)
		})
	}
}

// WithMatcher adds or overrides a matcher.
func WithMatcher[T any](key string, value Predicate[T]) Option[T] {
	return func(o *Options[T]) error {
		k := NormalizeString(key)
		if k == "" {
			return fmt.Errorf("filter key cannot be empty")
		}
		if value == nil {
			return fmt.Errorf("matcher for filter key '%s' cannot be nil", k)
		}
		o.matchers[k] = value
		return nil
	}
}

// Match applies every filter to item. All filters must match.
// A filter key without a matcher is an error.
func Match[T any](item T, filters map[string]string, opts Options[T]) (bool, error) {
	for key, val := range filters {
		k := NormalizeString(key)
		matcher, ok := opts.matchers[k]
		if !ok {
			return false, fmt.Errorf(
				"unsupported filter key '%s' (supported: %s)",
				key,
				strings.Join(opts.Keys(), ", "),
			)
		}
		if !matcher(item, val) {
			return false, nil
		}
	}
	return true, nil
}

// Select returns the items matching every filter, preserving order.
func Select[T any](items []T, filters map[string]string, opt ...Option[T]) ([]T, error) {
	opts, err := NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	selected := make([]T, 0, len(items))
	for _, item := range items {
		ok, err := Match(item, filters, opts)
		if err != nil {
			return nil, err
		}
		if ok {
			selected = append(selected, item)
		}
	}
	return selected, nil
}
