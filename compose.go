package colorfilter

import "fmt"

// ComposeFilter applies inner and then outer to the result.
// Both operands are shared, not copied; they are immutable.
type ComposeFilter struct {
	outer, inner ColorFilter
}

// NewComposeFilter returns the composition outer(inner(c)).
// Both filters are required.
func NewComposeFilter(outer, inner ColorFilter) (*ComposeFilter, error) {
	if isNil(outer) {
		return nil, missingArgument("NewComposeFilter", "outer")
	}
	if isNil(inner) {
		return nil, missingArgument("NewComposeFilter", "inner")
	}
	return &ComposeFilter{outer: outer, inner: inner}, nil
}

// Chain composes filters so that they run in argument order: the result of
// Chain(a, b, c) is c(b(a(x))). A single filter is returned as is.
func Chain(filters ...ColorFilter) (ColorFilter, error) {
	if len(filters) == 0 {
		return nil, invalidArgument("Chain", "filters", "at least one filter is required")
	}
	for i, f := range filters {
		if isNil(f) {
			return nil, invalidArgument("Chain", "filters", fmt.Sprintf("element %d is nil", i))
		}
	}

	out := filters[0]
	for _, next := range filters[1:] {
		out = &ComposeFilter{outer: next, inner: out}
	}
	return out, nil
}

// Outer returns the filter applied last.
func (f *ComposeFilter) Outer() ColorFilter { return f.outer }

// Inner returns the filter applied first.
func (f *ComposeFilter) Inner() ColorFilter { return f.inner }

func (f *ComposeFilter) Kind() Kind { return KindCompose }

func (f *ComposeFilter) Apply(c RGBA8) RGBA8 {
	return f.outer.Apply(f.inner.Apply(c))
}

func (*ComposeFilter) sealed() {}
