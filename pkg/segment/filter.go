package segment

// Filter is a predicate over a pixel's raw RGBA bytes ([0,255] each),
// generalizing the original's CompositeFilter so callers can combine an
// alpha filter with e.g. a region-of-interest filter.
type Filter func(r, g, b, a uint8) bool

// DefaultFilter keeps pixels with alpha >= 128, per spec.md §4.2.
func DefaultFilter(_, _, _, a uint8) bool {
	return a >= 128
}

// And combines two filters, keeping a pixel only if both agree.
func (f Filter) And(other Filter) Filter {
	return func(r, g, b, a uint8) bool {
		return f(r, g, b, a) && other(r, g, b, a)
	}
}

// Or combines two filters, keeping a pixel if either agrees.
func (f Filter) Or(other Filter) Filter {
	return func(r, g, b, a uint8) bool {
		return f(r, g, b, a) || other(r, g, b, a)
	}
}
