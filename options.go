package fuzzgo

type options struct {
	symbolFilter bool
}

// Option configures CachedRatio construction behavior.
type Option func(*options)

// WithoutSymbolFilter disables the distinct-symbol candidate filter.
//
// By default the cache keeps a bitmap of the symbol values occurring in the
// pattern and short-circuits candidates sharing none of them (their distance
// is already known to be maximal). Disabling the filter trades that fast path
// for a slightly smaller cache; scores are identical either way.
func WithoutSymbolFilter() Option {
	return func(o *options) {
		o.symbolFilter = false
	}
}
