package parse

type parseOpts struct {
	arbitraryPrecision bool
}

type Option func(*parseOpts)

// ArbitraryPrecision keeps numeric literals as decimal-text-backed Numbers
// instead of the tri-state native representations, preserving digits beyond
// int64/uint64/float64 range.
func ArbitraryPrecision(v bool) Option {
	return func(o *parseOpts) { o.arbitraryPrecision = v }
}
