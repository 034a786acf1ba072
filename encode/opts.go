package encode

type EncodeOption func(*encState)

// Wire selects the compact single-line form with no insignificant
// whitespace.
func Wire(v bool) EncodeOption {
	return func(es *encState) { es.wire = v }
}

// Indent sets the number of spaces per nesting level (default 2).
func Indent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}

// EncodeColors enables colored output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.color = c.colorize }
}
