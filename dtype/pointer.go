package dtype

import "strings"

// Pointer resolves a slash-delimited path (RFC 6901 semantics) to a node in
// the tree. The empty path addresses v itself; any other path must start
// with '/'. Segments unescape "~1" to '/' and "~0" to '~'. Object segments
// are key lookups; array segments must be a non-negative decimal index with
// no leading '+' and no leading zero except for "0" itself. Anything that
// does not resolve returns nil, never a panic.
//
// The returned pointer addresses the tree's own storage, so callers mutate
// the tree through it; combined with Take it also removes values in place.
func (v *Value) Pointer(path string) *Value {
	segs, ok := PointerSegments(path)
	if !ok {
		return nil
	}
	cur := v
	for _, seg := range segs {
		switch cur.kind {
		case ObjectKind:
			cur = cur.o.GetPtr(seg)
		case ArrayKind:
			i, ok := ArrayIndex(seg)
			if !ok || i >= len(cur.a) {
				return nil
			}
			cur = &cur.a[i]
		default:
			return nil
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// PointerSegments splits a pointer path into its unescaped segments. The
// empty path yields no segments; a path not starting with '/' is invalid.
func PointerSegments(path string) ([]string, bool) {
	if path == "" {
		return nil, true
	}
	if !strings.HasPrefix(path, "/") {
		return nil, false
	}
	segs := strings.Split(path[1:], "/")
	for i, seg := range segs {
		segs[i] = unescapeSegment(seg)
	}
	return segs, true
}

func unescapeSegment(seg string) string {
	if !strings.Contains(seg, "~") {
		return seg
	}
	seg = strings.ReplaceAll(seg, "~1", "/")
	return strings.ReplaceAll(seg, "~0", "~")
}

// ArrayIndex accepts canonical decimal indices only: "0", or a nonzero
// digit followed by digits. "+1", "01" and "" are all rejected.
func ArrayIndex(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	if len(seg) > 1 && seg[0] == '0' {
		return 0, false
	}
	n := 0
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		if n > (1<<31-1-9)/10 {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
