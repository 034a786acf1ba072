package sage

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/victor-iyi/sage/dtype"
	"github.com/victor-iyi/sage/encode"
)

// Diff renders a line-oriented text diff of the indented encodings of a and
// b, with "-"/"+" prefixes. Equal trees yield the empty string.
func Diff(a, b dtype.Value) string {
	at := diffText(a)
	bt := diffText(b)
	if at == bt {
		return ""
	}
	dmp := diffpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(at, bt)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ac, bc, false), lines)
	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

// diffText encodes v for line diffing, falling back to the compact debug
// form when the tree does not encode (for instance a string that is not
// valid UTF-8).
func diffText(v dtype.Value) string {
	s, err := encode.String(v)
	if err != nil {
		return v.String() + "\n"
	}
	return s + "\n"
}
