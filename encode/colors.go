package encode

import (
	"github.com/fatih/color"

	"github.com/victor-iyi/sage/dtype"
)

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colorable struct {
	Kind dtype.Kind
	Attr ColorAttr
}

// Colors maps value kinds and attributes to sprint functions. Missing
// entries fall back to Default.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range dtype.Kinds() {
		colors.Map[Colorable{Kind: k, Attr: KeyColor}] = color.New(color.FgBlue).SprintfFunc()
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = colorDefault
	}
	colors.Map[Colorable{Kind: dtype.StringKind, Attr: ValueColor}] = color.New(color.FgGreen).SprintfFunc()
	colors.Map[Colorable{Kind: dtype.NumberKind, Attr: ValueColor}] = color.New(color.FgCyan).SprintfFunc()
	colors.Map[Colorable{Kind: dtype.BoolKind, Attr: ValueColor}] = color.New(color.FgYellow).SprintfFunc()
	colors.Map[Colorable{Kind: dtype.NullKind, Attr: ValueColor}] = color.New(color.Faint).SprintfFunc()
	colors.Map[Colorable{Kind: dtype.DateTimeKind, Attr: ValueColor}] = color.New(color.FgMagenta).SprintfFunc()
	return colors
}

func colorDefault(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return color.New().Sprintf(format, args...)
}

func (c *Colors) colorize(k dtype.Kind, attr ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Kind: k, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}
