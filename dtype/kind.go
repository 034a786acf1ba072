package dtype

import "fmt"

// Kind identifies the active variant of a Value.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
	DateTimeKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:     "Null",
		BoolKind:     "Bool",
		NumberKind:   "Number",
		StringKind:   "String",
		ArrayKind:    "Array",
		ObjectKind:   "Object",
		DateTimeKind: "DateTime",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":     NullKind,
		"Bool":     BoolKind,
		"Number":   NumberKind,
		"String":   StringKind,
		"Array":    ArrayKind,
		"Object":   ObjectKind,
		"DateTime": DateTimeKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		NumberKind,
		StringKind,
		ArrayKind,
		ObjectKind,
		DateTimeKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ArrayKind, ObjectKind:
		return false
	default:
		return true
	}
}
