package dtype

import "time"

// Builder is the build direction of the traversal protocol: one verb per
// primitive shape, producing a Value tree. A Builder holds at most one
// document; verbs after the root value is complete, values written into an
// object with no captured key, and unbalanced Begin/End pairs are all
// contract violations on the caller's side and panic rather than returning
// an error.
type Builder struct {
	stack   []frame
	root    Value
	hasRoot bool
}

type frame struct {
	kind    Kind
	arr     []Value
	obj     *Map
	key     string
	hasKey  bool
	variant bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// emit routes a completed value to the enclosing container, or makes it the
// document root. Object frames follow the Idle -> KeyCaptured state machine:
// a value may only arrive with a key captured.
func (b *Builder) emit(v Value) {
	if len(b.stack) == 0 {
		if b.hasRoot {
			panic("dtype: value written after document root completed")
		}
		b.root = v
		b.hasRoot = true
		return
	}
	top := &b.stack[len(b.stack)-1]
	switch top.kind {
	case ArrayKind:
		top.arr = append(top.arr, v)
	case ObjectKind:
		if !top.hasKey {
			panic("dtype: object value written before key")
		}
		top.obj.Set(top.key, v)
		top.key = ""
		top.hasKey = false
	}
}

func (b *Builder) WriteNull() { b.emit(Value{}) }

func (b *Builder) WriteBool(v bool) { b.emit(FromBool(v)) }

func (b *Builder) WriteUint64(u uint64) { b.emit(FromUint(u)) }

func (b *Builder) WriteInt64(i int64) { b.emit(FromInt(i)) }

// WriteFloat64 writes a number, collapsing NaN and infinities to null.
func (b *Builder) WriteFloat64(f float64) { b.emit(FromFloat(f)) }

func (b *Builder) WriteNumber(n Number) { b.emit(FromNumber(n)) }

func (b *Builder) WriteString(s string) { b.emit(FromString(s)) }

func (b *Builder) WriteTime(t time.Time) { b.emit(FromTime(t)) }

// WriteBytes writes a byte sequence as an array of unsigned numbers, one
// element per byte.
func (b *Builder) WriteBytes(p []byte) {
	b.BeginArray(len(p))
	for _, c := range p {
		b.WriteUint64(uint64(c))
	}
	b.EndArray()
}

// BeginArray opens a sequence. sizeHint presizes the backing buffer; pass 0
// when the length is unknown.
func (b *Builder) BeginArray(sizeHint int) {
	if sizeHint < 0 {
		sizeHint = 0
	}
	b.stack = append(b.stack, frame{kind: ArrayKind, arr: make([]Value, 0, sizeHint)})
}

func (b *Builder) EndArray() {
	top := b.pop(ArrayKind, "EndArray")
	b.emit(Value{kind: ArrayKind, a: top.arr})
}

// BeginObject opens a map. Entries keep insertion order.
func (b *Builder) BeginObject() {
	b.stack = append(b.stack, frame{kind: ObjectKind, obj: NewMapWith(Insertion)})
}

// WriteKey captures the key for the next value in the enclosing object.
func (b *Builder) WriteKey(key string) {
	if len(b.stack) == 0 {
		panic("dtype: key written outside object")
	}
	top := &b.stack[len(b.stack)-1]
	if top.kind != ObjectKind {
		panic("dtype: key written outside object")
	}
	if top.hasKey {
		panic("dtype: key written twice without value")
	}
	top.key = key
	top.hasKey = true
}

func (b *Builder) EndObject() {
	top := b.pop(ObjectKind, "EndObject")
	if top.hasKey {
		panic("dtype: object closed with dangling key")
	}
	b.emit(Value{kind: ObjectKind, o: top.obj})
}

// BeginVariant opens the single-entry object wrapping an externally-tagged
// variant payload: {name: <payload>}. Exactly one value must follow before
// EndVariant.
func (b *Builder) BeginVariant(name string) {
	b.BeginObject()
	b.stack[len(b.stack)-1].variant = true
	b.WriteKey(name)
}

func (b *Builder) EndVariant() {
	if len(b.stack) == 0 || !b.stack[len(b.stack)-1].variant {
		panic("dtype: EndVariant without BeginVariant")
	}
	b.EndObject()
}

func (b *Builder) pop(kind Kind, op string) frame {
	if len(b.stack) == 0 || b.stack[len(b.stack)-1].kind != kind {
		panic("dtype: unbalanced " + op)
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return top
}

// Finish returns the built document. An empty Builder yields Null; open
// containers are a contract violation.
func (b *Builder) Finish() Value {
	if len(b.stack) != 0 {
		panic("dtype: Finish with open containers")
	}
	return b.root
}
