package gomap

import (
	"math"
	"time"

	"github.com/victor-iyi/sage/dtype"
)

// anyMaterializer is a read-protocol visitor producing plain Go data:
// map[string]any, []any, string, bool, int64/uint64/float64, time.Time.
type anyMaterializer struct {
	stack  []anyFrame
	result any
}

type anyFrame struct {
	arr   []any
	obj   map[string]any
	key   string
	isObj bool
}

func materializeAny(v dtype.Value) (any, error) {
	m := &anyMaterializer{}
	if err := dtype.Walk(v, m); err != nil {
		return nil, err
	}
	return m.result, nil
}

func (m *anyMaterializer) emit(x any) {
	if len(m.stack) == 0 {
		m.result = x
		return
	}
	top := &m.stack[len(m.stack)-1]
	if top.isObj {
		top.obj[top.key] = x
		return
	}
	top.arr = append(top.arr, x)
}

func (m *anyMaterializer) VisitNull() error       { m.emit(nil); return nil }
func (m *anyMaterializer) VisitBool(b bool) error { m.emit(b); return nil }

// VisitUint64 prefers int64 for values that fit, matching how typed Go data
// is most commonly declared.
func (m *anyMaterializer) VisitUint64(u uint64) error {
	if u <= math.MaxInt64 {
		m.emit(int64(u))
	} else {
		m.emit(u)
	}
	return nil
}

func (m *anyMaterializer) VisitInt64(i int64) error         { m.emit(i); return nil }
func (m *anyMaterializer) VisitFloat64(f float64) error     { m.emit(f); return nil }
func (m *anyMaterializer) VisitNumber(n dtype.Number) error { m.emit(n); return nil }
func (m *anyMaterializer) VisitString(s string) error       { m.emit(s); return nil }
func (m *anyMaterializer) VisitTime(t time.Time) error      { m.emit(t); return nil }

func (m *anyMaterializer) EnterArray(n int) error {
	m.stack = append(m.stack, anyFrame{arr: make([]any, 0, n)})
	return nil
}

func (m *anyMaterializer) LeaveArray() error {
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	m.emit(top.arr)
	return nil
}

func (m *anyMaterializer) EnterObject(n int) error {
	m.stack = append(m.stack, anyFrame{obj: make(map[string]any, n), isObj: true})
	return nil
}

func (m *anyMaterializer) VisitKey(k string) error {
	m.stack[len(m.stack)-1].key = k
	return nil
}

func (m *anyMaterializer) LeaveObject() error {
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	m.emit(top.obj)
	return nil
}
