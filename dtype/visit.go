package dtype

import "time"

// Visitor is the read direction of the traversal protocol: one callback per
// primitive shape. Walk dispatches purely on the active variant of each
// node; numbers dispatch on their classification, with VisitNumber reserved
// for decimal-backed values that have no native reading.
type Visitor interface {
	VisitNull() error
	VisitBool(bool) error
	VisitUint64(uint64) error
	VisitInt64(int64) error
	VisitFloat64(float64) error
	VisitNumber(Number) error
	VisitString(string) error
	VisitTime(time.Time) error
	EnterArray(length int) error
	LeaveArray() error
	EnterObject(length int) error
	VisitKey(string) error
	LeaveObject() error
}

// Walk traverses v depth-first, driving vis. The first callback error stops
// the walk and is returned.
func Walk(v Value, vis Visitor) error {
	switch v.kind {
	case NullKind:
		return vis.VisitNull()
	case BoolKind:
		return vis.VisitBool(v.b)
	case NumberKind:
		switch {
		case v.n.IsUint64():
			return vis.VisitUint64(v.n.u)
		case v.n.IsInt64():
			return vis.VisitInt64(v.n.i)
		case v.n.IsFloat64():
			return vis.VisitFloat64(v.n.f)
		default:
			return vis.VisitNumber(v.n)
		}
	case StringKind:
		return vis.VisitString(v.s)
	case DateTimeKind:
		return vis.VisitTime(v.t)
	case ArrayKind:
		if err := vis.EnterArray(len(v.a)); err != nil {
			return err
		}
		for i := range v.a {
			if err := Walk(v.a[i], vis); err != nil {
				return err
			}
		}
		return vis.LeaveArray()
	case ObjectKind:
		if err := vis.EnterObject(v.o.Len()); err != nil {
			return err
		}
		var walkErr error
		v.o.Range(func(k string, val *Value) bool {
			if walkErr = vis.VisitKey(k); walkErr != nil {
				return false
			}
			walkErr = Walk(*val, vis)
			return walkErr == nil
		})
		if walkErr != nil {
			return walkErr
		}
		return vis.LeaveObject()
	}
	return nil
}
