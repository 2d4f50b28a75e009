// value.go: the closed JSON-like value model carried in error data.
//
// Design:
//   - Value is sealed: only the kinds declared in this package implement it.
//   - Scalars (Null, Bool, Number, String) are immutable Go values.
//   - List and Map are slices; Clone/deepCopy produce independent copies.
//   - KindNode lets a *Builder or a frozen Error sit inside a List or Map. The
//     reserved children list needs this to pass structured children through
//     unconverted.
package xgxresult

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
	KindNode
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindList:   "list",
	KindMap:    "map",
	KindNode:   "node",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a JSON-like datum: null, bool, number, string, ordered list,
// ordered map, or an embedded error node.
type Value interface {
	Kind() Kind
	sealed()
}

// Null is the JSON null.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number. Integers are stored exactly up to 2^53.
type Number float64

// String is a JSON string.
type String string

// List is an ordered JSON array.
type List []Value

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (List) Kind() Kind   { return KindList }

func (Null) sealed()   {}
func (Bool) sealed()   {}
func (Number) sealed() {}
func (String) sealed() {}
func (List) sealed()   {}

// ValueOf converts a Go value into a Value.
//
// Conversion rules:
//   - nil → Null; Value → itself (typed nil nodes → Null)
//   - bool, string, every integer and float kind, json.Number → scalar kinds
//   - []any → List; map[string]any → Map with keys sorted
//   - error → Node built with FromError
//   - anything else is marshalled with json-iterator and decoded in document
//     order, so struct field order survives
//
// ValueOf never fails: values that cannot be marshalled become their fmt.Sprint
// text.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case *Builder:
		if t == nil {
			return Null{}
		}
		return t
	case *frozenErr:
		if t == nil {
			return Null{}
		}
		return t
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int8:
		return Number(t)
	case int16:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint8:
		return Number(t)
	case uint16:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case float32:
		return Number(t)
	case float64:
		return Number(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return Number(f)
		}
		return String(t.String())
	case []any:
		out := make(List, len(t))
		for i, e := range t {
			out[i] = ValueOf(e)
		}
		return out
	case []string:
		out := make(List, len(t))
		for i, e := range t {
			out[i] = String(e)
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(Map, 0, len(keys))
		for _, k := range keys {
			out = append(out, Field{Key: k, Val: ValueOf(t[k])})
		}
		return out
	case error:
		if b := FromError(t); b != nil {
			return b
		}
		return Null{}
	}

	buf, err := jsonAPI.Marshal(v)
	if err != nil {
		return String(fmt.Sprint(v))
	}
	parsed, err := ParseJSON(buf)
	if err != nil {
		return String(fmt.Sprint(v))
	}
	return parsed
}

// Native converts a Value into plain Go values: nil, bool, float64, string,
// []any and map[string]any. Nodes are returned unchanged.
func Native(v Value) any {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(t)
	case Number:
		return float64(t)
	case String:
		return string(t)
	case List:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Native(e)
		}
		return out
	case Map:
		out := make(map[string]any, len(t))
		for _, f := range t {
			out[f.Key] = Native(f.Val)
		}
		return out
	default:
		return t
	}
}

// Equal reports whether a and b hold the same data. Maps compare in order,
// nodes compare by message, data and children. A nil Value equals Null.
func Equal(a, b Value) bool {
	if a == nil {
		a = Null{}
	}
	if b == nil {
		b = Null{}
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch at := a.(type) {
	case Null:
		return true
	case Bool:
		return at == b.(Bool)
	case Number:
		bn := b.(Number)
		if math.IsNaN(float64(at)) && math.IsNaN(float64(bn)) {
			return true
		}
		return at == bn
	case String:
		return at == b.(String)
	case List:
		bl := b.(List)
		if len(at) != len(bl) {
			return false
		}
		for i := range at {
			if !Equal(at[i], bl[i]) {
				return false
			}
		}
		return true
	case Map:
		bm := b.(Map)
		if len(at) != len(bm) {
			return false
		}
		for i := range at {
			if at[i].Key != bm[i].Key || !Equal(at[i].Val, bm[i].Val) {
				return false
			}
		}
		return true
	}
	am, ad, ac := asNode(a)
	bm, bd, bc := asNode(b)
	return nodesEqual(am, ad, ac, bm, bd, bc)
}

// deepCopy returns a copy of v that shares no mutable state with it. Builders
// nested in data are frozen on the way.
func deepCopy(v Value) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case List:
		out := make(List, len(t))
		for i, e := range t {
			out[i] = deepCopy(e)
		}
		return out
	case Map:
		out := make(Map, len(t))
		for i, f := range t {
			out[i] = Field{Key: f.Key, Val: deepCopy(f.Val)}
		}
		return out
	case *Builder:
		if t == nil {
			return Null{}
		}
		return t.Freeze()
	default:
		return t
	}
}

// isNilValue reports nil interfaces and typed nil node pointers.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
