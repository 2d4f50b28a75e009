// typed_field.go: optional, type-safe access to error data.
//
// Overview
//
//	TypedField complements the untyped Map API with a typed key. Set converts
//	through ValueOf; Get reads the stored Value and asserts it either directly
//	(T is a Value kind such as String or Map) or through Native (T is a plain Go
//	type such as string, float64, bool, []any or map[string]any).
//
// Usage
//
//	var FUserID = xgxresult.Typed[float64]("user_id")
//
//	b := xgxresult.New("lookup failed", nil)
//	FUserID.Set(b, 42)
//	id, ok := FUserID.Get(b.Freeze()) // id=42, ok=true
//
// Caveats
//
//	Numbers are stored as float64; Typed[int] never matches. No implicit
//	conversions are made.
package xgxresult

import "github.com/pkg/errors"

// TypedField is a data key bound to a Go type.
type TypedField[T any] struct {
	key string
}

// Typed constructs a TypedField[T] for key.
func Typed[T any](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

// Key returns the underlying data key.
func (f TypedField[T]) Key() string { return f.key }

// Set stores val under the key of b and returns b.
func (f TypedField[T]) Set(b *Builder, val T) *Builder {
	return b.Set(f.key, val)
}

// Get reads the key from e. It returns (zero, false) if e is nil, the key is
// absent, or the value does not have type T.
func (f TypedField[T]) Get(e Error) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	v, ok := e.Data().Get(f.key)
	if !ok {
		return zero, false
	}
	if tv, ok := v.(T); ok {
		return tv, true
	}
	if tv, ok := Native(v).(T); ok {
		return tv, true
	}
	return zero, false
}

// MustGet is Get that panics when the key is missing or has another type.
// Intended for tests and for data whose presence is an invariant.
func (f TypedField[T]) MustGet(e Error) T {
	v, ok := f.Get(e)
	if !ok {
		var zero T
		panic(errors.Errorf("xgxresult.TypedField[%T](%q): field missing or wrong type", zero, f.key))
	}
	return v
}
