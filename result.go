package xgxresult

import (
	"fmt"

	"github.com/pkg/errors"
)

// Programmer-error guards. Reading the wrong branch of a Result or an empty
// Option panics with one of these.
var (
	ErrNoValue   = errors.New("xgxresult: failed result has no value")
	ErrNoError   = errors.New("xgxresult: succeeded result has no error")
	ErrNoneValue = errors.New("xgxresult: none option has no value")
)

// Result is either a value of type T or a failure of type E.
//
// E is commonly Error, but any type works; Get converts failures into a Go
// error with AsError.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a succeeded result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Fail returns a failed result holding err.
func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether r succeeded.
func (r Result[T, E]) IsOk() bool { return r.ok }

// Value returns the held value. It panics with ErrNoValue if r failed.
func (r Result[T, E]) Value() T {
	if !r.ok {
		panic(ErrNoValue)
	}
	return r.value
}

// Err returns the held failure. It panics with ErrNoError if r succeeded.
func (r Result[T, E]) Err() E {
	if r.ok {
		panic(ErrNoError)
	}
	return r.err
}

// OnOk calls fn with the value if r succeeded. A nil fn is ignored.
func (r Result[T, E]) OnOk(fn func(T)) Result[T, E] {
	if r.ok && fn != nil {
		fn(r.value)
	}
	return r
}

// OnError calls fn with the failure if r failed. A nil fn is ignored.
func (r Result[T, E]) OnError(fn func(E)) Result[T, E] {
	if !r.ok && fn != nil {
		fn(r.err)
	}
	return r
}

// OnBoth calls fn on either branch. A nil fn is ignored.
func (r Result[T, E]) OnBoth(fn func()) Result[T, E] {
	if fn != nil {
		fn()
	}
	return r
}

// Get returns the value, or the failure converted with AsError.
func (r Result[T, E]) Get() (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	return zero, AsError(r.err)
}

// MustGet returns the value or panics with the failure converted by AsError.
func (r Result[T, E]) MustGet() T {
	v, err := r.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Check returns the converted failure, or nil if r succeeded.
func (r Result[T, E]) Check() error {
	_, err := r.Get()
	return err
}

// ToOption returns Some(value) if r succeeded, None otherwise.
func (r Result[T, E]) ToOption() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// MapResult applies fn to the value of a succeeded result.
func MapResult[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Fail[U](r.err)
	}
	return Ok[U, E](fn(r.value))
}

// ThenResult chains fn on a succeeded result; failures pass through.
func ThenResult[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Fail[U](r.err)
	}
	return fn(r.value)
}

// AsError converts a failure payload into a Go error.
//
// Conversion order:
//   - a value with ToError() error (frozen errors, builders) → its ToError
//   - a Map holding MessageKey → that message, non-strings as compact JSON
//   - a Go error → itself
//   - anything else → its fmt.Sprint text
func AsError(v any) error {
	switch t := v.(type) {
	case interface{ ToError() error }:
		if !isNilValue(t) {
			return t.ToError()
		}
	case Map:
		if msg, ok := t.Get(MessageKey); ok {
			return errors.New(messageText(msg))
		}
	case error:
		if t != nil {
			return t
		}
	}
	return errors.New(fmt.Sprint(v))
}
