package xgxresult

import (
	"strconv"
	"strings"
)

// Option represents an optional value. Some(v) holds a value, None holds
// nothing.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an option holding v.
func Some[T any](v T) Option[T] { return Option[T]{value: v, some: true} }

// None returns an empty option.
func None[T any]() Option[T] { return Option[T]{} }

// FromPointer returns None for a nil p and Some(*p) otherwise.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// Value returns the held value. It panics with ErrNoneValue on None.
func (o Option[T]) Value() T {
	if !o.some {
		panic(ErrNoneValue)
	}
	return o.value
}

// Or returns the held value or fallback.
func (o Option[T]) Or(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// ToPointer returns a pointer to a copy of the value, or nil on None.
func (o Option[T]) ToPointer() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// OnSome calls fn with the value when present. A nil fn is ignored.
func (o Option[T]) OnSome(fn func(T)) Option[T] {
	if o.some && fn != nil {
		fn(o.value)
	}
	return o
}

// OnNone calls fn when empty. A nil fn is ignored.
func (o Option[T]) OnNone(fn func()) Option[T] {
	if !o.some && fn != nil {
		fn()
	}
	return o
}

// OnBoth calls fn in either case. A nil fn is ignored.
func (o Option[T]) OnBoth(fn func()) Option[T] {
	if fn != nil {
		fn()
	}
	return o
}

// MapOption applies fn to the value when present.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(fn(o.value))
}

// ThenOption chains fn when a value is present.
func ThenOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return fn(o.value)
}

// ToResult returns Ok(value) when present and Fail(err) otherwise.
func ToResult[T, E any](o Option[T], err E) Result[T, E] {
	if o.some {
		return Ok[T, E](o.value)
	}
	return Fail[T](err)
}

// Lookup walks v along path and returns the value found there.
//
// Each path element may contain dots; "a.b" and "a", "b" are the same path.
// Map steps match keys, List steps parse the element as an index. Any missing
// step yields None. Nodes are walked through their node shape.
func Lookup(v Value, path ...string) Option[Value] {
	cur := v
	for _, p := range path {
		for _, step := range strings.Split(p, ".") {
			next, ok := lookupStep(cur, step)
			if !ok {
				return None[Value]()
			}
			cur = next
		}
	}
	if cur == nil {
		return None[Value]()
	}
	return Some(cur)
}

func lookupStep(v Value, step string) (Value, bool) {
	switch t := v.(type) {
	case Map:
		return t.Get(step)
	case List:
		i, err := strconv.Atoi(step)
		if err != nil || i < 0 || i >= len(t) {
			return nil, false
		}
		return t[i], true
	case *Builder, *frozenErr:
		m, d, c := asNode(t)
		return nodeShape(m, d, c).Get(step)
	}
	return nil, false
}

// CollectOptions returns Some of all values if every option holds one, None
// otherwise.
func CollectOptions[T any](opts []Option[T]) Option[[]T] {
	out := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.some {
			return None[[]T]()
		}
		out = append(out, o.value)
	}
	return Some(out)
}

// CollectResults returns Ok of all values if every result succeeded, or the
// first failure.
func CollectResults[T, E any](results []Result[T, E]) Result[[]T, E] {
	out := make([]T, 0, len(results))
	for _, r := range results {
		if !r.ok {
			return Fail[[]T](r.err)
		}
		out = append(out, r.value)
	}
	return Ok[[]T, E](out)
}
