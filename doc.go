// doc.go: package documentation for xgx-result
//
// Package xgxresult provides a structured, hierarchical error model together
// with small generic Result and Option types that carry it. It is designed to be:
//   - Explicit (absence and failure are values, not nil pointers or panics)
//   - Deterministic (ordered data, stable text rendering, stable wire shape)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter, encoding/json)
//
// # Two Phases
//
// A *Builder is the mutable form of an error node: a message, ordered data and
// child builders. Its fields are exported and never validated while mutated.
// Freeze returns an immutable Error snapshot; the builder stays usable and later
// mutations never reach earlier snapshots.
//
//	b := xgxresult.New("sync failed", xgxresult.MapOf("tenant", "acme"),
//		"disk full",
//		xgxresult.New("upload failed", xgxresult.MapOf("attempt", 3)),
//	)
//	b.Set("job", 17)
//	err := b.Freeze()
//
// # Object Shape
//
// The only wire shape is a plain ordered Map:
//
//	{"tenant": "acme", "error": "sync failed", "inners": [...]}
//
// MessageKey ("error") and ChildrenKey ("inners") are structural and never kept
// as data. FromObject strips them; ToObject writes the message key always and
// the children key only when there are children. Map, List, *Builder and Error
// implement json.Marshaler (ordered, via json-iterator) and Map implements the
// msgpack custom encoder interfaces, so any serializer emits the same shape.
//
// # Rendering
//
// Error.Lines renders a node as text:
//
//	! sync failed
//	+ "tenant": "acme"
//	+ "job": 17
//	  ! disk full
//	  ! upload failed
//	  + "attempt": 3
//
// %+v prints the same text; %v and %s print the message only.
//
// # Result and Option
//
//	r := xgxresult.Fail[int](err)
//	v, e := r.Get() // e is err.ToError(): message only, with a stack
//
// Reading the wrong branch (Value on a failure, Err on a success, Value on None)
// panics with ErrNoValue, ErrNoError or ErrNoneValue. These are programmer
// errors, not recoverable conditions.
//
// # Interop
//
//   - A frozen Error unwraps to its children (Unwrap() []error).
//   - FromError converts any Go error graph into a builder tree; Join groups
//     independent failures under one message.
//   - Walk, Flatten and Find traverse mixed graphs of frozen and foreign errors.
//
// The errlog subpackage emits frozen errors as logrus entries; cmd/xgxfmt
// renders object-shaped documents from the command line.
package xgxresult
