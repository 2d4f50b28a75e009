// error.go: the frozen Error interface and the reserved keys.
//
// Design tenets:
//   - Explicit states: "value absent" and "operation failed" are values, not
//     nil pointers or panics.
//   - Two phases: a mutable *Builder accumulates message, data and children;
//     Freeze turns it into an immutable Error that is safe to share.
//   - One wire shape: a plain ordered Map whose reserved keys hold the message
//     and the children, everything else is opaque caller data.
//   - Interop-first: a frozen Error is a Go error whose children are exposed
//     through Unwrap() []error, so errors.Is/As walk the whole tree.
package xgxresult

import "fmt"

// Reserved keys of the plain object shape. They are structural fields and are
// never kept as data entries.
const (
	// MessageKey holds the error message.
	MessageKey = "error"
	// ChildrenKey holds the ordered list of child errors.
	ChildrenKey = "inners"
)

// Keys of the node shape, used when a structured error is embedded as a value
// and encoded as-is (see Builder.ToObject pass-through).
const (
	nodeMessageKey  = "message"
	nodeDataKey     = "data"
	nodeChildrenKey = "inners"
)

// Error is an immutable error node produced by Builder.Freeze.
//
// Every accessor returns a copy; no caller can change a frozen node's
// observable state, so an Error may be shared freely across goroutines.
type Error interface {
	// error returns the message only. Data and children are available through
	// the accessors below or the text rendering.
	error
	Value
	fmt.Formatter
	fmt.Stringer

	// Message returns the human readable description.
	Message() string

	// Data returns a deep copy of the structured context, in insertion order.
	Data() Map

	// Children returns the nested causes in order. The slice is a copy; the
	// elements are themselves immutable.
	Children() []Error

	// Lines renders the node as text lines, each prefixed with indent
	// repetitions of the two-space indent unit. See format.go for the layout.
	Lines(indent int) []string

	// ToString joins Lines(0) with newline. "" stands for "\n", so an
	// empty separator cannot be requested.
	ToString(newline string) string

	// ToError converts the node into a plain error carrying only the message.
	ToError() error

	// Unwrap exposes the children to errors.Is/As.
	Unwrap() []error
}
