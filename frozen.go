package xgxresult

import "github.com/pkg/errors"

// frozenErr is the immutable error node behind the Error interface. All fields
// are written once in freeze and never again.
type frozenErr struct {
	msg      string
	data     Map
	children []Error
}

// freeze deep-copies b: data values are copied recursively and every child is
// frozen in order.
func freeze(b *Builder) *frozenErr {
	e := &frozenErr{msg: b.Message}
	if len(b.Data) > 0 {
		e.data = deepCopy(b.Data).(Map)
	}
	kids := b.children()
	if len(kids) > 0 {
		e.children = make([]Error, len(kids))
		for i, c := range kids {
			e.children[i] = freeze(c)
		}
	}
	return e
}

func (e *frozenErr) Error() string   { return e.msg }
func (e *frozenErr) Message() string { return e.msg }
func (e *frozenErr) String() string  { return e.ToString("\n") }

func (*frozenErr) Kind() Kind { return KindNode }
func (*frozenErr) sealed()    {}

func (e *frozenErr) Data() Map {
	if len(e.data) == 0 {
		return Map{}
	}
	return deepCopy(e.data).(Map)
}

func (e *frozenErr) Children() []Error {
	if len(e.children) == 0 {
		return nil
	}
	out := make([]Error, len(e.children))
	copy(out, e.children)
	return out
}

func (e *frozenErr) Unwrap() []error {
	if len(e.children) == 0 {
		return nil
	}
	out := make([]error, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

// ToError returns a plain error with the message and a stack trace recorded
// at the call site. Data and children are not carried over.
func (e *frozenErr) ToError() error {
	return errors.New(e.msg)
}

var (
	_ Error = (*frozenErr)(nil)
	_ Value = (*Builder)(nil)
)
