// builder.go: the mutable error builder.
//
// A Builder accumulates a message, free-form data and child errors. It performs
// no validation while being mutated; callers append to Children and set Data
// entries directly, then call Freeze to obtain an immutable Error.
//
// Ownership: a parent keeps *Builder children by reference. Treat a builder
// handed to New or Add as moved into its parent.
package xgxresult

// Builder is the mutable form of an error node.
type Builder struct {
	Message  string
	Data     Map
	Children []*Builder
}

// New creates a builder with message, a shallow copy of data, and children.
//
// Each child may be:
//   - nil or Null: skipped
//   - a string or String: wrapped into a leaf builder with that message
//   - a *Builder: kept by reference
//   - a frozen Error or an object-shaped Map: converted into a new builder
func New(message string, data Map, children ...any) *Builder {
	b := &Builder{Message: message, Data: data.Clone()}
	return b.Add(children...)
}

// Add appends children using the same rules as New and returns b.
func (b *Builder) Add(children ...any) *Builder {
	for _, c := range children {
		if child := classify(c).builder(true); child != nil {
			b.Children = append(b.Children, child)
		}
	}
	return b
}

// Set stores v, converted with ValueOf, under key and returns b.
func (b *Builder) Set(key string, v any) *Builder {
	b.Data.Set(key, ValueOf(v))
	return b
}

// Freeze returns an immutable snapshot of the builder's current state. The
// builder stays usable; later mutations do not reach earlier snapshots.
func (b *Builder) Freeze() Error {
	return freeze(b)
}

// ToError returns the same plain error a frozen copy would.
func (b *Builder) ToError() error {
	return b.Freeze().ToError()
}

func (*Builder) Kind() Kind { return KindNode }
func (*Builder) sealed()    {}

// children returns the non-nil children. Nil entries can only appear through
// direct mutation of Children and are ignored on consumption.
func (b *Builder) children() []*Builder {
	out := make([]*Builder, 0, len(b.Children))
	for _, c := range b.Children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
