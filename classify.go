package xgxresult

// childKind enumerates the shapes a child entry can take.
type childKind uint8

const (
	childAbsent childKind = iota
	childText
	childObject
	childStructured
)

// child is the classified form of a child argument or of one entry of the
// reserved children list.
type child struct {
	kind    childKind
	text    string
	object  Map      // childObject, or a node-shaped Map for childStructured
	ref     *Builder // childStructured from a *Builder
	node    Error    // childStructured from a frozen Error
}

// classify is the single place where child inputs are told apart.
//
//   - Absent: nil, Null, typed nil nodes, a nil Map.
//   - Text: strings; other scalars and lists as their compact JSON text.
//   - PlainObject: a Map holding MessageKey.
//   - Structured: a *Builder, a frozen Error, or a Map without MessageKey read
//     through the node shape (message, data, inners).
func classify(v any) child {
	if isNilValue(v) {
		return child{kind: childAbsent}
	}
	switch t := v.(type) {
	case Null:
		return child{kind: childAbsent}
	case string:
		return child{kind: childText, text: t}
	case String:
		return child{kind: childText, text: string(t)}
	case *Builder:
		return child{kind: childStructured, ref: t}
	case Error:
		return child{kind: childStructured, node: t}
	case Map:
		if t == nil {
			return child{kind: childAbsent}
		}
		if t.Has(MessageKey) {
			return child{kind: childObject, object: t}
		}
		return child{kind: childStructured, object: t}
	case Value:
		return child{kind: childText, text: compactText(t)}
	}
	return classify(ValueOf(v))
}

// builder materializes the child. keepRef keeps a *Builder by reference
// (construction); otherwise structured children are copied field by field
// (parsing).
func (c child) builder(keepRef bool) *Builder {
	switch c.kind {
	case childText:
		return &Builder{Message: c.text, Data: Map{}}
	case childObject:
		return FromObject(c.object)
	case childStructured:
		switch {
		case c.ref != nil && keepRef:
			return c.ref
		case c.ref != nil:
			return copyBuilder(c.ref)
		case c.node != nil:
			return thaw(c.node)
		default:
			return fromNodeShape(c.object)
		}
	}
	return nil
}

// copyBuilder converts a builder field by field: shallow data copy, children
// converted recursively.
func copyBuilder(src *Builder) *Builder {
	b := &Builder{Message: src.Message, Data: src.Data.Clone()}
	for _, c := range src.children() {
		b.Children = append(b.Children, copyBuilder(c))
	}
	return b
}

// thaw converts a frozen node back into a new builder. The frozen node is left
// untouched; this is a conversion, not an un-freeze.
func thaw(e Error) *Builder {
	b := &Builder{Message: e.Message(), Data: e.Data()}
	for _, c := range e.Children() {
		b.Children = append(b.Children, thaw(c))
	}
	return b
}

// fromNodeShape reads a Map that describes a node by its fields rather than by
// the reserved object keys.
func fromNodeShape(m Map) *Builder {
	b := &Builder{Data: Map{}}
	if v, ok := m.Get(nodeMessageKey); ok {
		b.Message = messageText(v)
	}
	if v, ok := m.Get(nodeDataKey); ok {
		if data, ok := v.(Map); ok {
			b.Data = data.Clone()
		}
	}
	if v, ok := m.Get(nodeChildrenKey); ok {
		if list, ok := v.(List); ok {
			for _, e := range list {
				if c := classify(e).builder(false); c != nil {
					b.Children = append(b.Children, c)
				}
			}
		}
	}
	return b
}

// messageText reads a message value: strings verbatim, Null as empty, anything
// else as compact JSON.
func messageText(v Value) string {
	switch t := v.(type) {
	case String:
		return string(t)
	case nil, Null:
		return ""
	}
	return compactText(v)
}

// asNode returns the message, data and children of a node value.
func asNode(v Value) (string, Map, []Value) {
	switch t := v.(type) {
	case *Builder:
		if t == nil {
			return "", nil, nil
		}
		kids := t.children()
		out := make([]Value, len(kids))
		for i, k := range kids {
			out[i] = k
		}
		return t.Message, t.Data, out
	case Error:
		kids := t.Children()
		out := make([]Value, len(kids))
		for i, k := range kids {
			out[i] = k
		}
		return t.Message(), t.Data(), out
	}
	return "", nil, nil
}

func nodesEqual(am string, ad Map, ac []Value, bm string, bd Map, bc []Value) bool {
	if am != bm || len(ac) != len(bc) || !Equal(nonNilMap(ad), nonNilMap(bd)) {
		return false
	}
	for i := range ac {
		if !Equal(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

func nonNilMap(m Map) Map {
	if m == nil {
		return Map{}
	}
	return m
}
