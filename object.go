// object.go: conversion between builders and the plain object shape.
//
// The object shape is an ordered Map:
//
//	error:  string            the message (MessageKey)
//	inners: list, optional    child errors (ChildrenKey); null entries dropped
//	<any>:  value             caller payload, preserved verbatim
//
// Reserved keys are structural, never payload. FromObject strips them from the
// resulting data; ToObject always writes the message key and only writes the
// children key when there are children.
package xgxresult

// FromObject builds a builder from an object-shaped Map.
//
// The message is read from MessageKey (a missing key gives ""). Entries of the
// ChildrenKey list are classified one by one: nested objects recurse through
// FromObject, frozen errors and node-shaped maps are converted field by field,
// strings become leaves and nulls are dropped. A ChildrenKey value that is not
// a list yields no children. Every other key is copied into Data.
func FromObject(object Map) *Builder {
	b := &Builder{Data: object.Clone()}
	b.Data.Delete(MessageKey)
	b.Data.Delete(ChildrenKey)

	if v, ok := object.Get(MessageKey); ok {
		b.Message = messageText(v)
	}
	if v, ok := object.Get(ChildrenKey); ok {
		if list, ok := v.(List); ok {
			for _, entry := range list {
				if c := classify(entry).builder(false); c != nil {
					b.Children = append(b.Children, c)
				}
			}
		}
	}
	return b
}

// ToObject converts the builder into the object shape.
//
// Output order is data keys (insertion order), then MessageKey, then
// ChildrenKey. A data entry named MessageKey is overwritten by the message.
// ChildrenKey is present iff the builder has at least one child; a stray data
// entry with that name is dropped otherwise.
//
// A child whose own Data already holds a reserved key is placed in the list as
// the *Builder itself instead of being converted, so payloads that are already
// object-shaped are not wrapped twice. Encoders write such children in the
// node shape (message, data, inners), which FromObject reads back.
func (b *Builder) ToObject() Map {
	object := b.Data.Clone()
	object.Set(MessageKey, String(b.Message))

	kids := b.children()
	if len(kids) == 0 {
		object.Delete(ChildrenKey)
		return object
	}

	list := make(List, 0, len(kids))
	for _, c := range kids {
		if c.Data.Has(MessageKey) || c.Data.Has(ChildrenKey) {
			list = append(list, c)
			continue
		}
		list = append(list, c.ToObject())
	}
	object.Set(ChildrenKey, list)
	return object
}

// nodeShape describes a node by its fields: message, data, inners. Children are
// written in the same shape.
func nodeShape(message string, data Map, children []Value) Map {
	out := Map{
		{Key: nodeMessageKey, Val: String(message)},
		{Key: nodeDataKey, Val: nonNilMap(data)},
	}
	list := make(List, 0, len(children))
	for _, c := range children {
		m, d, cc := asNode(c)
		list = append(list, nodeShape(m, d, cc))
	}
	out = append(out, Field{Key: nodeChildrenKey, Val: list})
	return out
}
