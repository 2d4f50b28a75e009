package xgxresult

import (
	"io"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// jsonAPI writes compact JSON; prettyAPI indents nested values by two spaces,
// the layout used for data lines in Lines.
var (
	jsonAPI   = jsoniter.Config{EscapeHTML: false, SortMapKeys: true}.Froze()
	prettyAPI = jsoniter.Config{EscapeHTML: false, IndentionStep: len(IndentUnit)}.Froze()
)

// writeValue streams v. Nodes are written in the node shape.
func writeValue(stream *jsoniter.Stream, v Value) {
	switch t := v.(type) {
	case nil, Null:
		stream.WriteNil()
	case Bool:
		stream.WriteBool(bool(t))
	case Number:
		writeNumber(stream, float64(t))
	case String:
		stream.WriteString(string(t))
	case List:
		if len(t) == 0 {
			stream.WriteEmptyArray()
			return
		}
		stream.WriteArrayStart()
		for i, e := range t {
			if i > 0 {
				stream.WriteMore()
			}
			writeValue(stream, e)
		}
		stream.WriteArrayEnd()
	case Map:
		if len(t) == 0 {
			stream.WriteEmptyObject()
			return
		}
		stream.WriteObjectStart()
		for i, f := range t {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(f.Key)
			writeValue(stream, f.Val)
		}
		stream.WriteObjectEnd()
	default:
		m, d, c := asNode(v)
		writeValue(stream, nodeShape(m, d, c))
	}
}

// writeNumber writes non-finite numbers as null, negative zero as 0, and very
// small or large magnitudes in exponent form without exponent padding.
func writeNumber(stream *jsoniter.Stream, f float64) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		stream.WriteNil()
	case f == 0:
		stream.WriteRaw("0")
	case math.Abs(f) < 1e-6 || math.Abs(f) >= 1e21:
		stream.WriteRaw(trimExponent(strconv.FormatFloat(f, 'e', -1, 64)))
	default:
		stream.WriteFloat64(f)
	}
}

// trimExponent drops leading zeros from the exponent: 1e-07 becomes 1e-7.
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}

func encodeJSON(api jsoniter.API, v Value) ([]byte, error) {
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	writeValue(stream, v)
	if stream.Error != nil {
		return nil, errors.Wrap(stream.Error, "xgxresult: encode json")
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// compactText renders v as single-line JSON.
func compactText(v Value) string {
	buf, _ := encodeJSON(jsonAPI, v)
	return string(buf)
}

// prettyText renders v as JSON indented by IndentUnit.
func prettyText(v Value) string {
	buf, _ := encodeJSON(prettyAPI, v)
	return string(buf)
}

// readValue decodes the next JSON value, keeping object keys in document order.
// It returns nil on malformed input.
func readValue(iter *jsoniter.Iterator) Value {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		if !iter.ReadNil() {
			return nil
		}
		return Null{}
	case jsoniter.BoolValue:
		return Bool(iter.ReadBool())
	case jsoniter.NumberValue:
		return Number(iter.ReadFloat64())
	case jsoniter.StringValue:
		return String(iter.ReadString())
	case jsoniter.ArrayValue:
		list := List{}
		ok := true
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			v := readValue(it)
			if v == nil {
				ok = false
				return false
			}
			list = append(list, v)
			return true
		})
		if !ok {
			return nil
		}
		return list
	case jsoniter.ObjectValue:
		m := Map{}
		ok := true
		iter.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
			v := readValue(it)
			if v == nil {
				ok = false
				return false
			}
			m.Set(key, v)
			return true
		})
		if !ok {
			return nil
		}
		return m
	}
	iter.ReportError("readValue", "unexpected json token")
	return nil
}

func decodeFailed(iter *jsoniter.Iterator, v Value) bool {
	return v == nil || (iter.Error != nil && iter.Error != io.EOF)
}

// ParseJSON decodes a single JSON document into a Value. Object keys keep
// their document order.
func ParseJSON(data []byte) (Value, error) {
	iter := jsonAPI.BorrowIterator(data)
	defer jsonAPI.ReturnIterator(iter)

	v := readValue(iter)
	if decodeFailed(iter, v) {
		return nil, errors.Wrap(iterError(iter), "xgxresult: decode json")
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue || iter.Error == nil {
		return nil, errors.New("xgxresult: decode json: trailing data after value")
	}
	return v, nil
}

// DecodeJSONStream decodes concatenated JSON documents from r and calls fn for
// each one, stopping at the first error.
func DecodeJSONStream(r io.Reader, fn func(Value) error) error {
	iter := jsoniter.Parse(jsonAPI, r, 4096)
	for {
		if iter.WhatIsNext() == jsoniter.InvalidValue {
			switch iter.Error {
			case io.EOF:
				return nil
			case nil:
				return errors.New("xgxresult: decode json stream: unexpected token")
			default:
				return errors.Wrap(iter.Error, "xgxresult: decode json stream")
			}
		}
		v := readValue(iter)
		if decodeFailed(iter, v) {
			return errors.Wrap(iterError(iter), "xgxresult: decode json stream")
		}
		if err := fn(v); err != nil {
			return err
		}
		if iter.Error == io.EOF {
			return nil
		}
	}
}

func iterError(iter *jsoniter.Iterator) error {
	if iter.Error != nil && iter.Error != io.EOF {
		return iter.Error
	}
	return io.ErrUnexpectedEOF
}

// MarshalJSON writes the map as a JSON object in insertion order.
func (m Map) MarshalJSON() ([]byte, error) { return encodeJSON(jsonAPI, m) }

// UnmarshalJSON reads a JSON object keeping key order. JSON null yields a nil
// map.
func (m *Map) UnmarshalJSON(data []byte) error {
	v, err := ParseJSON(data)
	if err != nil {
		return err
	}
	switch t := v.(type) {
	case Map:
		*m = t
	case Null:
		*m = nil
	default:
		return errors.Errorf("xgxresult: cannot decode json %s into Map", v.Kind())
	}
	return nil
}

// MarshalJSON writes the list as a JSON array.
func (l List) MarshalJSON() ([]byte, error) { return encodeJSON(jsonAPI, l) }

// UnmarshalJSON reads a JSON array. JSON null yields a nil list.
func (l *List) UnmarshalJSON(data []byte) error {
	v, err := ParseJSON(data)
	if err != nil {
		return err
	}
	switch t := v.(type) {
	case List:
		*l = t
	case Null:
		*l = nil
	default:
		return errors.Errorf("xgxresult: cannot decode json %s into List", v.Kind())
	}
	return nil
}

// MarshalJSON writes null.
func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// MarshalJSON writes the builder in the node shape: message, data, inners.
func (b *Builder) MarshalJSON() ([]byte, error) { return encodeJSON(jsonAPI, b) }

// MarshalJSON writes the frozen node in the node shape: message, data, inners.
func (e *frozenErr) MarshalJSON() ([]byte, error) { return encodeJSON(jsonAPI, e) }
