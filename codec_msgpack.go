package xgxresult

import (
	"bytes"
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
	"github.com/vmihailenco/msgpack/codes"
)

// EncodeMsgpack writes the map as a msgpack map in insertion order.
func (m Map) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackValue(enc, m)
}

// DecodeMsgpack reads a msgpack map keeping key order. A msgpack nil yields a
// nil map.
func (m *Map) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := decodeMsgpackValue(dec)
	if err != nil {
		return err
	}
	switch t := v.(type) {
	case Map:
		*m = t
	case Null:
		*m = nil
	default:
		return errors.Errorf("xgxresult: cannot decode msgpack %s into Map", v.Kind())
	}
	return nil
}

// MarshalMsgpack encodes v. Nodes are written in the node shape.
func MarshalMsgpack(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeMsgpackValue(msgpack.NewEncoder(&buf), v); err != nil {
		return nil, errors.Wrap(err, "xgxresult: encode msgpack")
	}
	return buf.Bytes(), nil
}

// UnmarshalMsgpack decodes a single msgpack value.
func UnmarshalMsgpack(data []byte) (Value, error) {
	v, err := decodeMsgpackValue(msgpack.NewDecoder(bytes.NewReader(data)))
	if err != nil {
		return nil, errors.Wrap(err, "xgxresult: decode msgpack")
	}
	return v, nil
}

// DecodeMsgpackStream decodes consecutive msgpack values from r and calls fn
// for each one, stopping at the first error.
func DecodeMsgpackStream(r io.Reader, fn func(Value) error) error {
	dec := msgpack.NewDecoder(r)
	for {
		if _, err := dec.PeekCode(); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "xgxresult: decode msgpack stream")
		}
		v, err := decodeMsgpackValue(dec)
		if err != nil {
			return errors.Wrap(err, "xgxresult: decode msgpack stream")
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}

func encodeMsgpackValue(enc *msgpack.Encoder, v Value) error {
	switch t := v.(type) {
	case nil, Null:
		return enc.EncodeNil()
	case Bool:
		return enc.EncodeBool(bool(t))
	case Number:
		f := float64(t)
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return enc.EncodeInt(int64(f))
		}
		return enc.EncodeFloat64(f)
	case String:
		return enc.EncodeString(string(t))
	case List:
		if err := enc.EncodeArrayLen(len(t)); err != nil {
			return err
		}
		for _, e := range t {
			if err := encodeMsgpackValue(enc, e); err != nil {
				return err
			}
		}
		return nil
	case Map:
		if err := enc.EncodeMapLen(len(t)); err != nil {
			return err
		}
		for _, f := range t {
			if err := enc.EncodeString(f.Key); err != nil {
				return err
			}
			if err := encodeMsgpackValue(enc, f.Val); err != nil {
				return err
			}
		}
		return nil
	}
	m, d, c := asNode(v)
	return encodeMsgpackValue(enc, nodeShape(m, d, c))
}

func decodeMsgpackValue(dec *msgpack.Decoder) (Value, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}
	switch {
	case c == codes.Nil:
		return Null{}, dec.DecodeNil()
	case c == codes.True || c == codes.False:
		b, err := dec.DecodeBool()
		return Bool(b), err
	case codes.IsString(c):
		s, err := dec.DecodeString()
		return String(s), err
	case codes.IsFixedArray(c) || c == codes.Array16 || c == codes.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		list := make(List, 0, n)
		for i := 0; i < n; i++ {
			e, err := decodeMsgpackValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, e)
		}
		return list, nil
	case codes.IsFixedMap(c) || c == codes.Map16 || c == codes.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		m := make(Map, 0, n)
		for i := 0; i < n; i++ {
			k, err := dec.DecodeString()
			if err != nil {
				return nil, err
			}
			e, err := decodeMsgpackValue(dec)
			if err != nil {
				return nil, err
			}
			m.Set(k, e)
		}
		return m, nil
	}

	// numbers, binary and extensions
	raw, err := dec.DecodeInterface()
	if err != nil {
		return nil, err
	}
	return ValueOf(raw), nil
}
