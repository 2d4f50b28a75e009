package xgxresult

import (
	"errors"
	"testing"
	"testing/quick"
)

// buildFrom makes a builder from generated input, skipping reserved keys.
func buildFrom(msg string, keys []string, vals []int32, kids []string) *Builder {
	b := New(msg, nil)
	for i, k := range keys {
		if k == MessageKey || k == ChildrenKey {
			continue
		}
		var v any
		if len(vals) > 0 {
			v = vals[i%len(vals)]
		}
		b.Set(k, v)
	}
	for _, k := range kids {
		b.Add(New(k, MapOf("len", len(k)), k))
	}
	return b
}

func TestQuickObjectRoundTrip(t *testing.T) {
	property := func(msg string, keys []string, vals []int32, kids []string) bool {
		b := buildFrom(msg, keys, vals, kids)
		return Equal(b, FromObject(b.ToObject()))
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("FromObject(ToObject(b)) must equal b: %v", err)
	}
}

func TestQuickJSONTextRoundTrip(t *testing.T) {
	property := func(msg string, keys []string, vals []int32, kids []string) bool {
		b := buildFrom(msg, keys, vals, kids)
		raw, err := b.ToObject().MarshalJSON()
		if err != nil {
			return false
		}
		v, err := ParseJSON(raw)
		if err != nil {
			return false
		}
		m, ok := v.(Map)
		return ok && Equal(b, FromObject(m))
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("json text round trip failed: %v", err)
	}
}

func TestQuickFrozenLineCount(t *testing.T) {
	property := func(msg string, kids []string) bool {
		f := buildFrom(msg, nil, nil, kids).Freeze()
		// root line plus, per child, message + one data line + one leaf line
		return len(f.Lines(0)) == 1+3*len(kids)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("line count property failed: %v", err)
	}
}

func TestQuickErrorsIsReflexive(t *testing.T) {
	property := func(msg string) bool {
		err := New(msg, nil, "child").Freeze()
		return errors.Is(err, err)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("errors.Is should be reflexive: %v", err)
	}
}
