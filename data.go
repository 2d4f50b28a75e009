// data.go: ordered key-value data attached to errors.
//
// Design:
//   • Representation: a []Field slice, so iteration order is insertion order.
//     Go maps have no order; rendering and serialization must be deterministic.
//   • Keys are unique. Set on an existing key replaces the value in place and
//     keeps the key's position, mirroring how JSON objects behave on reassign.
//   • Clone is shallow: nested List/Map values stay shared, like a spread copy.
//     Freezing uses a deep copy instead (see deepCopy in value.go).
package xgxresult

// Field is a single key-value entry of a Map.
type Field struct {
	Key string
	Val Value
}

// Map is an ordered mapping from string keys to Values.
type Map []Field

func (Map) Kind() Kind { return KindMap }
func (Map) sealed()    {}

// MapOf builds a Map from alternating key-value arguments.
//
// Rules:
//   • Pairs are read left-to-right as (key, value); values go through ValueOf.
//   • A non-string key drops the ENTIRE pair so later pairs stay aligned.
//   • A trailing key with no value becomes (key, Null).
//   • A repeated key keeps its first position and the last value.
func MapOf(kv ...any) Map {
	if len(kv) == 0 {
		return nil
	}
	out := make(Map, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			if i+1 < len(kv) {
				i += 2
			} else {
				i++
			}
			continue
		}
		var v Value = Null{}
		if i+1 < len(kv) {
			v = ValueOf(kv[i+1])
			i += 2
		} else {
			i++
		}
		out.Set(k, v)
	}
	return out
}

// Len returns the number of entries.
func (m Map) Len() int { return len(m) }

func (m Map) index(key string) int {
	for i := range m {
		if m[i].Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value stored under key.
func (m Map) Get(key string) (Value, bool) {
	if i := m.index(key); i >= 0 {
		return m[i].Val, true
	}
	return nil, false
}

// Has reports whether key is present.
func (m Map) Has(key string) bool { return m.index(key) >= 0 }

// Set stores val under key. A nil val is stored as Null.
func (m *Map) Set(key string, val Value) {
	if val == nil {
		val = Null{}
	}
	if i := m.index(key); i >= 0 {
		(*m)[i].Val = val
		return
	}
	*m = append(*m, Field{Key: key, Val: val})
}

// Delete removes key and reports whether it was present. Remaining entries
// keep their relative order.
func (m *Map) Delete(key string) bool {
	i := m.index(key)
	if i < 0 {
		return false
	}
	*m = append((*m)[:i:i], (*m)[i+1:]...)
	return true
}

// Keys returns the keys in insertion order.
func (m Map) Keys() []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, len(m))
	for i, f := range m {
		out[i] = f.Key
	}
	return out
}

// Clone returns a shallow copy with its own backing array.
func (m Map) Clone() Map {
	if len(m) == 0 {
		return Map{}
	}
	out := make(Map, len(m))
	copy(out, m)
	return out
}
