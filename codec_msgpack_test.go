package xgxresult

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack"
)

func TestMsgpack_RoundTripPreservesOrder(t *testing.T) {
	t.Parallel()
	obj := New("m", MapOf("z", 1, "a", -2.5, "big", int64(1)<<40, "flags", []any{true, nil, "s"}),
		New("inner", MapOf("y", "v")),
		"leaf",
	).ToObject()

	raw, err := MarshalMsgpack(obj)
	require.NoError(t, err)

	back, err := UnmarshalMsgpack(raw)
	require.NoError(t, err)
	assert.True(t, Equal(obj, back), "got %s", compactText(back))
	assert.Equal(t, []string{"z", "a", "big", "flags", MessageKey, ChildrenKey}, back.(Map).Keys())
}

func TestMsgpack_MapImplementsCustomCodec(t *testing.T) {
	t.Parallel()
	type envelope struct {
		ID  int `msgpack:"id"`
		Err Map `msgpack:"err"`
	}
	in := envelope{ID: 9, Err: New("m", MapOf("k", "v"), "c").ToObject()}

	raw, err := msgpack.Marshal(in)
	require.NoError(t, err)

	var out envelope
	require.NoError(t, msgpack.Unmarshal(raw, &out))
	assert.Equal(t, 9, out.ID)
	assert.True(t, Equal(in.Err, out.Err))
	assert.True(t, Equal(New("m", MapOf("k", "v"), "c"), FromObject(out.Err)))
}

func TestMsgpack_NodesUseNodeShape(t *testing.T) {
	t.Parallel()
	raw, err := MarshalMsgpack(New("m", MapOf("k", 1)).Freeze())
	require.NoError(t, err)

	back, err := UnmarshalMsgpack(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"message":"m","data":{"k":1},"inners":[]}`, compactText(back))
}

func TestMsgpack_DecodeNilIntoMap(t *testing.T) {
	t.Parallel()
	raw, err := msgpack.Marshal(nil)
	require.NoError(t, err)

	m := MapOf("a", 1)
	require.NoError(t, msgpack.Unmarshal(raw, &m))
	assert.Nil(t, m)

	raw, err = MarshalMsgpack(List{Number(1)})
	require.NoError(t, err)
	assert.Error(t, msgpack.Unmarshal(raw, &m))
}

func TestMsgpack_TruncatedInputFails(t *testing.T) {
	t.Parallel()
	raw, err := MarshalMsgpack(MapOf(MessageKey, "m", "k", "value"))
	require.NoError(t, err)
	_, err = UnmarshalMsgpack(raw[:len(raw)-2])
	assert.Error(t, err)
}

func TestDecodeMsgpackStream(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	for _, msg := range []string{"one", "two"} {
		raw, err := MarshalMsgpack(MapOf(MessageKey, msg))
		require.NoError(t, err)
		buf.Write(raw)
	}

	var got []string
	err := DecodeMsgpackStream(&buf, func(v Value) error {
		got = append(got, FromObject(v.(Map)).Message)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, got)

	assert.NoError(t, DecodeMsgpackStream(bytes.NewReader(nil), func(Value) error { return nil }))
}
