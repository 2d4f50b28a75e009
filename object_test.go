package xgxresult

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromObject_StripsReservedKeys(t *testing.T) {
	t.Parallel()
	b := FromObject(MapOf(MessageKey, "m", ChildrenKey, List{String("c")}, "extra", 1))

	assert.Equal(t, "m", b.Message)
	assert.True(t, Equal(MapOf("extra", 1), b.Data), "got %s", compactText(b.Data))
	require.Len(t, b.Children, 1)
	assert.Equal(t, "c", b.Children[0].Message)
}

func TestFromObject_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := MapOf(MessageKey, "m", "extra", 1)
	_ = FromObject(in)
	assert.Equal(t, []string{MessageKey, "extra"}, in.Keys())
}

func TestFromObject_MessageVariants(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", FromObject(MapOf("x", 1)).Message)
	assert.Equal(t, "", FromObject(MapOf(MessageKey, nil)).Message)
	assert.Equal(t, "42", FromObject(MapOf(MessageKey, 42)).Message)
	assert.Equal(t, `{"a":1}`, FromObject(MapOf(MessageKey, MapOf("a", 1))).Message)
}

func TestFromObject_NonListChildrenYieldNone(t *testing.T) {
	t.Parallel()
	b := FromObject(MapOf(MessageKey, "m", ChildrenKey, "not a list"))
	assert.Empty(t, b.Children)
	assert.False(t, b.Data.Has(ChildrenKey))
}

func TestFromObject_ClassifiesEveryChildShape(t *testing.T) {
	t.Parallel()
	frozen := New("frozen", MapOf("f", 1), "frozen leaf").Freeze()
	kids := List{
		Null{},
		String("leaf"),
		MapOf(MessageKey, "nested", "n", true, ChildrenKey, List{String("deep"), Null{}}),
		frozen,
		MapOf("message", "node", "data", MapOf("d", 1), "inners", List{String("node leaf")}),
	}
	b := FromObject(MapOf(MessageKey, "root", ChildrenKey, kids))

	require.Len(t, b.Children, 4)

	assert.Equal(t, "leaf", b.Children[0].Message)

	nested := b.Children[1]
	assert.Equal(t, "nested", nested.Message)
	assert.Equal(t, []string{"n"}, nested.Data.Keys())
	require.Len(t, nested.Children, 1)
	assert.Equal(t, "deep", nested.Children[0].Message)

	assert.True(t, Equal(frozen, b.Children[2]))

	node := b.Children[3]
	assert.Equal(t, "node", node.Message)
	assert.True(t, Equal(MapOf("d", 1), node.Data))
	require.Len(t, node.Children, 1)
	assert.Equal(t, "node leaf", node.Children[0].Message)
}

func TestFromObject_CopiesBuilderEntries(t *testing.T) {
	t.Parallel()
	src := New("src", MapOf("a", 1))
	b := FromObject(MapOf(MessageKey, "m", ChildrenKey, List{src}))

	require.Len(t, b.Children, 1)
	assert.NotSame(t, src, b.Children[0])
	assert.True(t, Equal(src, b.Children[0]))
}

func TestToObject_OrderDataThenMessageThenChildren(t *testing.T) {
	t.Parallel()
	obj := New("m", MapOf("b", 1, "a", 2), "child").ToObject()
	assert.Equal(t, []string{"b", "a", MessageKey, ChildrenKey}, obj.Keys())

	msg, _ := obj.Get(MessageKey)
	assert.Equal(t, String("m"), msg)
	kids, _ := obj.Get(ChildrenKey)
	assert.True(t, Equal(List{MapOf(MessageKey, "child")}, kids))
}

func TestToObject_EmptyChildrenOmitted(t *testing.T) {
	t.Parallel()
	obj := New("m", MapOf("x", 1)).ToObject()
	assert.False(t, obj.Has(ChildrenKey))

	stray := New("m", MapOf(ChildrenKey, 5)).ToObject()
	assert.Equal(t, []string{MessageKey}, stray.Keys(), "a stray children data key is not emitted")
}

func TestToObject_MessageOverwritesCollidingDataKey(t *testing.T) {
	t.Parallel()
	obj := New("real", MapOf("a", 1, MessageKey, "stale", "b", 2)).ToObject()
	assert.Equal(t, []string{"a", MessageKey, "b"}, obj.Keys())
	msg, _ := obj.Get(MessageKey)
	assert.Equal(t, String("real"), msg)
}

func TestToObject_DoesNotMutateBuilder(t *testing.T) {
	t.Parallel()
	b := New("m", MapOf("x", 1), "c")
	_ = b.ToObject()
	assert.Equal(t, []string{"x"}, b.Data.Keys())
}

func TestToObject_PassesThroughObjectShapedChildren(t *testing.T) {
	t.Parallel()
	shaped := New("shaped", MapOf(MessageKey, "payload"))
	plain := New("plain", nil)
	parent := New("parent", nil, shaped, plain)

	obj := parent.ToObject()
	kids, ok := obj.Get(ChildrenKey)
	require.True(t, ok)
	list := kids.(List)
	require.Len(t, list, 2)

	assert.Same(t, shaped, list[0], "object-shaped child is passed through unconverted")
	_, isMap := list[0].(Map)
	assert.False(t, isMap, "no error-within-error wrapping")

	assert.True(t, Equal(MapOf(MessageKey, "plain"), list[1]))
}

func TestToObject_PassThroughSurvivesJSONText(t *testing.T) {
	t.Parallel()
	shaped := New("shaped", MapOf(MessageKey, "payload"))
	parent := New("parent", nil, shaped)

	raw, err := parent.ToObject().MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"error":"parent","inners":[{"message":"shaped","data":{"error":"payload"},"inners":[]}]}`,
		string(raw))

	v, err := ParseJSON(raw)
	require.NoError(t, err)
	back := FromObject(v.(Map))
	require.Len(t, back.Children, 1)
	assert.Equal(t, "shaped", back.Children[0].Message)
	assert.True(t, Equal(MapOf(MessageKey, "payload"), back.Children[0].Data))
}

func TestToObject_PassThroughNestedDeeper(t *testing.T) {
	t.Parallel()
	shaped := New("shaped", MapOf(ChildrenKey, "payload"), "under shaped")
	mid := New("mid", nil, shaped)
	root := New("root", nil, mid)

	obj := root.ToObject()
	kids, _ := obj.Get(ChildrenKey)
	midObj := kids.(List)[0].(Map)
	midKids, _ := midObj.Get(ChildrenKey)
	assert.Same(t, shaped, midKids.(List)[0])

	back := FromObject(obj)
	assert.True(t, Equal(root, back))
}

func TestRoundTrip_FromObjectOfToObject(t *testing.T) {
	t.Parallel()
	b := New("outer", MapOf("x", 1, "nested", MapOf("deep", []any{true, nil, "s"})),
		New("inner", MapOf("y", "z"), "leaf"),
		"sibling",
	)
	back := FromObject(b.ToObject())
	assert.True(t, Equal(b, back))
	assert.NotSame(t, b.Children[0], back.Children[0])
}
