package xgxresult

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError_Nil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, FromError(nil))
}

func TestFromError_ForeignChainBecomesTree(t *testing.T) {
	t.Parallel()
	base := errors.New("disk full")
	err := fmt.Errorf("save: %w", errors.Join(base, errors.New("quota")))

	b := FromError(err)
	require.NotNil(t, b)
	assert.Equal(t, err.Error(), b.Message)
	require.Len(t, b.Children, 1)
	join := b.Children[0]
	require.Len(t, join.Children, 2)
	assert.Equal(t, "disk full", join.Children[0].Message)
	assert.Equal(t, "quota", join.Children[1].Message)
	assert.Equal(t, 0, join.Children[0].Data.Len())
}

func TestFromError_PkgErrorsCause(t *testing.T) {
	t.Parallel()
	err := pkgerrors.Wrap(errors.New("root cause"), "context")
	b := FromError(err)

	assert.Equal(t, "context: root cause", b.Message)
	assert.True(t, HasMessage(b.Freeze(), "root cause"))
}

func TestFromError_FrozenConvertsFieldByField(t *testing.T) {
	t.Parallel()
	f := New("m", MapOf("k", 1), "c").Freeze()
	b := FromError(f)
	assert.True(t, Equal(f, b))

	b.Data.Set("k", Number(2))
	v, _ := f.Data().Get("k")
	assert.Equal(t, Number(1), v)
}

func TestFromError_CycleIsCut(t *testing.T) {
	t.Parallel()
	a := &cyclic{msg: "a"}
	a.next = &cyclic{msg: "b", next: a}

	b := FromError(a)
	require.Len(t, b.Children, 1)
	assert.Equal(t, "b", b.Children[0].Message)
	assert.Empty(t, b.Children[0].Children)
}

func TestJoin_SkipsNilsAndKeepsOrder(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Join("none failed", nil, nil))

	b := Join("2 of 4 sub-tasks failed", nil, errors.New("task 2"), nil, New("task 4", MapOf("retry", true)).Freeze())
	require.NotNil(t, b)
	assert.Equal(t, []string{
		`! 2 of 4 sub-tasks failed`,
		`  ! task 2`,
		`  ! task 4`,
		`  + "retry": true`,
	}, b.Freeze().Lines(0))
}
