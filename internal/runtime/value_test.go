package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueEqual(t *testing.T) {
	require.True(t, (&IntegerValue{Value: 3}).Equal(&IntegerValue{Value: 3}))
	require.False(t, (&IntegerValue{Value: 3}).Equal(&IntegerValue{Value: 4}))
	require.False(t, (&IntegerValue{Value: 3}).Equal(&BooleanValue{Value: true}))

	require.True(t, (&StringValue{Value: "a"}).Equal(&StringValue{Value: "a"}))

	arr1 := &ArrayValue{Elements: []Value{&IntegerValue{Value: 1}, &IntegerValue{Value: 2}}}
	arr2 := &ArrayValue{Elements: []Value{&IntegerValue{Value: 1}, &IntegerValue{Value: 2}}}
	arr3 := &ArrayValue{Elements: []Value{&IntegerValue{Value: 1}}}
	require.True(t, arr1.Equal(arr2))
	require.False(t, arr1.Equal(arr3))
}

func TestDictIndexOfKey(t *testing.T) {
	d := &DictValue{
		Keys:   []Value{&StringValue{Value: "a"}, &IntegerValue{Value: 1}},
		Values: []Value{&IntegerValue{Value: 10}, &IntegerValue{Value: 20}},
	}
	require.Equal(t, 0, d.IndexOfKey(&StringValue{Value: "a"}))
	require.Equal(t, 1, d.IndexOfKey(&IntegerValue{Value: 1}))
	require.Equal(t, -1, d.IndexOfKey(&StringValue{Value: "missing"}))
}

func TestDeepCopyScalarsReturnIdentity(t *testing.T) {
	i := &IntegerValue{Value: 5}
	require.Same(t, i, DeepCopy(i))

	fv := NewFunctionValue(nil, "f")
	require.Same(t, fv, DeepCopy(fv))
}

func TestDeepCopyStringIsFreshButEqual(t *testing.T) {
	s := &StringValue{Value: "hi"}
	cp := DeepCopy(s).(*StringValue)
	require.NotSame(t, s, cp)
	require.True(t, s.Equal(cp))
	require.Equal(t, 0, cp.RefCount)
}

func TestDeepCopyArrayIsRecursiveAndAddRefsChildren(t *testing.T) {
	inner := &StringValue{Value: "x"}
	arr := &ArrayValue{Elements: []Value{inner}}
	cp := DeepCopy(arr).(*ArrayValue)

	require.NotSame(t, arr, cp)
	require.Len(t, cp.Elements, 1)
	copiedInner := cp.Elements[0].(*StringValue)
	require.NotSame(t, inner, copiedInner)
	require.Equal(t, 1, copiedInner.RefCount)
	require.Equal(t, 0, inner.RefCount)
}

func TestAddRefAndReleaseRoundTrip(t *testing.T) {
	s := &StringValue{Value: "x"}
	AddRef(s)
	require.Equal(t, 1, s.RefCount)
	Release(s)
	require.Equal(t, 0, s.RefCount)

	// Scalars are no-ops.
	i := &IntegerValue{Value: 1}
	require.Same(t, i, AddRef(i))
}

func TestReleaseArrayTransitivelyReleasesChildren(t *testing.T) {
	child := &StringValue{Value: "x", RefCount: 1}
	arr := &ArrayValue{Elements: []Value{child}, RefCount: 1}
	Release(arr)
	require.Equal(t, 0, arr.RefCount)
	require.Equal(t, 0, child.RefCount)
}

func TestRenderTopLevelUnquotesStringsAtTopLevelOnly(t *testing.T) {
	require.Equal(t, "hi", RenderTopLevel(&StringValue{Value: "hi"}))
	require.Equal(t, `["hi", 1]`, RenderTopLevel(&ArrayValue{
		Elements: []Value{&StringValue{Value: "hi"}, &IntegerValue{Value: 1}},
	}))
	require.Equal(t, "true", RenderTopLevel(&BooleanValue{Value: true}))
}
