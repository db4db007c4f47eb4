package stub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView() *Restricted {
	return NewRestricted(map[string]any{
		"a": 1,
		"b": map[string]any{"c": 2},
	})
}

func TestRestricted_GetKnownKey(t *testing.T) {
	v := newTestView()

	got, err := v.Get("a", false)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestRestricted_GetUnknownKey(t *testing.T) {
	v := newTestView()

	_, err := v.Get("z", false)
	var undefined *UndefinedKeyError
	require.ErrorAs(t, err, &undefined)
	assert.Equal(t, "z", undefined.Key)
}

func TestRestricted_GetUnknownKeyRelaxed(t *testing.T) {
	v := newTestView()

	got, err := v.Get("z", true)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRestricted_SetThenGet(t *testing.T) {
	v := newTestView()

	require.NoError(t, v.Set("a", 5, false))
	got, err := v.Get("a", false)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestRestricted_SetUnknownKey(t *testing.T) {
	v := newTestView()

	err := v.Set("z", 1, false)
	var undefined *UndefinedKeyError
	require.ErrorAs(t, err, &undefined)
	assert.Equal(t, "z", undefined.Key)
}

func TestRestricted_RelaxedSetMakesKeyVisible(t *testing.T) {
	v := newTestView()

	// The guard checks the live backing map: once a key is introduced
	// under relaxation, plain access works.
	require.NoError(t, v.Set("z", 7, true))

	got, err := v.Get("z", false)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	require.NoError(t, v.Set("z", 8, false))
}

func TestRestricted_NestedGet(t *testing.T) {
	v := newTestView()

	raw, err := v.Get("b", false)
	require.NoError(t, err)
	nested, ok := raw.(*Restricted)
	require.True(t, ok, "nested maps must come back wrapped")

	got, err := nested.Get("c", false)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	_, err = nested.Get("missing", false)
	var undefined *UndefinedKeyError
	assert.ErrorAs(t, err, &undefined)
}

func TestRestricted_DeepMergeNested(t *testing.T) {
	v := NewRestricted(map[string]any{
		"a": 1,
		"b": map[string]any{"c": 2, "d": 3},
	})

	require.NoError(t, v.DeepMerge(map[string]any{"b": map[string]any{"c": 9}}, false))

	assert.Equal(t, map[string]any{
		"a": 1,
		"b": map[string]any{"c": 9, "d": 3},
	}, v.Unwrap())
}

func TestRestricted_DeepMergeIntoScalar(t *testing.T) {
	v := newTestView()

	err := v.DeepMerge(map[string]any{"a": map[string]any{"x": 1}}, false)
	var badMerge *InvalidMergeTargetError
	require.ErrorAs(t, err, &badMerge)
	assert.Equal(t, "a", badMerge.Key)
}

func TestRestricted_DeepMergeIntoScalarRelaxed(t *testing.T) {
	v := newTestView()

	require.NoError(t, v.DeepMerge(map[string]any{"a": map[string]any{"x": 1}}, true))

	got := v.Unwrap()
	assert.Equal(t, map[string]any{"x": 1}, got["a"])
}

func TestRestricted_DeepMergeUnknownKey(t *testing.T) {
	v := newTestView()

	err := v.DeepMerge(map[string]any{"z": map[string]any{"x": 1}}, false)
	var undefined *UndefinedKeyError
	require.ErrorAs(t, err, &undefined)
	assert.Equal(t, "z", undefined.Key)

	err = v.DeepMerge(map[string]any{"z": 1}, false)
	assert.ErrorAs(t, err, &undefined)
}

func TestRestricted_DeepMergeUnknownKeyRelaxed(t *testing.T) {
	v := newTestView()

	require.NoError(t, v.DeepMerge(map[string]any{"z": map[string]any{"x": 1}}, true))

	got := v.Unwrap()
	assert.Equal(t, map[string]any{"x": 1}, got["z"])
}

func TestRestricted_DeepMergeScalar(t *testing.T) {
	v := newTestView()

	require.NoError(t, v.DeepMerge(map[string]any{"a": "updated"}, false))

	got, err := v.Get("a", false)
	require.NoError(t, err)
	assert.Equal(t, "updated", got)
}

func TestRestricted_UnwrapCleanliness(t *testing.T) {
	v := NewRestricted(map[string]any{
		"a": 1,
		"b": map[string]any{"c": 2},
		"data": []any{
			map[string]any{"id": "x"},
		},
	})

	require.NoError(t, v.Set("a", 5, false))
	require.NoError(t, v.DeepMerge(map[string]any{"b": map[string]any{"c": 9}}, false))

	got := v.Unwrap()
	want := map[string]any{
		"a": 5,
		"b": map[string]any{"c": 9},
		"data": []any{
			map[string]any{"id": "x"},
		},
	}
	assert.Equal(t, want, got)

	// No wrapper artifacts anywhere, including inside slices.
	_, plain := got["b"].(map[string]any)
	assert.True(t, plain)
	items, ok := got["data"].([]any)
	require.True(t, ok)
	_, plain = items[0].(map[string]any)
	assert.True(t, plain)
}

func TestRestricted_NilMap(t *testing.T) {
	v := NewRestricted(nil)
	assert.Equal(t, 0, v.Len())

	_, err := v.Get("anything", false)
	var undefined *UndefinedKeyError
	assert.ErrorAs(t, err, &undefined)

	assert.Equal(t, map[string]any{}, v.Unwrap())
}

func TestRestricted_Has(t *testing.T) {
	v := newTestView()
	assert.True(t, v.Has("a"))
	assert.False(t, v.Has("z"))
}
