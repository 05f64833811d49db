package mutables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSameKeys(t *testing.T) {
	t.Parallel()
	obj1 := NewNode(map[string]interface{}{
		"key1": "value1",
		"key2": map[string]interface{}{
			"nestedKey1": "nestedValue1",
			"nestedKey2": "nestedValue2",
		},
	})
	obj2 := NewNode(map[string]interface{}{
		"key2": map[string]interface{}{
			"nestedKey2": "nestedValue2",
			"nestedKey1": "different",
		},
		"key1": 12,
	})
	require.True(t, SameKeys(obj1, obj2))
	require.True(t, SameKeys(obj2, obj1))

	Write(obj2, Parse("key2.nestedKey3"), NewScalar(3))
	require.False(t, SameKeys(obj1, obj2))
	require.False(t, SameKeys(obj2, obj1))
}

func TestSameKeysMismatchedKinds(t *testing.T) {
	t.Parallel()
	m := NewNode(map[string]interface{}{"a": 1})
	seq := NewNode([]interface{}{1})
	require.True(t, SameKeys(m, NewScalar("x")))
	require.False(t, SameKeys(m, seq))
	require.False(t, SameKeys(
		NewNode(map[string]interface{}{"a": map[string]interface{}{"b": 1}}),
		NewNode(map[string]interface{}{"a": map[string]interface{}{"c": 1}}),
	))
	require.True(t, SameKeys(
		NewNode(map[string]interface{}{"a": map[string]interface{}{"b": 1}}),
		NewNode(map[string]interface{}{"a": 7}),
	))
}

func TestSameKeysSequences(t *testing.T) {
	t.Parallel()
	a := NewNode([]interface{}{map[string]interface{}{"x": 1}, 2})
	b := NewNode([]interface{}{map[string]interface{}{"x": "one"}, "two"})
	require.True(t, SameKeys(a, b))
	require.False(t, SameKeys(a, NewNode([]interface{}{1})))
	require.False(t, SameKeys(a, NewNode([]interface{}{map[string]interface{}{"y": 1}, 2})))
}
