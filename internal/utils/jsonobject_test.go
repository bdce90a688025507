package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONObjectPreservesInsertionOrder(t *testing.T) {
	obj := NewJSONObject()
	require.NoError(t, obj.Put("zebra", 1))
	require.NoError(t, obj.Put("apple", 2))
	require.NoError(t, obj.Put("mango", 3))

	require.Equal(t, `{"zebra":1,"apple":2,"mango":3}`, obj.String())
}

func TestJSONObjectOverwriteKeepsPosition(t *testing.T) {
	obj := NewJSONObject()
	require.NoError(t, obj.Put("a", 1))
	require.NoError(t, obj.Put("b", 2))
	require.NoError(t, obj.Put("a", 9))

	require.Equal(t, 2, obj.Len())
	require.Equal(t, `{"a":9,"b":2}`, obj.String())
}

func TestJSONObjectIndentString(t *testing.T) {
	obj := NewJSONObject()
	require.NoError(t, obj.Put("code", "{{code}}"))
	require.NoError(t, obj.Put("quantity", 0))

	out, err := obj.IndentString()
	require.NoError(t, err)
	require.Equal(t, "{\n  \"code\": \"{{code}}\",\n  \"quantity\": 0\n}", out)
}

func TestJSONObjectEscapesKeys(t *testing.T) {
	obj := NewJSONObject()
	require.NoError(t, obj.Put(`we"ird`, true))
	require.Equal(t, `{"we\"ird":true}`, obj.String())
}
