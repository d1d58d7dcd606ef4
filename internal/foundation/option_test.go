package foundation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOption_SomeAndNone(t *testing.T) {
	some := Some(42)
	require.True(t, some.IsSome())
	require.False(t, some.IsNone())
	require.Equal(t, 42, some.Unwrap())

	none := None[int]()
	require.True(t, none.IsNone())
	require.False(t, none.IsSome())
}

func TestOption_UnwrapNone_Panics(t *testing.T) {
	require.Panics(t, func() {
		None[string]().Unwrap()
	})
}

func TestOption_UnwrapOr(t *testing.T) {
	require.Equal(t, "value", Some("value").UnwrapOr("fallback"))
	require.Equal(t, "fallback", None[string]().UnwrapOr("fallback"))
}

func TestOption_Get(t *testing.T) {
	value, ok := Some(7).Get()
	require.True(t, ok)
	require.Equal(t, 7, value)

	_, ok = None[int]().Get()
	require.False(t, ok)
}

func TestOption_String(t *testing.T) {
	require.Equal(t, "Some(7)", Some(7).String())
	require.Equal(t, "None", None[int]().String())
}
