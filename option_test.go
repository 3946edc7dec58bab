package argot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce_String_IsIdentity(t *testing.T) {
	t.Parallel()
	value, err := coerce(Str, "-anything-")
	require.NoError(t, err)
	assert.Equal(t, "-anything-", value)
}

func TestCoerce_IntegerLiterals(t *testing.T) {
	t.Parallel()
	cases := map[string]int{
		"0":    0,
		"202":  202,
		"-5":   -5,
		"0x1F": 31,
		"0o17": 15,
	}
	for token, want := range cases {
		value, err := coerce(Int, token)
		require.NoError(t, err, "token %q", token)
		assert.Equal(t, want, value, "token %q", token)
	}

	_, err := coerce(Int, "2.5")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidNumericLiteral)
}

func TestCoerce_FloatLiterals(t *testing.T) {
	t.Parallel()
	value, err := coerce(Float, "2.2")
	require.NoError(t, err)
	assert.Equal(t, 2.2, value)

	value, err = coerce(Float, "1e3")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, value)

	_, err = coerce(Float, "foo")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidNumericLiteral)
}

func TestLooksLikeValue(t *testing.T) {
	t.Parallel()
	assert.True(t, looksLikeValue("foo"))
	assert.True(t, looksLikeValue("-"), "a bare dash is the conventional stdin marker")
	assert.True(t, looksLikeValue("-5"))
	assert.True(t, looksLikeValue("-0.5"))
	assert.False(t, looksLikeValue("-x"))
	assert.False(t, looksLikeValue("--opt"))
}

func TestKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "boolean", Bool.String())
	assert.Equal(t, "string", Str.String())
	assert.Equal(t, "integer", Int.String())
	assert.Equal(t, "float", Float.String())
}
