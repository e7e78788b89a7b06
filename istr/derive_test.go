package istr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/lazystring/istr"
)

func TestPattern_CompilesRenderedText(t *testing.T) {
	s := istr.MustNew([]string{"h", "o"}, []any{".*"})

	re, err := s.Pattern()
	require.NoError(t, err)
	assert.True(t, re.MatchString("hello"))
	assert.False(t, re.MatchString("world"))
}

func TestPattern_PropagatesCompileError(t *testing.T) {
	s := istr.MustNew([]string{"("}, nil)

	_, err := s.Pattern()
	assert.Error(t, err)
}

func TestBytes_UTF8(t *testing.T) {
	s := istr.MustNew([]string{"caf", ""}, []any{"é"})

	b, err := s.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("café"), b)
}

func TestBytesIn_NamedCharset(t *testing.T) {
	s := istr.MustNew([]string{"café"}, nil)

	b, err := s.BytesIn("ISO-8859-1")
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9}, b)
}

func TestBytesIn_UnsupportedCharset(t *testing.T) {
	s := istr.MustNew([]string{"x"}, nil)

	_, err := s.BytesIn("no-such-charset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported encoding")
}

func TestDerive_PropagatesRenderFailure(t *testing.T) {
	s := istr.MustNew([]string{"", ""}, []any{func(a, b int) int { return 0 }})

	_, err := s.Pattern()
	assert.ErrorIs(t, err, istr.ErrCallableArity)

	_, err = s.Bytes()
	assert.ErrorIs(t, err, istr.ErrCallableArity)

	_, err = s.BytesIn("ISO-8859-1")
	assert.ErrorIs(t, err, istr.ErrCallableArity)
}
