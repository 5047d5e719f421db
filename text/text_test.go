package text

import (
	"testing"

	"github.com/arloliu/textbuf/errs"
	"github.com/arloliu/textbuf/format"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("compact", func(t *testing.T) {
		txt, err := New([]byte("cat"), format.Compact)
		require.NoError(t, err)
		require.Equal(t, 3, txt.Len())
		require.Equal(t, uint16('a'), txt.CharAt(1))
		require.False(t, txt.Shared())
	})

	t.Run("wide", func(t *testing.T) {
		txt, err := New([]byte{'c', 0, 0xe9, 0}, format.Wide)
		require.NoError(t, err)
		require.Equal(t, 2, txt.Len())
		require.Equal(t, uint16(0x00e9), txt.CharAt(1))
		require.Equal(t, "cé", txt.String())
	})

	t.Run("invalid coder", func(t *testing.T) {
		_, err := New([]byte("x"), format.Coder(9))
		require.ErrorIs(t, err, errs.ErrInvalidCoder)
	})

	t.Run("compact value with wide unit", func(t *testing.T) {
		_, err := New([]byte{'o', 'k', 0xe9}, format.Compact)
		require.ErrorIs(t, err, errs.ErrInvalidCoder)
		require.Panics(t, func() { MustNew([]byte{0x80}, format.Compact) })

		txt, err := New([]byte{0x7f}, format.Compact)
		require.NoError(t, err)
		require.Equal(t, uint16(0x7f), txt.CharAt(0))
	})

	t.Run("odd wide length", func(t *testing.T) {
		_, err := New([]byte{1, 2, 3}, format.Wide)
		require.ErrorIs(t, err, errs.ErrInvalidUnitLength)
		require.Panics(t, func() { MustNew([]byte{1}, format.Wide) })
	})
}

func TestZeroValue(t *testing.T) {
	var txt Text
	require.Equal(t, 0, txt.Len())
	require.Equal(t, format.Compact, txt.Coder())
	require.Equal(t, "", txt.String())
}

func TestAlias(t *testing.T) {
	storage := []byte("shared")
	txt := Alias(storage, format.Compact)
	require.True(t, txt.Shared())
	require.Equal(t, "shared", txt.String())
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		coder format.Coder
		units []uint16
	}{
		{"empty", "", format.Compact, []uint16{}},
		{"ascii", "cat", format.Compact, []uint16{'c', 'a', 't'}},
		{"latin1 needs wide", "café", format.Wide, []uint16{'c', 'a', 'f', 0x00e9}},
		{"surrogate pair", "a😀", format.Wide, []uint16{'a', 0xd83d, 0xde00}},
		{"invalid utf8", "a\xffb", format.Wide, []uint16{'a', 0xfffd, 'b'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := FromString(tt.in)
			require.Equal(t, tt.coder, txt.Coder())
			require.Equal(t, tt.units, txt.Units())
			require.Len(t, txt.Bytes(), len(tt.units)<<tt.coder.Shift())
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "naïve café", "你好，世界", "emoji 😀 end"} {
		require.Equal(t, s, FromString(s).String())
	}
}

func TestDecodeWide_UnpairedSurrogate(t *testing.T) {
	txt := FromUnits([]uint16{'a', 0xd800, 'b'})
	require.Equal(t, "a�b", txt.String())
}

func TestCharAt_OutOfRange(t *testing.T) {
	txt := FromString("ab")
	for _, idx := range []int{-1, 2, 100} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
			}()
			txt.CharAt(idx)
		}()
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"abc", "abd", -1},
		{"abd", "abc", 1},
		{"ab", "abc", -1},
		{"abc", "ab", 1},
		{"abc", "abc", 0},
		{"", "", 0},
		{"é", "e", 0x00e9 - 'e'},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			require.Equal(t, tt.want, Compare(FromString(tt.a), FromString(tt.b)))
		})
	}
}

func TestEqual_AcrossCoders(t *testing.T) {
	compact := FromString("abc")
	wide := MustNew([]byte{'a', 0, 'b', 0, 'c', 0}, format.Wide)

	require.Equal(t, format.Compact, compact.Coder())
	require.Equal(t, format.Wide, wide.Coder())
	require.True(t, compact.Equal(wide))
	require.False(t, compact.Equal(FromString("abd")))
}

func TestIsCompact(t *testing.T) {
	require.True(t, IsCompact(0))
	require.True(t, IsCompact(127))
	require.False(t, IsCompact(128))
	require.False(t, IsCompact(0xffff))
}
