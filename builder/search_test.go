package builder

import (
	"testing"

	"github.com/arloliu/textbuf/format"
	"github.com/arloliu/textbuf/text"
	"github.com/stretchr/testify/require"
)

func TestIndexOf(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		target    string
		wantFirst int
		wantLast  int
	}{
		{"single unit", "banana", "a", 1, 5},
		{"multi unit", "banana", "ana", 1, 3},
		{"whole", "banana", "banana", 0, 0},
		{"missing", "banana", "x", -1, -1},
		{"longer than content", "ab", "abc", -1, -1},
		{"empty target", "abc", "", 0, 3},
		{"empty content", "", "a", -1, -1},
		{"wide content ascii target", "añana", "ana", 2, 2},
		{"wide content wide target", "ñañaña", "ña", 0, 4},
		{"compact content wide target", "banana", "ñ", -1, -1},
		{"surrogates", "a😀b😀", "😀", 1, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromString(tt.content)
			require.NoError(t, err)

			require.Equal(t, tt.wantFirst, b.IndexOfString(tt.target))
			require.Equal(t, tt.wantLast, b.LastIndexOfString(tt.target))
		})
	}
}

func TestIndexOf_TargetCoderIsTransparent(t *testing.T) {
	b, _ := FromString("key=value")
	wideTarget := text.MustNew([]byte{'=', 0, 'v', 0}, format.Wide)

	require.Equal(t, format.Compact, b.Coder())
	require.Equal(t, 3, b.IndexOf(wideTarget))
	require.Equal(t, 3, b.LastIndexOf(wideTarget))
	require.Equal(t, 3, b.IndexOf(unitSeq{'=', 'v'}))
}

func TestIndexOf_WideRequiresUnitAlignment(t *testing.T) {
	b := mustNew(t)
	// Bytes are 00 41 00 42: "A" (41 00) appears at odd offset 1 only.
	b.AppendUnits([]uint16{0x4100, 0x4200})

	require.Equal(t, -1, b.IndexOfString("A"))
	require.Equal(t, -1, b.LastIndexOfString("A"))

	b.AppendUnit('A')
	require.Equal(t, 2, b.IndexOfString("A"))
	require.Equal(t, 2, b.LastIndexOfString("A"))
}

func TestIndexOf_IgnoresStaleStorage(t *testing.T) {
	b := mustNew(t)
	b.AppendString("needle")
	b.Reset().AppendString("hay")

	require.Equal(t, -1, b.IndexOfString("dle"))
	require.Equal(t, -1, b.LastIndexOfString("dle"))
}

func TestLastIndexOf_OverlappingWide(t *testing.T) {
	b, _ := FromString("ééé")
	require.Equal(t, 1, b.LastIndexOfString("éé"))
	require.Equal(t, 0, b.IndexOfString("éé"))
}
