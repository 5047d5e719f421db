package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoder(t *testing.T) {
	require.Equal(t, uint(0), Compact.Shift())
	require.Equal(t, uint(1), Wide.Shift())
	require.True(t, Compact.IsValid())
	require.True(t, Wide.IsValid())
	require.False(t, Coder(7).IsValid())
	require.Equal(t, "Compact", Compact.String())
	require.Equal(t, "Wide", Wide.String())
	require.Equal(t, "Unknown", Coder(7).String())
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name string
		want CompressionType
		ok   bool
	}{
		{"", CompressionNone, true},
		{"none", CompressionNone, true},
		{"ZSTD", CompressionZstd, true},
		{"s2", CompressionS2, true},
		{"Lz4", CompressionLZ4, true},
		{"gzip", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCompression(tt.name)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}

	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}
