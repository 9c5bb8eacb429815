package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		name     string
		cType    CompressionType
		expected string
	}{
		{"none compression", CompressionNone, "None"},
		{"zstd compression", CompressionZstd, "Zstd"},
		{"s2 compression", CompressionS2, "S2"},
		{"lz4 compression", CompressionLZ4, "LZ4"},
		{"unknown compression", CompressionType(0xFF), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.cType.String())
		})
	}
}

func TestCompressionType_Valid(t *testing.T) {
	require.True(t, CompressionNone.Valid())
	require.True(t, CompressionZstd.Valid())
	require.True(t, CompressionS2.Valid())
	require.True(t, CompressionLZ4.Valid())
	require.False(t, CompressionType(0).Valid())
	require.False(t, CompressionType(0xFF).Valid())
}
