package rle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidbyte/rle/errs"
	"github.com/solidbyte/rle/format"
	"github.com/solidbyte/rle/frame"
)

// TestEncode verifies the wrapper produces the documented wire format
func TestEncode(t *testing.T) {
	input := append(bytes.Repeat([]byte{0}, 6), bytes.Repeat([]byte{1}, 6)...)

	encoded := Encode(input)

	require.Equal(t, []byte{4, 0, 0, 0, 6, 0, 4, 0, 0, 0, 6, 1}, encoded)
}

// TestDecode verifies the wrapper expands run blocks
func TestDecode(t *testing.T) {
	decoded, err := Decode([]byte{4, 0, 0, 0, 6, 0, 4, 0, 0, 0, 6, 1})

	require.NoError(t, err)
	require.Equal(t, append(bytes.Repeat([]byte{0}, 6), bytes.Repeat([]byte{1}, 6)...), decoded)
}

func TestDecode_Truncated(t *testing.T) {
	_, err := Decode([]byte{4, 0, 0})
	require.ErrorIs(t, err, errs.ErrTruncatedBlock)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	input := append(bytes.Repeat([]byte("ab"), 50), bytes.Repeat([]byte{0xFF}, 1000)...)

	decoded, err := Decode(Encode(input))

	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	input := append(bytes.Repeat([]byte("metric=mem;"), 100), bytes.Repeat([]byte{0}, 2048)...)

	framed, err := Pack(input, frame.WithCompression(format.CompressionZstd))
	require.NoError(t, err)
	require.NotEmpty(t, framed)

	decoded, err := Unpack(framed)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestPack_InvalidOption(t *testing.T) {
	_, err := Pack([]byte{1, 2, 3}, frame.WithCompression(format.CompressionType(0x9)))
	require.Error(t, err)
}

func TestUnpack_Garbage(t *testing.T) {
	_, err := Unpack([]byte("no frame here"))
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}
