package encoding

import (
	"fmt"
	"math"
	"slices"

	"github.com/solidbyte/rle/endian"
	"github.com/solidbyte/rle/errs"
)

const (
	// EscapeMarker is the sentinel byte value that introduces a run block in
	// the encoded stream. It is the ASCII End-of-Transmission code point.
	EscapeMarker byte = 0x04

	// MinRunLength is the run length at which the encoder switches from
	// literal bytes to a run block. A block costs exactly BlockSize bytes,
	// so shorter runs are cheaper to emit literally.
	MinRunLength = 6

	// BlockSize is the fixed size of a run block on the wire:
	// 1 marker byte + 4 length bytes + 1 value byte.
	BlockSize = 6

	// MaxRunLength is the largest run a single block can represent. Longer
	// runs are split across multiple maximal blocks.
	MaxRunLength = math.MaxUint32
)

// Run counts travel in network byte order.
var engine = endian.GetBigEndianEngine()

// Encode returns the run-length encoded form of src.
//
// Encode is a total function: every input, including the empty slice, encodes
// deterministically and without error. The output never exceeds the input in
// length. The returned slice is newly allocated and owned by the caller.
func Encode(src []byte) []byte {
	return AppendEncode(make([]byte, 0, len(src)), src)
}

// AppendEncode appends the run-length encoded form of src to dst and returns
// the extended slice, following the append-style codec convention of
// klauspost/compress. Passing nil dst allocates a fresh output buffer.
func AppendEncode(dst, src []byte) []byte {
	if len(src) == 0 {
		return dst
	}

	// Pending run accumulator. length counts consecutive trailing
	// occurrences of value; it is 64-bit so runs past MaxRunLength
	// accumulate losslessly and are split on flush.
	value := src[0]
	var length uint64

	for _, b := range src {
		if b == value {
			length++
			continue
		}

		dst = appendRun(dst, value, length)
		value = b
		length = 1
	}

	return appendRun(dst, value, length)
}

// Decode reconstructs the original byte sequence from a run-length encoded
// stream produced by Encode.
//
// Every 0x04 byte in src is interpreted as the start of a 6-byte run block;
// see the package documentation for the literal-0x04 ambiguity this implies.
// Returns errs.ErrTruncatedBlock if a marker is followed by fewer than 5
// bytes, and errs.ErrRunTooLarge if a block length cannot be represented as
// a slice length on this platform.
func Decode(src []byte) ([]byte, error) {
	return AppendDecode(make([]byte, 0, len(src)), src)
}

// AppendDecode appends the decoded form of src to dst and returns the
// extended slice. On error the bytes decoded so far are returned along with
// the error.
func AppendDecode(dst, src []byte) ([]byte, error) {
	for i := 0; i < len(src); {
		b := src[i]
		if b != EscapeMarker {
			dst = append(dst, b)
			i++

			continue
		}

		if len(src)-i < BlockSize {
			return dst, fmt.Errorf("%w: marker at offset %d with %d bytes remaining",
				errs.ErrTruncatedBlock, i, len(src)-i)
		}

		length, err := runLength(engine.Uint32(src[i+1 : i+5]), math.MaxInt)
		if err != nil {
			return dst, fmt.Errorf("%w at offset %d", err, i)
		}

		value := src[i+5]
		i += BlockSize

		n := len(dst)
		dst = slices.Grow(dst, length)[:n+length]
		for j := n; j < len(dst); j++ {
			dst[j] = value
		}
	}

	return dst, nil
}

// runLength converts a wire run count to int for buffer sizing. A count
// above limit is rejected instead of wrapping; with limit = math.MaxInt this
// only triggers on 32-bit platforms, where a count near MaxRunLength cannot
// be represented as a slice length.
func runLength(raw uint32, limit uint64) (int, error) {
	if uint64(raw) > limit {
		return 0, fmt.Errorf("%w: run length %d exceeds platform limit %d",
			errs.ErrRunTooLarge, raw, limit)
	}

	return int(raw), nil
}

// appendRun flushes a pending run into dst.
//
// Runs of MinRunLength or more become run blocks; shorter runs are emitted as
// literal bytes. Runs longer than MaxRunLength are split into maximal blocks
// followed by one final block or literal segment for the remainder. A zero
// length run emits nothing, which only occurs for empty input.
func appendRun(dst []byte, value byte, length uint64) []byte {
	for length > MaxRunLength {
		dst = appendBlock(dst, value, MaxRunLength)
		length -= MaxRunLength
	}

	if length >= MinRunLength {
		return appendBlock(dst, value, uint32(length))
	}

	for i := uint64(0); i < length; i++ {
		dst = append(dst, value)
	}

	return dst
}

// appendBlock emits one 6-byte run block: marker, big-endian count, value.
func appendBlock(dst []byte, value byte, length uint32) []byte {
	dst = append(dst, EscapeMarker)
	dst = engine.AppendUint32(dst, length)

	return append(dst, value)
}
