// Package rle implements an escape-coded run-length byte codec for light,
// dependency-free compression of byte streams with long runs.
//
// The codec scans its input in a single pass and replaces every run of 6 or
// more identical bytes with a fixed 6-byte block: the escape marker 0x04, the
// run length as a 4-byte big-endian unsigned integer, then the repeated byte
// value. Shorter runs pass through literally, so the output never exceeds the
// input in length.
//
// # Core Features
//
//   - Total, allocation-light encoder: any input encodes without error
//   - Symmetric decoder that expands run blocks back into their runs
//   - Optional self-describing frame with xxHash64 payload checksums
//   - Optional outer compression of framed payloads (Zstd, S2, LZ4)
//
// # Basic Usage
//
// Encoding and decoding the raw stream:
//
//	import "github.com/solidbyte/rle"
//
//	encoded := rle.Encode(data)
//	decoded, err := rle.Decode(encoded)
//
// Framing for storage or transmission:
//
//	framed, err := rle.Pack(data,
//	    frame.WithCompression(format.CompressionZstd),
//	)
//	...
//	original, err := rle.Unpack(framed)
//
// # Caveat: literal 0x04 bytes
//
// The escape marker doubles as a legal literal value, and short runs of 0x04
// are emitted unescaped. Inputs containing fewer than 6 consecutive 0x04
// bytes therefore do not survive a decode round-trip; see the encoding
// package documentation for details.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoding and
// frame packages, simplifying the most common use cases. For fine-grained
// control (append-style APIs, header introspection), use those packages
// directly.
package rle

import (
	"github.com/solidbyte/rle/encoding"
	"github.com/solidbyte/rle/frame"
)

// Encode returns the run-length encoded form of data.
//
// Encode is total: every input, including nil, produces a deterministic
// output with no error path. The returned slice is newly allocated.
func Encode(data []byte) []byte {
	return encoding.Encode(data)
}

// Decode reconstructs the original bytes from a stream produced by Encode.
//
// Returns errs.ErrTruncatedBlock when an escape marker is not followed by a
// complete 6-byte run block.
func Decode(data []byte) ([]byte, error) {
	return encoding.Decode(data)
}

// Pack run-length encodes data and wraps it in a self-describing frame.
//
// Available options:
//   - frame.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - frame.WithChecksum(true|false)
//
// Example:
//
//	framed, err := rle.Pack(data, frame.WithCompression(format.CompressionS2))
func Pack(data []byte, opts ...frame.Option) ([]byte, error) {
	encoder, err := frame.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(data)
}

// Unpack parses a frame produced by Pack and returns the original bytes.
func Unpack(data []byte) ([]byte, error) {
	return frame.Decode(data)
}
