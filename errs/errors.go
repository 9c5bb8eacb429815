// Package errs defines the sentinel error values returned by the rle
// decoding and frame parsing paths.
//
// Encoding never fails; every error in this package originates from
// consuming bytes that were produced elsewhere and may be truncated,
// corrupted, or of a different format entirely.
package errs

import "errors"

var (
	// ErrTruncatedBlock is returned when an escape marker is found with
	// fewer than 5 bytes remaining, so the 6-byte run block cannot be read.
	ErrTruncatedBlock = errors.New("truncated run block after escape marker")

	// ErrRunTooLarge is returned when a run block carries a length the
	// platform cannot represent as a slice length. Only reachable on
	// 32-bit builds.
	ErrRunTooLarge = errors.New("run block length exceeds platform limit")

	// ErrInvalidMagic is returned when frame data does not start with the
	// frame magic number.
	ErrInvalidMagic = errors.New("invalid frame magic number")

	// ErrUnsupportedVersion is returned when the frame version byte is not
	// a version this library understands.
	ErrUnsupportedVersion = errors.New("unsupported frame version")

	// ErrInvalidHeaderSize is returned when frame data is too short to
	// contain a complete header.
	ErrInvalidHeaderSize = errors.New("invalid frame header size")

	// ErrInvalidPayloadSize is returned when the payload size recorded in
	// the frame header does not match the bytes that follow it.
	ErrInvalidPayloadSize = errors.New("invalid frame payload size")

	// ErrInvalidCompressionType is returned when the frame flags carry a
	// compression type this library does not support.
	ErrInvalidCompressionType = errors.New("invalid frame compression type")

	// ErrChecksumMismatch is returned when the payload checksum stored in
	// the frame header does not match the decoded payload.
	ErrChecksumMismatch = errors.New("frame payload checksum mismatch")
)
