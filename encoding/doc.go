// Package encoding implements the escape-coded run-length byte codec.
//
// The codec trades literal repeated bytes for a compact 6-byte block whenever
// a run is long enough to make that worthwhile. The wire format, read left to
// right, consists of two kinds of segments:
//
//   - Literal segment: one or more bytes copied unchanged from the input.
//     Appears whenever consecutive runs are each shorter than MinRunLength.
//   - Run block: exactly 6 bytes. The escape marker 0x04, a 4-byte big-endian
//     unsigned run length, then 1 byte of repeated value. Appears whenever a
//     run reaches MinRunLength.
//
// A run block always costs exactly 6 bytes, so escaping only wins once the
// literal form would cost at least as much. Runs of 7+ bytes are a guaranteed
// win, a run of exactly 6 is break-even and is escaped anyway. The threshold
// is a fixed property of the format, not a tunable.
//
// There is no length prefix, version byte, or terminator; the stream ends when
// the input ends. For a self-describing container around this stream, see the
// frame package.
//
// # Marker ambiguity
//
// The escape marker 0x04 (ASCII End-of-Transmission) is also a valid literal
// byte value. A short run of literal 0x04 bytes is emitted unescaped, and a
// decoder cannot distinguish it from the start of a run block. Inputs that
// contain fewer than MinRunLength consecutive 0x04 bytes therefore do NOT
// round-trip: Decode either misreads the following five bytes as a block
// header or fails with ErrTruncatedBlock. This is an inherent defect of the
// format itself, kept for wire compatibility. Callers whose data may contain
// stray 0x04 bytes should not rely on Decode recovering the original input.
package encoding
