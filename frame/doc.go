// Package frame wraps run-length encoded payloads in a small self-describing
// container.
//
// The raw encoded stream (see the encoding package) deliberately carries no
// length prefix, version byte, or terminator. That is fine for in-memory use,
// but payloads that are persisted or transmitted benefit from knowing how they
// were compressed and whether they arrived intact. A frame provides exactly
// that: a fixed header followed by the (optionally compressed) payload.
//
// Frame layout, all multi-byte fields big-endian:
//
//	offset 0   uint16  magic number 0x524C ("RL")
//	offset 2   uint8   format version (currently 1)
//	offset 3   uint8   flags: bits 0-3 compression type, bit 6 checksum present
//	offset 4   uint32  payload size in bytes (after compression)
//	offset 8   uint64  raw size in bytes (input length before encoding)
//	offset 16  uint64  xxHash64 of the encoded payload before compression,
//	                   present only when the checksum flag is set
//
// The checksum covers the run-length payload rather than the compressed bytes,
// so corruption introduced by a faulty compression round-trip is caught too.
//
// Usage:
//
//	encoder, err := frame.NewEncoder(frame.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	framed, err := encoder.Encode(data)
//	...
//	original, err := frame.Decode(framed)
package frame
