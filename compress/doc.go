// Package compress provides compression and decompression codecs for
// run-length encoded payloads.
//
// Run-length encoding removes long byte runs but leaves the remaining literal
// segments untouched, so structured inputs often keep byte-level redundancy
// after encoding. This package implements a second, general-purpose stage that
// frames apply on top of the run-length payload:
//
//  1. Run-length encoding: collapses byte runs into 6-byte blocks
//  2. Compression: squeezes the residual literal redundancy
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): bypass, zero overhead. Use when the
//     run-length pass already removed most redundancy or CPU is at a premium.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. Use for cold
//     storage and bandwidth-limited transmission.
//   - S2 (format.CompressionS2): balanced ratio and speed. A good default for
//     payloads that are written and read at similar rates.
//   - LZ4 (format.CompressionLZ4): fastest decompression. Use for read-heavy
//     payloads where unpack latency dominates.
//
// # Thread Safety
//
// All codec implementations are stateless values or use internal pooling, and
// are safe to share across goroutines.
//
// # Error Handling
//
// Compression errors are rare; decompression errors surface corrupted or
// mismatched payloads. All errors are returned to the caller, never panicked.
package compress
