package compress

// ZstdCompressor provides Zstandard compression for run-length encoded payloads.
//
// This compressor is designed for scenarios where compression ratio is more
// important than compression speed, making it ideal for:
//   - Cold storage and archival of framed payloads
//   - Network transmission where bandwidth is limited
//   - Scenarios where decompression happens infrequently
//
// Two implementations back this type, selected at build time:
//   - cgo builds use valyala/gozstd (libzstd bindings)
//   - non-cgo builds use the pure-Go klauspost/compress/zstd
//
// Both produce standard Zstandard frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
