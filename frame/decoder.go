package frame

import (
	"fmt"

	"github.com/solidbyte/rle/compress"
	"github.com/solidbyte/rle/encoding"
	"github.com/solidbyte/rle/errs"
	"github.com/solidbyte/rle/internal/hash"
	"github.com/solidbyte/rle/internal/pool"
)

// maxPreallocSize caps the scratch buffer pre-sized from the header's raw
// size field, so a corrupted or hostile header cannot force a huge upfront
// allocation. Larger outputs still decode; they just grow incrementally.
const maxPreallocSize = 64 * 1024 * 1024 // 64MiB

// Decode parses a frame and returns the original byte sequence.
//
// The header is validated, the payload is decompressed with the codec the
// header names, the checksum (when present) is verified against the
// decompressed payload, and the run-length stream is expanded.
//
// Runs are expanded into a pooled scratch buffer that is reused across calls;
// the result is copied out, so the returned slice is exactly sized and owned
// by the caller.
//
// Returns:
//   - []byte: Original input bytes, newly allocated
//   - error: Header validation errors, ErrInvalidPayloadSize,
//     ErrChecksumMismatch, decompression errors, or ErrTruncatedBlock
func Decode(data []byte) ([]byte, error) {
	var header Header
	if err := header.Parse(data); err != nil {
		return nil, err
	}

	payload := data[header.Size():]
	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: header records %d bytes, frame carries %d",
			errs.ErrInvalidPayloadSize, header.PayloadSize, len(payload))
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}

	decompressed, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("frame payload decompression: %w", err)
	}

	if header.HasChecksum && hash.Checksum(decompressed) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	buf.Grow(preallocSize(header.RawSize))
	buf.B, err = encoding.AppendDecode(buf.B, decompressed)
	if err != nil {
		return nil, err
	}

	if uint64(buf.Len()) != header.RawSize {
		return nil, fmt.Errorf("%w: decoded %d bytes, header records raw size %d",
			errs.ErrInvalidPayloadSize, buf.Len(), header.RawSize)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

func preallocSize(rawSize uint64) int {
	if rawSize > maxPreallocSize {
		return maxPreallocSize
	}

	return int(rawSize)
}
