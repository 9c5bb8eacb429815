package frame

import (
	"github.com/solidbyte/rle/endian"
	"github.com/solidbyte/rle/errs"
	"github.com/solidbyte/rle/format"
)

const (
	// MagicNumber identifies frame data. Spells "RL" in ASCII.
	MagicNumber uint16 = 0x524C

	// Version is the frame format version this library produces.
	Version byte = 0x1

	// baseHeaderSize is the header size without the optional checksum field.
	baseHeaderSize = 16

	// checksumSize is the size of the optional checksum field.
	checksumSize = 8

	// Flag bits (byte at offset 3).
	compressionMask = 0x0F
	checksumFlag    = 0x40
)

// Header fields travel in network byte order.
var engine = endian.GetBigEndianEngine()

// Header is the fixed-size section at the start of every frame.
type Header struct {
	// Compression is the outer codec applied to the payload.
	Compression format.CompressionType

	// HasChecksum reports whether the header carries a payload checksum.
	HasChecksum bool

	// PayloadSize is the number of payload bytes following the header.
	PayloadSize uint32

	// RawSize is the length of the original input before run-length
	// encoding. Decoders use it to pre-size their output buffer.
	RawSize uint64

	// Checksum is the xxHash64 of the run-length payload before outer
	// compression. Only meaningful when HasChecksum is set.
	Checksum uint64
}

// Size returns the encoded header size in bytes.
func (h *Header) Size() int {
	if h.HasChecksum {
		return baseHeaderSize + checksumSize
	}

	return baseHeaderSize
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, 0, h.Size())

	b = engine.AppendUint16(b, MagicNumber)
	b = append(b, Version)

	flags := byte(h.Compression) & compressionMask
	if h.HasChecksum {
		flags |= checksumFlag
	}
	b = append(b, flags)

	b = engine.AppendUint32(b, h.PayloadSize)
	b = engine.AppendUint64(b, h.RawSize)
	if h.HasChecksum {
		b = engine.AppendUint64(b, h.Checksum)
	}

	return b
}

// Parse reads a header from the start of data.
//
// Returns:
//   - error: ErrInvalidHeaderSize, ErrInvalidMagic, ErrUnsupportedVersion, or
//     ErrInvalidCompressionType when the prefix is not a valid header
func (h *Header) Parse(data []byte) error {
	if len(data) < baseHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	if engine.Uint16(data[0:2]) != MagicNumber {
		return errs.ErrInvalidMagic
	}

	if data[2] != Version {
		return errs.ErrUnsupportedVersion
	}

	flags := data[3]
	h.Compression = format.CompressionType(flags & compressionMask)
	h.HasChecksum = flags&checksumFlag != 0

	if !h.Compression.Valid() {
		return errs.ErrInvalidCompressionType
	}

	if len(data) < h.Size() {
		return errs.ErrInvalidHeaderSize
	}

	h.PayloadSize = engine.Uint32(data[4:8])
	h.RawSize = engine.Uint64(data[8:16])
	if h.HasChecksum {
		h.Checksum = engine.Uint64(data[16:24])
	}

	return nil
}
