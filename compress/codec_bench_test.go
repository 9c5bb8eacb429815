package compress

import (
	"testing"

	"github.com/solidbyte/rle/format"
)

func BenchmarkCodecs_Compress(b *testing.B) {
	payload := samplePayload()

	for _, cType := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(cType)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(cType.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := codec.Compress(payload); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCodecs_Decompress(b *testing.B) {
	payload := samplePayload()

	for _, cType := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(cType)
		if err != nil {
			b.Fatal(err)
		}
		compressed, err := codec.Compress(payload)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(cType.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := codec.Decompress(compressed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
