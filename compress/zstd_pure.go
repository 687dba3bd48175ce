//go:build !cgo_zstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/catenc/errs"
)

// zstdDecoderPool pools zstd decoders; the decoder runs without allocations after warmup.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(MaxDecompressedSize),
			zstd.WithDecodeAllCapLimit(true),
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // the blob header carries its own checksum
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// Compress compresses the input data using a pooled Zstandard encoder.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses a Zstandard frame using a pooled decoder.
func (c ZstdCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, checkLength("zstd", 0, size)
	}

	var header zstd.Header
	if err := header.Decode(data); err != nil {
		return nil, fmt.Errorf("%w: zstd frame header: %w", errs.ErrMalformed, err)
	}
	if header.HasFCS && header.FrameContentSize != uint64(size) {
		return nil, fmt.Errorf("%w: zstd frame declares %d bytes, want %d",
			errs.ErrMalformed, header.FrameContentSize, size)
	}

	// Output is capped at size, including any frames after the first.
	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, make([]byte, 0, size))
	if err != nil {
		return nil, fmt.Errorf("%w: zstd decompression failed: %w", errs.ErrMalformed, err)
	}
	if err := checkLength("zstd", len(decompressed), size); err != nil {
		return nil, err
	}

	return decompressed, nil
}
