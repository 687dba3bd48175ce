//go:build cgo_zstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/arloliu/catenc/errs"
)

// Compress compresses the input data using the cgo Zstandard binding.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses a Zstandard frame using the cgo binding.
func (c ZstdCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, checkLength("zstd", 0, size)
	}

	decompressed, err := gozstd.Decompress(make([]byte, 0, size), data)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd decompression failed: %w", errs.ErrMalformed, err)
	}
	if err := checkLength("zstd", len(decompressed), size); err != nil {
		return nil, err
	}

	return decompressed, nil
}
