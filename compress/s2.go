package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/catenc/errs"
)

type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 block compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses an S2 block into a buffer of exactly size bytes.
func (c S2Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, checkLength("s2", 0, size)
	}

	decodedLen, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2 decompression failed: %w", errs.ErrMalformed, err)
	}
	if err := checkLength("s2", decodedLen, size); err != nil {
		return nil, err
	}

	decoded, err := s2.Decode(make([]byte, size), data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2 decompression failed: %w", errs.ErrMalformed, err)
	}

	return decoded, nil
}
